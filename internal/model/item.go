package model

import "strings"

// UrgentMarker prefixes the display form of an urgent item. It is never stored.
const UrgentMarker = "! "

// Item is the domain model for a todo entry.
// ID is assigned by the store and never changes afterwards.
type Item struct {
	ID     int64  `db:"id" json:"id"`
	Text   string `db:"text" json:"text"`
	Urgent bool   `db:"urgent" json:"urgent"`
}

// Display formats the item the way the list shows it.
func (i Item) Display() string {
	if i.Urgent {
		return UrgentMarker + i.Text
	}
	return i.Text
}

// StripMarker removes a leading urgent marker from a display line.
func StripMarker(line string) string {
	return strings.TrimPrefix(line, UrgentMarker)
}
