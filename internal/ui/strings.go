package ui

// Text holds every user-facing string so a translation only has to swap it.
var Text = struct {
	Title           string
	Empty           string
	Placeholder     string
	UrgentLabel     string
	DeleteTitle     string
	DeleteMessage   string // takes the 0-based position
	Yes, No         string
	ConfirmQuestion string // takes the 1-based index, for the CLI
}{
	Title:           "Todos",
	Empty:           "no items",
	Placeholder:     "New item...",
	UrgentLabel:     "urgent",
	DeleteTitle:     "Delete item",
	DeleteMessage:   "Delete item at position %d?",
	Yes:             "Yes",
	No:              "No",
	ConfirmQuestion: "Delete item %d? [y/N] ",
}
