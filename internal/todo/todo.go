// Package todo holds the list controller: pure handlers that take the current
// state and an event and return the next state plus the side effects to run.
package todo

import (
	"strings"

	"github.com/Makepad-fr/tada/internal/model"
)

// State is everything the screen shows.
type State struct {
	Items  []model.Item // display order
	Input  string       // text field contents
	Urgent bool         // urgency toggle
	Prompt *Prompt      // open delete confirmation, nil when none
}

// Prompt is a pending delete confirmation.
type Prompt struct {
	Position int
}

// Command is a side effect requested by a handler.
type Command interface{ command() }

// Refresh asks the surface to redraw the list from State.Items.
type Refresh struct{}

// Insert persists a new row. Index is the item's position in State.Items,
// used to record the identifier the store hands back.
type Insert struct {
	Index  int
	Text   string
	Urgent bool
}

// Delete removes a persisted row. ID keys the row; Text is the display line with
// the urgent marker stripped, for stores that still match by content.
type Delete struct {
	ID   int64
	Text string
}

// ShowPrompt asks the surface to show the delete confirmation.
type ShowPrompt struct {
	Position int
}

func (Refresh) command()    {}
func (Insert) command()     {}
func (Delete) command()     {}
func (ShowPrompt) command() {}

// Lines returns the display strings in order.
func (s State) Lines() []string {
	out := make([]string, 0, len(s.Items))
	for _, it := range s.Items {
		out = append(out, it.Display())
	}
	return out
}

// Load replaces the list with rows read from the store.
func Load(s State, rows []model.Item) (State, []Command) {
	s.Items = make([]model.Item, 0, len(rows))
	s.Items = append(s.Items, rows...)
	return s, []Command{Refresh{}}
}

// Add appends a new item unless text is blank. Input and urgency are reset after a
// successful add; a blank add changes nothing.
func Add(s State, text string, urgent bool) (State, []Command) {
	text = strings.TrimSpace(text)
	if text == "" {
		return s, nil
	}
	s.Items = appendItem(s.Items, model.Item{Text: text, Urgent: urgent})
	s.Input, s.Urgent = "", false
	return s, []Command{
		Refresh{},
		Insert{Index: len(s.Items) - 1, Text: text, Urgent: urgent},
	}
}

// LongPress opens the delete confirmation for the item at pos.
func LongPress(s State, pos int) (State, []Command) {
	if pos < 0 || pos >= len(s.Items) {
		return s, nil
	}
	s.Prompt = &Prompt{Position: pos}
	return s, []Command{ShowPrompt{Position: pos}}
}

// Confirm removes the prompted item and asks the store to delete it.
func Confirm(s State) (State, []Command) {
	if s.Prompt == nil {
		return s, nil
	}
	pos := s.Prompt.Position
	s.Prompt = nil
	if pos < 0 || pos >= len(s.Items) {
		return s, nil
	}
	it := s.Items[pos]
	s.Items = removeItem(s.Items, pos)
	return s, []Command{
		Refresh{},
		Delete{ID: it.ID, Text: model.StripMarker(it.Display())},
	}
}

// Decline closes the prompt without touching the list.
func Decline(s State) (State, []Command) {
	s.Prompt = nil
	return s, nil
}

// Assign records the identifier the store gave the item at index.
func Assign(s State, index int, id int64) State {
	if index < 0 || index >= len(s.Items) {
		return s
	}
	s.Items = append([]model.Item(nil), s.Items...)
	s.Items[index].ID = id
	return s
}

// appendItem and removeItem copy so a previous State never sees the change.
func appendItem(items []model.Item, it model.Item) []model.Item {
	out := make([]model.Item, 0, len(items)+1)
	out = append(out, items...)
	return append(out, it)
}

func removeItem(items []model.Item, pos int) []model.Item {
	out := make([]model.Item, 0, len(items)-1)
	out = append(out, items[:pos]...)
	return append(out, items[pos+1:]...)
}
