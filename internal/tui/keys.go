package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add     key.Binding
	Urgent  key.Binding
	Up      key.Binding
	Down    key.Binding
	Delete  key.Binding
	Quit    key.Binding
	Abort   key.Binding
	Confirm key.Binding
	Decline key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Add:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Urgent:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "urgent")),
		Up:      key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
		Delete:  key.NewBinding(key.WithKeys("ctrl+d", "delete"), key.WithHelp("ctrl+d", "delete")),
		Quit:    key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
		Abort:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Confirm: key.NewBinding(key.WithKeys("y", "Y", "enter"), key.WithHelp("y", "yes")),
		Decline: key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "no")),
	}
}

// short is what the list shows in its help line while editing.
func (k keyMap) short() []key.Binding {
	return []key.Binding{k.Add, k.Urgent, k.Delete, k.Quit}
}
