// Package tui is the interactive single-screen list: a text field with an
// urgent toggle above a list, and a confirmation dialog for deletes.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/app"
	"github.com/Makepad-fr/tada/internal/ui"
)

// listItem adapts a display line to bubbles/list.Item
type listItem string

func (i listItem) Title() string       { return string(i) }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return string(i) }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)
	prefix := "  "
	if index == m.Index() {
		prefix = ui.Current().Selected.Render("> ")
	}
	fmt.Fprintln(w, prefix+ui.Line(string(it)))
}

// Model is the Bubble Tea model for the todo screen.
type Model struct {
	app  *app.App
	list *list.Model // shared with the app's refresh hook
	ti   textinput.Model
	keys keyMap

	width, height int
	err           error
}

// New builds the screen over an opened app and takes over its refresh hook.
func New(a *app.App) Model {
	keys := defaultKeys()

	l := list.New(toItems(a.Lines()), itemDelegate{}, 76, 16)
	l.Title = ui.Header(a.Lines())
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("item", "items")
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Muted
	l.Styles.PaginationStyle = ui.Current().Muted

	// typing goes to the text field, so the list keeps arrows only
	l.KeyMap = list.KeyMap{
		CursorUp:   keys.Up,
		CursorDown: keys.Down,
	}
	l.AdditionalShortHelpKeys = keys.short
	l.AdditionalFullHelpKeys = keys.short

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = ui.Text.Placeholder
	ti.CharLimit = 200
	ti.Focus()

	m := Model{app: a, list: &l, ti: ti, keys: keys, width: 80, height: 24}
	a.OnRefresh = func(lines []string) {
		m.list.SetItems(toItems(lines))
		m.list.Title = ui.Header(lines)
		if n := len(lines); n > 0 && m.list.Index() >= n {
			m.list.Select(n - 1)
		}
	}
	return m
}

// Run starts the program and returns the first store error, if any.
func Run(a *app.App) error {
	p := tea.NewProgram(New(a), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}

// Err returns the error that ended the program.
func (m Model) Err() error { return m.err }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		// ctrl+c quits even with the dialog open; the list stays as it is
		if key.Matches(msg, m.keys.Abort) {
			return m, tea.Quit
		}

		// confirmation dialog
		if _, open := m.app.Prompt(); open {
			switch {
			case key.Matches(msg, m.keys.Confirm):
				return m.do(m.app.Confirm())
			case key.Matches(msg, m.keys.Decline):
				return m.do(m.app.Decline())
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.list.CursorUp()
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.list.CursorDown()
			return m, nil
		case key.Matches(msg, m.keys.Urgent):
			m.app.SetUrgent(!m.app.Urgent())
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			return m.do(m.app.LongPress(m.list.Index()))
		case key.Matches(msg, m.keys.Add):
			before := len(m.list.Items())
			m.app.SetInput(m.ti.Value())
			if err := m.app.Submit(); err != nil {
				return m.do(err)
			}
			m.ti.SetValue(m.app.Input())
			if n := len(m.list.Items()); n > before {
				m.list.Select(n - 1)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	m.app.SetInput(m.ti.Value())
	return m, cmd
}

// do ends the program on a store error; storage failures are fatal.
func (m Model) do(err error) (tea.Model, tea.Cmd) {
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	t := ui.Current()

	toggle := t.ToggleOff
	if m.app.Urgent() {
		toggle = t.Urgent.Render(t.ToggleOn)
	}
	bar := lipgloss.NewStyle().Border(t.Border).BorderForeground(t.BorderColor).Padding(0, 1)
	input := bar.Render(fmt.Sprintf("%s %s\n%s", toggle, ui.Text.UrgentLabel, m.ti.View()))

	var dialog string
	if pos, open := m.app.Prompt(); open {
		box := lipgloss.NewStyle().Border(t.Border).BorderForeground(t.Error.GetForeground()).Padding(0, 1)
		dialog = box.Render(strings.Join([]string{
			t.Title.Render(ui.Text.DeleteTitle),
			fmt.Sprintf(ui.Text.DeleteMessage, pos),
			"",
			fmt.Sprintf("%s %s   %s %s", t.Accent.Render("[y]"), ui.Text.Yes, t.Accent.Render("[n]"), ui.Text.No),
		}, "\n"))
	}

	used := lipgloss.Height(input) + 2
	if dialog != "" {
		used += lipgloss.Height(dialog)
	}
	m.list.SetSize(m.width-4, max(m.height-used-2, 3))

	parts := []string{m.list.View(), input}
	if dialog != "" {
		parts = append(parts, dialog)
	}
	return ui.Frame(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func toItems(lines []string) []list.Item {
	out := make([]list.Item, 0, len(lines))
	for _, ln := range lines {
		out = append(out, listItem(ln))
	}
	return out
}
