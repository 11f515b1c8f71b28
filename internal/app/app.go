// Package app ties the list controller to the store. An App is the single
// context object a surface drives: open it at startup, close it at shutdown.
package app

import (
	"fmt"

	log "github.com/go-pkgz/lgr"

	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store/sqlstore"
	"github.com/Makepad-fr/tada/internal/todo"
)

// Store is what the app needs from persistence.
type Store interface {
	Insert(text string, urgent bool) (int64, error)
	QueryAll() ([]model.Item, error)
	DeleteByText(text string) (int64, error)
	DeleteByID(id int64) (int64, error)
	Close() error
}

// App holds the store handle and the current list state.
type App struct {
	store      Store
	state      todo.State
	deleteMode string

	// OnRefresh and OnPrompt are called when a handler asks for a redraw or a
	// delete confirmation.
	OnRefresh func(lines []string)
	OnPrompt  func(position int)
}

// Open acquires the store described by cfg and loads the list.
func Open(cfg config.Config) (*App, error) {
	st, err := sqlstore.Open(cfg.DBPath, sqlstore.Options{Driver: cfg.Driver, Version: cfg.SchemaVersion})
	if err != nil {
		return nil, err
	}
	a := New(st, cfg.DeleteMode)
	if err := a.Reload(); err != nil {
		_ = st.Close()
		return nil, err
	}
	return a, nil
}

// New wraps an already open store. The list is empty until Reload.
func New(st Store, deleteMode string) *App {
	if deleteMode == "" {
		deleteMode = config.DeleteByID
	}
	return &App{store: st, deleteMode: deleteMode}
}

// Close releases the store.
func (a *App) Close() error {
	if err := a.store.Close(); err != nil {
		return fmt.Errorf("failed to close store: %w", err)
	}
	return nil
}

// Reload replaces the list with the stored rows.
func (a *App) Reload() error {
	rows, err := a.store.QueryAll()
	if err != nil {
		return err
	}
	return a.apply(todo.Load(a.state, rows))
}

// Add adds an item; blank text is ignored.
func (a *App) Add(text string, urgent bool) error {
	return a.apply(todo.Add(a.state, text, urgent))
}

// Submit adds whatever is in the text field with the current urgency.
func (a *App) Submit() error {
	return a.apply(todo.Add(a.state, a.state.Input, a.state.Urgent))
}

// LongPress opens the delete confirmation for the item at pos.
func (a *App) LongPress(pos int) error {
	return a.apply(todo.LongPress(a.state, pos))
}

// Confirm deletes the prompted item.
func (a *App) Confirm() error {
	return a.apply(todo.Confirm(a.state))
}

// Decline closes the prompt.
func (a *App) Decline() error {
	return a.apply(todo.Decline(a.state))
}

// SetInput tracks the text field so it can be cleared after an add.
func (a *App) SetInput(text string) { a.state.Input = text }

// SetUrgent sets the urgency toggle.
func (a *App) SetUrgent(urgent bool) { a.state.Urgent = urgent }

// Input returns the text field contents.
func (a *App) Input() string { return a.state.Input }

// Urgent returns the urgency toggle.
func (a *App) Urgent() bool { return a.state.Urgent }

// Lines returns the display strings.
func (a *App) Lines() []string { return a.state.Lines() }

// Items returns a copy of the in-memory list.
func (a *App) Items() []model.Item {
	return append([]model.Item(nil), a.state.Items...)
}

// Prompt returns the open confirmation, if any.
func (a *App) Prompt() (position int, ok bool) {
	if a.state.Prompt == nil {
		return 0, false
	}
	return a.state.Prompt.Position, true
}

// apply stores the new state and runs the commands in order. The state is
// committed first so the display never waits on the store.
func (a *App) apply(s todo.State, cmds []todo.Command) error {
	a.state = s
	for _, c := range cmds {
		if err := a.exec(c); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) exec(c todo.Command) error {
	switch c := c.(type) {
	case todo.Refresh:
		if a.OnRefresh != nil {
			a.OnRefresh(a.state.Lines())
		}
	case todo.ShowPrompt:
		if a.OnPrompt != nil {
			a.OnPrompt(c.Position)
		}
	case todo.Insert:
		id, err := a.store.Insert(c.Text, c.Urgent)
		if err != nil {
			return err
		}
		a.state = todo.Assign(a.state, c.Index, id)
	case todo.Delete:
		var n int64
		var err error
		if a.deleteMode == config.DeleteByText {
			n, err = a.store.DeleteByText(c.Text)
		} else {
			n, err = a.store.DeleteByID(c.ID)
		}
		if err != nil {
			return err
		}
		if n == 0 {
			log.Printf("[DEBUG] delete of %q (id %d) matched no rows", c.Text, c.ID)
		}
	default:
		return fmt.Errorf("unknown command %T", c)
	}
	return nil
}
