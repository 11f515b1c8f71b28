package app

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store/sqlstore"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.DBPath = filepath.Join(t.TempDir(), "test.db")
	return cfg
}

func openApp(t *testing.T, cfg config.Config) *App {
	t.Helper()
	a, err := Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func storedTexts(t *testing.T, cfg config.Config) []string {
	t.Helper()
	st, err := sqlstore.Open(cfg.DBPath, sqlstore.Options{Driver: cfg.Driver, Version: cfg.SchemaVersion})
	require.NoError(t, err)
	defer st.Close()
	rows, err := st.QueryAll()
	require.NoError(t, err)
	out := []string{}
	for _, r := range rows {
		out = append(out, r.Text)
	}
	return out
}

func TestApp_Scenario(t *testing.T) {
	cfg := testConfig(t)
	a := openApp(t, cfg)

	require.NoError(t, a.Add("Buy milk", false))
	assert.Equal(t, []string{"Buy milk"}, a.Lines())

	require.NoError(t, a.Add("Call boss", true))
	assert.Equal(t, []string{"Buy milk", "! Call boss"}, a.Lines())

	require.NoError(t, a.Reload())
	assert.Equal(t, []string{"Buy milk", "! Call boss"}, a.Lines())

	require.NoError(t, a.LongPress(1))
	pos, ok := a.Prompt()
	require.True(t, ok)
	assert.Equal(t, 1, pos)

	require.NoError(t, a.Confirm())
	assert.Equal(t, []string{"Buy milk"}, a.Lines())
	assert.Equal(t, []string{"Buy milk"}, storedTexts(t, cfg))
}

func TestApp_AddAssignsIDs(t *testing.T) {
	a := openApp(t, testConfig(t))
	require.NoError(t, a.Add("one", false))
	require.NoError(t, a.Add("two", true))

	items := a.Items()
	require.Len(t, items, 2)
	assert.NotZero(t, items[0].ID)
	assert.NotZero(t, items[1].ID)
	assert.NotEqual(t, items[0].ID, items[1].ID)

	require.NoError(t, a.Reload())
	assert.Equal(t, items, a.Items(), "in-memory list matches a full reload")
}

func TestApp_BlankAdd(t *testing.T) {
	cfg := testConfig(t)
	a := openApp(t, cfg)
	require.NoError(t, a.Add("keep", false))

	for _, text := range []string{"", "   ", "\t"} {
		require.NoError(t, a.Add(text, true))
	}
	assert.Equal(t, []string{"keep"}, a.Lines())
	assert.Equal(t, []string{"keep"}, storedTexts(t, cfg))
}

func TestApp_Submit(t *testing.T) {
	a := openApp(t, testConfig(t))

	a.SetInput("  ")
	a.SetUrgent(true)
	require.NoError(t, a.Submit())
	assert.Empty(t, a.Lines())
	assert.Equal(t, "  ", a.Input(), "blank input is left as typed")
	assert.True(t, a.Urgent())

	a.SetInput("Call boss")
	require.NoError(t, a.Submit())
	assert.Equal(t, []string{"! Call boss"}, a.Lines())
	assert.Empty(t, a.Input())
	assert.False(t, a.Urgent())
}

func TestApp_Decline(t *testing.T) {
	cfg := testConfig(t)
	a := openApp(t, cfg)
	require.NoError(t, a.Add("stay", false))

	require.NoError(t, a.LongPress(0))
	require.NoError(t, a.Decline())
	_, ok := a.Prompt()
	assert.False(t, ok)
	assert.Equal(t, []string{"stay"}, a.Lines())
	assert.Equal(t, []string{"stay"}, storedTexts(t, cfg))
}

func TestApp_DeleteModes(t *testing.T) {
	t.Run("by id removes only the chosen duplicate", func(t *testing.T) {
		cfg := testConfig(t)
		a := openApp(t, cfg)
		require.NoError(t, a.Add("dup", false))
		require.NoError(t, a.Add("dup", true))

		require.NoError(t, a.LongPress(0))
		require.NoError(t, a.Confirm())
		assert.Equal(t, []string{"! dup"}, a.Lines())
		assert.Equal(t, []string{"dup"}, storedTexts(t, cfg))

		require.NoError(t, a.Reload())
		assert.Equal(t, []string{"! dup"}, a.Lines())
	})

	t.Run("legacy text mode removes every duplicate from storage", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.DeleteMode = config.DeleteByText
		a := openApp(t, cfg)
		require.NoError(t, a.Add("dup", false))
		require.NoError(t, a.Add("dup", true))
		require.NoError(t, a.Add("other", false))

		require.NoError(t, a.LongPress(1))
		require.NoError(t, a.Confirm())
		assert.Equal(t, []string{"dup", "other"}, a.Lines(), "display drops one entry")
		assert.Equal(t, []string{"other"}, storedTexts(t, cfg), "storage drops both")

		require.NoError(t, a.Reload())
		assert.Equal(t, []string{"other"}, a.Lines())
	})
}

func TestApp_Hooks(t *testing.T) {
	a := openApp(t, testConfig(t))
	var refreshed [][]string
	var prompted []int
	a.OnRefresh = func(lines []string) { refreshed = append(refreshed, lines) }
	a.OnPrompt = func(pos int) { prompted = append(prompted, pos) }

	require.NoError(t, a.Add("x", false))
	require.NoError(t, a.LongPress(0))
	require.NoError(t, a.Confirm())

	assert.Equal(t, [][]string{{"x"}, {}}, refreshed)
	assert.Equal(t, []int{0}, prompted)
}

type failingStore struct{ err error }

func (f failingStore) Insert(string, bool) (int64, error) { return 0, f.err }
func (f failingStore) QueryAll() ([]model.Item, error) { return nil, f.err }
func (f failingStore) DeleteByText(string) (int64, error) { return 0, f.err }
func (f failingStore) DeleteByID(int64) (int64, error) { return 0, f.err }
func (f failingStore) Close() error { return f.err }

func TestApp_StoreErrors(t *testing.T) {
	boom := errors.New("disk gone")
	a := New(failingStore{err: boom}, "")

	assert.ErrorIs(t, a.Reload(), boom)

	err := a.Add("x", false)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"x"}, a.Lines(), "display is optimistic, no rollback")

	require.NoError(t, a.LongPress(0))
	assert.ErrorIs(t, a.Confirm(), boom)
	assert.Empty(t, a.Lines())

	assert.ErrorIs(t, a.Close(), boom)
}

func TestOpen_BadPath(t *testing.T) {
	cfg := config.Default()
	cfg.DBPath = "/invalid/path/that/does/not/exist/test.db"
	a, err := Open(cfg)
	assert.Error(t, err)
	assert.Nil(t, a)
}
