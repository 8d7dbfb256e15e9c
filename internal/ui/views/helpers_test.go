package views

import (
	"strconv"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"github.com/tgienger/taskdesk/internal/manager"
	"github.com/tgienger/taskdesk/internal/seed"
	"github.com/tgienger/taskdesk/internal/store"
)

const testLayout = "2006-01-02"

func newTestManager(t *testing.T) *manager.Manager {
	t.Helper()
	tasks, err := seed.Default()
	require.NoError(t, err)

	n := 100
	s := store.New(store.WithIDGenerator(func() string {
		n++
		return strconv.Itoa(n)
	}))
	require.NoError(t, s.Seed(tasks))
	return manager.New(s)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// typeText sends s one rune at a time
func typeText(m tea.Model, s string) {
	for _, r := range s {
		m.Update(runes(string(r)))
	}
}

// send feeds msgs to m and returns the command of the last one
func send(m tea.Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

// fakePrefs is an in-memory Preferences
type fakePrefs struct {
	values map[string]string
	err    error
}

func newFakePrefs() *fakePrefs {
	return &fakePrefs{values: map[string]string{}}
}

func (f *fakePrefs) GetSetting(key string) (string, error) {
	return f.values[key], nil
}

func (f *fakePrefs) SetSetting(key, value string) error {
	if f.err != nil {
		return f.err
	}
	f.values[key] = value
	return nil
}

func (f *fakePrefs) GetBool(key string, def bool) bool {
	v, ok := f.values[key]
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func (f *fakePrefs) SetBool(key string, value bool) error {
	return f.SetSetting(key, strconv.FormatBool(value))
}
