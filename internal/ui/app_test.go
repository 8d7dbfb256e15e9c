package ui

import (
	"strconv"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tgienger/taskdesk/internal/db"
	"github.com/tgienger/taskdesk/internal/manager"
	"github.com/tgienger/taskdesk/internal/seed"
	"github.com/tgienger/taskdesk/internal/store"
	"github.com/tgienger/taskdesk/internal/ui/styles"
	"github.com/tgienger/taskdesk/internal/ui/views"
)

type memPrefs map[string]string

func (p memPrefs) GetSetting(key string) (string, error) { return p[key], nil }

func (p memPrefs) SetSetting(key, value string) error {
	p[key] = value
	return nil
}

func (p memPrefs) GetBool(key string, def bool) bool {
	b, err := strconv.ParseBool(p[key])
	if err != nil {
		return def
	}
	return b
}

func (p memPrefs) SetBool(key string, value bool) error {
	return p.SetSetting(key, strconv.FormatBool(value))
}

func newTestApp(t *testing.T, prefs memPrefs, opts Options) (*App, *manager.Manager) {
	t.Helper()
	t.Cleanup(func() { styles.SetDark(false) })

	tasks, err := seed.Default()
	require.NoError(t, err)
	s := store.New()
	require.NoError(t, s.Seed(tasks))
	mgr := manager.New(s)

	if opts.DateLayout == "" {
		opts.DateLayout = "2006-01-02"
	}
	a := NewApp(prefs, mgr, opts)
	a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return a, mgr
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestApp_StartsOnLogin(t *testing.T) {
	a, _ := newTestApp(t, memPrefs{}, Options{})
	assert.Equal(t, ViewLogin, a.Current())

	// global shortcuts are off while logging in
	a.Update(runeKey("2"))
	assert.Equal(t, ViewLogin, a.Current())
}

func TestApp_LoginPersistsEmail(t *testing.T) {
	prefs := memPrefs{}
	a, _ := newTestApp(t, prefs, Options{})

	a.Update(views.LoggedIn{Email: "jo@example.com"})
	assert.Equal(t, ViewTasks, a.Current())
	assert.Equal(t, "jo@example.com", prefs[db.KeyLastEmail])
	assert.Contains(t, a.View(), "jo@example.com")
}

func TestApp_SkipLogin(t *testing.T) {
	a, _ := newTestApp(t, memPrefs{db.KeyLastEmail: "jo@example.com"}, Options{SkipLogin: true})
	assert.Equal(t, ViewTasks, a.Current())
	assert.Equal(t, "jo@example.com", a.email)
}

func TestApp_Navigation(t *testing.T) {
	a, _ := newTestApp(t, memPrefs{}, Options{SkipLogin: true})

	a.Update(runeKey("2"))
	assert.Equal(t, ViewReports, a.Current())
	a.Update(runeKey("3"))
	assert.Equal(t, ViewSettings, a.Current())
	a.Update(runeKey("1"))
	assert.Equal(t, ViewTasks, a.Current())

	a.Update(runeKey("L"))
	assert.Equal(t, ViewLogin, a.Current())
}

func TestApp_ShortcutsSuppressedWhileTyping(t *testing.T) {
	a, mgr := newTestApp(t, memPrefs{}, Options{SkipLogin: true})

	a.Update(runeKey("/"))
	a.Update(runeKey("2"))
	assert.Equal(t, ViewTasks, a.Current())
	assert.Equal(t, "2", mgr.Query())

	a.Update(runeKey("q"))
	assert.Equal(t, "2q", mgr.Query())
}

func TestApp_Quit(t *testing.T) {
	a, _ := newTestApp(t, memPrefs{}, Options{SkipLogin: true})

	_, cmd := a.Update(runeKey("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestApp_ToggleThemePersists(t *testing.T) {
	prefs := memPrefs{}
	a, _ := newTestApp(t, prefs, Options{SkipLogin: true})
	require.False(t, styles.Current.Dark)

	a.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.True(t, styles.Current.Dark)
	assert.Equal(t, "true", prefs[db.KeyDarkTheme])
	assert.Contains(t, a.View(), "Dark")

	a.Update(views.ToggleTheme{})
	assert.False(t, styles.Current.Dark)
	assert.Equal(t, "false", prefs[db.KeyDarkTheme])
}

func TestApp_ThemeLoadedFromPrefs(t *testing.T) {
	newTestApp(t, memPrefs{db.KeyDarkTheme: "true"}, Options{})
	assert.True(t, styles.Current.Dark)
}

func TestApp_DetailRoundTrip(t *testing.T) {
	a, mgr := newTestApp(t, memPrefs{}, Options{SkipLogin: true})

	a.Update(views.OpenTask{ID: "3"})
	assert.Equal(t, ViewDetails, a.Current())
	assert.Equal(t, "3", a.Details().TaskID())

	a.Update(views.EditTask{ID: "3"})
	assert.Equal(t, ViewTasks, a.Current())
	ed, ok := mgr.Dialog().(manager.Editor)
	require.True(t, ok)
	assert.Equal(t, "3", ed.Target.ID)
	require.NoError(t, mgr.DismissEditor())

	a.Update(views.DeleteTask{ID: "3"})
	assert.Equal(t, manager.ConfirmDelete{TargetID: "3"}, mgr.Dialog())

	a.Update(runeKey("y"))
	_, found := mgr.Lookup("3")
	assert.False(t, found)

	a.Update(views.OpenTask{ID: "3"})
	assert.Contains(t, a.View(), "Task Not Found")
}
