package ui

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/taskdesk/internal/db"
	"github.com/tgienger/taskdesk/internal/manager"
	"github.com/tgienger/taskdesk/internal/ui/keys"
	"github.com/tgienger/taskdesk/internal/ui/styles"
	"github.com/tgienger/taskdesk/internal/ui/views"
)

// Currently active view
type View int

const (
	ViewLogin View = iota
	ViewTasks
	ViewDetails
	ViewReports
	ViewSettings
)

const (
	sidebarWidth = 18
	headerHeight = 1
)

// Options tune the app at startup
type Options struct {
	DateLayout string
	SkipLogin  bool
	Version    string
}

type App struct {
	prefs   views.Preferences
	mgr     *manager.Manager
	opts    Options
	keys    keys.KeyMap
	styles  *styles.Styles
	email   string
	current View

	login    *views.LoginView
	taskList *views.TaskListView
	details  *views.DetailView
	reports  *views.ReportsView
	settings *views.SettingsView

	width  int
	height int
}

// Creates a new application over the task manager. The display mode is read
// from prefs before any page is styled.
func NewApp(prefs views.Preferences, mgr *manager.Manager, opts Options) *App {
	styles.SetDark(prefs.GetBool(db.KeyDarkTheme, false))

	lastEmail, err := prefs.GetSetting(db.KeyLastEmail)
	if err != nil {
		log.Printf("[app] last email: %v", err)
	}

	a := &App{
		prefs:    prefs,
		mgr:      mgr,
		opts:     opts,
		keys:     keys.DefaultKeyMap(),
		styles:   styles.NewStyles(),
		current:  ViewLogin,
		login:    views.NewLoginView(lastEmail),
		taskList: views.NewTaskListView(mgr, opts.DateLayout),
		details:  views.NewDetailView(mgr, opts.DateLayout),
		reports:  views.NewReportsView(mgr),
		settings: views.NewSettingsView(prefs),
	}
	if opts.SkipLogin {
		a.email = lastEmail
		if a.email == "" {
			a.email = "guest"
		}
		a.current = ViewTasks
	}
	return a
}

// Current returns the active view
func (a *App) Current() View {
	return a.current
}

// TaskList exposes the task list page
func (a *App) TaskList() *views.TaskListView {
	return a.taskList
}

// Details exposes the detail page
func (a *App) Details() *views.DetailView {
	return a.details
}

func (a *App) page() views.Page {
	switch a.current {
	case ViewTasks:
		return a.taskList
	case ViewDetails:
		return a.details
	case ViewReports:
		return a.reports
	case ViewSettings:
		return a.settings
	}
	return a.login
}

func (a *App) Init() tea.Cmd {
	return a.page().Init()
}

// switchTo makes v the active view and sizes it
func (a *App) switchTo(v View) tea.Cmd {
	a.current = v
	if v == ViewSettings {
		a.settings.Reload()
	}
	return tea.Batch(
		a.page().Init(),
		func() tea.Msg {
			return tea.WindowSizeMsg{Width: a.width, Height: a.height}
		},
	)
}

// pageSize is the area left for a page once the shell is drawn
func (a *App) pageSize() tea.WindowSizeMsg {
	if a.current == ViewLogin {
		return tea.WindowSizeMsg{Width: a.width, Height: a.height}
	}
	return tea.WindowSizeMsg{
		Width:  max(a.width-sidebarWidth, 0),
		Height: max(a.height-headerHeight, 0),
	}
}

func (a *App) toggleTheme() tea.Cmd {
	dark := !styles.Current.Dark
	styles.SetDark(dark)
	if err := a.prefs.SetBool(db.KeyDarkTheme, dark); err != nil {
		log.Printf("[app] persist theme: %v", err)
	}
	a.styles = styles.NewStyles()

	// Every page restyles, not only the visible one
	for _, p := range []views.Page{a.login, a.taskList, a.details, a.reports, a.settings} {
		p.Update(views.ThemeChanged{})
	}
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		_, cmd := a.page().Update(a.pageSize())
		return a, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if key.Matches(msg, a.keys.ToggleTheme) {
			return a, a.toggleTheme()
		}
		if a.current != ViewLogin && !a.page().Capturing() {
			switch {
			case key.Matches(msg, a.keys.Quit):
				return a, tea.Quit
			case key.Matches(msg, a.keys.Tasks):
				return a, a.switchTo(ViewTasks)
			case key.Matches(msg, a.keys.Reports):
				return a, a.switchTo(ViewReports)
			case key.Matches(msg, a.keys.Settings):
				return a, a.switchTo(ViewSettings)
			case key.Matches(msg, a.keys.Logout):
				log.Printf("[app] logout %s", a.email)
				a.email = ""
				return a, a.switchTo(ViewLogin)
			}
		}

	case views.LoggedIn:
		a.email = msg.Email
		if err := a.prefs.SetSetting(db.KeyLastEmail, msg.Email); err != nil {
			log.Printf("[app] persist last email: %v", err)
		}
		return a, a.switchTo(ViewTasks)

	case views.OpenTask:
		a.details.SetTask(msg.ID)
		return a, a.switchTo(ViewDetails)

	case views.BackToTasks:
		return a, a.switchTo(ViewTasks)

	case views.EditTask:
		cmd := a.switchTo(ViewTasks)
		return a, tea.Batch(cmd, a.taskList.StartEdit(msg.ID))

	case views.DeleteTask:
		cmd := a.switchTo(ViewTasks)
		a.taskList.StartDelete(msg.ID)
		return a, cmd

	case views.ToggleTheme:
		return a, a.toggleTheme()
	}

	_, cmd := a.page().Update(msg)
	return a, cmd
}

func (a *App) View() string {
	if a.current == ViewLogin {
		return a.login.View()
	}

	size := a.pageSize()
	body := lipgloss.NewStyle().
		Width(size.Width).
		Height(size.Height).
		MaxHeight(size.Height).
		Render(a.page().View())

	return lipgloss.JoinVertical(lipgloss.Left,
		a.renderHeader(),
		lipgloss.JoinHorizontal(lipgloss.Top, a.renderSidebar(size.Height), body),
	)
}

func (a *App) renderHeader() string {
	s := a.styles

	user := a.email
	if name, err := a.prefs.GetSetting(db.KeyDisplayName); err == nil && name != "" {
		user = name
	}
	mode := "☀ Light"
	if styles.Current.Dark {
		mode = "☾ Dark"
	}

	left := s.Header.Render("Task Manager")
	if a.opts.Version != "" {
		left += s.HeaderUser.Render(a.opts.Version)
	}
	right := s.HeaderUser.Render(user + "  " + mode)
	gap := max(a.width-lipgloss.Width(left)-lipgloss.Width(right), 0)

	return left + s.Header.Padding(0).Render(strings.Repeat(" ", gap)) + right
}

func (a *App) renderSidebar(height int) string {
	s := a.styles

	items := []struct {
		view  View
		label string
	}{
		{ViewTasks, "1 Task List"},
		{ViewReports, "2 Reports"},
		{ViewSettings, "3 Settings"},
	}

	var lines []string
	for _, it := range items {
		active := a.current == it.view || (it.view == ViewTasks && a.current == ViewDetails)
		if active {
			lines = append(lines, s.NavActive.Render(it.label))
		} else {
			lines = append(lines, s.NavItem.Render(it.label))
		}
	}
	lines = append(lines, "", s.TitleMuted.Render("L log out"), s.TitleMuted.Render("q quit"))

	return s.Sidebar.
		Width(sidebarWidth - 1).
		Height(height).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
