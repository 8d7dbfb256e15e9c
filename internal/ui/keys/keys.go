package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding used by the views
type KeyMap struct {
	Quit       key.Binding
	Back       key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Enter      key.Binding
	New        key.Binding
	Edit       key.Binding
	Delete     key.Binding
	Search     key.Binding
	StatusNext key.Binding
	StatusPrev key.Binding
	GoTo       key.Binding
	Confirm    key.Binding
	Cancel     key.Binding
	Save       key.Binding
	Toggle     key.Binding
	Help       key.Binding

	// Navigation between pages
	Tasks       key.Binding
	Reports     key.Binding
	Settings    key.Binding
	ToggleTheme key.Binding
	Logout      key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Tab:        key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		ShiftTab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:       key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev")),
		Right:      key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next")),
		Enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("↵", "open")),
		New:        key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new task")),
		Edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:     key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		StatusNext: key.NewBinding(key.WithKeys("s"), key.WithHelp("s/S", "cycle status")),
		StatusPrev: key.NewBinding(key.WithKeys("S")),
		GoTo:       key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "go to id")),
		Confirm:    key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "delete")),
		Cancel:     key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "cancel")),
		Save:       key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Toggle:     key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),

		Tasks:       key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "tasks")),
		Reports:     key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "reports")),
		Settings:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "settings")),
		ToggleTheme: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "dark mode")),
		Logout:      key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "log out")),
	}
}

// ListHelp is the help shown under the task list
type ListHelp struct{ KeyMap }

func (h ListHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.Enter, h.New, h.Edit, h.Delete, h.StatusNext, h.Search, h.Help, h.Quit}
}

func (h ListHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.Up, h.Down, h.Enter, h.GoTo},
		{h.New, h.Edit, h.Delete, h.StatusNext},
		{h.Search, h.Back},
		{h.Tasks, h.Reports, h.Settings},
		{h.ToggleTheme, h.Logout, h.Quit},
	}
}

// FormHelp is the help shown under the editor
type FormHelp struct{ KeyMap }

func (h FormHelp) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "status")),
		h.Save,
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (h FormHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// PageHelp is the help shown on read-only pages
type PageHelp struct{ KeyMap }

func (h PageHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.Back, h.Tasks, h.Reports, h.Settings, h.ToggleTheme, h.Quit}
}

func (h PageHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
