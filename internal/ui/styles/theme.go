package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/taskdesk/internal/models"
)

// Theme represents a color scheme for the application
type Theme struct {
	Name string
	Dark bool

	// Base colors
	Background    lipgloss.Color
	Foreground    lipgloss.Color
	ForegroundDim lipgloss.Color

	// Accent colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	// Semantic colors
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	// UI element colors
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Selection   lipgloss.Color
	Cursor      lipgloss.Color
	HeaderBg    lipgloss.Color
	HeaderFg    lipgloss.Color
}

// Light is the default theme
var Light = Theme{
	Name: "Light",

	Background:    lipgloss.Color("#faf9f8"),
	Foreground:    lipgloss.Color("#323130"),
	ForegroundDim: lipgloss.Color("#a19f9d"),

	Primary:   lipgloss.Color("#0078d4"),
	Secondary: lipgloss.Color("#2b88d8"),
	Accent:    lipgloss.Color("#71afe5"),

	Success: lipgloss.Color("#4caf50"),
	Warning: lipgloss.Color("#ffc107"),
	Error:   lipgloss.Color("#d13438"),
	Info:    lipgloss.Color("#2196f3"),

	Border:      lipgloss.Color("#c8c6c4"),
	BorderFocus: lipgloss.Color("#0078d4"),
	Selection:   lipgloss.Color("#deecf9"),
	Cursor:      lipgloss.Color("#323130"),
	HeaderBg:    lipgloss.Color("#0078d4"),
	HeaderFg:    lipgloss.Color("#ffffff"),
}

// Dark is the dark display mode
var Dark = Theme{
	Name: "Dark",
	Dark: true,

	Background:    lipgloss.Color("#2d2d2d"),
	Foreground:    lipgloss.Color("#d0d0d0"),
	ForegroundDim: lipgloss.Color("#a8a8a8"),

	Primary:   lipgloss.Color("#1a76d2"),
	Secondary: lipgloss.Color("#3b4961"),
	Accent:    lipgloss.Color("#71afe5"),

	Success: lipgloss.Color("#4caf50"),
	Warning: lipgloss.Color("#ffc107"),
	Error:   lipgloss.Color("#f1707b"),
	Info:    lipgloss.Color("#2196f3"),

	Border:      lipgloss.Color("#4e4e4e"),
	BorderFocus: lipgloss.Color("#1a76d2"),
	Selection:   lipgloss.Color("#1d2332"),
	Cursor:      lipgloss.Color("#e4e4e4"),
	HeaderBg:    lipgloss.Color("#1a222e"),
	HeaderFg:    lipgloss.Color("#e4e4e4"),
}

// Current holds the active theme
var Current = Light

// SetDark switches Current between Light and Dark
func SetDark(dark bool) {
	if dark {
		Current = Dark
	} else {
		Current = Light
	}
}

// GlamourStyle names the glamour standard style matching the current theme
func GlamourStyle() string {
	if Current.Dark {
		return "dark"
	}
	return "light"
}

// StatusColor is the report/list color of a task status
func StatusColor(s models.Status) lipgloss.Color {
	switch s {
	case models.StatusToDo:
		return Current.Warning
	case models.StatusInProgress:
		return Current.Info
	case models.StatusDone:
		return Current.Success
	}
	return Current.ForegroundDim
}

// MaxWidth is the maximum content width for a page
const MaxWidth = 100

// ContentWidth returns the actual content width to use (min of terminal width and MaxWidth)
func ContentWidth(terminalWidth int) int {
	if terminalWidth > MaxWidth {
		return MaxWidth
	}
	return terminalWidth
}

// CenterView wraps content and centers it horizontally if terminal is wider than MaxWidth
func CenterView(content string, terminalWidth, terminalHeight int) string {
	if terminalWidth <= MaxWidth {
		return content
	}
	return lipgloss.Place(terminalWidth, terminalHeight,
		lipgloss.Center, lipgloss.Top,
		content,
	)
}

// Styles holds all the pre-computed styles for the UI
type Styles struct {
	// App container
	App lipgloss.Style

	// Header and sidebar
	Header     lipgloss.Style
	HeaderUser lipgloss.Style
	Sidebar    lipgloss.Style
	NavItem    lipgloss.Style
	NavActive  lipgloss.Style

	// Title bar
	Title      lipgloss.Style
	TitleMuted lipgloss.Style

	// Lists
	ListItem     lipgloss.Style
	ListSelected lipgloss.Style
	ColumnHeader lipgloss.Style

	// Dialogs
	Dialog lipgloss.Style

	// Buttons
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	ButtonPrimary lipgloss.Style

	// Input fields
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	Label        lipgloss.Style
	FieldError   lipgloss.Style

	// Help text
	Help     lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Status bar
	StatusBar   lipgloss.Style
	StatusError lipgloss.Style
}

// NewStyles creates styles based on the current theme
func NewStyles() *Styles {
	t := Current

	return &Styles{
		App: lipgloss.NewStyle().
			Foreground(t.Foreground),

		Header: lipgloss.NewStyle().
			Foreground(t.HeaderFg).
			Background(t.HeaderBg).
			Padding(0, 2).
			Bold(true),

		HeaderUser: lipgloss.NewStyle().
			Foreground(t.HeaderFg).
			Background(t.HeaderBg).
			Padding(0, 2),

		Sidebar: lipgloss.NewStyle().
			Padding(1, 1).
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(t.Border),

		NavItem: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Padding(0, 1),

		NavActive: lipgloss.NewStyle().
			Foreground(t.Primary).
			Background(t.Selection).
			Padding(0, 1).
			Bold(true),

		Title: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		TitleMuted: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		ListItem: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Padding(0, 1),

		ListSelected: lipgloss.NewStyle().
			Foreground(t.Primary).
			Background(t.Selection).
			Padding(0, 1).
			Bold(true),

		ColumnHeader: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Padding(0, 1).
			Bold(true),

		Dialog: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus),

		Button: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 2),

		ButtonFocused: lipgloss.NewStyle().
			Foreground(t.Primary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 2).
			Bold(true),

		ButtonPrimary: lipgloss.NewStyle().
			Foreground(t.HeaderFg).
			Background(t.Primary).
			Padding(0, 2).
			Bold(true),

		Input: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		InputFocused: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 1),

		Label: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Bold(true),

		FieldError: lipgloss.NewStyle().
			Foreground(t.Error),

		Help: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Padding(1, 1),

		HelpKey: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		StatusBar: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Padding(0, 1),

		StatusError: lipgloss.NewStyle().
			Foreground(t.Error).
			Padding(0, 1),
	}
}

// StatusBadge renders a status name in its status color
func (s *Styles) StatusBadge(st models.Status) string {
	return lipgloss.NewStyle().Foreground(StatusColor(st)).Bold(true).Render(string(st))
}
