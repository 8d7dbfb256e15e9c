package views

import tea "github.com/charmbracelet/bubbletea"

// Page is a top-level screen of the app
type Page interface {
	tea.Model
	// Capturing reports whether the page is consuming raw keystrokes (text
	// input, open dialog), in which case global shortcuts are suppressed.
	Capturing() bool
}

// Preferences is the persisted settings store
type Preferences interface {
	GetSetting(key string) (string, error)
	SetSetting(key, value string) error
	GetBool(key string, def bool) bool
	SetBool(key string, value bool) error
}

// LoggedIn signals that the login gate was passed
type LoggedIn struct {
	Email string
}

// OpenTask asks the app to show the detail page of a task
type OpenTask struct {
	ID string
}

// BackToTasks returns to the task list
type BackToTasks struct{}

// EditTask returns to the task list with the editor open on ID
type EditTask struct {
	ID string
}

// DeleteTask returns to the task list with the delete confirmation open on ID
type DeleteTask struct {
	ID string
}

// ToggleTheme asks the app to switch between light and dark mode
type ToggleTheme struct{}

// ThemeChanged is broadcast to every page after the theme switched
type ThemeChanged struct{}

// clamp returns val clamped between minVal and maxVal
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis
func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
