package views

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/taskdesk/internal/db"
	"github.com/tgienger/taskdesk/internal/ui/keys"
	"github.com/tgienger/taskdesk/internal/ui/styles"
)

// settings rows, in tab order
const (
	settingDark = iota
	settingName
	settingNotify
	settingSave
	settingCount
)

// SettingsView edits the persisted user preferences
type SettingsView struct {
	prefs  Preferences
	styles *styles.Styles
	keys   keys.KeyMap
	help   help.Model

	width  int
	height int

	focusIdx      int
	displayName   textinput.Model
	notifications bool

	status    string
	statusErr bool
}

// NewSettingsView creates the settings page, loading values from prefs
func NewSettingsView(prefs Preferences) *SettingsView {
	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 60

	v := &SettingsView{
		prefs:       prefs,
		styles:      styles.NewStyles(),
		keys:        keys.DefaultKeyMap(),
		help:        help.New(),
		displayName: name,
	}
	v.Reload()
	return v
}

// Reload discards unsaved edits and reads the stored values again
func (v *SettingsView) Reload() {
	name, err := v.prefs.GetSetting(db.KeyDisplayName)
	if err != nil {
		log.Printf("[settings] load display name: %v", err)
	}
	v.displayName.SetValue(name)
	v.notifications = v.prefs.GetBool(db.KeyNotifications, true)
	v.status = ""
}

// Notifications reports the current (possibly unsaved) notifications flag
func (v *SettingsView) Notifications() bool {
	return v.notifications
}

// Status returns the last save result and whether it failed
func (v *SettingsView) Status() (string, bool) {
	return v.status, v.statusErr
}

func (v *SettingsView) Init() tea.Cmd {
	return nil
}

// Capturing is true while the display name is being typed
func (v *SettingsView) Capturing() bool {
	return v.focusIdx == settingName
}

func (v *SettingsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.help.Width = styles.ContentWidth(v.width)
		return v, nil

	case ThemeChanged:
		v.styles = styles.NewStyles()
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Back):
			if v.focusIdx == settingName {
				v.focusIdx = settingSave
				v.updateFocus()
				return v, nil
			}
			return v, func() tea.Msg { return BackToTasks{} }
		case key.Matches(msg, v.keys.Tab), msg.Type == tea.KeyDown:
			v.focusIdx = (v.focusIdx + 1) % settingCount
			return v, v.updateFocus()
		case key.Matches(msg, v.keys.ShiftTab), msg.Type == tea.KeyUp:
			v.focusIdx = (v.focusIdx + settingCount - 1) % settingCount
			return v, v.updateFocus()
		case key.Matches(msg, v.keys.Save):
			v.save()
			return v, nil
		}

		if v.focusIdx == settingName {
			if key.Matches(msg, v.keys.Enter) {
				v.focusIdx = settingNotify
				return v, v.updateFocus()
			}
			var cmd tea.Cmd
			v.displayName, cmd = v.displayName.Update(msg)
			v.status = ""
			return v, cmd
		}

		if key.Matches(msg, v.keys.Toggle) {
			switch v.focusIdx {
			case settingDark:
				return v, func() tea.Msg { return ToggleTheme{} }
			case settingNotify:
				v.notifications = !v.notifications
				v.status = ""
			case settingSave:
				v.save()
			}
		}
	}
	return v, nil
}

func (v *SettingsView) updateFocus() tea.Cmd {
	if v.focusIdx == settingName {
		return v.displayName.Focus()
	}
	v.displayName.Blur()
	return nil
}

func (v *SettingsView) save() {
	err := v.prefs.SetSetting(db.KeyDisplayName, strings.TrimSpace(v.displayName.Value()))
	if err == nil {
		err = v.prefs.SetBool(db.KeyNotifications, v.notifications)
	}
	if err != nil {
		log.Printf("[settings] save: %v", err)
		v.status = "Could not save preferences: " + err.Error()
		v.statusErr = true
		return
	}
	v.status = "Preferences saved."
	v.statusErr = false
}

func (v *SettingsView) View() string {
	s := v.styles
	inputWidth := clamp(styles.ContentWidth(v.width)-24, 20, 40)

	row := func(idx int, label, value string) string {
		st := s.ListItem
		if v.focusIdx == idx {
			st = s.ListSelected
		}
		return st.Render(lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(20).Render(label), value))
	}

	nameStyle := s.Input
	if v.focusIdx == settingName {
		nameStyle = s.InputFocused
	}
	btnStyle := s.Button
	if v.focusIdx == settingSave {
		btnStyle = s.ButtonFocused
	}

	statusLine := ""
	if v.status != "" {
		if v.statusErr {
			statusLine = s.StatusError.Render(v.status)
		} else {
			statusLine = s.StatusBar.Render(v.status)
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Settings"),
		"",
		row(settingDark, "Dark Mode", checkbox(styles.Current.Dark)),
		row(settingName, "Display Name", nameStyle.Width(inputWidth).Render(v.displayName.View())),
		row(settingNotify, "Notifications", checkbox(v.notifications)),
		"",
		btnStyle.Render(" Save Preferences "),
		statusLine,
		"",
		s.Help.Render(v.help.View(keys.PageHelp{KeyMap: v.keys})),
	)
	return styles.CenterView(content, v.width, v.height)
}

func checkbox(on bool) string {
	if on {
		return "[x] On"
	}
	return "[ ] Off"
}
