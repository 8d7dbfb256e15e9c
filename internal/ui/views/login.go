package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/taskdesk/internal/ui/keys"
	"github.com/tgienger/taskdesk/internal/ui/styles"
)

// ValidateLogin checks the mock login form. Any non-empty pair is accepted.
func ValidateLogin(email, password string) (emailErr, passwordErr string) {
	if strings.TrimSpace(email) == "" {
		emailErr = "Email cannot be empty."
	}
	if password == "" {
		passwordErr = "Password cannot be empty."
	}
	return emailErr, passwordErr
}

// LoginView is the mock authentication gate
type LoginView struct {
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int

	email    textinput.Model
	password textinput.Model
	focusIdx int // 0=email, 1=password, 2=login button

	emailErr    string
	passwordErr string
}

// NewLoginView creates the login page, pre-filling the last used email
func NewLoginView(lastEmail string) *LoginView {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 120
	email.SetValue(lastEmail)

	password := textinput.New()
	password.Placeholder = "Password"
	password.CharLimit = 120
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	v := &LoginView{
		styles:   styles.NewStyles(),
		keys:     keys.DefaultKeyMap(),
		email:    email,
		password: password,
	}
	if lastEmail != "" {
		v.focusIdx = 1
	}
	v.updateFocus()
	return v
}

func (v *LoginView) Init() tea.Cmd {
	return textinput.Blink
}

// Capturing is always true: every key goes to the form
func (v *LoginView) Capturing() bool {
	return true
}

func (v *LoginView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case ThemeChanged:
		v.styles = styles.NewStyles()
		return v, nil

	case tea.KeyMsg:
		switch {
		case msg.String() == "ctrl+c":
			return v, tea.Quit
		case key.Matches(msg, v.keys.Tab), msg.Type == tea.KeyDown:
			v.focusIdx = (v.focusIdx + 1) % 3
			v.updateFocus()
			return v, nil
		case key.Matches(msg, v.keys.ShiftTab), msg.Type == tea.KeyUp:
			v.focusIdx = (v.focusIdx + 2) % 3
			v.updateFocus()
			return v, nil
		case key.Matches(msg, v.keys.Enter):
			if v.focusIdx == 0 {
				v.focusIdx = 1
				v.updateFocus()
				return v, nil
			}
			return v, v.submit()
		}

		var cmd tea.Cmd
		switch v.focusIdx {
		case 0:
			v.email, cmd = v.email.Update(msg)
			v.emailErr = ""
		case 1:
			v.password, cmd = v.password.Update(msg)
			v.passwordErr = ""
		}
		return v, cmd
	}
	return v, nil
}

func (v *LoginView) submit() tea.Cmd {
	email := strings.TrimSpace(v.email.Value())
	v.emailErr, v.passwordErr = ValidateLogin(email, v.password.Value())
	if v.emailErr != "" || v.passwordErr != "" {
		return nil
	}
	v.password.Reset()
	return func() tea.Msg { return LoggedIn{Email: email} }
}

func (v *LoginView) updateFocus() {
	v.email.Blur()
	v.password.Blur()
	switch v.focusIdx {
	case 0:
		v.email.Focus()
	case 1:
		v.password.Focus()
	}
}

func (v *LoginView) View() string {
	s := v.styles
	inputWidth := clamp(styles.ContentWidth(v.width)-12, 20, 40)

	emailStyle, passStyle, btnStyle := s.Input, s.Input, s.Button
	switch v.focusIdx {
	case 0:
		emailStyle = s.InputFocused
	case 1:
		passStyle = s.InputFocused
	case 2:
		btnStyle = s.ButtonFocused
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Login"),
		"",
		s.Label.Render("Email"),
		emailStyle.Width(inputWidth).Render(v.email.View()),
		s.FieldError.Render(v.emailErr),
		s.Label.Render("Password"),
		passStyle.Width(inputWidth).Render(v.password.View()),
		s.FieldError.Render(v.passwordErr),
		btnStyle.Render(" Login "),
		"",
		s.TitleMuted.Render("Tab: next • ↵: login • Ctrl+C: quit"),
	)

	return lipgloss.Place(v.width, v.height,
		lipgloss.Center, lipgloss.Center,
		s.Dialog.Render(form),
	)
}
