package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLogin(t *testing.T) {
	emailErr, passErr := ValidateLogin("", "")
	assert.Equal(t, "Email cannot be empty.", emailErr)
	assert.Equal(t, "Password cannot be empty.", passErr)

	emailErr, passErr = ValidateLogin("   ", "secret")
	assert.Equal(t, "Email cannot be empty.", emailErr)
	assert.Empty(t, passErr)

	emailErr, passErr = ValidateLogin("a@b.c", "x")
	assert.Empty(t, emailErr)
	assert.Empty(t, passErr)
}

func TestLoginView_Submit(t *testing.T) {
	v := NewLoginView("")
	send(v, tea.WindowSizeMsg{Width: 80, Height: 30})
	assert.True(t, v.Capturing())

	typeText(v, "jo@example.com")
	send(v, keyOf(tea.KeyEnter))
	typeText(v, "hunter2")
	cmd := send(v, keyOf(tea.KeyEnter))

	require.NotNil(t, cmd)
	assert.Equal(t, LoggedIn{Email: "jo@example.com"}, cmd())
	assert.Empty(t, v.password.Value())
}

func TestLoginView_EmptyFieldsShowErrors(t *testing.T) {
	v := NewLoginView("")
	send(v, tea.WindowSizeMsg{Width: 80, Height: 30})

	send(v, keyOf(tea.KeyTab), keyOf(tea.KeyTab))
	assert.Nil(t, send(v, keyOf(tea.KeyEnter)))

	out := v.View()
	assert.Contains(t, out, "Email cannot be empty.")
	assert.Contains(t, out, "Password cannot be empty.")
}

func TestLoginView_RemembersEmail(t *testing.T) {
	v := NewLoginView("jo@example.com")

	// focus starts on the password
	typeText(v, "pw")
	cmd := send(v, keyOf(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, LoggedIn{Email: "jo@example.com"}, cmd())
}
