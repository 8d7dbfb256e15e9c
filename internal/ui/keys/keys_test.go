package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestDefaultKeyMap_StatusCycleIsCaseSensitive(t *testing.T) {
	km := DefaultKeyMap()
	lower := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}
	upper := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("S")}

	assert.True(t, key.Matches(lower, km.StatusNext))
	assert.False(t, key.Matches(lower, km.StatusPrev))
	assert.True(t, key.Matches(upper, km.StatusPrev))
}

func TestHelpKeyMaps(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, ListHelp{km}.ShortHelp(), km.New)
	assert.Len(t, ListHelp{km}.FullHelp(), 5)
	assert.Contains(t, FormHelp{km}.ShortHelp(), km.Save)
	assert.Equal(t, [][]key.Binding{PageHelp{km}.ShortHelp()}, PageHelp{km}.FullHelp())
}
