package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tgienger/taskdesk/internal/models"
)

func TestSetDark(t *testing.T) {
	t.Cleanup(func() { SetDark(false) })

	SetDark(true)
	assert.Equal(t, "Dark", Current.Name)
	assert.Equal(t, "dark", GlamourStyle())
	assert.Equal(t, Dark.Success, StatusColor(models.StatusDone))

	SetDark(false)
	assert.Equal(t, "Light", Current.Name)
	assert.Equal(t, "light", GlamourStyle())
	assert.Equal(t, Light.Warning, StatusColor(models.StatusToDo))
	assert.Equal(t, Light.ForegroundDim, StatusColor("Other"))
}

func TestContentWidth(t *testing.T) {
	assert.Equal(t, 60, ContentWidth(60))
	assert.Equal(t, MaxWidth, ContentWidth(MaxWidth+40))
}
