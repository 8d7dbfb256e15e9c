package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *DB {
	t.Helper()
	database, err := Open(filepath.Join(t.TempDir(), "data", "taskdesk.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestSettings_RoundTrip(t *testing.T) {
	database := openTemp(t)

	v, err := database.GetSetting(KeyLastEmail)
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, database.SetSetting(KeyLastEmail, "john.doe@example.com"))
	require.NoError(t, database.SetSetting(KeyLastEmail, "jane@example.com"))

	v, err = database.GetSetting(KeyLastEmail)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", v)
}

func TestSettings_Bool(t *testing.T) {
	database := openTemp(t)

	assert.False(t, database.GetBool(KeyDarkTheme, false))
	assert.True(t, database.GetBool(KeyNotifications, true))

	require.NoError(t, database.SetBool(KeyDarkTheme, true))
	assert.True(t, database.GetBool(KeyDarkTheme, false))

	require.NoError(t, database.SetSetting(KeyDarkTheme, "not-a-bool"))
	assert.False(t, database.GetBool(KeyDarkTheme, false))
}

func TestSettings_PersistAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskdesk.db")
	first, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, first.SetBool(KeyDarkTheme, true))
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	defer second.Close()
	assert.True(t, second.GetBool(KeyDarkTheme, false))
}
