package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitpet/bitpet/internal/config"
	"github.com/bitpet/bitpet/internal/errtrack"
)

func TestRequireUser(t *testing.T) {
	cfg := &config.Config{
		User: &config.UserInfo{Username: "mock-username", Email: "mock@bitpet.dev", Token: "mock-token"},
	}

	user, err := RequireUser(cfg)
	require.NoError(t, err)
	assert.Equal(t, "mock-username", user.Username)
}

func TestRequireUserNotLoggedIn(t *testing.T) {
	_, err := RequireUser(&config.Config{})

	var notLoggedIn *NotLoggedInError
	require.True(t, errors.As(err, &notLoggedIn))
	assert.Equal(t, "Please login first using 'bitpet login'", err.Error())

	var trackable errtrack.Trackable
	require.True(t, errors.As(err, &trackable))
	assert.Equal(t, []string{"auth.RequireUser"}, trackable.Backtrace().Frames())
}

func TestClearSession(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("HOME", tempDir)
	t.Setenv("AppData", tempDir)

	cfg := &config.Config{User: &config.UserInfo{Token: "stale"}}
	require.NoError(t, cfg.Save())

	require.NoError(t, ClearSession(cfg))
	assert.Nil(t, cfg.User)

	loaded, err := config.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded.User)
}
