package cli

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/client/config"
	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLoggedIn(t *testing.T) {
	f := newFakeAuth()
	app := newTestApp(f)
	assert.False(t, app.isLoggedIn())

	f.current = &models.Profile{ID: 1}
	assert.True(t, app.isLoggedIn())
}

func TestSetMode(t *testing.T) {
	app := newTestApp(newFakeAuth())
	assert.Equal(t, "", app.currentMode())

	app.setMode(ModeOnline)
	assert.Equal(t, "online", app.currentMode())
	app.setMode(ModeOnline)
	app.setMode(ModeOffline)
	assert.Equal(t, "offline", app.currentMode())
}

func TestGetStatus(t *testing.T) {
	f := newFakeAuth()
	app := newTestApp(f)
	assert.Equal(t, "", app.getStatus())

	app.setMode(ModeOnline)
	assert.Equal(t, "(online) ", app.getStatus())

	f.current = &models.Profile{Email: "alice@example.org"}
	assert.Equal(t, "(alice@example.org online) ", app.getStatus())
}

func TestStartOnlineStatusWatcher_ChecksImmediately(t *testing.T) {
	f := newFakeAuth()
	app := newTestApp(f)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	app.StartOnlineStatusWatcher(ctx, time.Hour)
	assert.Equal(t, 1, f.pings)
	assert.Equal(t, "online", app.currentMode())

	f.pingErr = errors.New("down")
	app.StartOnlineStatusWatcher(ctx, time.Hour)
	assert.Equal(t, "offline", app.currentMode())
}

func TestNewApp_WiresAndCloses(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.StorePath = filepath.Join(dir, "store.db")
	cfg.LogFile = filepath.Join(dir, "client.log")

	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)

	assert.Nil(t, app.authService.CurrentUser())
	assert.NotNil(t, app.notifier)
	assert.Equal(t, "/login", app.nav.Current())
	assert.False(t, app.loading.Active())

	require.NoError(t, app.Close(context.Background()))
	assert.FileExists(t, cfg.StorePath)
	assert.FileExists(t, cfg.LogFile)
}

func TestNewApp_InvalidConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.Mode = "gui"

	_, err := NewApp(context.Background(), cfg)
	assert.ErrorContains(t, err, "invalid config")
}

func TestNewApp_BadStorePath(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.StorePath = filepath.Join(dir, "missing", "store.db")
	cfg.LogFile = filepath.Join(dir, "client.log")

	_, err := NewApp(context.Background(), cfg)
	assert.Error(t, err)
}
