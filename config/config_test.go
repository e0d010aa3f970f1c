package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-seeker/vec"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultWindowWidth, cfg.Window.Width)
	assert.Equal(t, DefaultWindowTitle, cfg.Window.Title)
	assert.Equal(t, DefaultActorSpeed, cfg.Actor.Speed)
	assert.Equal(t, DefaultArriveRange, cfg.Actor.ArriveRange)
	assert.Len(t, cfg.Waypoints, 4)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
window:
  width: 640
  title: Test Run
actor:
  speed: 75
waypoints:
  - {x: 1, y: 2}
  - {x: 3, y: 4}
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, "Test Run", cfg.Window.Title)
	// height was not given, so the default survives
	assert.Equal(t, DefaultWindowHeight, cfg.Window.Height)
	assert.Equal(t, 75.0, cfg.Actor.Speed)
	assert.Equal(t, []vec.Vec2{vec.V(1, 2), vec.V(3, 4)}, cfg.WaypointVecs())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
