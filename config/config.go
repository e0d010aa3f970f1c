// Package config holds the runtime configuration for the demo game.
package config

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"ebiten-seeker/vec"
)

// Built-in defaults, used where a config file does not override them
const (
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 720
	DefaultWindowTitle  = "Seeker"

	DefaultActorSpeed  = 200.0
	DefaultArriveRange = 10.0
)

// Point is a YAML-friendly 2D coordinate.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Vec2 converts the point to a vector.
func (p Point) Vec2() vec.Vec2 {
	return vec.V(p.X, p.Y)
}

// WindowConfig describes the game window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// ActorConfig describes the demo actor's start and movement.
type ActorConfig struct {
	Start       Point   `yaml:"start"`
	Speed       float64 `yaml:"speed"`
	ArriveRange float64 `yaml:"arrive_range"`
}

// Config is the runtime configuration, loadable from YAML.
type Config struct {
	Window    WindowConfig `yaml:"window"`
	Actor     ActorConfig  `yaml:"actor"`
	Waypoints []Point      `yaml:"waypoints"`
}

// Default returns the built-in configuration: the demo actor loops four
// waypoints across the window.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			Title:  DefaultWindowTitle,
		},
		Actor: ActorConfig{
			Start:       Point{X: 100, Y: 150},
			Speed:       DefaultActorSpeed,
			ArriveRange: DefaultArriveRange,
		},
		Waypoints: []Point{
			{X: 400, Y: 150},
			{X: 700, Y: 300},
			{X: 1000, Y: 150},
			{X: 1200, Y: 500},
		},
	}
}

// Load reads a YAML config from path, applied over the defaults.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "read config %q", path)
	}
	cfg := Default()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, eris.Wrapf(err, "parse config %q", path)
	}
	return cfg, nil
}

// WaypointVecs returns the waypoint list as vectors.
func (c *Config) WaypointVecs() []vec.Vec2 {
	points := make([]vec.Vec2, len(c.Waypoints))
	for i, p := range c.Waypoints {
		points[i] = p.Vec2()
	}
	return points
}
