package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"
	"github.com/rs/zerolog"

	"ebiten-seeker/config"
)

// defaultConfigPath is picked up automatically when it exists.
const defaultConfigPath = "config.yaml"

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	profiling := flag.Bool("profile", false, "write a CPU profile on exit")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !*debug {
		logger = logger.Level(zerolog.InfoLevel)
	}

	if *profiling {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	path := *configPath
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); err == nil {
			path = defaultConfigPath
		}
	}
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			logger.Fatal().Err(err).Msg("load config")
		}
		cfg = loaded
		logger.Info().Str("path", path).Msg("config loaded")
	}

	game, err := NewGame(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("build game")
	}
	defer game.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	logger.Info().
		Int("width", cfg.Window.Width).
		Int("height", cfg.Window.Height).
		Str("title", cfg.Window.Title).
		Msg("starting")
	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal().Err(err).Msg("game loop")
	}
}
