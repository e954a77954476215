package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/breakout/internal/audio"
	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/core"
	"github.com/vovakirdan/breakout/internal/logging"
	"github.com/vovakirdan/breakout/internal/platform/tui"
	"github.com/vovakirdan/breakout/internal/storage"
)

// gameSettings resolves the config file, the difficulty preset and the
// --fps override into a validated configuration.
func gameSettings() (config.BreakoutConfig, config.DifficultyPreset, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.BreakoutConfig{}, "", err
	}

	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return cfg, preset, err
	}
	config.ApplyBreakoutPreset(&cfg, preset)
	if flagFPS > 0 {
		cfg.Display.FPS = flagFPS
	}

	if err := cfg.Validate(); err != nil {
		return cfg, preset, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, preset, nil
}

// newLogger returns the logger for a command. Terminal frontends pass
// quietWithoutFile so nothing is written over the alternate screen.
func newLogger(prefix string, quietWithoutFile bool) (*log.Logger, io.Closer, error) {
	if flagLogFile != "" {
		return logging.OpenFile(flagLogFile, flagLogLevel, prefix)
	}
	if quietWithoutFile {
		return logging.Discard(), io.NopCloser(nil), nil
	}
	logger, err := logging.New(os.Stderr, flagLogLevel, prefix)
	return logger, io.NopCloser(nil), err
}

// openStore opens the scores database, returning nil when it is unavailable.
// The game still works without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// openAudio opens the speaker, returning nil when sound is disabled or no
// device is available.
func openAudio(cfg config.AudioConfig, logger *log.Logger) *audio.Player {
	if !cfg.Enabled {
		return nil
	}
	player := audio.NewPlayer(cfg)
	if err := player.Init(); err != nil {
		logger.Warn("audio disabled", "error", err)
		return nil
	}
	return player
}

// terminalSounds hands an optional player to the terminal frontends, keeping
// a missing player a nil interface.
func terminalSounds(p *audio.Player) tui.Sounds {
	if p == nil {
		return nil
	}
	return p
}

// terminalConfig reads the terminal size for the Bubble Tea frontends.
func terminalConfig(tickRate int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if tickRate > 0 {
		cfg.TickRate = tickRate
	}
	return cfg
}

// playerName returns the name stored next to local scores.
func playerName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return os.Getenv("USERNAME")
}
