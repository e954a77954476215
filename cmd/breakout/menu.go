package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty or view scores interactively",
	Long: `Start breakout in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game, press B or Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  breakout menu
  breakout menu --fps 30
  breakout menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	// The menu picks the preset; --difficulty is ignored here
	base, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return err
	}
	if flagFPS > 0 {
		base.Display.FPS = flagFPS
	}
	if err := base.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, closer, err := newLogger("breakout", true)
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	player := openAudio(base.Audio, logger)
	if player != nil {
		defer player.Close()
	}

	opts := tui.SessionOptions{
		Store:  store,
		Game:   base,
		Player: playerName(),
		Audio:  terminalSounds(player),
		Logger: logger,
	}
	if err := tui.RunSession(opts, terminalConfig(base.Display.FPS)); err != nil {
		return fmt.Errorf("error running menu: %w", err)
	}
	return nil
}
