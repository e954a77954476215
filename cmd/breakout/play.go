package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. Your terminal must report mouse motion.

Controls:
  Mouse      - Move the paddle
  Click      - Launch the ball
  R          - Restart (after the episode ends)
  M          - Toggle sound
  Ctrl+S     - Save a screenshot to ~/.breakout/screenshots
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - 4 spare balls, wide paddle, slow ball
  normal - 2 spare balls
  hard   - 1 spare ball, narrow paddle, fast ball

Examples:
  breakout play
  breakout play --difficulty easy
  breakout play --config ./my-breakout.yaml --log-file ./breakout.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	game, preset, err := gameSettings()
	if err != nil {
		return err
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

	player := openAudio(game.Audio, logger)
	if player != nil {
		defer player.Close()
	}

	opts := tui.Options{
		Config:     game,
		Difficulty: preset,
		Player:     playerName(),
		Store:      store,
		Audio:      terminalSounds(player),
		Logger:     logger,
	}
	if err := tui.Run(opts, terminalConfig(game.Display.FPS)); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
