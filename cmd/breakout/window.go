package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a resizable desktop window and play with the mouse.
The playfield stays square and fills the shorter side of the window.

Controls:
  Mouse      - Move the paddle
  Click      - Launch the ball
  R          - Restart (after the episode ends)
  M          - Toggle sound
  Esc/Q      - Quit

Examples:
  breakout window
  breakout window --difficulty hard --fps 120`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	game, preset, err := gameSettings()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger("breakout", false)
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

	return window.Run(window.Options{
		Config:     game,
		Difficulty: preset,
		Player:     playerName(),
		Store:      store,
		Audio:      player,
		Logger:     logger,
	})
}
