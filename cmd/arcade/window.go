package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/void-arcade/internal/audio"
	"github.com/vovakirdan/void-arcade/internal/core"
	"github.com/vovakirdan/void-arcade/internal/platform/window"
	"github.com/vovakirdan/void-arcade/internal/registry"
)

var (
	flagWindowW int
	flagWindowH int
)

var windowCmd = &cobra.Command{
	Use:   "window <game>",
	Short: "Play a game in a desktop window",
	Long: `Open a resizable window and play the specified game.

The playfield follows the window size. Keys are the same as in the
terminal; touch or a left-button drag fires and steers.

Examples:
  arcade window voidtripper
  arcade window invaders --width 1280 --height 720 --mute`,
	Args: cobra.ExactArgs(1),
	RunE: runWindow,
}

func init() {
	addGameFlags(windowCmd, true)
	windowCmd.Flags().IntVar(&flagWindowW, "width", 960, "Initial window width in pixels")
	windowCmd.Flags().IntVar(&flagWindowH, "height", 640, "Initial window height in pixels")
}

func runWindow(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	configureGame(gameID)
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	sound := audio.New(flagMute, logger)
	defer sound.Close()

	cfg := core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed}
	return window.Run(game, cfg, window.Options{
		Width:  flagWindowW,
		Height: flagWindowH,
		Store:  store,
		Sound:  sound,
		Logger: logger,
	})
}
