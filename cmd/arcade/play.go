package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/void-arcade/internal/audio"
	"github.com/vovakirdan/void-arcade/internal/platform/tui"
	"github.com/vovakirdan/void-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game in the terminal",
	Long: `Start playing the specified game in the terminal.

Controls:
  Left/Right, A/D  - Move (hold)
  Space            - Fire (hold)
  Mouse drag       - Fire and steer
  Enter            - Start
  Y/1, N/2         - Answer prompts
  P                - Pause
  R                - Restart (after game over)
  Esc/B            - Back (leaves the game from its title screen)
  M                - Toggle sound
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, gentler start
  normal - Default settings
  hard   - Fewer lives, starts escalated
  fixed  - No escalation

Examples:
  arcade play voidtripper
  arcade play invaders --difficulty hard
  arcade play voidtripper --config ./my-void.yaml
  arcade play voidtripper --log-file ~/.arcade/arcade.log`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd, true)
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}

	logger, closeLog, err := newLogger(true)
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

	host := tui.NewHost(store, sound, logger)
	defer host.Close()

	if _, err := tui.Run(game, host, terminalConfig()); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
