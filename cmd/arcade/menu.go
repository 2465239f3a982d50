package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/void-arcade/internal/audio"
	"github.com/vovakirdan/void-arcade/internal/platform/tui"
	"github.com/vovakirdan/void-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Press Esc on a game's title screen to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - High scores
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30 --difficulty easy
  arcade menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd, false)
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	sound := audio.New(flagMute, logger)
	defer sound.Close()

	host := tui.NewHost(store, sound, logger)
	defer host.Close()

	cfg := terminalConfig()
	for {
		menuResult, err := tui.RunMenu(host, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(host, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		configureGame(menuResult.GameID)
		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			return err
		}

		// Fresh seed for each game unless pinned.
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, host, cfg)
		if err != nil {
			return fmt.Errorf("error running game: %w", err)
		}
		if !backToMenu {
			return nil
		}
	}
}
