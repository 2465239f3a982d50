// arcade is a retro arcade that plays in the terminal, over SSH or in a window.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game in the terminal
//	arcade window <game>     - Play a game in a desktop window
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.arcade/scores.db)
//	--log-file <path>  - Write logs of terminal sessions to a file
//	--mute             - Disable sound
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/void-arcade/internal/core"
	"github.com/vovakirdan/void-arcade/internal/games/invaders"
	"github.com/vovakirdan/void-arcade/internal/games/voidtripper"
	"github.com/vovakirdan/void-arcade/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagMute    bool

	// Per-command game flags
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Void Arcade - psychedelic shooters for terminal and desktop",
	Long: `Void Arcade runs retro shooters in your terminal, over SSH,
or in a desktop window.

Available commands:
  list     - Show all available games
  play     - Play a specific game in the terminal
  window   - Play a specific game in a desktop window
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  arcade list
  arcade play voidtripper
  arcade window invaders --difficulty hard
  arcade menu
  arcade serve --ssh :2222
  arcade scores voidtripper`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file (terminal sessions log nowhere otherwise)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// addGameFlags registers the config and difficulty flags of a command that
// starts games. The config flag only exists for single-game commands.
func addGameFlags(cmd *cobra.Command, withConfig bool) {
	if withConfig {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	}
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// newLogger builds the process logger and its cleanup. Terminal hosts own
// the screen, so they log only to --log-file; other commands default to stderr.
func newLogger(terminal bool) (*log.Logger, func(), error) {
	opts := log.Options{ReportTimestamp: true, Prefix: "arcade"}

	if flagLogFile == "" {
		if terminal {
			return log.New(io.Discard), func() {}, nil
		}
		return log.NewWithOptions(os.Stderr, opts), func() {}, nil
	}

	path := expandHome(flagLogFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	//nolint:errcheck // Best-effort close on exit
	return log.NewWithOptions(f, opts), func() { f.Close() }, nil
}

// openStore opens the scores database. Games still run without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// terminalConfig returns the runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// configureGame hands the config and difficulty flags to a game before it
// is created.
func configureGame(gameID string) {
	switch gameID {
	case "voidtripper":
		voidtripper.SetConfigPath(flagConfig)
		voidtripper.SetDifficultyPreset(flagDifficulty)
	case "invaders":
		invaders.SetConfigPath(flagConfig)
		invaders.SetDifficultyPreset(flagDifficulty)
	}
}

func expandHome(path string) string {
	if rest, ok := strings.CutPrefix(path, "~"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}
	return path
}
