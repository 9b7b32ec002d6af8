// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris                   - Play (same as "tetris play")
//	tetris play              - Play a game
//	tetris config            - Print the effective configuration as YAML
//	tetris pieces            - Show the piece catalog and rotations
//
// Global flags:
//
//	--fps <rate>             - Set tick rate (default: 60)
//	--seed <value>           - Set RNG seed for reproducible gameplay
//	--config <path>          - Load configuration from a YAML file
//	--difficulty <preset>    - easy, normal, hard or fixed
//	--log-file <path>        - Write session logs to a file
//
// Flag defaults come from TETRIS_FPS, TETRIS_SEED, TETRIS_CONFIG,
// TETRIS_DIFFICULTY and TETRIS_LOG_FILE.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	defaults, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	registerFlags(rootCmd, defaults)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal",
	Long: `Tetris is the falling-block puzzle game, played in a terminal.

Available commands:
  play     - Play a game (default)
  config   - Print the effective configuration
  pieces   - Show the seven pieces and their rotations

Examples:
  tetris
  tetris play --difficulty hard
  tetris play --seed 42 --log-file tetris.log
  tetris config --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

// registerFlags installs the global flags with env-supplied defaults.
func registerFlags(root *cobra.Command, defaults config.Env) {
	pf := root.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", defaults.FPS, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", defaults.Seed, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", defaults.ConfigPath, "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", defaults.Difficulty, "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogFile, "log-file", defaults.LogFile, "Write session logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(piecesCmd)
}
