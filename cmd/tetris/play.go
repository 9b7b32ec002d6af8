package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Tetris.

Controls:
  Left/Right, h/l, a/d   - Move
  Up, k, w, x            - Rotate clockwise
  Down, j, s             - Soft drop
  Space                  - Hard drop
  P/Esc                  - Pause
  R                      - Restart (after game over)
  ?                      - Toggle full help
  Q/Ctrl+C               - Quit

Difficulty options:
  easy   - Slower gravity, speeds up with level
  normal - Configured gravity, speeds up with level
  hard   - Faster gravity, speeds up with level
  fixed  - Gravity never speeds up

Examples:
  tetris play
  tetris play --difficulty easy
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	if flagFPS <= 0 {
		fmt.Fprintf(os.Stderr, "Error: --fps must be positive, got %d\n", flagFPS)
		os.Exit(1)
	}

	gameCfg, err := loadGameConfig(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	logger.Debug("configuration loaded",
		"board", fmt.Sprintf("%dx%d", gameCfg.Board.Width, gameCfg.Board.Height),
		"difficulty", gameCfg.Difficulty.Preset,
		"base_interval", gameCfg.Effective().Timing.BaseInterval,
	)

	runErr := tui.Run(tetris.New(gameCfg), cfg, logger)

	// Close the log before potential exit
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// loadGameConfig loads the configuration and records the difficulty preset.
// An empty difficulty falls back to the preset named in the file. Timing is
// left unscaled; the game applies the preset when it builds its rules.
func loadGameConfig(path, difficulty string) (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(path)
	if err != nil {
		return config.TetrisConfig{}, err
	}

	name := difficulty
	if name == "" {
		name = string(cfg.Difficulty.Preset)
	}
	preset, err := config.ParsePreset(name)
	if err != nil {
		return config.TetrisConfig{}, err
	}
	cfg.Difficulty.Preset = preset

	return cfg, nil
}
