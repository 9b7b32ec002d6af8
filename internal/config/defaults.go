package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration: a 10x20 well,
// 0.5s gravity shortened by 50ms per level down to 50ms, and
// 100/300/500/800 points per 1-4 rows, 2000 points per level.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Timing: TimingConfig{
			BaseInterval: 500 * time.Millisecond,
			IntervalStep: 50 * time.Millisecond,
			MinInterval:  50 * time.Millisecond,
		},
		Scoring: ScoringConfig{
			LineScores: [4]int{100, 300, 500, 800},
			LevelScore: 2000,
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
