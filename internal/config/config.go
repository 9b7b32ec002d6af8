// Package config provides YAML-based game configuration loading and
// difficulty presets for the Tetris game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// TetrisConfig contains all configuration for the Tetris game.
type TetrisConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Timing     TimingConfig     `yaml:"timing"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the well dimensions in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines how fast gravity pulls the active piece down.
type TimingConfig struct {
	BaseInterval time.Duration `yaml:"base_interval"`
	IntervalStep time.Duration `yaml:"interval_step"`
	MinInterval  time.Duration `yaml:"min_interval"`
}

// ScoringConfig defines line-clear rewards and level progression.
type ScoringConfig struct {
	LineScores [4]int `yaml:"line_scores"` // 1, 2, 3, 4 rows cleared
	LevelScore int    `yaml:"level_score"` // Points per level
}

// DifficultyConfig selects a named preset applied on top of Timing.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a user-supplied name into a preset.
// An empty string yields DifficultyNormal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// Validate reports every problem found in the configuration.
func (c TetrisConfig) Validate() error {
	var errs []error

	if c.Board.Width < 4 || c.Board.Height < 4 {
		errs = append(errs, fmt.Errorf("board must be at least 4x4, got %dx%d", c.Board.Width, c.Board.Height))
	}
	if c.Timing.BaseInterval <= 0 {
		errs = append(errs, errors.New("timing.base_interval must be positive"))
	}
	if c.Timing.MinInterval <= 0 {
		errs = append(errs, errors.New("timing.min_interval must be positive"))
	}
	if c.Timing.IntervalStep < 0 {
		errs = append(errs, errors.New("timing.interval_step must not be negative"))
	}
	for i, s := range c.Scoring.LineScores {
		if s < 0 {
			errs = append(errs, fmt.Errorf("scoring.line_scores[%d] must not be negative", i))
		}
	}
	if c.Scoring.LevelScore <= 0 {
		errs = append(errs, errors.New("scoring.level_score must be positive"))
	}
	if c.Difficulty.Preset != "" {
		if _, err := ParsePreset(string(c.Difficulty.Preset)); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Effective returns the config with its difficulty preset applied to the timing.
func (c TetrisConfig) Effective() TetrisConfig {
	return ApplyTetrisPreset(c, c.Difficulty.Preset)
}

// Curve returns the level and gravity curve described by the config.
func (c TetrisConfig) Curve() LevelCurve {
	return LevelCurve{
		BaseInterval: c.Timing.BaseInterval,
		IntervalStep: c.Timing.IntervalStep,
		MinInterval:  c.Timing.MinInterval,
		LevelScore:   c.Scoring.LevelScore,
	}
}
