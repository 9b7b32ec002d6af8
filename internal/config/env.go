package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds defaults for command-line flags taken from TETRIS_* variables.
type Env struct {
	ConfigPath string `env:"TETRIS_CONFIG"`
	Difficulty string `env:"TETRIS_DIFFICULTY"`
	FPS        int    `env:"TETRIS_FPS"      envDefault:"60"`
	Seed       int64  `env:"TETRIS_SEED"`
	LogFile    string `env:"TETRIS_LOG_FILE"`
}

// LoadEnv reads Env from the process environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
