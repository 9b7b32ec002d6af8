package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

func TestLoadGameConfig(t *testing.T) {
	// Keep user and local config files out of the search path
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	tests := []struct {
		name       string
		difficulty string
		base       time.Duration
		step       time.Duration
	}{
		{"default is normal", "", 500 * time.Millisecond, 50 * time.Millisecond},
		{"easy", "easy", 800 * time.Millisecond, 50 * time.Millisecond},
		{"hard", "hard", 300 * time.Millisecond, 50 * time.Millisecond},
		{"fixed", "fixed", 500 * time.Millisecond, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := loadGameConfig("", tc.difficulty)
			if err != nil {
				t.Fatalf("loadGameConfig: %v", err)
			}
			eff := cfg.Effective().Timing
			if eff.BaseInterval != tc.base || eff.IntervalStep != tc.step {
				t.Errorf("effective timing = %v/%v, expected %v/%v",
					eff.BaseInterval, eff.IntervalStep, tc.base, tc.step)
			}
			if cfg.Timing != config.DefaultTetrisConfig().Timing {
				t.Errorf("file timing should stay unscaled, got %+v", cfg.Timing)
			}
		})
	}
}

func TestLoadGameConfigPresetFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	if err := os.WriteFile(path, []byte("difficulty:\n  preset: fixed\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadGameConfig(path, "")
	if err != nil {
		t.Fatalf("loadGameConfig: %v", err)
	}
	if cfg.Difficulty.Preset != config.DifficultyFixed || cfg.Effective().Timing.IntervalStep != 0 {
		t.Errorf("file preset not applied: %+v", cfg)
	}

	// The flag wins over the file
	cfg, err = loadGameConfig(path, "easy")
	if err != nil {
		t.Fatalf("loadGameConfig: %v", err)
	}
	if cfg.Difficulty.Preset != config.DifficultyEasy {
		t.Errorf("preset = %q, expected easy", cfg.Difficulty.Preset)
	}
}

func TestConfigOutputReloadsUnchanged(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	printed, err := loadGameConfig("", "hard")
	if err != nil {
		t.Fatalf("loadGameConfig: %v", err)
	}

	cfg := printed
	for round := range 3 {
		data, err := config.Marshal(cfg)
		if err != nil {
			t.Fatalf("round %d: Marshal: %v", round, err)
		}
		path := filepath.Join(t.TempDir(), "tetris.yaml")
		if err := os.WriteFile(path, data, 0o600); err != nil {
			t.Fatal(err)
		}

		cfg, err = loadGameConfig(path, "")
		if err != nil {
			t.Fatalf("round %d: loadGameConfig: %v", round, err)
		}
		if cfg != printed {
			t.Errorf("round %d: reloaded %+v, expected %+v", round, cfg, printed)
		}
		if got := cfg.Effective().Timing.BaseInterval; got != 300*time.Millisecond {
			t.Errorf("round %d: effective base interval = %v, expected 300ms", round, got)
		}
	}
}

func TestLoadGameConfigErrors(t *testing.T) {
	if _, err := loadGameConfig("", "brutal"); err == nil {
		t.Error("unknown difficulty should fail")
	}
	if _, err := loadGameConfig(filepath.Join(t.TempDir(), "missing.yaml"), ""); err == nil {
		t.Error("missing custom config should fail")
	}
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.log")

	logger, closeLog, err := newLogger(path, "info")
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Info("game over", "score", 300)
	logger.Debug("hidden")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "game over") || !strings.Contains(out, "score=300") {
		t.Errorf("log file = %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Error("debug entries should be filtered at info level")
	}

	if _, _, err := newLogger("", "loud"); err == nil {
		t.Error("invalid level should fail")
	}
	if _, closeNop, err := newLogger("", "debug"); err != nil {
		t.Errorf("discard logger: %v", err)
	} else {
		closeNop()
	}
}

func TestWritePieces(t *testing.T) {
	var buf bytes.Buffer
	writePieces(&buf, 10)
	out := buf.String()

	for _, want := range []string{"Kind", "Colour", "cyan", "magenta", "x=3", "x=4", "####"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}
