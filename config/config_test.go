package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/grid"
	"github.com/lixenwraith/vi-snake/input"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vi-snake.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.GridSize() != grid.Medium {
		t.Errorf("GridSize() = %v, want medium", cfg.GridSize())
	}
	if cfg.StepInterval.Duration != 150*time.Millisecond {
		t.Errorf("StepInterval = %v, want 150ms", cfg.StepInterval.Duration)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CanvasWidth != Default().CanvasWidth {
		t.Errorf("CanvasWidth = %d, want default", cfg.CanvasWidth)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	path := writeConfig(t, `
cell_size = "large"
step_interval = "100ms"
frame_interval = "10ms"
dark = true
sound = false
seed = 42

[keymap.runes]
i = "up"

[keymap.keys]
Enter = "toggle_pause"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.GridSize() != grid.Large {
		t.Errorf("GridSize() = %v, want large", cfg.GridSize())
	}
	if cfg.StepInterval.Duration != 100*time.Millisecond || cfg.FrameInterval.Duration != 10*time.Millisecond {
		t.Errorf("intervals = %v/%v, want 100ms/10ms", cfg.StepInterval.Duration, cfg.FrameInterval.Duration)
	}
	if !cfg.Dark || cfg.Sound || cfg.Seed != 42 {
		t.Errorf("dark=%v sound=%v seed=%d", cfg.Dark, cfg.Sound, cfg.Seed)
	}
	// Unset keys keep defaults
	if cfg.CanvasWidth != 800 || cfg.CanvasHeight != 600 {
		t.Errorf("canvas = %dx%d, want 800x600", cfg.CanvasWidth, cfg.CanvasHeight)
	}

	kt, err := cfg.KeyTable()
	if err != nil {
		t.Fatalf("KeyTable: %v", err)
	}
	if kt.ResolveRune('i') != input.ActionUp {
		t.Error("keymap rune override not applied")
	}
	if kt.SpecialKeys[tcell.KeyEnter] != input.ActionTogglePause {
		t.Error("keymap key override not applied")
	}
	if kt.ResolveRune('w') != input.ActionUp {
		t.Error("default binding lost")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown key", "colour = \"red\"\n", "unknown keys"},
		{"unknown size", "cell_size = \"huge\"\n", "unknown cell size"},
		{"zero step", "step_interval = \"0s\"\n", "step_interval"},
		{"frame slower than step", "frame_interval = \"1s\"\n", "exceeds"},
		{"canvas too small", "canvas_width = 300\ncanvas_height = 300\n", "needs more than"},
		{"canvas empty", "canvas_width = 10\n", "too small"},
		{"bad keymap action", "[keymap.runes]\nx = \"fly\"\n", "unknown action"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Load error = %v, want ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadParseErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file accepted")
	}

	_, err := Load(writeConfig(t, "step_interval = \"fast\"\n"))
	if err == nil {
		t.Fatal("bad duration accepted")
	}
	if errors.Is(err, ErrInvalid) {
		t.Error("parse failure reported as validation failure")
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg, err := Load(writeConfig(t, "cell_size = \"small\"\ndark = true\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	size, dark, seed := "large", false, uint64(7)
	if err := cfg.Apply(Overrides{CellSize: &size, Dark: &dark, Seed: &seed}); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if cfg.GridSize() != grid.Large || cfg.Dark || cfg.Seed != 7 {
		t.Errorf("after Apply: size=%v dark=%v seed=%d", cfg.GridSize(), cfg.Dark, cfg.Seed)
	}
	if !cfg.Sound {
		t.Error("unset override changed sound")
	}

	bad := "tiny"
	if err := cfg.Apply(Overrides{CellSize: &bad}); !errors.Is(err, ErrInvalid) {
		t.Errorf("Apply(bad size) = %v, want ErrInvalid", err)
	}
}
