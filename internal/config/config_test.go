package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.FrameRate != DefaultFrameRate {
		t.Errorf("frame rate = %d, want %d", cfg.FrameRate, DefaultFrameRate)
	}
	if cfg.Canvas.SimCols != DefaultSimCols || cfg.Canvas.SimRows != DefaultSimRows {
		t.Errorf("sim canvas = %dx%d", cfg.Canvas.SimCols, cfg.Canvas.SimRows)
	}
	if len(cfg.Samples) != len(SampleProblems) {
		t.Errorf("expected %d sample problems, got %d", len(SampleProblems), len(cfg.Samples))
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "physilab.yaml")

	cfg := DefaultConfig()
	cfg.FrameRate = 30
	cfg.Canvas.SimCols = 120
	cfg.Samples = []string{"A comet swings past a planet."}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.FrameRate != 30 {
		t.Errorf("frame rate = %d, want 30", loaded.FrameRate)
	}
	if loaded.Canvas.SimCols != 120 {
		t.Errorf("sim cols = %d, want 120", loaded.Canvas.SimCols)
	}
	if len(loaded.Samples) != 1 || loaded.Samples[0] != "A comet swings past a planet." {
		t.Errorf("samples = %v", loaded.Samples)
	}
}

func TestLoadLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("frame_rate: 24\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.FrameRate != 24 {
		t.Errorf("frame rate = %d, want 24", cfg.FrameRate)
	}
	if cfg.Canvas.SimCols != DefaultSimCols {
		t.Errorf("unset fields should keep defaults, sim cols = %d", cfg.Canvas.SimCols)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero frame rate", "frame_rate: 0\n"},
		{"tiny sim canvas", "canvas:\n  sim_cols: 5\n"},
		{"tiny graph canvas", "canvas:\n  graph_rows: 1\n"},
		{"not yaml", "frame_rate: [oops\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
