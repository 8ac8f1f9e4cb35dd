package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFrameRate = 60
	DefaultSimCols   = 80
	DefaultSimRows   = 24
	DefaultGraphCols = 50
	DefaultGraphRows = 16
)

// Config holds the presentation settings and the problem catalog. The
// simulation's logical geometry and physics defaults are fixed by the
// core packages; this only shapes how frames reach the terminal.
type Config struct {
	FrameRate int          `yaml:"frame_rate"`
	Canvas    CanvasConfig `yaml:"canvas"`
	Samples   []string     `yaml:"samples"`
}

// CanvasConfig sizes the character canvases in terminal cells.
type CanvasConfig struct {
	SimCols   int `yaml:"sim_cols"`
	SimRows   int `yaml:"sim_rows"`
	GraphCols int `yaml:"graph_cols"`
	GraphRows int `yaml:"graph_rows"`
}

// SampleProblems is the built-in picker catalog.
var SampleProblems = []string{
	"A ball is thrown with a velocity of 30 m/s at an angle of 45 degrees.",
	"A stone is thrown vertically upward with a speed of 25 m/s.",
	"A pendulum swings back and forth with a small amplitude.",
	"Iron filings reveal the magnetic field around a bar magnet.",
}

func DefaultConfig() *Config {
	return &Config{
		FrameRate: DefaultFrameRate,
		Canvas: CanvasConfig{
			SimCols:   DefaultSimCols,
			SimRows:   DefaultSimRows,
			GraphCols: DefaultGraphCols,
			GraphRows: DefaultGraphRows,
		},
		Samples: append([]string(nil), SampleProblems...),
	}
}

// Load reads a yaml config, layering it over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) validate() error {
	if c.FrameRate <= 0 {
		return fmt.Errorf("config: frame_rate must be positive, got %d", c.FrameRate)
	}
	if c.Canvas.SimCols < 20 || c.Canvas.SimRows < 8 {
		return fmt.Errorf("config: simulation canvas too small (%dx%d)", c.Canvas.SimCols, c.Canvas.SimRows)
	}
	if c.Canvas.GraphCols < 20 || c.Canvas.GraphRows < 6 {
		return fmt.Errorf("config: graph canvas too small (%dx%d)", c.Canvas.GraphCols, c.Canvas.GraphRows)
	}
	return nil
}
