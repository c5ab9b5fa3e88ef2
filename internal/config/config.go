package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// Config holds all configurable render and export settings.
type Config struct {
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	Frames      int       `json:"frames"`
	RotateEvery int       `json:"rotate_every"`
	Format      string    `json:"format"`
	OutputDir   string    `json:"output_dir"`
	Supersample int       `json:"supersample"`
	Workers     int       `json:"workers"`
	Background  []float64 `json:"background"` // RGB in [0,1]; empty means white
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Width       int
	Height      int
	Frames      int
	RotateEvery int
	Format      string
	OutputDir   string
	Supersample int
	Workers     int
	Background  string // "r,g,b" floats in [0,1]
}

// Resolve applies CLI flag overrides, then fills any remaining empty
// fields with defaults (800×600, one frame, webp, white background,
// NumCPU workers).
func (c *Config) Resolve(flags Flags) error {
	// CLI flags override config file
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.RotateEvery > 0 {
		c.RotateEvery = flags.RotateEvery
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Background != "" {
		bg, err := ParseColor(flags.Background)
		if err != nil {
			return err
		}
		c.Background = bg[:]
	}

	// Defaults
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.Frames <= 0 {
		c.Frames = 1
	}
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if len(c.Background) == 0 {
		c.Background = []float64{1, 1, 1}
	}
	if len(c.Background) != 3 {
		return fmt.Errorf("config: background needs 3 channels, got %d", len(c.Background))
	}

	return nil
}

// ParseColor parses "r,g,b" with float channels in [0,1].
func ParseColor(s string) ([3]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return [3]float64{}, fmt.Errorf("config: color %q: want r,g,b", s)
	}

	var c [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return [3]float64{}, fmt.Errorf("config: color %q: %w", s, err)
		}
		c[i] = v
	}
	return c, nil
}
