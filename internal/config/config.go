// Package config holds the turntable tool's settings: a JSON file merged
// with CLI flag overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all configurable render settings.
type Config struct {
	OutputDir string `json:"output_dir"`
	SkinPath  string `json:"skin"`

	Size        int `json:"size"`
	Supersample int `json:"supersample"`
	Frames      int `json:"frames"`
	Workers     int `json:"workers"`

	// Target pose in degrees; the turntable ramps from identity to here.
	Roll  float64 `json:"roll"`
	Pitch float64 `json:"pitch"`
	Yaw   float64 `json:"yaw"`
}

// Flags carries the CLI overrides.
type Flags struct {
	OutputDir string
	SkinPath  string
	Size      int
	Frames    int
	Workers   int
}

// Load reads a JSON config file. Fields not set in the file keep their zero
// values until Resolve fills in defaults.
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

// Resolve applies CLI overrides, then fills any remaining empty fields with
// defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.SkinPath != "" {
		c.SkinPath = flags.SkinPath
	}
	if flags.Size > 0 {
		c.Size = flags.Size
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.Size <= 0 {
		c.Size = 512
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Frames <= 0 {
		c.Frames = 36
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}
