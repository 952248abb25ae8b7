// Package config holds runtime configuration: defaults, the optional YAML
// config file overlay, and the per-command conversion profiles.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
)

// Config holds the tool-level settings that apply to every command.
// It is populated by [Default], then overlaid by [LoadFile] and CLI flags
// before being passed (by pointer) to the packages that need it.
type Config struct {
	// External tool paths. Bare names are resolved via PATH.
	FFmpegPath  string `yaml:"ffmpeg"`
	FFprobePath string `yaml:"ffprobe"`
	OCRPath     string `yaml:"ocr"`

	// Encoding defaults. Commands may override via their profile.
	Preset string `yaml:"preset"` // Default: "slow".
	CRF    int    `yaml:"crf"`    // Default: 24.

	// OCRWorkers is the worker count passed to the OCR tool.
	// Default: physical CPU core count.
	OCRWorkers int `yaml:"ocr_workers"`

	// Verbose raises the log level to debug.
	Verbose bool `yaml:"-"`
}

// Default returns a Config with the documented defaults. The OCR worker
// count is derived from the physical core count; when that cannot be
// determined a single worker is used.
func Default() Config {
	workers, err := cpu.Counts(false)
	if err != nil || workers < 1 {
		workers = 1
	}
	return Config{
		FFmpegPath:  "ffmpeg",
		FFprobePath: "ffprobe",
		OCRPath:     "pgsrip",
		Preset:      "slow",
		CRF:         24,
		OCRWorkers:  workers,
	}
}

// Validate checks field ranges after all overlays have been applied.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.FFmpegPath) == "" || strings.TrimSpace(c.FFprobePath) == "" {
		return errors.New("ffmpeg and ffprobe paths must not be empty")
	}
	if c.CRF < 0 || c.CRF > 51 {
		return fmt.Errorf("invalid crf %d (valid range 0-51)", c.CRF)
	}
	if strings.TrimSpace(c.Preset) == "" {
		return errors.New("preset must not be empty")
	}
	if c.OCRWorkers < 1 {
		return fmt.Errorf("invalid ocr worker count %d", c.OCRWorkers)
	}
	return nil
}
