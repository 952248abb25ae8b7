package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFileName is the per-user config file, resolved under
// $XDG_CONFIG_HOME (or ~/.config) at startup.
const configFileName = "video-edit/config.yaml"

// FilePath returns the resolved config file path, or "" when no home
// directory can be determined.
func FilePath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, configFileName)
}

// LoadFile overlays cfg with values from the YAML file at path. A missing
// file is not an error: the defaults simply stand. Unknown keys are
// rejected so typos surface instead of silently doing nothing.
func LoadFile(cfg *Config, path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		// An empty file decodes to EOF; treat it like a missing file.
		return err
	}
	return nil
}
