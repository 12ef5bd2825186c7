package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory and in
// ConfigDir.
const FileName = "config.yaml"

// Load builds the config from defaults, the first config file found and
// command-line flags, in increasing priority, and validates the result.
func Load() (*Config, error) {
	cfg := Default()

	path, err := locate(ConfigPath())
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SearchPaths lists where a config file is looked for when --config is not
// given, first match wins.
func SearchPaths() []string {
	return []string{
		FileName,
		filepath.Join(ConfigDir(), FileName),
	}
}

// locate returns the explicit path, which must exist, or the first existing
// search path. An empty result means the defaults apply unchanged.
func locate(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		return explicit, nil
	}
	return findConfigFile(), nil
}

func findConfigFile() string {
	for _, path := range SearchPaths() {
		if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
			return path
		}
	}
	return ""
}

// loadFromFile decodes a YAML file over cfg. Keys absent from the file keep
// their current values; lists such as doors are replaced whole and each pair
// must list exactly two leaves. Unknown keys are rejected. An empty file is
// valid.
func loadFromFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
