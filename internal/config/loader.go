package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the optional per-project configuration file.
const FileName = ".themestudio.yaml"

// Load reads the configuration file from dir and returns a Config with
// defaults applied for missing fields. A missing file is not an error:
// defaults are returned. A file that exists but does not parse is.
func Load(dir string) (*Config, error) {
	cfg := NewDefaultConfig()

	path := filepath.Join(filepath.Clean(dir), FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("no config file, using defaults", "path", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidYAML, path, err)
	}

	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults backfills zero values left by a partial config file.
// A zero threshold is indistinguishable from "absent" in YAML, so an
// explicit 0 is rounded up to the default; authors who want a lower
// band set a small positive value.
func applyDefaults(cfg *Config) {
	defaults := NewDefaultConfig()

	if cfg.Quality.ScoreThreshold == 0 {
		cfg.Quality.ScoreThreshold = defaults.Quality.ScoreThreshold
	}
	if cfg.Accessibility.WCAGLevel == "" {
		cfg.Accessibility.WCAGLevel = defaults.Accessibility.WCAGLevel
	}
	if cfg.Report.OutputPath == "" {
		cfg.Report.OutputPath = defaults.Report.OutputPath
	}
	if cfg.Report.TestSuccessThreshold == 0 {
		cfg.Report.TestSuccessThreshold = defaults.Report.TestSuccessThreshold
	}
	if cfg.Test.Iterations == 0 {
		cfg.Test.Iterations = defaults.Test.Iterations
	}
	if cfg.System.LogLevel == "" {
		cfg.System.LogLevel = defaults.System.LogLevel
	}
}
