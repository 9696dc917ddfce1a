package config

import (
	"bytes"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/blogsite/internal/foundation/errors"
	"git.home.luguber.info/inful/blogsite/internal/logfields"
)

// DefaultPath is the config file used when none is given.
const DefaultPath = "site.yaml"

// Load reads, expands, decodes, defaults and validates the config at path.
func Load(path string) (*Config, error) {
	if envPath, err := loadEnvFile(); err != nil {
		slog.Warn("Failed to load env file", logfields.Error(err))
	} else if envPath != "" {
		slog.Debug("Loaded environment variables", logfields.Path(envPath))
	}

	// #nosec G304 -- path is the operator-supplied config file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewError(errors.CategoryNotFound, "configuration file not found").
				WithContext("path", path).
				Build()
		}
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to read config file").
			WithContext("path", path).
			Build()
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	slog.Debug("Configuration loaded", logfields.Path(path), logfields.Variant(cfg.Theme.Navbar.Active))
	return cfg, nil
}

// Parse expands ${VAR} references in data and decodes it strictly.
// Defaults are applied and the result is validated.
func Parse(data []byte) (*Config, error) {
	expanded := expandEnv(string(data))

	dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to parse config").Build()
	}

	if err := ApplyDefaults(&cfg); err != nil {
		return nil, err
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
