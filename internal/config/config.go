package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/refhub/internal/view"
)

// EnvPrefix is the prefix of environment overrides. Nested keys use a double
// underscore: REFHUB_SERVER__PORT -> server.port.
const EnvPrefix = "REFHUB_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (REFHUB_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	// Lists replace the defaults instead of being merged element by element.
	for key, list := range map[string]*[]string{
		"include":       &cfg.Include,
		"exclude":       &cfg.Exclude,
		"search.fields": &cfg.Search.Fields,
	} {
		if k.Exists(key) {
			*list = nil
		}
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

var validLogFormats = map[string]bool{"json": true, "console": true}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.HubsDir == "" {
		return fmt.Errorf("hubs_dir is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if _, err := view.ParseFields(c.Search.Fields); err != nil {
		return fmt.Errorf("search.fields: %w", err)
	}
	if c.Log.Level != "" && !validLogLevels[c.Log.Level] {
		return fmt.Errorf("invalid log.level %q: must be one of debug, info, warn, error", c.Log.Level)
	}
	if c.Log.Format != "" && !validLogFormats[c.Log.Format] {
		return fmt.Errorf("invalid log.format %q: must be json or console", c.Log.Format)
	}
	return nil
}

// Policy converts the search settings into a view.Policy.
func (c *Config) Policy() (view.Policy, error) {
	fields, err := view.ParseFields(c.Search.Fields)
	if err != nil {
		return view.Policy{}, err
	}
	return view.Policy{
		ClearSearchOnSectionChange: c.Search.ClearOnSectionChange,
		Fields:                     fields,
	}, nil
}
