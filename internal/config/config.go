// Package config loads the optional automata.yaml (or .json) settings file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"automata/internal/logging"
	"automata/internal/presentation/graph"
)

// Config holds settings shared by every command. Flags override file values.
type Config struct {
	LogLevel string `mapstructure:"log_level"`
	Format   string `mapstructure:"format"`
	Color    bool   `mapstructure:"color"`
}

// DefaultNames are probed in order by Discover.
var DefaultNames = []string{"automata.yaml", "automata.yml", "automata.json"}

func Default() Config {
	return Config{
		LogLevel: "info",
		Format:   string(graph.FormatDOT),
		Color:    true,
	}
}

// Discover returns the first default config file present in dir, or "".
func Discover(dir string) string {
	for _, name := range DefaultNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Load reads path over the defaults. An empty path yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	raw := map[string]any{}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		err = json.Unmarshal(data, &raw)
	} else {
		err = yaml.Unmarshal(data, &raw)
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &cfg,
		ErrorUnused: true,
	})
	if err != nil {
		return cfg, err
	}
	if err := dec.Decode(raw); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", filepath.Base(path), err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := graph.ParseFormat(c.Format); err != nil {
		return err
	}
	return nil
}
