// Package config handles the pixela configuration file (~/.pixela/config.toml)
// and the layered per-invocation settings resolution.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the settings persisted in the config file. All keys are
// optional; environment variables and flags override them at resolution
// time.
type Config struct {
	Username string `toml:"username,omitempty" json:"username,omitempty"`
	Token    string `toml:"token,omitempty" json:"token,omitempty"`
	GraphID  string `toml:"graph_id,omitempty" json:"graph_id,omitempty"`
	BaseURL  string `toml:"base_url,omitempty" json:"base_url,omitempty"`
}

// validKeys lists the allowed configuration keys.
var validKeys = map[string]bool{
	"username": true,
	"token":    true,
	"graph_id": true,
	"base_url": true,
}

// ValidKeys returns the sorted list of valid configuration keys.
func ValidKeys() []string {
	return []string{"base_url", "graph_id", "token", "username"}
}

// Path returns the default config file path (~/.pixela/config.toml).
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".pixela", "config.toml")
	}
	return filepath.Join(home, ".pixela", "config.toml")
}

// LoadFrom reads the config from a specific path. Returns an empty Config
// if the file does not exist.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// SaveTo writes the config to a specific path, creating parent directories
// as needed.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Get returns the string value of a configuration key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "username":
		return c.Username, nil
	case "token":
		return c.Token, nil
	case "graph_id":
		return c.GraphID, nil
	case "base_url":
		return c.BaseURL, nil
	default:
		return "", fmt.Errorf("unknown config key %q (valid keys: %s)", key, keysList())
	}
}

// Set assigns a value to a configuration key.
func (c *Config) Set(key, value string) error {
	if !validKeys[key] {
		return fmt.Errorf("unknown config key %q (valid keys: %s)", key, keysList())
	}
	switch key {
	case "username":
		c.Username = value
	case "token":
		c.Token = value
	case "graph_id":
		c.GraphID = value
	case "base_url":
		c.BaseURL = value
	}
	return nil
}

func keysList() string {
	out := ""
	for i, k := range ValidKeys() {
		if i > 0 {
			out += ", "
		}
		out += k
	}
	return out
}
