package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/dotenv"
	ktoml "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Settings are the effective values for one invocation, built once at
// startup and never mutated afterwards.
type Settings struct {
	Username string
	Token    string
	GraphID  string
	BaseURL  string
}

// envKeys maps environment variable names to settings keys.
var envKeys = map[string]string{
	"USERNAME": "username",
	"TOKEN":    "token",
	"GRAPH_ID": "graph_id",
	"BASE_URL": "base_url",
}

// ResolveOpts control where Resolve looks for configuration.
type ResolveOpts struct {
	// ConfigFile is the persisted config path; Path() when empty.
	ConfigFile string
	// EnvFile is a dotenv file to layer in; ".env" when empty. A missing
	// file is not an error.
	EnvFile string
	// Flags, when non-nil, contributes changed --graph and --base-url
	// values at the highest precedence.
	Flags *pflag.FlagSet
}

// Resolve builds the effective settings by layering, lowest to highest:
// defaults, config file, .env file, process environment, changed flags.
func Resolve(opts ResolveOpts) (*Settings, error) {
	if opts.ConfigFile == "" {
		opts.ConfigFile = Path()
	}
	if opts.EnvFile == "" {
		opts.EnvFile = ".env"
	}

	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"base_url": "",
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if _, err := os.Stat(opts.ConfigFile); err == nil {
		if err := k.Load(file.Provider(opts.ConfigFile), ktoml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", opts.ConfigFile, err)
		}
	}

	if _, err := os.Stat(opts.EnvFile); err == nil {
		if err := k.Load(file.Provider(opts.EnvFile), dotenv.ParserEnv("", ".", envKeyTransform)); err != nil {
			return nil, fmt.Errorf("reading %s: %w", opts.EnvFile, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envKeyTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	if opts.Flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(opts.Flags, ".", k, flagValue), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	return &Settings{
		Username: k.String("username"),
		Token:    k.String("token"),
		GraphID:  k.String("graph_id"),
		BaseURL:  k.String("base_url"),
	}, nil
}

// envKeyTransform maps recognized environment variable names to settings
// keys and drops everything else.
func envKeyTransform(s string) string {
	return envKeys[strings.ToUpper(s)]
}

// flagValue admits only flags that were explicitly set to a non-blank
// value, mapped to their settings keys. A blank override is not an
// override: the environment or file default stays in effect.
func flagValue(f *pflag.Flag) (string, interface{}) {
	if !f.Changed || strings.TrimSpace(f.Value.String()) == "" {
		return "", nil
	}
	switch f.Name {
	case "graph":
		return "graph_id", f.Value.String()
	case "base-url":
		return "base_url", f.Value.String()
	}
	return "", nil
}

// Require checks that the named settings keys are non-empty. All missing
// keys are reported together, by their environment variable names, so one
// fix round is enough.
func (s *Settings) Require(keys ...string) error {
	var missing []string
	for _, key := range keys {
		v, _ := s.value(key)
		if strings.TrimSpace(v) == "" {
			missing = append(missing, envName(key))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s\n"+
			"set them in .env, the environment, or via: pixela config set <key> <value>",
			strings.Join(missing, ", "))
	}
	return nil
}

// ResolveGraph returns the graph id for this invocation, trimmed. Flag,
// environment, and file layering already happened in Resolve; an id that
// is still blank is a configuration error.
func (s *Settings) ResolveGraph() (string, error) {
	gid := strings.TrimSpace(s.GraphID)
	if gid == "" {
		return "", errors.New("GRAPH_ID is required (set it in .env or pass --graph <id>)")
	}
	return gid, nil
}

func (s *Settings) value(key string) (string, bool) {
	switch key {
	case "username":
		return s.Username, true
	case "token":
		return s.Token, true
	case "graph_id":
		return s.GraphID, true
	case "base_url":
		return s.BaseURL, true
	}
	return "", false
}

// envName returns the environment variable spelling of a settings key.
func envName(key string) string {
	for ev, k := range envKeys {
		if k == key {
			return ev
		}
	}
	return strings.ToUpper(key)
}
