package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

// clearEnv unsets the recognized environment variables for the duration of
// the test so the host environment cannot leak into layering assertions.
func clearEnv(t *testing.T) {
	t.Helper()
	for name := range envKeys {
		t.Setenv(name, "") // registers restore of the original value
		os.Unsetenv(name)
	}
}

// missingPath returns a path that does not exist, for opting a layer out.
func missingPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "absent")
}

func TestResolveFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("USERNAME", "alice")
	t.Setenv("TOKEN", "s3cret")
	t.Setenv("GRAPH_ID", "pushups")

	s, err := Resolve(ResolveOpts{ConfigFile: missingPath(t), EnvFile: missingPath(t)})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if s.Username != "alice" || s.Token != "s3cret" || s.GraphID != "pushups" {
		t.Errorf("got %+v", s)
	}
	if s.BaseURL != "" {
		t.Errorf("base_url should be unset by default, got %q", s.BaseURL)
	}
}

func TestResolveConfigFileLayer(t *testing.T) {
	clearEnv(t)
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	cfg := &Config{Username: "alice", GraphID: "fromfile"}
	if err := cfg.SaveTo(cfgPath); err != nil {
		t.Fatal(err)
	}

	s, err := Resolve(ResolveOpts{ConfigFile: cfgPath, EnvFile: missingPath(t)})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if s.Username != "alice" || s.GraphID != "fromfile" {
		t.Errorf("got %+v", s)
	}
}

func TestResolveDotenvOverridesConfigFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	if err := (&Config{GraphID: "fromfile", Username: "alice"}).SaveTo(cfgPath); err != nil {
		t.Fatal(err)
	}
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("GRAPH_ID=fromdotenv\nTOKEN=s3cret\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := Resolve(ResolveOpts{ConfigFile: cfgPath, EnvFile: envPath})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if s.GraphID != "fromdotenv" {
		t.Errorf("graph_id: got %q, want dotenv value", s.GraphID)
	}
	if s.Username != "alice" || s.Token != "s3cret" {
		t.Errorf("got %+v", s)
	}
}

func TestResolveEnvironmentOverridesDotenv(t *testing.T) {
	clearEnv(t)
	envPath := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envPath, []byte("GRAPH_ID=fromdotenv\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GRAPH_ID", "fromenv")

	s, err := Resolve(ResolveOpts{ConfigFile: missingPath(t), EnvFile: envPath})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if s.GraphID != "fromenv" {
		t.Errorf("graph_id: got %q, want %q", s.GraphID, "fromenv")
	}
}

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("graph", "", "")
	fs.String("base-url", "", "")
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	return fs
}

func TestResolveFlagOverridesEverything(t *testing.T) {
	clearEnv(t)
	t.Setenv("GRAPH_ID", "fromenv")

	s, err := Resolve(ResolveOpts{
		ConfigFile: missingPath(t),
		EnvFile:    missingPath(t),
		Flags:      testFlags(t, "--graph", "fromflag", "--base-url", "http://localhost:9999"),
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if s.GraphID != "fromflag" {
		t.Errorf("graph_id: got %q, want %q", s.GraphID, "fromflag")
	}
	if s.BaseURL != "http://localhost:9999" {
		t.Errorf("base_url: got %q", s.BaseURL)
	}
}

func TestResolveBlankFlagFallsBackToDefault(t *testing.T) {
	clearEnv(t)
	t.Setenv("GRAPH_ID", "g1")

	s, err := Resolve(ResolveOpts{
		ConfigFile: missingPath(t),
		EnvFile:    missingPath(t),
		Flags:      testFlags(t, "--graph", ""),
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	gid, err := s.ResolveGraph()
	if err != nil {
		t.Fatalf("resolve graph: %v", err)
	}
	if gid != "g1" {
		t.Errorf("graph_id: got %q, want env default %q", gid, "g1")
	}

	// Whitespace-only counts as blank too.
	s, err = Resolve(ResolveOpts{
		ConfigFile: missingPath(t),
		EnvFile:    missingPath(t),
		Flags:      testFlags(t, "--graph", "   "),
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if s.GraphID != "g1" {
		t.Errorf("graph_id: got %q, want env default %q", s.GraphID, "g1")
	}
}

func TestResolveBlankFlagWithNoDefaultFails(t *testing.T) {
	clearEnv(t)

	s, err := Resolve(ResolveOpts{
		ConfigFile: missingPath(t),
		EnvFile:    missingPath(t),
		Flags:      testFlags(t, "--graph", ""),
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if _, err := s.ResolveGraph(); err == nil {
		t.Fatal("expected error with no override and no default")
	}
}

func TestResolveUnchangedFlagDoesNotOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("GRAPH_ID", "fromenv")

	s, err := Resolve(ResolveOpts{
		ConfigFile: missingPath(t),
		EnvFile:    missingPath(t),
		Flags:      testFlags(t), // flags defined but not set
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if s.GraphID != "fromenv" {
		t.Errorf("graph_id: got %q, want env value preserved", s.GraphID)
	}
}

func TestRequireListsAllMissing(t *testing.T) {
	s := &Settings{Username: "alice"}
	err := s.Require("username", "token", "graph_id")
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "TOKEN") || !strings.Contains(msg, "GRAPH_ID") {
		t.Errorf("missing keys not all listed: %q", msg)
	}
	if strings.Contains(msg, "USERNAME") {
		t.Errorf("present key listed as missing: %q", msg)
	}
}

func TestRequireTreatsBlankAsMissing(t *testing.T) {
	s := &Settings{Token: "   "}
	if err := s.Require("token"); err == nil {
		t.Fatal("whitespace-only value should count as missing")
	}
}

func TestRequireAllPresent(t *testing.T) {
	s := &Settings{Username: "alice", Token: "t", GraphID: "g"}
	if err := s.Require("username", "token", "graph_id"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestResolveGraph(t *testing.T) {
	tests := []struct {
		name    string
		graphID string
		want    string
		wantErr bool
	}{
		{"set", "g1", "g1", false},
		{"trimmed", "  g1  ", "g1", false},
		{"empty", "", "", true},
		{"blank", "   ", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Settings{GraphID: tt.graphID}
			got, err := s.ResolveGraph()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
