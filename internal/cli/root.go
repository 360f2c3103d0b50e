// Package cli defines the cobra command tree for the pixela CLI.
package cli

import (
	"github.com/DEX-01-CODER/habit-tracker-api/internal/config"
	"github.com/DEX-01-CODER/habit-tracker-api/internal/pixela"
	"github.com/spf13/cobra"
)

var (
	graphFlag   string
	baseURLFlag string
)

// configPath is the path to the config file, settable via --config and
// overridden in tests.
var configPath = config.Path()

// envFile is the dotenv file loaded at resolution time, overridden in tests.
var envFile = ".env"

// rootCmd is the top-level pixela command.
var rootCmd = &cobra.Command{
	Use:   "pixela",
	Short: "Pixela habit tracker - create a user/graph and manage daily pixels",
	Long: `pixela is a client for the Pixela habit-tracking API (https://pixe.la).
It creates a user account, creates tracking graphs, and adds, updates, or
deletes single dated data points ("pixels").

Credentials come from USERNAME and TOKEN (environment or .env file), or from
~/.pixela/config.toml via pixela config. The graph id comes from GRAPH_ID and
can be overridden per call with --graph.`,
	Example: `  # One-time setup
  pixela create-user
  pixela create-graph --name "Daily commits" --unit commit --type int --color sora

  # Record today's value, fix yesterday's, drop an old one
  pixela add 5
  pixela update 20250830 3
  pixela delete 20250101`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&graphFlag, "graph", "", "graph id to use (overrides GRAPH_ID)")
	rootCmd.PersistentFlags().StringVar(&baseURLFlag, "base-url", "", "API base URL (overrides BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", configPath, "path to config file")
}

// resolveSettings builds the effective settings for this invocation from
// the config file, .env file, environment, and changed flags.
func resolveSettings(cmd *cobra.Command) (*config.Settings, error) {
	return config.Resolve(config.ResolveOpts{
		ConfigFile: configPath,
		EnvFile:    envFile,
		Flags:      cmd.Flags(),
	})
}

// newClient returns a Client for the resolved settings.
func newClient(s *config.Settings) *pixela.Client {
	return pixela.New(s.BaseURL, s.Token)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
