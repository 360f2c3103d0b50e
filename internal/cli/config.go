package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/DEX-01-CODER/habit-tracker-api/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Show or modify configuration",
	Long: `View or change pixela configuration stored in ~/.pixela/config.toml.

With no arguments, shows all configuration settings.
With one argument, shows the value of that key.
With two arguments, sets the key to the given value.

Settings:
  username  Pixela account name
  token     Account authentication token
  graph_id  Default graph id (overridable per call with --graph)
  base_url  API base URL (for testing against a local server)

Environment variables (USERNAME, TOKEN, GRAPH_ID, BASE_URL) and a .env
file in the working directory override these values at run time.`,
	Example: `  pixela config
  pixela config graph_id
  pixela config graph_id pushups
  pixela config username alice`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadFrom(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		switch len(args) {
		case 0:
			return showConfig(cmd, cfg)
		case 1:
			return getConfig(cmd, cfg, args[0])
		default:
			return setConfig(cmd, cfg, args[0], args[1])
		}
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func showConfig(cmd *cobra.Command, cfg *config.Config) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tVALUE")
	for _, key := range config.ValidKeys() {
		val, _ := cfg.Get(key)
		switch {
		case val == "":
			val = "(not set)"
		case key == "token":
			val = "(set)"
		}
		fmt.Fprintf(w, "%s\t%s\n", key, val)
	}
	return w.Flush()
}

func getConfig(cmd *cobra.Command, cfg *config.Config, key string) error {
	val, err := cfg.Get(key)
	if err != nil {
		return err
	}
	if val == "" {
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), val)
	return nil
}

func setConfig(cmd *cobra.Command, cfg *config.Config, key, value string) error {
	if err := cfg.Set(key, value); err != nil {
		return err
	}
	if err := cfg.SaveTo(configPath); err != nil {
		return err
	}
	if key == "token" {
		value = "(set)"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, value)
	return nil
}
