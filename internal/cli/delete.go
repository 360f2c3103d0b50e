package cli

import (
	"fmt"

	"github.com/DEX-01-CODER/habit-tracker-api/internal/pixela"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <date>",
	Short: "Delete a pixel for a date",
	Long: `Delete removes the pixel recorded for the given date. The date must be
a real calendar date in YYYYMMDD form.`,
	Example: `  pixela delete 20250101
  pixela delete 20250101 --graph reading`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := resolveSettings(cmd)
		if err != nil {
			return err
		}
		if err := s.Require("username", "token", "graph_id"); err != nil {
			return err
		}
		gid, err := s.ResolveGraph()
		if err != nil {
			return err
		}
		if err := pixela.ValidateDate(args[0]); err != nil {
			return err
		}

		body, err := newClient(s).DeletePixel(cmd.Context(), s.Username, gid, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), body)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
