package cli

import (
	"fmt"

	"github.com/DEX-01-CODER/habit-tracker-api/internal/pixela"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update <date> <quantity>",
	Short: "Update a pixel's quantity for a date",
	Long: `Update replaces the quantity recorded for the given date. The date must
be a real calendar date in YYYYMMDD form.`,
	Example: `  pixela update 20250830 3
  pixela update 20250830 2.5 --graph running`,
	Args: cobra.ExactArgs(2),
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

		body, err := newClient(s).UpdatePixel(cmd.Context(), s.Username, gid, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), body)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
