package cli

import (
	"fmt"

	"github.com/DEX-01-CODER/habit-tracker-api/internal/pixela"
	"github.com/spf13/cobra"
)

var addDate string

var addCmd = &cobra.Command{
	Use:   "add <quantity>",
	Short: "Add a pixel for a date (default: today)",
	Long: `Add records a quantity against a date in the graph. Without --date the
current date is used. The date must be a real calendar date in YYYYMMDD
form; it is validated locally before any request is sent.`,
	Example: `  pixela add 5
  pixela add 2.5 --date 20250830
  pixela add 1 --graph reading`,
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

		date := addDate
		if date == "" {
			date = pixela.Today()
		} else if err := pixela.ValidateDate(date); err != nil {
			return err
		}

		body, err := newClient(s).RecordPixel(cmd.Context(), s.Username, gid, pixela.Pixel{
			Date:     date,
			Quantity: args[0],
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), body)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addDate, "date", "", "date in YYYYMMDD form (default: today)")
	rootCmd.AddCommand(addCmd)
}
