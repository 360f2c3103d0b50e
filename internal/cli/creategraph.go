package cli

import (
	"fmt"

	"github.com/DEX-01-CODER/habit-tracker-api/internal/pixela"
	"github.com/spf13/cobra"
)

var (
	graphName  string
	graphUnit  string
	graphType  string
	graphColor string
)

var createGraphCmd = &cobra.Command{
	Use:   "create-graph",
	Short: "Create a graph",
	Long: `Create-graph creates a new graph under your account. The graph id is
taken from --graph or GRAPH_ID. Type must be "int" or "float"; color must
be one of Pixela's palette names: shibafu, momiji, sora, ichou, ajisai,
kuro. On success the graph's public viewer URL is printed.`,
	Example: `  pixela create-graph
  pixela create-graph --name "Pages read" --unit pages --type int --color momiji
  pixela create-graph --graph running --unit km --type float`,
	Args: cobra.NoArgs,
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

		g := pixela.Graph{
			ID:    gid,
			Name:  graphName,
			Unit:  graphUnit,
			Type:  graphType,
			Color: graphColor,
		}
		if err := g.Validate(); err != nil {
			return err
		}

		client := newClient(s)
		body, err := client.CreateGraph(cmd.Context(), s.Username, g)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), body)
		fmt.Fprintf(cmd.OutOrStdout(), "Graph URL: %s\n", client.GraphURL(s.Username, gid))
		return nil
	},
}

func init() {
	createGraphCmd.Flags().StringVar(&graphName, "name", "Habit Tracker", "display name for the graph")
	createGraphCmd.Flags().StringVar(&graphUnit, "unit", "commit", "unit label (e.g., commit, km, pages)")
	createGraphCmd.Flags().StringVar(&graphType, "type", "int", `value type: "int" or "float"`)
	createGraphCmd.Flags().StringVar(&graphColor, "color", "sora", "graph color (shibafu, momiji, sora, ichou, ajisai, kuro)")
	rootCmd.AddCommand(createGraphCmd)
}
