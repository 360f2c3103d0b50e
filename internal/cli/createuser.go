package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var createUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Create a Pixela user account",
	Long: `Create-user registers a new Pixela account using USERNAME and TOKEN.
The token you supply becomes the account's authentication token; keep it
secret. Pixela requires agreeing to its terms of service, which this
command does on your behalf.`,
	Example: `  USERNAME=alice TOKEN=s3cret pixela create-user`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := resolveSettings(cmd)
		if err != nil {
			return err
		}
		if err := s.Require("username", "token"); err != nil {
			return err
		}

		body, err := newClient(s).CreateUser(cmd.Context(), s.Username)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), body)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createUserCmd)
}
