package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history <team>",
	Short: "Prints the full match history of a team.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return current.app.History(cmd.Context(), cmd.OutOrStdout(), args[0])
	},
}
