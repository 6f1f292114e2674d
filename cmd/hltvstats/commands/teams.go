package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(teamsCmd)
}

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "Lists the teams that can be selected.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		current.app.ListTeams(cmd.OutOrStdout())
	},
}
