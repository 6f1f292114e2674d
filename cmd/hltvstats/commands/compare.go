package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(compareCmd)
}

var compareCmd = &cobra.Command{
	Use:   "compare <team> <opponent> [map]",
	Short: "Prints the win/loss summary of a team against an opponent, optionally on one map.",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		mapName := ""
		if len(args) == 3 {
			mapName = args[2]
		}
		return current.app.Compare(cmd.Context(), cmd.OutOrStdout(), args[0], args[1], mapName)
	},
}
