package cmd

import (
	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete <skill-id> <module-id>",
	Short: "Complete a module and collect its XP",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		return a.Progress.Complete(cmd.Context(), args[0], args[1])
	},
}
