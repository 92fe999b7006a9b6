package cmd

import (
	"github.com/spf13/cobra"
)

// clearCmd represents the clear command.
var clearCmd = newClearCmd()

func newClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Forget stored region results",
		Long:  "Remove the result cache so every region is regenerated on the next run.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Clear()
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(clearCmd)
}
