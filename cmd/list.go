package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shunnNet/co/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()
var listTargetFlag string

const listLongDescription = `Scan the project and print every source with the targets it contributes
to. Nothing is generated.`

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sources and their targets",
		Long:  listLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.List(cmd.Context(), domain.ListArgs{Target: listTargetFlag})
		},
	}
	cmd.Flags().StringVarP(&listTargetFlag, "target", "t", "", "only list sources contributing to this target")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
