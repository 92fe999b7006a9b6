package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shunnNet/co/internal/domain"
)

var runTargetFlags []string

// runCmd represents the run command.
var runCmd = newRunCmd()

const runLongDescription = `Scan the project once and generate every target named by a source.

With --target, only the given targets are generated. Targets may use
configured aliases and are resolved against the base directory.
Failures of individual targets are reported but do not fail the command.`

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "run",
		Short:       "Generate all targets once",
		Long:        runLongDescription,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{requiresGeneratorAnnotation: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Run(cmd.Context(), domain.RunArgs{
				Targets: runTargetFlags,
			})
		},
	}
	cmd.Flags().StringArrayVarP(&runTargetFlags, "target", "t", nil, "generate only this target (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}
