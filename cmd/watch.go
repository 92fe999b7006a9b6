package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shunnNet/co/internal/domain"
)

var watchInitialFlag bool

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

const watchLongDescription = `Scan the project and regenerate targets whenever their sources change.

Changes are batched: a pass starts once no event has arrived for the
configured debounce period. Deleted sources stop contributing to their
targets. Press q or Ctrl+C to stop.`

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "watch",
		Short:       "Regenerate targets on change",
		Long:        watchLongDescription,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{requiresGeneratorAnnotation: "true", liveViewAnnotation: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return workflow.Watch(ctx, domain.WatchArgs{Initial: watchInitialFlag})
		},
	}
	cmd.Flags().BoolVarP(&watchInitialFlag, "initial", "i", false, "generate every target once before watching")

	return cmd
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
