package controller

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/shunnNet/co/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {

}

// DisplaySources prints every source with the targets it contributes to.
func (s *SimpleUI) DisplaySources(sources []m.Source) error {
	if len(sources) == 0 {
		s.printf("no sources found\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Source", "Target", "Scope"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	targets := 0

	for _, source := range sources {
		for _, d := range source.Directives {
			scope := "file"
			if !d.IsFullFile() {
				scope = "fragment"
			}

			table.Append([]string{string(source.Path), string(d.TargetPath), scope})
		}

		targets += len(source.Targets())
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Sources %d", len(sources)),
		fmt.Sprintf("%d", targets),
		"",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayReports prints one row per generated target.
func (s *SimpleUI) DisplayReports(reports []m.GenerationReport) {
	if len(reports) == 0 {
		s.printf("nothing to generate\n")
		return
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Target", "Kind", "Sources", "Regions", "Status", "Took"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT,
	})

	failed := 0

	for _, r := range reports {
		regions := "-"
		if r.Kind == m.GenerationRewrite {
			regions = fmt.Sprintf("%d/%d", r.Regions, r.Regions+r.Carried)
		}

		table.Append([]string{
			string(r.Target),
			string(r.Kind),
			fmt.Sprintf("%d", len(r.Sources)),
			regions,
			reportStatus(r),
			r.Duration.Round(time.Millisecond).String(),
		})

		if r.Failed() {
			failed++
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Targets %d", len(reports)),
		"", "", "",
		fmt.Sprintf("%d failed", failed),
		"",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	for _, r := range reports {
		if r.Failed() {
			s.printf("%s: %v\n", r.Target, r.Err)
		}
	}
}

// DisplayWatching announces that the watch loop is running.
func (s *SimpleUI) DisplayWatching(base m.Path) {
	s.printf("watching %s for changes...\n", base)
}

// DisplayPassStarted prints the events that opened a pass.
func (s *SimpleUI) DisplayPassStarted(pass m.PassReport) {
	kinds := make([]string, 0, len(pass.Events))
	for _, e := range pass.Events {
		kinds = append(kinds, fmt.Sprintf("%s %s", e.Kind, e.Path))
	}

	s.printf("[%s] %s\n", shortID(pass.ID), strings.Join(kinds, ", "))
}

// DisplayPass prints the outcome of a finished pass.
func (s *SimpleUI) DisplayPass(pass m.PassReport) {
	for _, p := range pass.Removed {
		s.printf("[%s] removed %s\n", shortID(pass.ID), p)
	}

	if len(pass.Reports) > 0 {
		s.DisplayReports(pass.Reports)
	}

	s.printf("[%s] done in %s\n", shortID(pass.ID), pass.Duration.Round(time.Millisecond))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}

	return id
}
