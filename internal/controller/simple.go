package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "scanspec.dev/pkg/scanspec/internal/model"
	"scanspec.dev/pkg/scanspec/pkg/strscan"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait returns immediately, SimpleUI does not block.
func (s *SimpleUI) Wait(_ context.Context) {}

// DisplayContract prints the aliases and the examples they are checked against.
func (s *SimpleUI) DisplayContract(ctx context.Context, aliases []string, examples []strscan.Example) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("Aliases: %s\n\n", strings.Join(aliases, ", "))
	s.printf("%s", renderContractTable(examples))

	return nil
}

func renderContractTable(examples []strscan.Example) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Example", "Steps"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	steps := 0

	for _, ex := range examples {
		lines := make([]string, 0, len(ex.Steps))
		for _, st := range ex.Steps {
			lines = append(lines, st.String())
		}

		steps += len(ex.Steps)

		table.Append([]string{ex.Desc, strings.Join(lines, "\n")})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Examples %d", len(examples)),
		fmt.Sprintf("%d steps", steps),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayRunInfo shows how the run is parallelised.
func (s *SimpleUI) DisplayRunInfo(ctx context.Context, aliases int, threads int) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Checking %d alias(es) with %d worker(s)\n", aliases, threads)
}

// DisplayReports prints one table row per alias and example, followed by the
// details of failed examples.
func (s *SimpleUI) DisplayReports(ctx context.Context, reports []m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(reports) == 0 {
		s.printf("No reports found\n")
		return nil
	}

	s.printf("\n%s", renderReportsTable(reports))

	for _, report := range reports {
		for _, result := range report.Results {
			if result.Status != m.Failed {
				continue
			}

			s.printf("\n%s: %s\n  step %d: %s\n", report.Alias, result.Desc, result.Step, result.Reason)

			if result.Diff != "" {
				s.printf("%s\n", result.Diff)
			}
		}
	}

	return nil
}

func renderReportsTable(reports []m.Report) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Alias", "Example", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	totalPassed, totalFailed := 0, 0

	for _, report := range reports {
		for _, result := range report.Results {
			table.Append([]string{report.Alias, result.Desc, result.Status.String()})
		}

		passed, failed := report.Counts()
		totalPassed += passed
		totalFailed += failed
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Aliases %d", len(reports)),
		fmt.Sprintf("%d passed", totalPassed),
		fmt.Sprintf("%d failed", totalFailed),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayPassRate prints the share of passed examples.
func (s *SimpleUI) DisplayPassRate(ctx context.Context, rate float64) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Pass rate: %.2f%%\n", rate*100)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
