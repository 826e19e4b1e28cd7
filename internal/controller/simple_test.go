package controller

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "scanspec.dev/pkg/scanspec/internal/model"
	"scanspec.dev/pkg/scanspec/pkg/strscan"
)

func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cmd := &cobra.Command{Use: "test"}
	cmd.SetOut(out)

	return cmd, out
}

func sampleReports() []m.Report {
	return []m.Report{
		{
			Alias: "peek",
			Results: []m.ExampleResult{
				{Desc: "returns an empty string when the passed argument is zero", Status: m.Passed},
			},
		},
		{
			Alias: "broken",
			Results: []m.ExampleResult{
				{Desc: "returns an empty string when the passed argument is zero", Status: m.Passed},
				{
					Desc:   "returns at most the specified number of characters from the current position",
					Status: m.Failed,
					Step:   2,
					Reason: `want "is", got "is "`,
					Diff:   "--- want\n+++ got\n",
				},
			},
		},
	}
}

func TestSimpleUI_DisplayContract(t *testing.T) {
	cmd, out := newTestCmd()
	ui := NewSimpleUI(cmd)

	err := ui.DisplayContract(context.Background(), []string{"peek", "peep"}, strscan.PeekContract())
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "Aliases: peek, peep")
	assert.Contains(t, output, "returns at most the specified number of characters from the current position")
	assert.Contains(t, output, `peek(4) == "This"`)
	assert.Contains(t, output, "TOTAL EXAMPLES 5")
}

func TestSimpleUI_DisplayReports(t *testing.T) {
	cmd, out := newTestCmd()
	ui := NewSimpleUI(cmd)

	err := ui.DisplayReports(context.Background(), sampleReports())
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "peek")
	assert.Contains(t, output, "broken")
	assert.Contains(t, output, "passed")
	assert.Contains(t, output, "failed")
	assert.Contains(t, output, "TOTAL ALIASES 2")
	assert.Contains(t, output, `step 2: want "is", got "is "`)
	assert.Contains(t, output, "+++ got")
}

func TestSimpleUI_DisplayReports_Empty(t *testing.T) {
	cmd, out := newTestCmd()
	ui := NewSimpleUI(cmd)

	require.NoError(t, ui.DisplayReports(context.Background(), nil))
	assert.Equal(t, "No reports found\n", out.String())
}

func TestSimpleUI_InfoAndPassRate(t *testing.T) {
	cmd, out := newTestCmd()
	ui := NewSimpleUI(cmd)
	ctx := context.Background()

	require.NoError(t, ui.Start(ctx, WithRunMode()))
	ui.DisplayRunInfo(ctx, 2, 4)
	ui.DisplayPassRate(ctx, 0.5)
	ui.Wait(ctx)
	ui.Close(ctx)

	assert.Contains(t, out.String(), "Checking 2 alias(es) with 4 worker(s)")
	assert.Contains(t, out.String(), "Pass rate: 50.00%")
}

func TestSimpleUI_CanceledContext(t *testing.T) {
	cmd, out := newTestCmd()
	ui := NewSimpleUI(cmd)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, ui.Start(ctx), context.Canceled)
	require.ErrorIs(t, ui.DisplayReports(ctx, sampleReports()), context.Canceled)
	require.ErrorIs(t, ui.DisplayContract(ctx, nil, nil), context.Canceled)
	ui.DisplayPassRate(ctx, 1)
	ui.DisplayRunInfo(ctx, 1, 1)

	assert.Empty(t, out.String())
}

func TestNewUI(t *testing.T) {
	cmd, _ := newTestCmd()

	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
	assert.IsType(t, &TUI{}, NewUI(cmd, true))
}

func TestIsTTY_NonFile(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))
}
