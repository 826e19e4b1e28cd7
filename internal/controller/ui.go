// Package controller provides output adapters for displaying conformance results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "scanspec.dev/pkg/scanspec/internal/model"
	"scanspec.dev/pkg/scanspec/pkg/strscan"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeList StartMode = iota
	ModeRun
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithListMode sets the UI to contract listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithRunMode sets the UI to conformance run mode.
func WithRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
	}
}

// WithViewMode sets the UI to saved report viewing mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

func applyStartOptions(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeRun}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying the peek contract and its results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayContract(ctx context.Context, aliases []string, examples []strscan.Example) error
	DisplayRunInfo(ctx context.Context, aliases int, threads int)
	DisplayReports(ctx context.Context, reports []m.Report) error
	DisplayPassRate(ctx context.Context, rate float64)
}

// NewUI picks the interactive TUI when output goes to a terminal and the
// plain text UI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
