// Package domain runs the peek contract against scanner aliases.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"scanspec.dev/pkg/scanspec/internal/adapter"
	"scanspec.dev/pkg/scanspec/internal/controller"
	m "scanspec.dev/pkg/scanspec/internal/model"
	"scanspec.dev/pkg/scanspec/pkg/pathlike"
	"scanspec.dev/pkg/scanspec/pkg/strscan"
)

// ErrContractFailed is returned by Run when at least one alias failed an
// example.
var ErrContractFailed = errors.New("peek contract failed")

// ListArgs contains the arguments for listing the contract.
type ListArgs struct {
	Aliases []string
}

// RunArgs contains the arguments for a conformance run.
type RunArgs struct {
	Aliases []string
	Reports pathlike.PathLike
	Threads int
	NoSave  bool
}

// ViewArgs contains the arguments for viewing saved reports.
type ViewArgs struct {
	Reports pathlike.PathLike
}

// Workflow defines the commands offered by the CLI.
type Workflow interface {
	List(ctx context.Context, args ListArgs) error
	Run(ctx context.Context, args RunArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.ReportStore
	controller.UI
	Runner

	aliases  []strscan.Alias
	examples []strscan.Example
}

// NewWorkflow creates a Workflow checking aliases against examples.
func NewWorkflow(
	reportStore adapter.ReportStore,
	ui controller.UI,
	runner Runner,
	aliases []strscan.Alias,
	examples []strscan.Example,
) Workflow {
	return &workflow{
		ReportStore: reportStore,
		UI:          ui,
		Runner:      runner,
		aliases:     aliases,
		examples:    examples,
	}
}

// List displays the selected aliases and the examples they are held to.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	selected, err := w.selectAliases(args.Aliases)
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithListMode()); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}

	if err := w.DisplayContract(ctx, aliasNames(selected), w.examples); err != nil {
		w.Close(ctx)
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)
	w.Close(ctx)

	return nil
}

// Run checks the selected aliases, displays and stores the reports.
func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	selected, err := w.selectAliases(args.Aliases)
	if err != nil {
		return err
	}

	threads := max(args.Threads, 1)

	if err := w.Start(ctx, controller.WithRunMode()); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}

	w.DisplayRunInfo(ctx, len(selected), threads)

	reports, err := w.Runner.Run(ctx, selected, threads)
	if err != nil {
		w.Close(ctx)
		return fmt.Errorf("run contract: %w", err)
	}

	if !args.NoSave && args.Reports != nil {
		if err := w.SaveReports(args.Reports, reports); err != nil {
			w.Close(ctx)
			slog.Error("Failed to save reports", "path", args.Reports.ToPath(), "error", err)

			return fmt.Errorf("save reports: %w", err)
		}
	}

	if err := w.DisplayReports(ctx, reports); err != nil {
		w.Close(ctx)
		return fmt.Errorf("display: %w", err)
	}

	w.DisplayPassRate(ctx, passRate(reports))
	w.Wait(ctx)
	w.Close(ctx)

	if failed := failedAliases(reports); len(failed) > 0 {
		return fmt.Errorf("%w: %s", ErrContractFailed, strings.Join(failed, ", "))
	}

	return nil
}

// View displays reports saved by a previous run.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	if args.Reports == nil {
		return fmt.Errorf("reports directory not set")
	}

	reports, err := w.LoadReports(args.Reports)
	if err != nil {
		slog.Error("Failed to load reports", "path", args.Reports.ToPath(), "error", err)
		return fmt.Errorf("load reports: %w", err)
	}

	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		return err
	}

	if err := w.DisplayReports(ctx, reports); err != nil {
		w.Close(ctx)
		return fmt.Errorf("display: %w", err)
	}

	if len(reports) > 0 {
		w.DisplayPassRate(ctx, passRate(reports))
	}

	w.Wait(ctx)
	w.Close(ctx)

	return nil
}

// selectAliases returns the registered aliases matching names, in the order
// given. No names selects every alias.
func (w *workflow) selectAliases(names []string) ([]strscan.Alias, error) {
	if len(names) == 0 {
		return w.aliases, nil
	}

	byName := make(map[string]strscan.Alias, len(w.aliases))
	for _, alias := range w.aliases {
		byName[alias.Name] = alias
	}

	selected := make([]strscan.Alias, 0, len(names))
	seen := make(map[string]bool, len(names))

	for _, name := range names {
		alias, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown alias %q (available: %s)", name, strings.Join(aliasNames(w.aliases), ", "))
		}

		if seen[name] {
			continue
		}

		seen[name] = true
		selected = append(selected, alias)
	}

	return selected, nil
}

func aliasNames(aliases []strscan.Alias) []string {
	names := make([]string, 0, len(aliases))
	for _, alias := range aliases {
		names = append(names, alias.Name)
	}

	return names
}

func failedAliases(reports []m.Report) []string {
	var failed []string

	for _, report := range reports {
		if !report.Passed() {
			failed = append(failed, report.Alias)
		}
	}

	return failed
}
