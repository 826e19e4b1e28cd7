package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	m "scanspec.dev/pkg/scanspec/internal/model"
	"scanspec.dev/pkg/scanspec/pkg/strscan"
)

// Runner checks peek aliases against a set of contract examples.
type Runner interface {
	Run(ctx context.Context, aliases []strscan.Alias, threads int) ([]m.Report, error)
}

type runner struct {
	examples []strscan.Example
}

// NewRunner constructs a Runner for the given examples.
func NewRunner(examples []strscan.Example) Runner {
	return &runner{examples: examples}
}

// Run evaluates every alias on at most threads goroutines. Reports are
// returned in the order of aliases.
func (r *runner) Run(ctx context.Context, aliases []strscan.Alias, threads int) ([]m.Report, error) {
	if threads < 1 {
		threads = 1
	}

	reports := make([]m.Report, len(aliases))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for i, alias := range aliases {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			slog.Debug("checking alias", "alias", alias.Name, "examples", len(r.examples))

			reports[i] = r.check(alias)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		slog.Error("conformance run aborted", "error", err)
		return nil, err
	}

	return reports, nil
}

func (r *runner) check(alias strscan.Alias) m.Report {
	report := m.Report{
		Alias:   alias.Name,
		Text:    strscan.ContractText,
		Results: make([]m.ExampleResult, 0, len(r.examples)),
	}

	for _, ex := range r.examples {
		result := m.ExampleResult{Desc: ex.Desc, Status: m.Passed}

		if err := verify(alias, ex); err != nil {
			result.Status = m.Failed
			result.Reason = err.Error()

			var stepErr *strscan.StepError
			if errors.As(err, &stepErr) {
				result.Step = stepErr.Index + 1
				result.Reason = stepErr.Reason
				result.Diff = stepDiff(stepErr)
			}

			slog.Info("example failed", "alias", alias.Name, "example", ex.Desc, "reason", result.Reason)
		}

		report.Results = append(report.Results, result)
	}

	return report
}

// verify turns a panicking operation into a failure of the example.
func verify(alias strscan.Alias, ex strscan.Example) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()

	return alias.Verify(ex)
}

// stepDiff renders a unified diff for steps that returned the wrong text.
func stepDiff(stepErr *strscan.StepError) string {
	st := stepErr.Step
	if st.Kind != strscan.StepPeek || st.WantErr != nil || stepErr.Err != nil || stepErr.Got == st.Want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(st.Want + "\n"),
		B:        difflib.SplitLines(stepErr.Got + "\n"),
		FromFile: "want",
		ToFile:   "got",
		Context:  1,
	})
	if err != nil {
		return ""
	}

	return diff
}
