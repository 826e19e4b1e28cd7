package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"scanspec.dev/pkg/scanspec/internal/domain"
	domainmocks "scanspec.dev/pkg/scanspec/internal/domain/mocks"
)

// newTestRootCmd builds a fresh root command with sub attached and the
// global workflow replaced by a mock for the duration of the test.
func newTestRootCmd(t *testing.T, sub *cobra.Command) (*cobra.Command, *domainmocks.MockWorkflow) {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	configureRootFlags(cmd)
	cmd.AddCommand(sub)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow

	originalLogFile := logFileFlag
	logFileFlag = filepath.Join(t.TempDir(), "scanspec.log")

	t.Cleanup(func() {
		workflow = originalWorkflow
		logFileFlag = originalLogFile
	})

	return cmd, mockWorkflow
}

var _ domain.Workflow = (*domainmocks.MockWorkflow)(nil)
