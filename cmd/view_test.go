package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"scanspec.dev/pkg/scanspec/internal/domain"
	m "scanspec.dev/pkg/scanspec/internal/model"
)

func TestViewCmd_UsesRootOutputFlagByDefault(t *testing.T) {
	cmd, mockWorkflow := newTestRootCmd(t, newViewCmd())

	mockWorkflow.On("View", mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Reports == m.Path(".scanspec-reports")
	})).Return(nil)

	cmd.SetArgs([]string{"view"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_RootOutputFlagIsPassedThrough(t *testing.T) {
	cmd, mockWorkflow := newTestRootCmd(t, newViewCmd())

	mockWorkflow.On("View", mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Reports == m.Path("./reports-dir")
	})).Return(nil)

	cmd.SetArgs([]string{"view", "--output", "./reports-dir"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_PositionalArgsAreRejected(t *testing.T) {
	cmd, _ := newTestRootCmd(t, newViewCmd())

	cmd.SetArgs([]string{"view", "./custom-reports"})
	require.Error(t, cmd.Execute())
}
