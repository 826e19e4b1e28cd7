package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"scanspec.dev/pkg/scanspec/pkg/pathlike"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "passed", Passed.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "skipped", Skipped.String())
	assert.Equal(t, "unknown", Status(9).String())
}

func TestStatus_YAML(t *testing.T) {
	out, err := yaml.Marshal(ExampleResult{Desc: "d", Status: Failed})
	require.NoError(t, err)
	assert.Contains(t, string(out), "status: failed")

	var got ExampleResult
	require.NoError(t, yaml.Unmarshal(out, &got))
	assert.Equal(t, Failed, got.Status)

	err = yaml.Unmarshal([]byte("status: melted\n"), &got)
	require.Error(t, err)
}

func TestReport_Counts(t *testing.T) {
	report := Report{
		Alias: "peek",
		Results: []ExampleResult{
			{Status: Passed},
			{Status: Failed},
			{Status: Skipped},
			{Status: Passed},
		},
	}

	passed, failed := report.Counts()
	assert.Equal(t, 2, passed)
	assert.Equal(t, 1, failed)
	assert.False(t, report.Passed())
	assert.True(t, Report{}.Passed())
}

func TestPath_IsPathLike(t *testing.T) {
	p := Path("/tmp/reports")
	assert.True(t, pathlike.Responds(p))
	assert.Equal(t, "/tmp/reports", p.ToPath())
}
