// Package pathtest provides test doubles for pathlike.PathLike.
package pathtest

import (
	"github.com/stretchr/testify/mock"

	"scanspec.dev/pkg/scanspec/pkg/pathlike"
)

// Mock is a PathLike that yields a fixed path.
type Mock struct {
	path string
}

// Compile-time interface check.
var _ pathlike.PathLike = (*Mock)(nil)

// MockToPath returns a Mock whose ToPath yields path unchanged.
func MockToPath(path string) *Mock {
	return &Mock{path: path}
}

// ToPath returns the path given to MockToPath.
func (m *Mock) ToPath() string {
	return m.path
}

// TestingT is the subset of *testing.T used by ExpectToPath.
type TestingT interface {
	mock.TestingT
	Cleanup(func())
}

// StrictMock is a PathLike that records its calls.
type StrictMock struct {
	mock.Mock
}

var _ pathlike.PathLike = (*StrictMock)(nil)

// ToPath records the call and returns the expected path.
func (m *StrictMock) ToPath() string {
	args := m.Called()
	return args.String(0)
}

// ExpectToPath returns a StrictMock yielding path. The test fails at cleanup
// unless ToPath was called at least once.
func ExpectToPath(t TestingT, path string) *StrictMock {
	m := &StrictMock{}
	m.On("ToPath").Return(path)

	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	return m
}
