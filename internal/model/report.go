// Package model defines the data structures for conformance runs.
package model

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Status represents the outcome of a single contract example.
type Status int

const (
	// Passed indicates every step of the example held.
	Passed Status = iota
	// Failed indicates a step did not hold.
	Failed
	// Skipped indicates the example was not run.
	Skipped
)

var statusNames = map[Status]string{
	Passed:  "passed",
	Failed:  "failed",
	Skipped: "skipped",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}

	return "unknown"
}

// MarshalYAML stores the status by name.
func (s Status) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML reads a status written by MarshalYAML.
func (s *Status) UnmarshalYAML(node *yaml.Node) error {
	for status, name := range statusNames {
		if node.Value == name {
			*s = status
			return nil
		}
	}

	return fmt.Errorf("unknown status %q", node.Value)
}

// ExampleResult is the outcome of one example for one alias.
type ExampleResult struct {
	Desc   string `yaml:"desc"`
	Status Status `yaml:"status"`
	Step   int    `yaml:"step,omitempty"`
	Reason string `yaml:"reason,omitempty"`
	Diff   string `yaml:"diff,omitempty"`
}

// Report holds every example result of a single alias.
type Report struct {
	Alias   string          `yaml:"alias"`
	Text    string          `yaml:"text"`
	Results []ExampleResult `yaml:"results"`
}

// Counts returns the number of passed and failed examples.
func (r Report) Counts() (passed, failed int) {
	for _, result := range r.Results {
		switch result.Status {
		case Passed:
			passed++
		case Failed:
			failed++
		case Skipped:
			// Skipped examples count towards neither.
		}
	}

	return passed, failed
}

// Passed reports whether no example failed.
func (r Report) Passed() bool {
	_, failed := r.Counts()
	return failed == 0
}
