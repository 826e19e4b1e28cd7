package adapter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "scanspec.dev/pkg/scanspec/internal/model"
	"scanspec.dev/pkg/scanspec/pkg/pathlike"
)

const reportExt = ".yaml"

// ReportStore persists conformance reports, one file per alias.
type ReportStore interface {
	SaveReports(dir pathlike.PathLike, reports []m.Report) error
	LoadReports(dir pathlike.PathLike) ([]m.Report, error)
}

// YAMLReportStore stores reports as YAML documents named after the alias.
type YAMLReportStore struct {
	fs FSAdapter
}

// NewReportStore creates a YAMLReportStore backed by fs.
func NewReportStore(fs FSAdapter) *YAMLReportStore {
	return &YAMLReportStore{fs: fs}
}

// SaveReports writes every report below dir, creating it when needed.
func (s *YAMLReportStore) SaveReports(dir pathlike.PathLike, reports []m.Report) error {
	root := m.Path(dir.ToPath())
	if strings.TrimSpace(string(root)) == "" {
		return fmt.Errorf("reports directory is empty")
	}

	if err := s.fs.MkdirAll(root); err != nil {
		return fmt.Errorf("create reports directory: %w", err)
	}

	for _, report := range reports {
		if report.Alias == "" || strings.ContainsAny(report.Alias, `/\`) {
			return fmt.Errorf("invalid alias name %q", report.Alias)
		}

		data, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("encode report %s: %w", report.Alias, err)
		}

		path := s.fs.JoinPath(string(root), report.Alias+reportExt)
		if err := s.fs.WriteFile(path, data, 0o600); err != nil {
			return fmt.Errorf("write report %s: %w", path, err)
		}

		slog.Debug("saved report", "path", path, "alias", report.Alias)
	}

	return nil
}

// LoadReports reads every report file directly inside dir, ordered by alias.
func (s *YAMLReportStore) LoadReports(dir pathlike.PathLike) ([]m.Report, error) {
	root := m.Path(dir.ToPath())

	info, err := s.fs.FileInfo(root)
	if err != nil {
		return nil, fmt.Errorf("reports directory %s: %w", root, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("reports path %s is not a directory", root)
	}

	var files []string

	err = s.fs.Walk(root, false, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() && filepath.Ext(path) == reportExt {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	reports := make([]m.Report, 0, len(files))

	for _, file := range files {
		data, err := s.fs.ReadFile(m.Path(file))
		if err != nil {
			return nil, fmt.Errorf("read report %s: %w", file, err)
		}

		var report m.Report
		if err := yaml.Unmarshal(data, &report); err != nil {
			return nil, fmt.Errorf("decode report %s: %w", file, err)
		}

		reports = append(reports, report)
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Alias < reports[j].Alias
	})

	slog.Debug("loaded reports", "path", root, "count", len(reports))

	return reports, nil
}
