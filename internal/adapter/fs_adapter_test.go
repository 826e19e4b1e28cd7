package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "scanspec.dev/pkg/scanspec/internal/model"
)

func TestLocalFSAdapter_Walk(t *testing.T) {
	t.Run("non recursive skips nested files", func(t *testing.T) {
		adapter := NewLocalFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "peek.yaml"), "alias: peek\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "peep.yaml"), "alias: peep\n")

		var visited []string
		err := adapter.Walk(m.Path(root), false, func(path string, _ os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		if containsPath(visited, filepath.Join(nestedDir, "peep.yaml")) {
			t.Fatalf("Walk() unexpectedly visited nested file when recursive is false")
		}

		if !containsPath(visited, filepath.Join(root, "peek.yaml")) {
			t.Fatalf("Walk() did not visit top-level file")
		}
	})

	t.Run("recursive visits nested files", func(t *testing.T) {
		adapter := NewLocalFSAdapter()

		root := t.TempDir()
		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "peep.yaml")
		writeTestFile(t, child, "alias: peep\n")

		var visited []string
		err := adapter.Walk(m.Path(root), true, func(path string, _ os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		if !containsPath(visited, child) {
			t.Fatalf("Walk() did not visit nested file when recursive")
		}
	})
}

func TestLocalFSAdapter_ReadWriteFile(t *testing.T) {
	adapter := NewLocalFSAdapter()

	path := adapter.JoinPath(t.TempDir(), "sub", "report.yaml")
	if err := adapter.MkdirAll(m.Path(filepath.Dir(string(path)))); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	if err := adapter.WriteFile(path, []byte("alias: peek\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := adapter.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != "alias: peek\n" {
		t.Fatalf("ReadFile() = %q", got)
	}

	info, err := adapter.FileInfo(path)
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if info.IsDir() {
		t.Fatalf("FileInfo() reported a directory for %s", path)
	}
}

func TestLocalFSAdapter_FileInfoMissing(t *testing.T) {
	adapter := NewLocalFSAdapter()

	_, err := adapter.FileInfo(m.Path(filepath.Join(t.TempDir(), "missing")))
	if !os.IsNotExist(err) {
		t.Fatalf("FileInfo() error = %v, want not-exist", err)
	}
}

func TestLocalFSAdapter_JoinPath(t *testing.T) {
	adapter := NewLocalFSAdapter()

	got := adapter.JoinPath("a", "b", "c.yaml")
	if got != m.Path(filepath.Join("a", "b", "c.yaml")) {
		t.Fatalf("JoinPath() = %s", got)
	}
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()

	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}
