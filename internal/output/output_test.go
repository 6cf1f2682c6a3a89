package output

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "discussion.md")
	if err := WriteFile(path, "# Roundtable Discussion\n"); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if string(data) != "# Roundtable Discussion\n" {
		t.Errorf("content = %q", string(data))
	}
}

func TestWriteFileBadPath(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "discussion.md"), "x")
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}
