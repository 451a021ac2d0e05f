package fsops

import (
	"testing"

	"github.com/spf13/afero"
)

func TestExists(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/tmp/present", []byte("x"), 0o644)

	if !Exists(fs, "/tmp/present") {
		t.Error("Exists() = false for existing file")
	}
	if Exists(fs, "/tmp/absent") {
		t.Error("Exists() = true for missing file")
	}
}

func TestIsDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	fs.MkdirAll("/apps/Safari.app", 0o755)
	afero.WriteFile(fs, "/apps/file", []byte("x"), 0o644)

	if !IsDir(fs, "/apps/Safari.app") {
		t.Error("IsDir() = false for directory")
	}
	if IsDir(fs, "/apps/file") {
		t.Error("IsDir() = true for regular file")
	}
	if IsDir(fs, "/apps/missing") {
		t.Error("IsDir() = true for missing path")
	}
}

func TestDirEntries(t *testing.T) {
	fs := afero.NewMemMapFs()
	fs.MkdirAll("/apps/A.app", 0o755)
	fs.MkdirAll("/apps/B.app", 0o755)

	entries, err := DirEntries(fs, "/apps")
	if err != nil {
		t.Fatalf("DirEntries() error = %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("len(entries) = %d, want 2", len(entries))
	}

	if _, err := DirEntries(fs, "/nowhere"); err == nil {
		t.Error("DirEntries() error = nil for missing directory")
	}
}
