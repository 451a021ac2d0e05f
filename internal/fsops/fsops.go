// Package fsops holds small filesystem helpers shared by the discovery
// pipeline.
package fsops

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// Exists checks if a path exists
func Exists(fs afero.Fs, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}

// IsDir checks if a path is a directory
func IsDir(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// DirEntries lists the immediate children of dir.
func DirEntries(fs afero.Fs, dir string) ([]os.FileInfo, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}
	return entries, nil
}
