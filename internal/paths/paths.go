// Package paths resolves the platform-specific directories webpick reads
// and writes.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultRoots returns the application install directories scanned on the
// current platform.
func DefaultRoots() []string {
	homeDir, _ := os.UserHomeDir()
	return DefaultRootsFor(runtime.GOOS, homeDir)
}

// DefaultRootsFor is the testable core of DefaultRoots.
func DefaultRootsFor(goos, homeDir string) []string {
	switch goos {
	case "darwin":
		roots := []string{"/Applications", "/System/Applications"}
		if homeDir != "" {
			roots = append(roots, filepath.Join(homeDir, "Applications"))
		}
		return roots
	case "windows":
		var roots []string
		for _, env := range []string{"ProgramFiles", "ProgramFiles(x86)"} {
			if dir := os.Getenv(env); dir != "" {
				roots = append(roots, dir)
			}
		}
		if len(roots) == 0 {
			roots = []string{`C:\Program Files`}
		}
		return roots
	default:
		if homeDir == "" {
			return nil
		}
		return []string{filepath.Join(homeDir, "Applications")}
	}
}

// DataDir returns the directory holding webpick's own files (log file by
// default).
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", "webpick")
}

// ConfigDir returns the directory searched for config.toml.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", "webpick")
}
