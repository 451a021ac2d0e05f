// Package display prepares scan results for presentation.
package display

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/quantmind-br/webpick/internal/core"
)

// Item is one presentable row: a title, a compact subtitle built from the
// identity metadata, and the underlying candidate.
type Item struct {
	Title     string
	Subtitle  string
	Candidate core.BrowserCandidate
}

// BuildList sorts and deduplicates candidates for display. Ordering is a
// stable, case-sensitive lexicographic sort on display name (ties keep
// discovery order). Candidates sharing a canonicalized executable path
// collapse to the first one discovered.
func BuildList(candidates []core.BrowserCandidate) []Item {
	seen := make(map[string]struct{}, len(candidates))
	items := make([]Item, 0, len(candidates))

	for _, cand := range candidates {
		key := dedupKey(cand.ExePath)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		items = append(items, Item{
			Title:     cand.DisplayName,
			Subtitle:  subtitle(cand.Version),
			Candidate: cand,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Title < items[j].Title
	})

	return items
}

// dedupKey canonicalizes an executable path so the same binary reached
// through different spellings or symlinks collapses to one entry. Paths
// that cannot be resolved (absent executables) fall back to a lexical
// clean.
func dedupKey(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	return filepath.Clean(path)
}

// subtitle joins the non-empty identity fields, mirroring what a list row
// shows beneath the program name.
func subtitle(v core.VersionInfo) string {
	parts := make([]string, 0, 4)
	for _, s := range []string{
		v.ProductVersion,
		string(v.BinaryType),
		v.CompanyName,
		v.FileDescription,
	} {
		if s != "" && s != string(core.BinaryNone) {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " | ")
}
