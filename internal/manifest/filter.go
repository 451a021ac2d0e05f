package manifest

import (
	"errors"
	"fmt"
)

// Manifest keys for URL handler declarations.
const (
	keyURLTypes   = "CFBundleURLTypes"
	keyURLSchemes = "CFBundleURLSchemes"
)

// Browser-qualifying schemes. Matched exactly, case-sensitive.
const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
)

// SchemeSet is the flattened set of URL schemes a manifest declares.
type SchemeSet map[string]struct{}

// Has reports exact membership of scheme.
func (s SchemeSet) Has(scheme string) bool {
	_, ok := s[scheme]
	return ok
}

// HasBrowserScheme reports whether the set qualifies the application as a
// web browser: it must declare http and/or https.
func (s SchemeSet) HasBrowserScheme() bool {
	return s.Has(SchemeHTTP) || s.Has(SchemeHTTPS)
}

// EntryError records one structurally malformed URL-type entry. A bad entry
// never excludes schemes collected from its siblings.
type EntryError struct {
	Index int
	Field string
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("url type entry %d: %s: %v", e.Index, e.Field, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }

// SupportedSchemes flattens every scheme declared across the manifest's
// URL-type entries into a single set. Entries are folded independently:
// schemes from well-formed entries are collected even when sibling entries
// are unreadable, and each unreadable entry is reported as an EntryError.
// The returned error is non-nil only when the URL-type declaration itself
// has the wrong shape. A manifest with no declaration at all yields an
// empty set with no error.
func SupportedSchemes(doc *Document) (SchemeSet, []EntryError, error) {
	if !doc.Has(keyURLTypes) {
		return SchemeSet{}, nil, nil
	}
	entries, err := doc.Array(keyURLTypes)
	if err != nil {
		return nil, nil, err
	}

	schemes := SchemeSet{}
	var entryErrs []EntryError

	for i, raw := range entries {
		entry, ok := raw.(map[string]interface{})
		if !ok {
			entryErrs = append(entryErrs, EntryError{
				Index: i,
				Field: keyURLTypes,
				Err:   errors.New("entry is not a dictionary"),
			})
			continue
		}

		rawSchemes, ok := entry[keyURLSchemes]
		if !ok {
			// A URL type may declare no schemes at all (document handlers
			// do this); nothing to collect, nothing to report.
			continue
		}

		list, ok := rawSchemes.([]interface{})
		if !ok {
			entryErrs = append(entryErrs, EntryError{
				Index: i,
				Field: keyURLSchemes,
				Err:   errors.New("schemes value is not an array"),
			})
			continue
		}

		for j, rawScheme := range list {
			scheme, ok := rawScheme.(string)
			if !ok {
				entryErrs = append(entryErrs, EntryError{
					Index: i,
					Field: fmt.Sprintf("%s[%d]", keyURLSchemes, j),
					Err:   errors.New("scheme is not a string"),
				})
				continue
			}
			schemes[scheme] = struct{}{}
		}
	}

	return schemes, entryErrs, nil
}
