// Package manifest reads per-application Info.plist descriptors and exposes
// typed field lookups that fail explicitly instead of panicking.
package manifest

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"howett.net/plist"
)

// ErrNotFound reports a manifest file that is missing or unreadable.
var ErrNotFound = errors.New("manifest not found")

// MalformedError reports a manifest that exists but cannot be decoded.
type MalformedError struct {
	Path string
	Err  error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed manifest %s: %v", e.Path, e.Err)
}

func (e *MalformedError) Unwrap() error { return e.Err }

// MissingKeyError reports an absent key. Callers decide whether the key was
// optional (default applies) or required (extraction fails).
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("key %q not present", e.Key)
}

// WrongTypeError reports a key present with an unexpected value shape.
type WrongTypeError struct {
	Key  string
	Want string
}

func (e *WrongTypeError) Error() string {
	return fmt.Sprintf("key %q is not a %s", e.Key, e.Want)
}

// Document is a decoded manifest. Values follow the plist container mapping:
// dictionaries are map[string]interface{}, arrays are []interface{}.
type Document struct {
	Path string

	root map[string]interface{}
}

// Reader loads manifests from an afero filesystem.
type Reader struct {
	fs afero.Fs
}

// NewReader creates a manifest reader backed by fs.
func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

// Read loads and decodes the manifest at path. A missing or unreadable file
// wraps ErrNotFound; undecodable content yields a MalformedError.
func (r *Reader) Read(path string) (*Document, error) {
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, path, err)
	}

	var root map[string]interface{}
	if _, err := plist.Unmarshal(data, &root); err != nil {
		return nil, &MalformedError{Path: path, Err: err}
	}

	return &Document{Path: path, root: root}, nil
}

// Has reports whether key is present at the top level.
func (d *Document) Has(key string) bool {
	_, ok := d.root[key]
	return ok
}

// String returns the string value stored under key.
func (d *Document) String(key string) (string, error) {
	raw, ok := d.root[key]
	if !ok {
		return "", &MissingKeyError{Key: key}
	}
	s, ok := raw.(string)
	if !ok {
		return "", &WrongTypeError{Key: key, Want: "string"}
	}
	return s, nil
}

// Array returns the array value stored under key.
func (d *Document) Array(key string) ([]interface{}, error) {
	raw, ok := d.root[key]
	if !ok {
		return nil, &MissingKeyError{Key: key}
	}
	arr, ok := raw.([]interface{})
	if !ok {
		return nil, &WrongTypeError{Key: key, Want: "array"}
	}
	return arr, nil
}
