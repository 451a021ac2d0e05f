// Package extract turns a filtered manifest into a canonical
// BrowserCandidate record.
package extract

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/quantmind-br/webpick/internal/core"
	"github.com/quantmind-br/webpick/internal/fsops"
	"github.com/quantmind-br/webpick/internal/manifest"
	"github.com/spf13/afero"
)

// Required manifest keys. Absence or wrong type of any of these fails
// extraction with an error naming the key.
const (
	keyExecutable = "CFBundleExecutable"
	keyName       = "CFBundleName"
	keyVersion    = "CFBundleShortVersionString"
)

// Optional keys, defaulting to empty values.
const (
	keyIconFile   = "CFBundleIconFile"
	keyIdentifier = "CFBundleIdentifier"
	keyInfoString = "CFBundleGetInfoString"
)

// MissingFieldError reports a required manifest field that is absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required field %q missing", e.Field)
}

// WrongTypeError reports a required manifest field with a non-string value.
type WrongTypeError struct {
	Field string
}

func (e *WrongTypeError) Error() string {
	return fmt.Sprintf("required field %q is not a string", e.Field)
}

// Extract pulls executable path, display name and version out of doc,
// which is expected to have passed the URL-capability filter. appRoot is
// the application bundle directory. A missing executable on disk is
// recorded in the candidate, never treated as an extraction failure.
func Extract(fs afero.Fs, doc *manifest.Document, appRoot string) (core.BrowserCandidate, error) {
	exeName, err := requiredString(doc, keyExecutable)
	if err != nil {
		return core.BrowserCandidate{}, err
	}
	name, err := requiredString(doc, keyName)
	if err != nil {
		return core.BrowserCandidate{}, err
	}
	version, err := requiredString(doc, keyVersion)
	if err != nil {
		return core.BrowserCandidate{}, err
	}

	exePath := filepath.Join(appRoot, "Contents", "MacOS", exeName)
	exeExists := fsops.Exists(fs, exePath)

	binType := core.BinaryNone
	if exeExists {
		binType = DetectBinaryType(fs, exePath)
	}

	iconPath, iconResolved := resolveIconPath(fs, doc, appRoot)

	cand := core.BrowserCandidate{
		ExePath:     exePath,
		DisplayName: name,
		Version: core.VersionInfo{
			ProductName:     name,
			ProductVersion:  version,
			CompanyName:     optionalString(doc, keyIdentifier),
			FileDescription: optionalString(doc, keyInfoString),
			BinaryType:      binType,
		},
		IconPath:     iconPath,
		ExeExists:    exeExists,
		IconResolved: iconResolved,
	}

	return cand, nil
}

// requiredString maps manifest lookup failures onto the extraction error
// taxonomy so diagnostics name the offending key.
func requiredString(doc *manifest.Document, key string) (string, error) {
	value, err := doc.String(key)
	if err != nil {
		var missing *manifest.MissingKeyError
		if errors.As(err, &missing) {
			return "", &MissingFieldError{Field: key}
		}
		return "", &WrongTypeError{Field: key}
	}
	return value, nil
}

// optionalString returns the value under key or "" when absent or
// wrong-typed. Optional identity fields never fail extraction.
func optionalString(doc *manifest.Document, key string) string {
	value, err := doc.String(key)
	if err != nil {
		return ""
	}
	return value
}

// resolveIconPath locates the bundle icon declared by the manifest under
// Contents/Resources. CFBundleIconFile is commonly written without the
// .icns extension.
func resolveIconPath(fs afero.Fs, doc *manifest.Document, appRoot string) (string, bool) {
	iconFile := optionalString(doc, keyIconFile)
	if iconFile == "" {
		return "", false
	}

	if filepath.Ext(iconFile) == "" {
		iconFile += ".icns"
	}

	path := filepath.Join(appRoot, "Contents", "Resources", iconFile)
	return path, fsops.Exists(fs, path)
}

// IsRequiredFieldError reports whether err is a MissingFieldError or
// WrongTypeError from this package.
func IsRequiredFieldError(err error) bool {
	var missing *MissingFieldError
	var wrong *WrongTypeError
	return errors.As(err, &missing) || errors.As(err, &wrong)
}

// FieldName returns the manifest key named by a required-field error, or
// "" when err carries none.
func FieldName(err error) string {
	var missing *MissingFieldError
	if errors.As(err, &missing) {
		return missing.Field
	}
	var wrong *WrongTypeError
	if errors.As(err, &wrong) {
		return wrong.Field
	}
	return ""
}
