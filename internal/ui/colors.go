package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/quantmind-br/webpick/internal/core"
)

// Color scheme for webpick
var (
	Success = color.New(color.FgGreen)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow)
	Info    = color.New(color.FgCyan)

	Highlight = color.New(color.FgHiCyan, color.Bold)
	Muted     = color.New(color.Faint)
	Bold      = color.New(color.Bold)

	CheckMark = color.GreenString("✓")
	CrossMark = color.RedString("✗")
	Arrow     = color.CyanString("→")

	// Binary type colors
	typeMachO     = color.New(color.FgMagenta)
	typeUniversal = color.New(color.FgHiMagenta)
	typeELF       = color.New(color.FgBlue)
	typePE        = color.New(color.FgCyan)
)

// InitColors initializes color settings based on environment
func InitColors() {
	if os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}
	if os.Getenv("TERM") == "dumb" {
		color.NoColor = true
	}
}

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	Success.Fprintf(os.Stdout, "%s %s\n", CheckMark, fmt.Sprintf(format, args...))
}

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	Error.Fprintf(os.Stderr, "%s Error: %s\n", CrossMark, fmt.Sprintf(format, args...))
}

// PrintWarning prints a warning message
func PrintWarning(format string, args ...interface{}) {
	Warning.Fprintf(os.Stderr, "Warning: %s\n", fmt.Sprintf(format, args...))
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...interface{}) {
	Info.Fprintf(os.Stdout, "%s %s\n", Arrow, fmt.Sprintf(format, args...))
}

// PrintHeader prints a section header
func PrintHeader(text string) {
	fmt.Fprintln(os.Stdout)
	Bold.Fprintln(os.Stdout, text)
	Muted.Fprintln(os.Stdout, "────────────────────────────────────────")
}

// PrintKeyValue prints a key-value pair with color
func PrintKeyValue(key, value string) {
	Bold.Fprintf(os.Stdout, "%s: ", key)
	fmt.Fprintln(os.Stdout, value)
}

// ExistsMark renders a presence flag as a check or cross.
func ExistsMark(exists bool) string {
	if exists {
		return CheckMark
	}
	return CrossMark
}

// ColorizeBinaryType returns a colored binary type string
func ColorizeBinaryType(binType core.BinaryType) string {
	switch binType {
	case core.BinaryMachO:
		return typeMachO.Sprint(string(binType))
	case core.BinaryMachOUniversal:
		return typeUniversal.Sprint(string(binType))
	case core.BinaryELF:
		return typeELF.Sprint(string(binType))
	case core.BinaryPE:
		return typePE.Sprint(string(binType))
	default:
		return Muted.Sprint("-")
	}
}
