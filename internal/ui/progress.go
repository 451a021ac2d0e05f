package ui

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
)

// ScanBar wraps progressbar/v3 for the discovery scan.
type ScanBar struct {
	bar *progressbar.ProgressBar
}

// NewScanBar creates a progress bar covering total application entries.
func NewScanBar(total int) *ScanBar {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetDescription("scanning applications"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(15),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
	)

	return &ScanBar{bar: bar}
}

// Step advances the bar to done of total. The scanner reports absolute
// progress, so Set is used rather than Add.
func (s *ScanBar) Step(done, total int) {
	s.bar.ChangeMax(total)
	_ = s.bar.Set(done)
}

// Finish completes the bar.
func (s *ScanBar) Finish() {
	_ = s.bar.Finish()
}

// Clear removes the bar from the terminal.
func (s *ScanBar) Clear() {
	_ = s.bar.Clear()
}
