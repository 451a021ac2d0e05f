package ui

import "testing"

func TestScanBarSteps(t *testing.T) {
	bar := NewScanBar(10)

	bar.Step(3, 10)
	bar.Step(10, 10)
	bar.Finish()
	bar.Clear()
}

func TestScanBarGrowingTotal(t *testing.T) {
	bar := NewScanBar(0)

	// The scanner may learn the total after the bar exists.
	bar.Step(1, 5)
	bar.Step(5, 5)
	bar.Finish()
}
