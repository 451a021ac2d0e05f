package ui

import (
	"errors"
	"fmt"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/manifoldco/promptui"
	"github.com/quantmind-br/webpick/internal/display"
)

// SelectBrowser presents the discovered browsers and returns the index of
// the chosen one. Typing filters the list fuzzily by title.
func SelectBrowser(label string, items []display.Item) (int, error) {
	if len(items) == 0 {
		return -1, errors.New("no browsers to choose from")
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ .Title | cyan }} {{ .Subtitle | faint }}",
		Inactive: "  {{ .Title }} {{ .Subtitle | faint }}",
		Selected: "▸ {{ .Title | green }}",
	}

	prompt := promptui.Select{
		Label:     label,
		Items:     items,
		Templates: templates,
		Size:      minInt(10, len(items)),
		Searcher: func(input string, index int) bool {
			if index < 0 || index >= len(items) {
				return false
			}
			return fuzzy.MatchFold(input, items[index].Title)
		},
	}

	index, _, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrInterrupt) {
			return -1, fmt.Errorf("selection cancelled by user")
		}
		return -1, err
	}

	return index, nil
}

// ConfirmPrompt asks a yes/no confirmation question
func ConfirmPrompt(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}

	result, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, fmt.Errorf("operation cancelled by user")
		}
		return false, err
	}

	return result == "y", nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
