package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/quantmind-br/webpick/internal/config"
	"github.com/quantmind-br/webpick/internal/display"
	"github.com/quantmind-br/webpick/internal/launch"
	"github.com/quantmind-br/webpick/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewOpenCmd creates the open command
func NewOpenCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var (
		withBrowser string
		useDefault  bool
	)

	cmd := &cobra.Command{
		Use:   "open <url>",
		Short: "Open a URL with a chosen browser",
		Long: `Open a URL with an installed browser.

Without flags an interactive picker lists the discovered browsers.
With --with the browser is matched by name; with --default the URL
goes straight to the system default browser.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := args[0]
			ctx := cmd.Context()

			timeout := time.Duration(cfg.Launch.TimeoutSeconds) * time.Second
			launcher := launch.New(log, timeout)

			// System default shortcut: no scan needed.
			if useDefault {
				if err := launcher.OpenDefault(url); err != nil {
					ui.PrintError("failed to open URL: %v", err)
					return fmt.Errorf("open default: %w", err)
				}
				ui.PrintSuccess("Opened with system default browser")
				return nil
			}

			items, _ := runScan(ctx, cfg, log, true)
			if len(items) == 0 {
				ui.PrintError("no browsers found")
				ui.PrintInfo("Use 'webpick list --diagnostics' to inspect the scan")
				return fmt.Errorf("no browsers found")
			}

			item, err := pickBrowser(items, withBrowser)
			if err != nil {
				return err
			}

			// The scan tolerates a momentarily absent executable; launching
			// one cannot. Offer the system default instead.
			if !item.Candidate.ExeExists {
				ui.PrintWarning("%s executable is missing: %s", item.Title, item.Candidate.ExePath)
				ok, err := confirmFallback("Open with the system default browser instead")
				if err != nil || !ok {
					return fmt.Errorf("launch cancelled")
				}
				if err := launcher.OpenDefault(url); err != nil {
					ui.PrintError("failed to open URL: %v", err)
					return fmt.Errorf("open default: %w", err)
				}
				ui.PrintSuccess("Opened with system default browser")
				return nil
			}

			if err := launcher.Open(ctx, item.Candidate, url); err != nil {
				ui.PrintError("failed to launch %s: %v", item.Title, err)
				return fmt.Errorf("launch browser: %w", err)
			}

			ui.PrintSuccess("Opened with %s", item.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&withBrowser, "with", "w", "", "browser name to open with (skips the picker)")
	cmd.Flags().BoolVar(&useDefault, "default", false, "use the system default browser")

	return cmd
}

// confirmFallback is a seam for tests; the command asks through the
// interactive prompt.
var confirmFallback = ui.ConfirmPrompt

// pickBrowser resolves the browser to launch, either by name or via the
// interactive picker.
func pickBrowser(items []display.Item, name string) (display.Item, error) {
	if name != "" {
		item, err := findByName(items, name)
		if err != nil {
			ui.PrintError("%v", err)
			ui.PrintInfo("Use 'webpick list' to see installed browsers")
		}
		return item, err
	}

	index, err := ui.SelectBrowser("Open with", items)
	if err != nil {
		return display.Item{}, err
	}
	return items[index], nil
}

// findByName matches a browser by display name: exact case-insensitive
// match first, then unique partial match.
func findByName(items []display.Item, name string) (display.Item, error) {
	lower := strings.ToLower(name)

	for _, item := range items {
		if strings.ToLower(item.Title) == lower {
			return item, nil
		}
	}

	var partial []display.Item
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), lower) {
			partial = append(partial, item)
		}
	}

	switch len(partial) {
	case 1:
		return partial[0], nil
	case 0:
		return display.Item{}, fmt.Errorf("no browser matches %q", name)
	default:
		names := make([]string, len(partial))
		for i, item := range partial {
			names[i] = item.Title
		}
		return display.Item{}, fmt.Errorf("browser name %q is ambiguous: %s", name, strings.Join(names, ", "))
	}
}
