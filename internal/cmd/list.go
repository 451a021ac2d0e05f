package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/quantmind-br/webpick/internal/config"
	"github.com/quantmind-br/webpick/internal/core"
	"github.com/quantmind-br/webpick/internal/display"
	"github.com/quantmind-br/webpick/internal/scan"
	"github.com/quantmind-br/webpick/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command
func NewListCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var (
		jsonOutput      bool
		filterName      string
		showDiagnostics bool
		noProgress      bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed browsers",
		Long:  `Scan the application directories and list every installed web browser.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			items, diags := runScan(ctx, cfg, log, !noProgress && !jsonOutput)

			filtered := filterItems(items, filterName)

			// JSON output
			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(listReport{Browsers: filtered, Diagnostics: diags})
			}

			// Check if empty
			if len(filtered) == 0 {
				if filterName != "" {
					ui.PrintWarning("No browsers found matching filter")
				} else {
					ui.PrintInfo("No browsers found")
				}
				return nil
			}

			printListSummary(items, filtered, filterName)
			printBrowserTable(cmd, filtered)

			if showDiagnostics && len(diags) > 0 {
				printDiagnostics(cmd, diags)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	cmd.Flags().StringVar(&filterName, "name", "", "filter by browser name (partial match)")
	cmd.Flags().BoolVarP(&showDiagnostics, "diagnostics", "d", false, "show scan diagnostics")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "disable the progress bar")

	return cmd
}

// listReport is the JSON shape emitted by list --json.
type listReport struct {
	Browsers    []display.Item        `json:"browsers"`
	Diagnostics []core.ScanDiagnostic `json:"diagnostics,omitempty"`
}

// runScan performs a full discovery scan and returns the presentable
// browser list plus the non-fatal diagnostics collected along the way.
func runScan(ctx context.Context, cfg *config.Config, log *zerolog.Logger, progress bool) ([]display.Item, []core.ScanDiagnostic) {
	opts := []scan.Option{scan.WithWorkers(cfg.Scan.Workers)}

	var bar *ui.ScanBar
	if progress {
		bar = ui.NewScanBar(0)
		opts = append(opts, scan.WithProgress(bar.Step))
	}

	scanner := scan.New(afero.NewOsFs(), log, opts...)
	candidates, diags := scanner.Scan(ctx, cfg.Scan.Roots)

	if bar != nil {
		bar.Clear()
	}

	return display.BuildList(candidates), diags
}

// filterItems filters items by name (case-insensitive partial match)
func filterItems(items []display.Item, filterName string) []display.Item {
	if filterName == "" {
		return items
	}

	filtered := make([]display.Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), strings.ToLower(filterName)) {
			filtered = append(filtered, item)
		}
	}

	return filtered
}

// printListSummary prints a summary line above the table
func printListSummary(all, filtered []display.Item, filterName string) {
	ui.PrintHeader("Installed Browsers")

	fmt.Printf("Total: %d browsers", len(all))
	if len(filtered) != len(all) {
		fmt.Printf(" (showing %d filtered)", len(filtered))
	}
	fmt.Println()

	if filterName != "" {
		ui.PrintInfo("Active filter: %s", filterName)
	}

	fmt.Println()
}

// printBrowserTable prints the browser list as a table
func printBrowserTable(cmd *cobra.Command, items []display.Item) {
	table := tablewriter.NewTable(cmd.OutOrStdout(),
		tablewriter.WithHeader([]string{"Name", "Version", "Type", "Exe", "Path"}),
		tablewriter.WithAlignment(tw.MakeAlign(5, tw.AlignLeft)),
		tablewriter.WithSymbols(tw.NewSymbols(tw.StyleNone)),
	)

	for _, item := range items {
		version := item.Candidate.Version.ProductVersion
		if version == "" {
			version = "-"
		}

		// Truncate path if too long
		path := item.Candidate.ExePath
		if len(path) > 48 {
			path = "..." + path[len(path)-45:]
		}

		table.Append(
			item.Title,
			version,
			ui.ColorizeBinaryType(item.Candidate.Version.BinaryType),
			ui.ExistsMark(item.Candidate.ExeExists),
			path,
		)
	}

	table.Render()
}

// printDiagnostics prints scan diagnostics as a table
func printDiagnostics(cmd *cobra.Command, diags []core.ScanDiagnostic) {
	fmt.Println()
	ui.PrintHeader("Scan Diagnostics")

	table := tablewriter.NewTable(cmd.OutOrStdout(),
		tablewriter.WithHeader([]string{"Stage", "Path", "Message"}),
		tablewriter.WithAlignment(tw.MakeAlign(3, tw.AlignLeft)),
		tablewriter.WithSymbols(tw.NewSymbols(tw.StyleNone)),
	)

	for _, d := range diags {
		table.Append(d.Stage, d.Path, d.Message)
	}

	table.Render()
}
