package cmd

import (
	"fmt"

	"github.com/quantmind-br/webpick/internal/config"
	"github.com/quantmind-br/webpick/internal/core"
	"github.com/quantmind-br/webpick/internal/icon"
	"github.com/quantmind-br/webpick/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// NewInfoCmd creates the info command
func NewInfoCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var resolveIcon bool

	cmd := &cobra.Command{
		Use:   "info <browser-name>",
		Short: "Show browser information",
		Long:  `Show detailed information about an installed browser.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			ctx := cmd.Context()

			items, _ := runScan(ctx, cfg, log, true)
			if len(items) == 0 {
				ui.PrintError("no browsers found")
				return fmt.Errorf("no browsers found")
			}

			item, err := findByName(items, name)
			if err != nil {
				ui.PrintError("%v", err)
				ui.PrintInfo("Use 'webpick list' to see installed browsers")
				return err
			}

			printBrowserInfo(&item.Candidate)

			if resolveIcon {
				printIconInfo(&item.Candidate, cfg.Icon.Size)
			}

			log.Info().
				Str("name", item.Title).
				Str("exe", item.Candidate.ExePath).
				Msg("displayed browser info")

			return nil
		},
	}

	cmd.Flags().BoolVar(&resolveIcon, "resolve-icon", false, "decode the icon resource and report its dimensions")

	return cmd
}

// printBrowserInfo displays detailed browser information
func printBrowserInfo(cand *core.BrowserCandidate) {
	ui.PrintHeader(fmt.Sprintf("Browser Information: %s", cand.DisplayName))
	fmt.Println()

	ui.PrintKeyValue("Name", cand.DisplayName)

	version := cand.Version.ProductVersion
	if version == "" {
		version = "(not specified)"
	}
	ui.PrintKeyValue("Version", version)
	ui.PrintKeyValue("Binary Type", ui.ColorizeBinaryType(cand.Version.BinaryType))

	if cand.Version.CompanyName != "" {
		ui.PrintKeyValue("Company", cand.Version.CompanyName)
	}
	if cand.Version.FileDescription != "" {
		ui.PrintKeyValue("Description", cand.Version.FileDescription)
	}

	fmt.Println()
	ui.PrintKeyValue("Executable", cand.ExePath)
	ui.PrintKeyValue("Exists", ui.ExistsMark(cand.ExeExists))

	if len(cand.Arguments) > 0 {
		ui.PrintKeyValue("Arguments", fmt.Sprintf("%v", cand.Arguments))
	}

	if cand.IconPath != "" {
		ui.PrintKeyValue("Icon", cand.IconPath)
	} else {
		ui.PrintKeyValue("Icon", "(none)")
	}
}

// printIconInfo decodes the icon resource and reports the converted image
func printIconInfo(cand *core.BrowserCandidate, size int) {
	fmt.Println()

	if cand.IconPath == "" {
		ui.PrintWarning("no icon resource declared")
		return
	}

	img, err := icon.ResolveFile(afero.NewOsFs(), cand.IconPath, size)
	if err != nil {
		ui.PrintWarning("icon could not be decoded: %v", err)
		return
	}

	ui.PrintKeyValue("Icon Format", img.Format)
	ui.PrintKeyValue("Icon Size", fmt.Sprintf("%dx%d", img.Width, img.Height))
	ui.PrintKeyValue("Icon Bytes", fmt.Sprintf("%d", len(img.Pix)))
}
