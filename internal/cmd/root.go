package cmd

import (
	"github.com/quantmind-br/webpick/internal/config"
	"github.com/quantmind-br/webpick/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd(cfg *config.Config, log *zerolog.Logger, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "webpick",
		Short:        "Pick which browser opens a URL",
		Long:         `webpick discovers the web browsers installed on this machine and lets you choose which one opens a given URL.`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			ui.InitColors()
		},
	}

	cmd.AddCommand(NewListCmd(cfg, log))
	cmd.AddCommand(NewOpenCmd(cfg, log))
	cmd.AddCommand(NewInfoCmd(cfg, log))
	cmd.AddCommand(NewCompletionCmd())
	cmd.AddCommand(NewVersionCmd(version))

	return cmd
}
