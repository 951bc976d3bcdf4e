package commands

import (
	"github.com/spf13/cobra"

	"github.com/pluqqy/docdesk/internal/cli"
	"github.com/pluqqy/docdesk/internal/config"
)

// NewConfigCommand creates the config command
func NewConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after merging defaults, the config file,
DOCDESK_* environment variables and flags.

Examples:
  docdesk config
  docdesk config -o json
  DOCDESK_PAGE_SIZE=25 docdesk config`,
		Args: cobra.NoArgs,
		RunE: runConfig,
	}
}

func runConfig(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("output")
	if format == "" || format == string(cli.FormatText) {
		format = string(cli.FormatYAML)
	}
	if err := cli.ValidateOutputFormat(format); err != nil {
		return err
	}

	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.LoadOptions{ConfigFile: configFile, Flags: cmd.Flags()})
	if err != nil {
		return err
	}

	return cli.OutputResults(cmd.OutOrStdout(), format, cfg.Settings())
}
