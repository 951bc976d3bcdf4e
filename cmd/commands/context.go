package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/pluqqy/docdesk/internal/cli"
)

const shutdownTimeout = 5 * time.Second

// withContext builds the command context from the root's flags, runs fn and
// tears telemetry down afterwards.
func withContext(cmd *cobra.Command, fn func(cc *cli.CommandContext) error) error {
	configFile, _ := cmd.Flags().GetString("config")
	cc, err := cli.NewCommandContext(cmd.Context(), configFile, cmd.Flags(), cmd.Root().Version)
	if err != nil {
		return err
	}

	runErr := fn(cc)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := cc.Close(ctx); err != nil {
		cli.PrintWarning("telemetry shutdown: %v", err)
	}
	return runErr
}

func outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("output")
	if format == "" {
		format = string(cli.FormatText)
	}
	if err := cli.ValidateOutputFormat(format); err != nil {
		return "", err
	}
	return format, nil
}
