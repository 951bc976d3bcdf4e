package commands

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pluqqy/docdesk/internal/cli"
	"github.com/pluqqy/docdesk/pkg/tui"
)

var (
	flagQuiet   bool
	flagNoColor bool
	flagYes     bool
)

// NewRootCommand creates the docdesk command tree. Without a subcommand it
// starts the terminal UI.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:     "docdesk",
		Short:   "Terminal client for the document service",
		Long:    `Docdesk browses, searches, creates and deletes documents held by a remote document service. Run it without arguments for the interactive TUI, or use the subcommands from scripts.`,
		Version: version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cli.SetGlobalFlags(flagQuiet, flagNoColor, flagYes)
		},
		RunE:          runTUI,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "Config file (default $XDG_CONFIG_HOME/docdesk/config.yaml)")
	pf.String("base-url", "http://localhost:8080", "Document service base URL")
	pf.Int("page-size", 10, "Rows per page")
	pf.Duration("debounce", 500*time.Millisecond, "Search debounce delay in the TUI")
	pf.Duration("request-timeout", 0, "Per-request timeout (0 means none)")
	pf.String("log-file", "", "Write logs to this file")
	pf.String("log-level", "info", "Log level: debug, info, warn or error")
	pf.String("log-format", "console", "Log format: console or json")
	pf.String("metrics-addr", "", "Serve prometheus metrics on this address, e.g. :9090")
	pf.String("tracing-endpoint", "", "OTLP/HTTP endpoint for traces")
	pf.StringP("output", "o", "text", "Output format: text, json or yaml")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
	pf.BoolVar(&flagNoColor, "no-color", false, "Disable symbols and color in messages")
	pf.BoolVarP(&flagYes, "yes", "y", false, "Answer yes to confirmation prompts")

	root.AddCommand(
		NewListCommand(),
		NewShowCommand(),
		NewCreateCommand(),
		NewDeleteCommand(),
		NewConfigCommand(),
		newVersionCommand(),
	)

	return root
}

func runTUI(cmd *cobra.Command, args []string) error {
	return withContext(cmd, func(cc *cli.CommandContext) error {
		app := tui.NewApp(tui.Options{
			Context:  cmd.Context(),
			Service:  cc.Client,
			Logger:   cc.Logger,
			PageSize: cc.Config.PageSize,
			Debounce: cc.Config.Debounce,
		})
		p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to start the terminal user interface: %w", err)
		}
		return nil
	})
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of docdesk",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "docdesk version %s\n", cmd.Root().Version)
		},
	}
}
