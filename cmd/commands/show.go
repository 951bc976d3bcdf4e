package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/docdesk/internal/cli"
	"github.com/pluqqy/docdesk/pkg/client"
	"github.com/pluqqy/docdesk/pkg/models"
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a document",
		Long: `Print a document's metadata followed by its content.

Examples:
  docdesk show 42
  docdesk show 42 -o yaml`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.ValidateDocumentID(args[0])
		},
		RunE: runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	id := models.DocumentID(args[0])
	return withContext(cmd, func(cc *cli.CommandContext) error {
		doc, err := cc.Client.Get(cmd.Context(), id)
		if err != nil {
			if errors.Is(err, client.ErrNotFound) {
				return fmt.Errorf("document not found: %s", id)
			}
			return fmt.Errorf("failed to fetch document %s: %w", id, err)
		}

		if format != string(cli.FormatText) {
			return cli.OutputResults(cmd.OutOrStdout(), format, doc)
		}
		return cli.WriteDocument(cmd.OutOrStdout(), *doc)
	})
}
