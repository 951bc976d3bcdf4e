package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/docdesk/internal/cli"
	"github.com/pluqqy/docdesk/pkg/client"
	"github.com/pluqqy/docdesk/pkg/models"
)

var (
	deleteForce bool
)

// NewDeleteCommand creates the delete command
func NewDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a document",
		Long: `Permanently delete a document from the document service.

This action cannot be undone.

Examples:
  # Delete with confirmation
  docdesk delete 42

  # Skip the prompt
  docdesk delete 42 --force`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.ValidateDocumentID(args[0])
		},
		RunE: runDelete,
	}

	cmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Force deletion without confirmation")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	id := models.DocumentID(args[0])

	return withContext(cmd, func(cc *cli.CommandContext) error {
		doc, err := cc.Client.Get(cmd.Context(), id)
		if err != nil {
			if errors.Is(err, client.ErrNotFound) {
				return fmt.Errorf("document not found: %s", id)
			}
			return fmt.Errorf("failed to fetch document %s: %w", id, err)
		}

		if !deleteForce {
			prompt := fmt.Sprintf("Are you sure you want to delete the document: %s?", doc.Name)
			confirmed, err := cli.Confirm(prompt, false)
			if err != nil {
				return err
			}
			if !confirmed {
				cli.PrintInfo("Deletion cancelled")
				return nil
			}
		}

		if err := cc.Client.Delete(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete the document: %w", err)
		}

		cli.PrintSuccess("Deleted document: %s", doc.Name)
		return nil
	})
}
