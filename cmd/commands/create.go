package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pluqqy/docdesk/internal/cli"
	"github.com/pluqqy/docdesk/pkg/models"
)

var (
	createName    string
	createContent string
	createFile    string
	createStdin   bool
	createEdit    bool
)

// NewCreateCommand creates the create command
func NewCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a document",
		Long: `Create a new document on the document service.

Content comes from exactly one of --content, --file or --stdin, or is
written in $EDITOR with --edit. Name and content are both required.

Examples:
  # Inline content
  docdesk create --name "Meeting Notes" --content "Agenda: ..."

  # From a file
  docdesk create --name Budget --file budget.md

  # Piped
  cat notes.md | docdesk create --name Notes --stdin

  # Write it in your editor
  docdesk create --name Draft --edit`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	cmd.Flags().StringVarP(&createName, "name", "n", "", "Document name")
	cmd.Flags().StringVarP(&createContent, "content", "c", "", "Document content")
	cmd.Flags().StringVarP(&createFile, "file", "f", "", "Read content from a file")
	cmd.Flags().BoolVar(&createStdin, "stdin", false, "Read content from standard input")
	cmd.Flags().BoolVarP(&createEdit, "edit", "e", false, "Write content in $EDITOR")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	content, err := cli.ReadContent(cli.ContentSource{
		Content: createContent,
		File:    createFile,
		Stdin:   createStdin,
	}, cmd.InOrStdin())
	if err != nil {
		return err
	}
	if createEdit {
		content, err = cli.NewEditorLauncher().EditContent("docdesk-*.md", content)
		if err != nil {
			return err
		}
	}

	input := models.DocumentInput{Name: createName, Content: content}
	if err := input.Validate(); err != nil {
		return err
	}

	return withContext(cmd, func(cc *cli.CommandContext) error {
		doc, err := cc.Client.Create(cmd.Context(), input)
		if err != nil {
			return fmt.Errorf("failed to add document: %w", err)
		}
		cc.Logger.Info("document created", zap.String("id", doc.ID.String()))

		if format != string(cli.FormatText) {
			return cli.OutputResults(cmd.OutOrStdout(), format, doc)
		}
		cli.PrintSuccess("Created document %s (id %s)", doc.Name, doc.ID)
		return nil
	})
}
