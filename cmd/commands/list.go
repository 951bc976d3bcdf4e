package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pluqqy/docdesk/internal/cli"
	"github.com/pluqqy/docdesk/pkg/documents"
	"github.com/pluqqy/docdesk/pkg/models"
)

// ListResult represents the output structure for list command
type ListResult struct {
	Documents []models.Document `json:"documents" yaml:"documents"`
	Count     int               `json:"count" yaml:"count"`
	Page      int               `json:"page,omitempty" yaml:"page,omitempty"`
	Pages     int               `json:"pages,omitempty" yaml:"pages,omitempty"`
}

var (
	listSearch string
	listSort   string
	listDesc   bool
	listPage   int
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List documents",
		Long: `List documents from the document service.

Documents are filtered by name, sorted over the whole result and then,
when --page is given, cut to one page of page_size rows.

Examples:
  # List everything, sorted by name
  docdesk list

  # Largest reports first
  docdesk list --search report --sort size --desc

  # Second page as JSON
  docdesk list --page 2 -o json`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if listPage < 0 {
				return fmt.Errorf("invalid page: %d", listPage)
			}
			return cli.ValidateSortField(listSort)
		},
		RunE: runList,
	}

	cmd.Flags().StringVarP(&listSearch, "search", "s", "", "Only show documents whose name contains this text")
	cmd.Flags().StringVar(&listSort, "sort", "name", "Sort column: name, created or size")
	cmd.Flags().BoolVar(&listDesc, "desc", false, "Sort in descending order")
	cmd.Flags().IntVar(&listPage, "page", 0, "Show only this page (1-based)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	return withContext(cmd, func(cc *cli.CommandContext) error {
		docs, err := cc.Client.List(cmd.Context(), listSearch)
		if err != nil {
			return fmt.Errorf("failed to fetch documents: %w", err)
		}

		result := buildListResult(docs, cc.Config.PageSize)
		cc.Logger.Debug("listed documents", zap.Int("count", result.Count), zap.String("search", listSearch))

		if format != string(cli.FormatText) {
			return cli.OutputResults(cmd.OutOrStdout(), format, result)
		}

		if result.Count == 0 {
			cli.PrintInfo("No documents found.")
			return nil
		}
		if err := cli.WriteDocumentTable(cmd.OutOrStdout(), result.Documents); err != nil {
			return err
		}
		if result.Pages > 0 {
			cli.PrintInfo("Page %d of %d (%d documents)", result.Page, result.Pages, result.Count)
		}
		return nil
	})
}

func buildListResult(docs []models.Document, pageSize int) ListResult {
	col, _ := documents.ParseSortColumn(listSort)
	state := documents.SortState{Column: col, Direction: documents.SortAsc}
	if listDesc {
		state.Direction = documents.SortDesc
	}

	if listPage == 0 {
		filtered := documents.Sort(documents.Filter(docs, listSearch), state)
		return ListResult{Documents: filtered, Count: len(filtered)}
	}

	view := documents.Derive(docs, listSearch, state, listPage-1, pageSize)
	return ListResult{
		Documents: view.Documents,
		Count:     view.Filtered,
		Page:      listPage,
		Pages:     view.PageCount,
	}
}
