package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/pluqqy/docdesk/pkg/documents"
	"github.com/pluqqy/docdesk/pkg/models"
)

const (
	createdColumnWidth = 16
	sizeColumnWidth    = 10
	minNameWidth       = 12
)

// DocumentTableRenderer draws one page of documents with Name, Created and
// Size columns and marks the sorted column.
type DocumentTableRenderer struct {
	Width     int
	Documents []models.Document
	Cursor    int
	Sort      documents.SortState
}

// NewDocumentTableRenderer creates a new table renderer
func NewDocumentTableRenderer(width int) *DocumentTableRenderer {
	return &DocumentTableRenderer{Width: width}
}

// nameWidth is whatever the fixed columns leave over
func (r *DocumentTableRenderer) nameWidth() int {
	// 2 for the cursor, 2 spaces between columns, 2 for padding
	w := r.Width - 2 - createdColumnWidth - sizeColumnWidth - 4 - 2
	if w < minNameWidth {
		w = minNameWidth
	}
	return w
}

// RenderHeader renders the column titles with a direction marker on the sorted column
func (r *DocumentTableRenderer) RenderHeader() string {
	nameWidth := r.nameWidth()

	name := r.headerCell(documents.SortByName, "Name")
	created := r.headerCell(documents.SortByCreated, "Created")
	size := r.headerCell(documents.SortBySize, "Size")

	return "  " +
		padCell(name, nameWidth, false) + "  " +
		padCell(created, createdColumnWidth, false) + "  " +
		padCell(size, sizeColumnWidth, true)
}

func (r *DocumentTableRenderer) headerCell(col documents.SortColumn, title string) string {
	if !r.Sort.Sorted(col) {
		return HeaderStyle.Render(title)
	}
	arrow := " ▲"
	if r.Sort.Direction == documents.SortDesc {
		arrow = " ▼"
	}
	return SortedHeaderStyle.Render(title + arrow)
}

// RenderRows renders the rows of the page
func (r *DocumentTableRenderer) RenderRows() string {
	nameWidth := r.nameWidth()

	var b strings.Builder
	for i, doc := range r.Documents {
		name := doc.Name
		if lipgloss.Width(name) > nameWidth {
			name = truncate.StringWithTail(name, uint(nameWidth), "…")
		}
		row := padCell(name, nameWidth, false) + "  " +
			padCell(formatCreated(doc.CreatedAt), createdColumnWidth, false) + "  " +
			padCell(formatSize(doc.Size), sizeColumnWidth, true)

		if i == r.Cursor {
			b.WriteString(CursorStyle.Render("▸ ") + SelectedStyle.Render(row))
		} else {
			b.WriteString("  " + NormalStyle.Render(row))
		}
		if i < len(r.Documents)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// View renders header and rows
func (r *DocumentTableRenderer) View() string {
	return r.RenderHeader() + "\n" + r.RenderRows()
}

// padCell pads s to width display cells, right aligned when alignRight is set
func padCell(s string, width int, alignRight bool) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	if alignRight {
		return strings.Repeat(" ", width-w) + s
	}
	return s + strings.Repeat(" ", width-w)
}

func formatCreated(ts models.Timestamp) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.Local().Format("2006-01-02 15:04")
}

// formatSize renders a size given in kilobytes
func formatSize(kb float64) string {
	return fmt.Sprintf("%.2f KB", kb)
}
