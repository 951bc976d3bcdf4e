package tui

import (
	"strings"
	"testing"

	"github.com/pluqqy/docdesk/pkg/documents"
	"github.com/pluqqy/docdesk/pkg/models"
	"github.com/pluqqy/docdesk/pkg/tui/testhelpers"
)

func TestDocumentTableHeader(t *testing.T) {
	tests := []struct {
		name  string
		sort  documents.SortState
		want  string
		avoid string
	}{
		{"name ascending", documents.SortState{Column: documents.SortByName, Direction: documents.SortAsc}, "Name ▲", "Size ▲"},
		{"size descending", documents.SortState{Column: documents.SortBySize, Direction: documents.SortDesc}, "Size ▼", "Name ▲"},
		{"unsorted", documents.SortState{Column: documents.SortByName, Direction: documents.SortNone}, "Name", "▲"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewDocumentTableRenderer(80)
			r.Sort = tt.sort
			header := r.RenderHeader()
			if !strings.Contains(header, tt.want) {
				t.Errorf("header %q missing %q", header, tt.want)
			}
			if strings.Contains(header, tt.avoid) {
				t.Errorf("header %q should not contain %q", header, tt.avoid)
			}
		})
	}
}

func TestDocumentTableRows(t *testing.T) {
	r := NewDocumentTableRenderer(80)
	r.Documents = []models.Document{
		testhelpers.NewDocumentBuilder("1", "Quarterly Report").WithSize(12.5).Build(),
		testhelpers.NewDocumentBuilder("2", "Budget").WithSize(3).Build(),
		{ID: "3", Name: "undated"},
	}
	r.Cursor = 1

	lines := strings.Split(r.RenderRows(), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "Quarterly Report") || !strings.Contains(lines[0], "12.50 KB") {
		t.Errorf("unexpected first row %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "▸") {
		t.Errorf("cursor row should be marked: %q", lines[1])
	}
	if !strings.Contains(lines[2], "-") {
		t.Errorf("missing creation time should render as -: %q", lines[2])
	}
}

func TestDocumentTableTruncatesLongNames(t *testing.T) {
	r := NewDocumentTableRenderer(50)
	r.Documents = []models.Document{
		testhelpers.NewDocumentBuilder("1", strings.Repeat("x", 60)).Build(),
	}

	row := r.RenderRows()
	if strings.Contains(row, strings.Repeat("x", 60)) {
		t.Error("long name was not truncated")
	}
	if !strings.Contains(row, "…") {
		t.Error("truncated name should end with an ellipsis")
	}
}

func TestRenderPageControl(t *testing.T) {
	tests := []struct {
		page, count int
		want        string
	}{
		{0, 0, ""},
		{0, 3, "  Page 1 of 3 ›"},
		{1, 3, "‹ Page 2 of 3 ›"},
		{2, 3, "‹ Page 3 of 3  "},
	}

	for _, tt := range tests {
		if got := renderPageControl(tt.page, tt.count); got != tt.want {
			t.Errorf("renderPageControl(%d, %d) = %q, want %q", tt.page, tt.count, got, tt.want)
		}
	}
}
