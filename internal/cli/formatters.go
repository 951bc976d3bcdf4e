package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/muesli/reflow/truncate"
	"gopkg.in/yaml.v3"

	"github.com/pluqqy/docdesk/pkg/models"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// TableFormatter helps format tabular output
type TableFormatter struct {
	writer *tabwriter.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	return &TableFormatter{writer: tw}
}

// Header writes the table header
func (t *TableFormatter) Header(columns ...string) {
	fmt.Fprintln(t.writer, strings.Join(columns, "\t"))
	underline := make([]string, len(columns))
	for i, c := range columns {
		underline[i] = strings.Repeat("-", len(c))
	}
	fmt.Fprintln(t.writer, strings.Join(underline, "\t"))
}

// Row writes a table row
func (t *TableFormatter) Row(values ...string) {
	fmt.Fprintln(t.writer, strings.Join(values, "\t"))
}

// Flush writes the buffered table to output
func (t *TableFormatter) Flush() error {
	return t.writer.Flush()
}

// OutputResults formats and outputs results based on the specified format
func OutputResults(w io.Writer, format string, data interface{}) error {
	switch OutputFormat(format) {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)

	case FormatYAML:
		yamlData, err := yaml.Marshal(data)
		if err != nil {
			return err
		}
		_, err = w.Write(yamlData)
		return err

	case FormatText:
		// callers render text themselves; this is a fallback
		_, err := fmt.Fprintf(w, "%v\n", data)
		return err

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// FormatSize formats a size given in kilobytes
func FormatSize(kb float64) string {
	switch {
	case kb >= 1024*1024:
		return fmt.Sprintf("%.1f GB", kb/(1024*1024))
	case kb >= 1024:
		return fmt.Sprintf("%.1f MB", kb/1024)
	default:
		return fmt.Sprintf("%.2f KB", kb)
	}
}

// FormatTime renders a timestamp in local time, or "-" when unset
func FormatTime(ts models.Timestamp) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.Local().Format("2006-01-02 15:04")
}

// TruncateString truncates a string to maxLen display cells
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return truncate.String(s, uint(maxLen))
	}
	return truncate.StringWithTail(s, uint(maxLen), "...")
}

// WriteDocumentTable renders docs as a text table
func WriteDocumentTable(w io.Writer, docs []models.Document) error {
	table := NewTableFormatter(w)
	table.Header("ID", "NAME", "CREATED", "SIZE")
	for _, d := range docs {
		table.Row(d.ID.String(), TruncateString(d.Name, 48), FormatTime(d.CreatedAt), FormatSize(d.Size))
	}
	return table.Flush()
}

// WriteDocument renders one document with its content
func WriteDocument(w io.Writer, doc models.Document) error {
	table := NewTableFormatter(w)
	table.Row("ID:", doc.ID.String())
	table.Row("Name:", doc.Name)
	table.Row("Created:", FormatTime(doc.CreatedAt))
	table.Row("Size:", FormatSize(doc.Size))
	if err := table.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%s\n", doc.Content)
	return err
}
