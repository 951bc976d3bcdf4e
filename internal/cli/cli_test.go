package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/docdesk/pkg/models"
)

func sampleDocs() []models.Document {
	return []models.Document{
		{ID: "1", Name: "Quarterly Report", Content: "Revenue grew.", CreatedAt: models.Timestamp{Time: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}, Size: 12.5},
		{ID: "2", Name: "Budget", Size: 2048},
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		skip       bool
		want       bool
	}{
		{"yes", "y\n", false, false, true},
		{"full yes", "YES\n", false, false, true},
		{"no", "n\n", true, false, false},
		{"empty takes default no", "\n", false, false, false},
		{"empty takes default yes", "\n", true, false, true},
		{"answer without newline", "y", false, false, true},
		{"skip confirmation", "", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			restore := SetIO(strings.NewReader(tt.input), &out, &out)
			defer restore()
			SetGlobalFlags(false, false, tt.skip)
			defer SetGlobalFlags(false, false, false)

			got, err := Confirm("Delete?", tt.defaultYes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			if !tt.skip {
				assert.Contains(t, out.String(), "Delete?")
			}
		})
	}
}

func TestConfirmEOF(t *testing.T) {
	restore := SetIO(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	defer restore()

	_, err := Confirm("Delete?", false)
	assert.Error(t, err)
}

func TestPrintHelpers(t *testing.T) {
	var out, errOut bytes.Buffer
	restore := SetIO(strings.NewReader(""), &out, &errOut)
	defer restore()
	defer SetGlobalFlags(false, false, false)

	SetGlobalFlags(false, true, false)
	PrintSuccess("deleted %s", "7")
	PrintInfo("hello")
	PrintError("boom")
	assert.Equal(t, "OK: deleted 7\nINFO: hello\n", out.String())
	assert.Equal(t, "ERROR: boom\n", errOut.String())

	out.Reset()
	SetGlobalFlags(true, true, false)
	PrintSuccess("quiet")
	assert.Empty(t, out.String())
}

func TestOutputResults(t *testing.T) {
	docs := sampleDocs()

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, OutputResults(&buf, "json", docs))

		var decoded []models.Document
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "Budget", decoded[1].Name)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, OutputResults(&buf, "yaml", docs))
		assert.Contains(t, buf.String(), "name: Quarterly Report")
		assert.Contains(t, buf.String(), "created_at: \"2024-03-01T09:00:00Z\"")
	})

	t.Run("unknown", func(t *testing.T) {
		assert.Error(t, OutputResults(&bytes.Buffer{}, "xml", docs))
	})
}

func TestWriteDocumentTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDocumentTable(&buf, sampleDocs()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[2], "Quarterly Report")
	assert.Contains(t, lines[2], "12.50 KB")
	assert.Contains(t, lines[3], "2.0 MB")
	assert.Contains(t, lines[3], "-")
}

func TestWriteDocument(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDocument(&buf, sampleDocs()[0]))
	assert.Contains(t, buf.String(), "Quarterly Report")
	assert.True(t, strings.HasSuffix(buf.String(), "\nRevenue grew.\n"))
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		kb   float64
		want string
	}{
		{0, "0.00 KB"},
		{12.5, "12.50 KB"},
		{1536, "1.5 MB"},
		{3 * 1024 * 1024, "3.0 GB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSize(tt.kb))
	}
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "abcdefg...", TruncateString("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", TruncateString("abcdef", 2))
	assert.Equal(t, "", TruncateString("abc", 0))
}

func TestValidators(t *testing.T) {
	assert.NoError(t, ValidateOutputFormat("yaml"))
	assert.Error(t, ValidateOutputFormat("xml"))

	assert.NoError(t, ValidateDocumentID("7"))
	assert.Error(t, ValidateDocumentID("  "))

	assert.NoError(t, ValidateSortField("created"))
	assert.Error(t, ValidateSortField("colour"))

	dir := t.TempDir()
	file := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))
	assert.NoError(t, ValidateFilePath(file))
	assert.Error(t, ValidateFilePath(dir))
	assert.Error(t, ValidateFilePath(filepath.Join(dir, "missing")))
}

func TestReadContent(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(file, []byte("from file"), 0o600))

	tests := []struct {
		name    string
		src     ContentSource
		stdin   string
		want    string
		wantErr bool
	}{
		{name: "flag", src: ContentSource{Content: "inline"}, want: "inline"},
		{name: "file", src: ContentSource{File: file}, want: "from file"},
		{name: "stdin", src: ContentSource{Stdin: true}, stdin: "piped", want: "piped"},
		{name: "nothing", src: ContentSource{}, want: ""},
		{name: "two sources", src: ContentSource{Content: "a", File: file}, wantErr: true},
		{name: "missing file", src: ContentSource{File: filepath.Join(dir, "nope")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadContent(tt.src, strings.NewReader(tt.stdin))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEditContent(t *testing.T) {
	// "true" leaves the file untouched, so the initial content comes back
	e := &EditorLauncher{DefaultEditor: "true"}
	got, err := e.EditContent("docdesk-*.md", "draft")
	if err != nil {
		t.Skipf("no true binary available: %v", err)
	}
	assert.Equal(t, "draft", got)
}
