package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/docdesk/internal/cli"
	"github.com/pluqqy/docdesk/pkg/models"
	"github.com/pluqqy/docdesk/pkg/tui/testhelpers"
)

// execute runs the root command against baseURL with stdin as both the
// piped input and the prompt input.
func execute(t *testing.T, baseURL, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	restore := cli.SetIO(strings.NewReader(stdin), &out, &out)
	defer restore()
	defer cli.SetGlobalFlags(false, false, false)

	root := NewRootCommand("test")
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append(args, "--base-url", baseURL, "--no-color"))

	err := root.Execute()
	return out.String(), err
}

func newFixture(t *testing.T) (*testhelpers.FakeService, string) {
	svc := testhelpers.NewFakeService(testhelpers.SampleDocuments()...)
	srv := testhelpers.NewServer(t, svc)
	return svc, srv.URL
}

func decodeList(t *testing.T, out string) ListResult {
	t.Helper()
	var result ListResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	return result
}

func TestListCommand(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantNames []string
		wantCount int
		wantPages int
	}{
		{
			name:      "sorted by name",
			args:      []string{"list", "-o", "json"},
			wantNames: []string{"Budget", "Meeting Notes", "Quarterly Report", "report-draft"},
			wantCount: 4,
		},
		{
			name:      "size descending",
			args:      []string{"list", "--sort", "size", "--desc", "-o", "json"},
			wantNames: []string{"Budget", "Quarterly Report", "report-draft", "Meeting Notes"},
			wantCount: 4,
		},
		{
			name:      "search",
			args:      []string{"list", "--search", "REPORT", "-o", "json"},
			wantNames: []string{"Quarterly Report", "report-draft"},
			wantCount: 2,
		},
		{
			name:      "second page",
			args:      []string{"list", "--page", "2", "--page-size", "3", "-o", "json"},
			wantNames: []string{"report-draft"},
			wantCount: 4,
			wantPages: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, url := newFixture(t)
			out, err := execute(t, url, "", tt.args...)
			require.NoError(t, err)

			result := decodeList(t, out)
			assert.Equal(t, tt.wantNames, testhelpers.Names(result.Documents))
			assert.Equal(t, tt.wantCount, result.Count)
			assert.Equal(t, tt.wantPages, result.Pages)
		})
	}
}

func TestListCommandText(t *testing.T) {
	_, url := newFixture(t)

	out, err := execute(t, url, "", "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[2], "Budget")
	assert.Contains(t, lines[2], "20.00 KB")
}

func TestListCommandEmpty(t *testing.T) {
	_, url := newFixture(t)

	out, err := execute(t, url, "", "list", "--search", "nothing matches")
	require.NoError(t, err)
	assert.Contains(t, out, "No documents found.")
}

func TestListCommandRejectsBadSort(t *testing.T) {
	_, url := newFixture(t)

	_, err := execute(t, url, "", "list", "--sort", "colour")
	assert.ErrorContains(t, err, "invalid sort field")
}

func TestListCommandServerError(t *testing.T) {
	svc, url := newFixture(t)
	svc.ListErr = assert.AnError

	_, err := execute(t, url, "", "list")
	assert.ErrorContains(t, err, "failed to fetch documents")
}

func TestShowCommand(t *testing.T) {
	_, url := newFixture(t)

	out, err := execute(t, url, "", "show", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Budget")
	assert.Contains(t, out, "Content of Budget")

	out, err = execute(t, url, "", "show", "4", "-o", "json")
	require.NoError(t, err)
	var doc models.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, models.DocumentID("4"), doc.ID)

	_, err = execute(t, url, "", "show", "99")
	assert.EqualError(t, err, "document not found: 99")
}

func TestCreateCommand(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		stdin       string
		wantErr     string
		wantContent string
	}{
		{
			name:        "inline content",
			args:        []string{"create", "--name", "Roadmap", "--content", "Q3 goals"},
			wantContent: "Q3 goals",
		},
		{
			name:        "stdin",
			args:        []string{"create", "--name", "Roadmap", "--stdin"},
			stdin:       "piped goals",
			wantContent: "piped goals",
		},
		{
			name:    "missing name",
			args:    []string{"create", "--content", "Q3 goals"},
			wantErr: "document name is required",
		},
		{
			name:    "blank content",
			args:    []string{"create", "--name", "Roadmap", "--content", "   "},
			wantErr: "document content is required",
		},
		{
			name:    "two sources",
			args:    []string{"create", "--name", "Roadmap", "--content", "a", "--stdin"},
			wantErr: "use only one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, url := newFixture(t)

			out, err := execute(t, url, tt.stdin, tt.args...)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				assert.Empty(t, svc.CreateCalls)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, "Created document Roadmap")

			require.Len(t, svc.CreateCalls, 1)
			assert.Equal(t, tt.wantContent, svc.CreateCalls[0].Content)
			assert.Len(t, svc.Documents(), 5)
		})
	}
}

func TestCreateCommandServerError(t *testing.T) {
	svc, url := newFixture(t)
	svc.CreateErr = assert.AnError

	_, err := execute(t, url, "", "create", "--name", "Roadmap", "--content", "Q3")
	assert.ErrorContains(t, err, "failed to add document")
}

func TestDeleteCommand(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		stdin       string
		wantDeleted bool
		wantOut     string
	}{
		{"confirmed", []string{"delete", "2"}, "y\n", true, "Deleted document: Meeting Notes"},
		{"declined", []string{"delete", "2"}, "n\n", false, "Deletion cancelled"},
		{"default is no", []string{"delete", "2"}, "\n", false, "Deletion cancelled"},
		{"force", []string{"delete", "2", "--force"}, "", true, "Deleted document"},
		{"global yes", []string{"delete", "2", "-y"}, "", true, "Deleted document"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, url := newFixture(t)

			out, err := execute(t, url, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.wantOut)

			ids := testhelpers.IDs(svc.Documents())
			if tt.wantDeleted {
				assert.NotContains(t, ids, models.DocumentID("2"))
			} else {
				assert.Contains(t, ids, models.DocumentID("2"))
				assert.Empty(t, svc.DeleteCalls)
			}
		})
	}
}

func TestDeleteCommandPrompt(t *testing.T) {
	_, url := newFixture(t)

	out, err := execute(t, url, "n\n", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Are you sure you want to delete the document: Quarterly Report? [y/N]")
}

func TestDeleteCommandUnknownID(t *testing.T) {
	svc, url := newFixture(t)

	_, err := execute(t, url, "y\n", "delete", "99")
	assert.EqualError(t, err, "document not found: 99")
	assert.Empty(t, svc.DeleteCalls)
}

func TestConfigCommand(t *testing.T) {
	_, url := newFixture(t)

	out, err := execute(t, url, "", "config", "-o", "json", "--page-size", "25")
	require.NoError(t, err)

	var settings map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &settings))
	assert.Equal(t, url, settings["base_url"])
	assert.Equal(t, "25", settings["page_size"])
	assert.Equal(t, "500ms", settings["debounce"])

	out, err = execute(t, url, "", "config")
	require.NoError(t, err)
	assert.Contains(t, out, "base_url: "+url)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "http://localhost:8080", "", "version")
	require.NoError(t, err)
	assert.Equal(t, "docdesk version test\n", out)
}

func TestInvalidOutputFormat(t *testing.T) {
	_, url := newFixture(t)

	_, err := execute(t, url, "", "list", "-o", "xml")
	assert.ErrorContains(t, err, "invalid output format")
}
