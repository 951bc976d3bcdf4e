package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/docdesk/pkg/documents"
	"github.com/pluqqy/docdesk/pkg/models"
	"github.com/pluqqy/docdesk/pkg/tui/testhelpers"
)

// drain runs cmd and any batched commands it returns, collecting the messages
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// isAppMsg filters out spinner and cursor ticks, which would otherwise
// keep the pump running
func isAppMsg(msg tea.Msg) bool {
	switch msg.(type) {
	case documentsLoadedMsg, documentDeletedMsg, searchDebouncedMsg,
		documentLoadedMsg, documentCreatedMsg,
		DocumentSelectedMsg, DocumentAddedMsg, SwitchViewMsg, StatusMsg:
		return true
	}
	return false
}

// pump feeds the messages produced by cmd back into model until the
// application goes quiet. It returns every message it delivered.
func pump(t *testing.T, model tea.Model, cmd tea.Cmd) []tea.Msg {
	t.Helper()

	var delivered []tea.Msg
	queue := drain(cmd)
	for i := 0; len(queue) > 0; i++ {
		if i > 100 {
			t.Fatal("pump did not settle")
		}
		msg := queue[0]
		queue = queue[1:]
		if !isAppMsg(msg) {
			continue
		}
		delivered = append(delivered, msg)
		_, next := model.Update(msg)
		queue = append(queue, drain(next)...)
	}
	return delivered
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// newLoadedList returns a list view over svc after its initial fetch
func newLoadedList(t *testing.T, svc *testhelpers.FakeService) *DocumentListModel {
	t.Helper()

	m := NewDocumentListModel(Options{
		Service:  svc,
		Debounce: time.Millisecond,
	}, documents.NewCollection())
	pump(t, m, m.Init())

	if m.Loading() {
		t.Fatal("list still loading after initial fetch")
	}
	return m
}

func names(docs []models.Document) []string {
	return testhelpers.Names(docs)
}
