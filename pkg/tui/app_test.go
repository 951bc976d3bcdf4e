package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/docdesk/pkg/models"
	"github.com/pluqqy/docdesk/pkg/tui/testhelpers"
)

func newTestApp(t *testing.T, svc *testhelpers.FakeService) *App {
	t.Helper()

	app := NewApp(Options{Service: svc, Debounce: time.Millisecond, StatusTimeout: time.Millisecond})
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	pump(t, app, app.Init())
	return app
}

func TestAppStartsOnList(t *testing.T) {
	svc := testhelpers.NewFakeService(testhelpers.NumberedDocuments(3)...)
	app := newTestApp(t, svc)

	if app.Route() != RouteList {
		t.Errorf("Route() = %q, want %q", app.Route(), RouteList)
	}
	if app.Documents().Len() != 3 {
		t.Errorf("collection holds %d documents, want 3", app.Documents().Len())
	}
	testhelpers.AssertViewContains(t, app.View(), "Document Management", "doc-3")
}

func TestAppViewBeforeSize(t *testing.T) {
	app := NewApp(Options{Service: testhelpers.NewFakeService()})
	if app.View() != "Loading..." {
		t.Errorf("View() = %q", app.View())
	}
}

func TestAppSelectOpensDetail(t *testing.T) {
	svc := testhelpers.NewFakeService(testhelpers.NumberedDocuments(3)...)
	app := newTestApp(t, svc)

	app.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	pump(t, app, cmd)

	if app.Route() != RouteDetail {
		t.Fatalf("Route() = %q, want %q", app.Route(), RouteDetail)
	}
	if app.SelectedID() != "2" {
		t.Errorf("SelectedID() = %q, want 2", app.SelectedID())
	}
	if len(svc.GetCalls) != 1 || svc.GetCalls[0] != "2" {
		t.Errorf("GetCalls = %v", svc.GetCalls)
	}
	testhelpers.AssertViewContains(t, app.View(), "Document Details", "doc-2")

	// back to the list refetches
	listCalls := len(svc.ListCalls)
	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	pump(t, app, cmd)

	if app.Route() != RouteList {
		t.Errorf("Route() = %q, want %q", app.Route(), RouteList)
	}
	if len(svc.ListCalls) != listCalls+1 {
		t.Errorf("expected a refetch on return to the list")
	}
}

func TestAppCreateRoundTrip(t *testing.T) {
	svc := testhelpers.NewFakeService(testhelpers.NumberedDocuments(3)...)
	app := newTestApp(t, svc)

	// blink commands from the form are not run
	app.Update(SwitchViewMsg{Route: RouteAdd})
	if app.Route() != RouteAdd {
		t.Fatalf("Route() = %q, want %q", app.Route(), RouteAdd)
	}

	app.form.SetValues("fresh", "brand new")
	created := drain(app.form.Submit())
	if len(created) != 1 {
		t.Fatalf("expected one create result, got %v", created)
	}

	_, cmd := app.Update(created[0])
	added := drain(cmd)
	if len(added) != 1 {
		t.Fatalf("expected DocumentAddedMsg, got %v", added)
	}
	doc := added[0].(DocumentAddedMsg).Document

	// the list refetches, but the document is visible before that completes
	_, cmd = app.Update(added[0])
	if app.Route() != RouteList {
		t.Fatalf("Route() = %q, want %q", app.Route(), RouteList)
	}
	if _, ok := app.Documents().Find(doc.ID); !ok {
		t.Fatal("created document missing from the collection")
	}
	testhelpers.AssertViewContains(t, app.View(), "fresh")

	pump(t, app, cmd)
	testhelpers.AssertContainsID(t, app.Documents().Items(), doc.ID)
	if app.Documents().Len() != 4 {
		t.Errorf("collection holds %d documents, want 4", app.Documents().Len())
	}
}

func TestAppStatusBar(t *testing.T) {
	app := newTestApp(t, testhelpers.NewFakeService())

	app.Update(StatusMsg("hello"))
	if app.StatusMessage() != "hello" {
		t.Errorf("StatusMessage() = %q", app.StatusMessage())
	}
	testhelpers.AssertViewContains(t, app.View(), "hello")

	// navigation clears it
	app.Update(SwitchViewMsg{Route: RouteDetail})
	if app.StatusMessage() != "" {
		t.Errorf("status not cleared: %q", app.StatusMessage())
	}
}

func TestAppDetailWithoutSelection(t *testing.T) {
	app := newTestApp(t, testhelpers.NewFakeService())

	app.Update(SwitchViewMsg{Route: RouteDetail})
	testhelpers.AssertViewContains(t, app.View(), MsgNoSelection)
}

func TestAppRoutesCompletionsToIssuingView(t *testing.T) {
	svc := testhelpers.NewFakeService(testhelpers.NumberedDocuments(2)...)
	app := newTestApp(t, svc)

	// a refresh is in flight when the user opens the form
	refresh := app.list.Refresh()
	app.Update(SwitchViewMsg{Route: RouteAdd})
	pump(t, app, refresh)

	if app.list.Loading() {
		t.Error("list completion was not delivered while the form was active")
	}
}

func TestAppQuit(t *testing.T) {
	app := newTestApp(t, testhelpers.NewFakeService())

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
}

func TestAppDeletedDocumentLeavesCollection(t *testing.T) {
	svc := testhelpers.NewFakeService(testhelpers.NumberedDocuments(3)...)
	app := newTestApp(t, svc)

	app.Update(keyRune('d'))
	_, cmd := app.Update(keyRune('y'))
	pump(t, app, cmd)

	testhelpers.AssertNotContainsID(t, app.Documents().Items(), models.DocumentID("1"))
	if app.StatusMessage() != "Deleted doc-1" {
		t.Errorf("StatusMessage() = %q", app.StatusMessage())
	}
}
