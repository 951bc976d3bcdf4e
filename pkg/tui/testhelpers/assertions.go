package testhelpers

import (
	"reflect"
	"strings"
	"testing"

	"github.com/pluqqy/docdesk/pkg/models"
)

// AssertDocumentEqual checks if two documents are equal
func AssertDocumentEqual(t *testing.T, expected, actual models.Document) {
	t.Helper()

	if expected.ID != actual.ID {
		t.Errorf("Document id mismatch: expected %q, got %q", expected.ID, actual.ID)
	}
	if expected.Name != actual.Name {
		t.Errorf("Document name mismatch: expected %q, got %q", expected.Name, actual.Name)
	}
	if expected.Content != actual.Content {
		t.Errorf("Document content mismatch: expected %q, got %q", expected.Content, actual.Content)
	}
	if !expected.CreatedAt.Equal(actual.CreatedAt.Time) {
		t.Errorf("Document created_at mismatch: expected %v, got %v", expected.CreatedAt, actual.CreatedAt)
	}
	if expected.Size != actual.Size {
		t.Errorf("Document size mismatch: expected %v, got %v", expected.Size, actual.Size)
	}
}

// AssertNames checks the names of docs, in order
func AssertNames(t *testing.T, docs []models.Document, expected ...string) {
	t.Helper()

	actual := Names(docs)
	if len(expected) == 0 && len(actual) == 0 {
		return
	}
	if !reflect.DeepEqual(expected, actual) {
		t.Errorf("Document names mismatch:\nexpected: %v\ngot:      %v", expected, actual)
	}
}

// AssertContainsID checks that docs holds a document with id
func AssertContainsID(t *testing.T, docs []models.Document, id models.DocumentID) {
	t.Helper()

	for _, d := range docs {
		if d.ID == id {
			return
		}
	}
	t.Errorf("expected document %q in %v", id, IDs(docs))
}

// AssertNotContainsID checks that docs holds no document with id
func AssertNotContainsID(t *testing.T, docs []models.Document, id models.DocumentID) {
	t.Helper()

	for _, d := range docs {
		if d.ID == id {
			t.Errorf("document %q should not be in %v", id, IDs(docs))
			return
		}
	}
}

// AssertViewContains checks that the rendered view contains every fragment
func AssertViewContains(t *testing.T, view string, fragments ...string) {
	t.Helper()

	for _, f := range fragments {
		if !strings.Contains(view, f) {
			t.Errorf("view does not contain %q\nview:\n%s", f, view)
		}
	}
}

// AssertViewNotContains checks that the rendered view contains none of the fragments
func AssertViewNotContains(t *testing.T, view string, fragments ...string) {
	t.Helper()

	for _, f := range fragments {
		if strings.Contains(view, f) {
			t.Errorf("view should not contain %q\nview:\n%s", f, view)
		}
	}
}
