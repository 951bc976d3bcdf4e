package testhelpers

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/pluqqy/docdesk/pkg/client"
	"github.com/pluqqy/docdesk/pkg/models"
)

// FakeService is an in-memory DocumentService that records every call
type FakeService struct {
	mu     sync.Mutex
	docs   []models.Document
	nextID int

	// Errors returned by the matching operation when set
	ListErr   error
	GetErr    error
	CreateErr error
	DeleteErr error

	ListCalls   []string
	GetCalls    []models.DocumentID
	CreateCalls []models.DocumentInput
	DeleteCalls []models.DocumentID
}

var _ client.DocumentService = (*FakeService)(nil)

// NewFakeService creates a fake holding docs
func NewFakeService(docs ...models.Document) *FakeService {
	return &FakeService{
		docs:   append([]models.Document(nil), docs...),
		nextID: 1000,
	}
}

// List returns the stored documents whose names contain search
func (f *FakeService) List(_ context.Context, search string) ([]models.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ListCalls = append(f.ListCalls, search)
	if f.ListErr != nil {
		return nil, f.ListErr
	}

	out := make([]models.Document, 0, len(f.docs))
	term := strings.ToLower(search)
	for _, d := range f.docs {
		if strings.Contains(strings.ToLower(d.Name), term) {
			out = append(out, d)
		}
	}
	return out, nil
}

// Get returns one document, or a not-found status error
func (f *FakeService) Get(_ context.Context, id models.DocumentID) (*models.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.GetCalls = append(f.GetCalls, id)
	if f.GetErr != nil {
		return nil, f.GetErr
	}

	for _, d := range f.docs {
		if d.ID == id {
			doc := d
			return &doc, nil
		}
	}
	return nil, &client.StatusError{Op: "documents.get", StatusCode: 404, Err: client.ErrNotFound}
}

// Create stores a document under a fresh id
func (f *FakeService) Create(_ context.Context, input models.DocumentInput) (*models.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreateCalls = append(f.CreateCalls, input)
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}

	f.nextID++
	doc := NewDocumentBuilder(fmt.Sprint(f.nextID), input.Name).
		WithContent(input.Content).
		WithSize(float64(len(input.Content)) / 1024).
		Build()
	f.docs = append(f.docs, doc)
	return &doc, nil
}

// Delete removes a document; unknown ids fail like a 404
func (f *FakeService) Delete(_ context.Context, id models.DocumentID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeleteCalls = append(f.DeleteCalls, id)
	if f.DeleteErr != nil {
		return f.DeleteErr
	}

	for i, d := range f.docs {
		if d.ID == id {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return nil
		}
	}
	return &client.StatusError{Op: "documents.delete", StatusCode: 404}
}

// Documents returns a copy of the stored documents
func (f *FakeService) Documents() []models.Document {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Document(nil), f.docs...)
}
