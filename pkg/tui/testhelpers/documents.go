package testhelpers

import (
	"fmt"
	"time"

	"github.com/pluqqy/docdesk/pkg/models"
)

// BaseTime is the creation time of fixture documents; document n is created
// n minutes after it.
var BaseTime = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

// DocumentBuilder provides a fluent interface for building test documents
type DocumentBuilder struct {
	doc models.Document
}

// NewDocumentBuilder creates a new document builder with default values
func NewDocumentBuilder(id, name string) *DocumentBuilder {
	return &DocumentBuilder{
		doc: models.Document{
			ID:        models.DocumentID(id),
			Name:      name,
			Content:   "Content of " + name,
			CreatedAt: models.Timestamp{Time: BaseTime},
			Size:      1,
		},
	}
}

// WithContent sets the document content
func (b *DocumentBuilder) WithContent(content string) *DocumentBuilder {
	b.doc.Content = content
	return b
}

// WithSize sets the size in kilobytes
func (b *DocumentBuilder) WithSize(kb float64) *DocumentBuilder {
	b.doc.Size = kb
	return b
}

// WithCreatedAt sets the creation time
func (b *DocumentBuilder) WithCreatedAt(t time.Time) *DocumentBuilder {
	b.doc.CreatedAt = models.Timestamp{Time: t}
	return b
}

// Build returns the constructed document
func (b *DocumentBuilder) Build() models.Document {
	return b.doc
}

// NumberedDocuments returns doc-1..doc-n with ids "1".."n". Sizes and
// creation times grow with the number.
func NumberedDocuments(n int) []models.Document {
	docs := make([]models.Document, 0, n)
	for i := 1; i <= n; i++ {
		docs = append(docs, NewDocumentBuilder(fmt.Sprint(i), fmt.Sprintf("doc-%d", i)).
			WithSize(float64(i)).
			WithCreatedAt(BaseTime.Add(time.Duration(i)*time.Minute)).
			Build())
	}
	return docs
}

// SampleDocuments returns a small set with distinct names for search tests
func SampleDocuments() []models.Document {
	return []models.Document{
		NewDocumentBuilder("1", "Quarterly Report").WithSize(12.5).Build(),
		NewDocumentBuilder("2", "Meeting Notes").WithSize(3).Build(),
		NewDocumentBuilder("3", "report-draft").WithSize(7.25).Build(),
		NewDocumentBuilder("4", "Budget").WithSize(20).Build(),
	}
}

// IDs returns the ids of docs in order
func IDs(docs []models.Document) []models.DocumentID {
	ids := make([]models.DocumentID, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids
}

// Names returns the names of docs in order
func Names(docs []models.Document) []string {
	names := make([]string, 0, len(docs))
	for _, d := range docs {
		names = append(names, d.Name)
	}
	return names
}
