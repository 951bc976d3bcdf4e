package documents

import "github.com/pluqqy/docdesk/pkg/models"

// Collection is the in-memory cache of server documents shown by the list
// view. It is replaced wholesale after a list fetch and patched locally on
// create and delete. It never holds two documents with the same id.
type Collection struct {
	items []models.Document
}

// NewCollection creates a collection seeded with docs
func NewCollection(docs ...models.Document) *Collection {
	c := &Collection{}
	c.Replace(docs)
	return c
}

// Replace swaps the whole collection for a copy of docs. When the input
// repeats an id the first occurrence wins.
func (c *Collection) Replace(docs []models.Document) {
	seen := make(map[models.DocumentID]bool, len(docs))
	items := make([]models.Document, 0, len(docs))
	for _, doc := range docs {
		if seen[doc.ID] {
			continue
		}
		seen[doc.ID] = true
		items = append(items, doc)
	}
	c.items = items
}

// Add appends doc, or overwrites the entry that already carries its id
func (c *Collection) Add(doc models.Document) {
	for i := range c.items {
		if c.items[i].ID == doc.ID {
			c.items[i] = doc
			return
		}
	}
	c.items = append(c.items, doc)
}

// Remove drops the document with the given id and reports whether it was present
func (c *Collection) Remove(id models.DocumentID) bool {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Find looks a document up by id
func (c *Collection) Find(id models.DocumentID) (models.Document, bool) {
	for _, doc := range c.items {
		if doc.ID == id {
			return doc, true
		}
	}
	return models.Document{}, false
}

// Items returns a copy of the documents in collection order
func (c *Collection) Items() []models.Document {
	out := make([]models.Document, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection) Len() int {
	return len(c.items)
}
