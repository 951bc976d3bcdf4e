package documents

import (
	"strings"

	"github.com/pluqqy/docdesk/pkg/models"
)

// DefaultPageSize is the number of rows shown per page
const DefaultPageSize = 10

// Filter returns the documents whose name contains term, ignoring case.
// The server applies the same rule to the search query parameter, so
// running both passes never hides a document the server returned.
func Filter(docs []models.Document, term string) []models.Document {
	if term == "" {
		out := make([]models.Document, len(docs))
		copy(out, docs)
		return out
	}

	needle := strings.ToLower(term)
	out := make([]models.Document, 0, len(docs))
	for _, doc := range docs {
		if strings.Contains(strings.ToLower(doc.Name), needle) {
			out = append(out, doc)
		}
	}
	return out
}

// PageCount returns ceil(total/pageSize)
func PageCount(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Paginate returns the window [page*pageSize, page*pageSize+pageSize) of
// docs. A page past the end yields an empty window.
func Paginate(docs []models.Document, page, pageSize int) []models.Document {
	if page < 0 || pageSize <= 0 {
		return []models.Document{}
	}
	start := page * pageSize
	if start >= len(docs) {
		return []models.Document{}
	}
	end := start + pageSize
	if end > len(docs) {
		end = len(docs)
	}
	out := make([]models.Document, end-start)
	copy(out, docs[start:end])
	return out
}

// ClampPage pulls page back into [0, PageCount) for the given total
func ClampPage(page, total, pageSize int) int {
	count := PageCount(total, pageSize)
	if count == 0 || page < 0 {
		return 0
	}
	if page >= count {
		return count - 1
	}
	return page
}

// View is one derived window over a collection.
type View struct {
	Documents []models.Document // rows on the current page
	Filtered  int               // documents matching the term
	Page      int
	PageCount int
	PageSize  int
}

// Derive runs the list pipeline: filter by term, sort the whole filtered
// set, then cut out the requested page.
func Derive(docs []models.Document, term string, sortState SortState, page, pageSize int) View {
	filtered := Sort(Filter(docs, term), sortState)
	return View{
		Documents: Paginate(filtered, page, pageSize),
		Filtered:  len(filtered),
		Page:      page,
		PageCount: PageCount(len(filtered), pageSize),
		PageSize:  pageSize,
	}
}
