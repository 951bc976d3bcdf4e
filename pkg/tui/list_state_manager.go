package tui

import (
	"sync"

	"github.com/pluqqy/docdesk/pkg/models"
)

// StateManager holds the navigation state of the document list: the cursor
// inside the current page, the current page, and the document waiting for
// delete confirmation.
type StateManager struct {
	mu sync.RWMutex

	cursor      int
	currentPage int

	pendingDelete    models.DocumentID
	hasPendingDelete bool

	// Counts for bounds checking
	rowCount  int
	pageCount int
}

// NewStateManager creates a new state manager instance
func NewStateManager() *StateManager {
	return &StateManager{}
}

// UpdateCounts records the rows on the current page and the number of pages,
// pulling the page and cursor back into range.
func (sm *StateManager) UpdateCounts(rowCount, pageCount int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.rowCount = rowCount
	sm.pageCount = pageCount

	if pageCount == 0 {
		sm.currentPage = 0
	} else if sm.currentPage >= pageCount {
		sm.currentPage = pageCount - 1
	}

	if rowCount == 0 {
		sm.cursor = 0
	} else if sm.cursor >= rowCount {
		sm.cursor = rowCount - 1
	}
}

// Cursor returns the selected row within the page
func (sm *StateManager) Cursor() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.cursor
}

// MoveCursorUp moves the cursor up one row
func (sm *StateManager) MoveCursorUp() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.cursor > 0 {
		sm.cursor--
		return true
	}
	return false
}

// MoveCursorDown moves the cursor down one row
func (sm *StateManager) MoveCursorDown() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.cursor < sm.rowCount-1 {
		sm.cursor++
		return true
	}
	return false
}

// CurrentPage returns the zero-based page
func (sm *StateManager) CurrentPage() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.currentPage
}

// SetPage moves to page, clamped to the known page range, and resets the cursor.
// It reports whether the page changed.
func (sm *StateManager) SetPage(page int) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if page >= sm.pageCount {
		page = sm.pageCount - 1
	}
	if page < 0 {
		page = 0
	}
	if page == sm.currentPage {
		return false
	}
	sm.currentPage = page
	sm.cursor = 0
	return true
}

// ResetPage returns to the first page regardless of the known page range
func (sm *StateManager) ResetPage() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.currentPage = 0
	sm.cursor = 0
}

// SetPendingDelete marks id as the document awaiting confirmation
func (sm *StateManager) SetPendingDelete(id models.DocumentID) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.pendingDelete = id
	sm.hasPendingDelete = true
}

// PendingDelete returns the document awaiting confirmation, if any
func (sm *StateManager) PendingDelete() (models.DocumentID, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.pendingDelete, sm.hasPendingDelete
}

// ClearPendingDelete forgets the pending target
func (sm *StateManager) ClearPendingDelete() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.pendingDelete = ""
	sm.hasPendingDelete = false
}
