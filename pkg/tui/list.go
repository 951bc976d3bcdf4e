package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/pluqqy/docdesk/pkg/client"
	"github.com/pluqqy/docdesk/pkg/documents"
	"github.com/pluqqy/docdesk/pkg/models"
)

// documentsLoadedMsg carries the result of list fetch number seq
type documentsLoadedMsg struct {
	seq  int
	docs []models.Document
	err  error
}

// documentDeletedMsg carries the result of a confirmed delete
type documentDeletedMsg struct {
	id   models.DocumentID
	name string
	err  error
}

// DocumentListModel is the "/" view: search, sort, pagination and the
// delete-confirmation flow over the collection owned by the shell.
type DocumentListModel struct {
	ctx     context.Context
	service client.DocumentService
	logger  *zap.Logger
	docs    *documents.Collection

	pageSize        int
	search          string
	debouncedSearch string
	sortState       documents.SortState

	searchBar    *SearchBar
	debouncer    *SearchDebouncer
	stateManager *StateManager
	confirm      *ConfirmationModel
	spinner      spinner.Model

	loading  bool
	err      string
	fetchSeq int

	width  int
	height int
}

// NewDocumentListModel creates the list view over docs
func NewDocumentListModel(opts Options, docs *documents.Collection) *DocumentListModel {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = documents.DefaultPageSize
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorActive))

	return &DocumentListModel{
		ctx:          ctx,
		service:      opts.Service,
		logger:       logger,
		docs:         docs,
		pageSize:     pageSize,
		sortState:    documents.DefaultSort(),
		searchBar:    NewSearchBar(),
		debouncer:    NewSearchDebouncer(opts.Debounce),
		stateManager: NewStateManager(),
		confirm:      NewConfirmation(),
		spinner:      s,
	}
}

func (m *DocumentListModel) Init() tea.Cmd {
	return m.Refresh()
}

// SetSize updates the layout dimensions
func (m *DocumentListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.searchBar.SetWidth(width)
	m.confirm.SetWidth(width)
}

// Loading reports whether a list fetch is outstanding
func (m *DocumentListModel) Loading() bool {
	return m.loading
}

// Error returns the error line, empty when there is none
func (m *DocumentListModel) Error() string {
	return m.err
}

// Search returns the raw search text
func (m *DocumentListModel) Search() string {
	return m.search
}

// DebouncedSearch returns the settled search term
func (m *DocumentListModel) DebouncedSearch() string {
	return m.debouncedSearch
}

// SortState returns the active sort
func (m *DocumentListModel) SortState() documents.SortState {
	return m.sortState
}

// CurrentPage returns the zero-based page
func (m *DocumentListModel) CurrentPage() int {
	return m.stateManager.CurrentPage()
}

// PendingDelete returns the document awaiting confirmation
func (m *DocumentListModel) PendingDelete() (models.DocumentID, bool) {
	return m.stateManager.PendingDelete()
}

// DialogOpen reports whether the delete confirmation is shown
func (m *DocumentListModel) DialogOpen() bool {
	return m.confirm.Active()
}

// Confirmation exposes the delete dialog
func (m *DocumentListModel) Confirmation() *ConfirmationModel {
	return m.confirm
}

// Refresh issues a list fetch for the settled search term. Completions of
// earlier fetches are dropped once this one is issued.
func (m *DocumentListModel) Refresh() tea.Cmd {
	m.fetchSeq++
	m.loading = true
	m.err = ""
	return tea.Batch(m.spinner.Tick, m.fetchDocuments(m.fetchSeq, m.debouncedSearch))
}

func (m *DocumentListModel) fetchDocuments(seq int, term string) tea.Cmd {
	ctx, service := m.ctx, m.service
	return func() tea.Msg {
		docs, err := service.List(ctx, term)
		return documentsLoadedMsg{seq: seq, docs: docs, err: err}
	}
}

// SetSearch records the raw search text and restarts the debounce timer
func (m *DocumentListModel) SetSearch(value string) tea.Cmd {
	m.search = value
	if m.searchBar.Value() != value {
		m.searchBar.SetValue(value)
	}
	return m.debouncer.Trigger(value)
}

// VisibleDocuments derives the current page from the collection
func (m *DocumentListModel) VisibleDocuments() documents.View {
	items := m.docs.Items()
	page := m.stateManager.CurrentPage()

	view := documents.Derive(items, m.debouncedSearch, m.sortState, page, m.pageSize)
	// the filtered set may have shrunk below the current page
	if clamped := documents.ClampPage(page, view.Filtered, m.pageSize); clamped != page {
		view = documents.Derive(items, m.debouncedSearch, m.sortState, clamped, m.pageSize)
	}
	m.stateManager.UpdateCounts(len(view.Documents), view.PageCount)
	return view
}

// SelectedDocument returns the document under the cursor
func (m *DocumentListModel) SelectedDocument() (models.Document, bool) {
	view := m.VisibleDocuments()
	cursor := m.stateManager.Cursor()
	if cursor < 0 || cursor >= len(view.Documents) {
		return models.Document{}, false
	}
	return view.Documents[cursor], true
}

// ToggleSort cycles the sort on col
func (m *DocumentListModel) ToggleSort(col documents.SortColumn) {
	m.sortState = m.sortState.Toggle(col)
}

// SetPage moves to page, clamped to the available pages
func (m *DocumentListModel) SetPage(page int) {
	m.VisibleDocuments()
	m.stateManager.SetPage(page)
}

// RequestDelete opens the confirmation dialog for id. Nothing is sent yet.
func (m *DocumentListModel) RequestDelete(id models.DocumentID) {
	doc, ok := m.docs.Find(id)
	if !ok {
		return
	}
	m.stateManager.SetPendingDelete(id)
	m.confirm.Show(
		"Delete Document",
		fmt.Sprintf("Are you sure you want to delete the document: %s?", doc.Name),
		m.ConfirmDelete,
		m.cancelDelete,
	)
}

// ConfirmDelete issues the delete for the pending target. The target is
// released on dispatch, so a later dialog owns its own id.
func (m *DocumentListModel) ConfirmDelete() tea.Cmd {
	id, ok := m.stateManager.PendingDelete()
	if !ok {
		return nil
	}
	m.stateManager.ClearPendingDelete()
	var name string
	if doc, found := m.docs.Find(id); found {
		name = doc.Name
	}

	ctx, service := m.ctx, m.service
	return func() tea.Msg {
		err := service.Delete(ctx, id)
		return documentDeletedMsg{id: id, name: name, err: err}
	}
}

func (m *DocumentListModel) cancelDelete() tea.Cmd {
	m.stateManager.ClearPendingDelete()
	return nil
}

// ViewDocument selects id for the detail view
func (m *DocumentListModel) ViewDocument(id models.DocumentID) tea.Cmd {
	return func() tea.Msg {
		return DocumentSelectedMsg{ID: id}
	}
}

func (m *DocumentListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case documentsLoadedMsg:
		if msg.seq != m.fetchSeq {
			m.logger.Debug("dropping stale list response", zap.Int("seq", msg.seq), zap.Int("latest", m.fetchSeq))
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.logger.Warn("list documents failed", zap.Error(msg.err))
			m.err = ErrFetchDocuments
			return m, nil
		}
		m.docs.Replace(msg.docs)
		m.VisibleDocuments()
		return m, nil

	case documentDeletedMsg:
		if msg.err != nil {
			m.logger.Warn("delete document failed", zap.String("id", msg.id.String()), zap.Error(msg.err))
			m.err = ErrDeleteDocument
			return m, nil
		}
		m.docs.Remove(msg.id)
		m.VisibleDocuments()
		return m, setStatus("Deleted " + msg.name)

	case searchDebouncedMsg:
		if !m.debouncer.Accept(msg) || msg.value == m.debouncedSearch {
			return m, nil
		}
		m.debouncedSearch = msg.value
		m.stateManager.ResetPage()
		return m, m.Refresh()

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	if m.searchBar.Active() {
		var cmd tea.Cmd
		m.searchBar, cmd = m.searchBar.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *DocumentListModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.confirm.Active() {
		return m.confirm.Update(msg)
	}

	if m.searchBar.Active() {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "q":
		return tea.Quit
	case "/":
		return m.searchBar.SetActive(true)
	case "esc":
		if m.search != "" {
			return m.SetSearch("")
		}
	case "up", "k":
		m.VisibleDocuments()
		m.stateManager.MoveCursorUp()
	case "down", "j":
		m.VisibleDocuments()
		m.stateManager.MoveCursorDown()
	case "left", "h", "pgup":
		m.SetPage(m.stateManager.CurrentPage() - 1)
	case "right", "l", "pgdown":
		m.SetPage(m.stateManager.CurrentPage() + 1)
	case "1":
		m.ToggleSort(documents.SortByName)
	case "2":
		m.ToggleSort(documents.SortByCreated)
	case "3":
		m.ToggleSort(documents.SortBySize)
	case "enter", "v":
		if doc, ok := m.SelectedDocument(); ok {
			return m.ViewDocument(doc.ID)
		}
	case "d", "delete":
		if doc, ok := m.SelectedDocument(); ok {
			m.RequestDelete(doc.ID)
		}
	case "a":
		return switchView(RouteAdd)
	case "r":
		return m.Refresh()
	}
	return nil
}

func (m *DocumentListModel) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter, tea.KeyTab:
		return m.searchBar.SetActive(false)
	}

	var cmd tea.Cmd
	m.searchBar, cmd = m.searchBar.Update(msg)
	if value := m.searchBar.Value(); value != m.search {
		return tea.Batch(cmd, m.SetSearch(value))
	}
	return cmd
}

func (m *DocumentListModel) View() string {
	var sections []string

	sections = append(sections, renderHeader(m.width, "Document Management", "[a] Add Document"))
	sections = append(sections, m.searchBar.View())

	view := m.VisibleDocuments()

	switch {
	case m.err != "":
		sections = append(sections, ContentPaddingStyle.Render(ErrorStyle.Render(m.err)))
	case m.loading && m.docs.Len() == 0:
		sections = append(sections, ContentPaddingStyle.Render(m.spinner.View()+" Loading documents..."))
	default:
		sections = append(sections, m.renderTable(view))
	}

	if m.confirm.Active() {
		dialog := m.confirm.View()
		if m.width > 0 {
			dialog = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, dialog)
		}
		sections = append(sections, dialog)
	}

	sections = append(sections, renderHelp(m.width, m.helpText()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *DocumentListModel) renderTable(view documents.View) string {
	var b strings.Builder

	status := fmt.Sprintf("%d documents", view.Filtered)
	if m.debouncedSearch != "" {
		status = fmt.Sprintf("%d documents matching %q", view.Filtered, m.debouncedSearch)
	}
	if m.loading {
		status += " " + m.spinner.View()
	}
	b.WriteString(DescriptionStyle.Render(status))
	b.WriteString("\n\n")

	if len(view.Documents) == 0 {
		b.WriteString(EmptyStyle.Render("No documents found."))
		return ContentPaddingStyle.Render(b.String())
	}

	table := NewDocumentTableRenderer(m.width)
	table.Documents = view.Documents
	table.Cursor = m.stateManager.Cursor()
	table.Sort = m.sortState
	b.WriteString(table.View())
	b.WriteString("\n\n")
	b.WriteString(renderPageControl(view.Page, view.PageCount))

	return ContentPaddingStyle.Render(b.String())
}

// renderPageControl shows the current page with prev/next markers
func renderPageControl(page, pageCount int) string {
	if pageCount == 0 {
		return ""
	}
	prev, next := "  ", "  "
	if page > 0 {
		prev = "‹ "
	}
	if page < pageCount-1 {
		next = " ›"
	}
	return DescriptionStyle.Render(fmt.Sprintf("%sPage %d of %d%s", prev, page+1, pageCount, next))
}

func (m *DocumentListModel) helpText() string {
	if m.confirm.Active() {
		return "y/enter confirm • n/esc cancel"
	}
	if m.searchBar.Active() {
		return "type to search • enter/esc done"
	}
	return "↑/↓ move • ←/→ page • enter view • a add • d delete • / search • 1/2/3 sort name/created/size • r refresh • q quit"
}
