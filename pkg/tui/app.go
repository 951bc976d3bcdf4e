package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/pluqqy/docdesk/pkg/client"
	"github.com/pluqqy/docdesk/pkg/documents"
	"github.com/pluqqy/docdesk/pkg/models"
)

// Route names a view of the application
type Route string

const (
	RouteList   Route = "/"
	RouteAdd    Route = "/add"
	RouteDetail Route = "/detail"
)

// User-facing error lines. Client errors are collapsed into these at the
// view boundary; the logs keep the detail.
const (
	ErrFetchDocuments = "Failed to fetch documents."
	ErrDeleteDocument = "Failed to delete the document."
	ErrAddDocument    = "Failed to add document"
	ErrNotFound       = "Document not found"
	ErrUnexpected     = "Something went wrong"
)

// Options wires the application to its collaborators
type Options struct {
	Context  context.Context
	Service  client.DocumentService
	Logger   *zap.Logger
	PageSize int
	Debounce time.Duration
	// StatusTimeout is how long a status message stays up. Zero means
	// DefaultStatusTimeout.
	StatusTimeout time.Duration
}

// DefaultStatusTimeout keeps status messages visible for three seconds
const DefaultStatusTimeout = 3 * time.Second

// App is the navigation shell. It owns the document collection and the
// selected id and routes messages to the active view.
type App struct {
	route      Route
	docs       *documents.Collection
	selectedID models.DocumentID

	list   *DocumentListModel
	detail *DocumentDetailModel
	form   *DocumentFormModel

	logger        *zap.Logger
	width         int
	height        int
	statusMsg     string
	statusSeq     int
	statusTimeout time.Duration
}

// NewApp creates the shell mounted on the list route
func NewApp(opts Options) *App {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.PageSize <= 0 {
		opts.PageSize = documents.DefaultPageSize
	}
	if opts.StatusTimeout <= 0 {
		opts.StatusTimeout = DefaultStatusTimeout
	}

	docs := documents.NewCollection()
	return &App{
		route:  RouteList,
		docs:   docs,
		list:   NewDocumentListModel(opts, docs),
		detail: NewDocumentDetailModel(opts),
		form:   NewDocumentFormModel(opts),
		logger: opts.Logger,

		statusTimeout: opts.StatusTimeout,
	}
}

// Route returns the active route
func (a *App) Route() Route {
	return a.route
}

// Documents returns the shared collection
func (a *App) Documents() *documents.Collection {
	return a.docs
}

// SelectedID returns the document chosen for the detail view
func (a *App) SelectedID() models.DocumentID {
	return a.selectedID
}

// StatusMessage returns the text of the status bar
func (a *App) StatusMessage() string {
	return a.statusMsg
}

func (a *App) Init() tea.Cmd {
	return a.list.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.SetSize(msg.Width, msg.Height)
		a.detail.SetSize(msg.Width, msg.Height)
		a.form.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global keybindings
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case StatusMsg:
		return a, a.showStatus(string(msg))

	case clearStatusMsg:
		if msg.seq == a.statusSeq {
			a.statusMsg = ""
		}
		return a, nil

	case SwitchViewMsg:
		return a, a.navigate(msg.Route)

	case DocumentSelectedMsg:
		a.selectedID = msg.ID
		return a, a.navigate(RouteDetail)

	case DocumentAddedMsg:
		a.docs.Add(msg.Document)
		a.logger.Info("document added", zap.String("id", msg.Document.ID.String()))
		cmd := a.navigate(RouteList)
		return a, tea.Batch(cmd, a.showStatus("Added "+msg.Document.Name))

	// Completions go to the view that issued them, even after navigating away
	case documentsLoadedMsg, documentDeletedMsg, searchDebouncedMsg:
		return a, a.updateList(msg)
	case documentLoadedMsg:
		return a, a.updateDetail(msg)
	case documentCreatedMsg:
		return a, a.updateForm(msg)
	}

	// Route updates to the active view
	switch a.route {
	case RouteAdd:
		return a, a.updateForm(msg)
	case RouteDetail:
		return a, a.updateDetail(msg)
	default:
		return a, a.updateList(msg)
	}
}

func (a *App) navigate(route Route) tea.Cmd {
	a.logger.Debug("navigate", zap.String("from", string(a.route)), zap.String("to", string(route)))
	a.route = route
	a.statusMsg = ""

	switch route {
	case RouteAdd:
		a.form.Reset()
		return a.form.Init()
	case RouteDetail:
		return a.detail.Load(a.selectedID)
	default:
		a.route = RouteList
		return a.list.Refresh()
	}
}

// showStatus puts text in the status bar and schedules its removal. A newer
// message invalidates the pending clear of an older one.
func (a *App) showStatus(text string) tea.Cmd {
	a.statusMsg = text
	a.statusSeq++
	seq := a.statusSeq
	return tea.Tick(a.statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (a *App) updateList(msg tea.Msg) tea.Cmd {
	m, cmd := a.list.Update(msg)
	if l, ok := m.(*DocumentListModel); ok {
		a.list = l
	}
	return cmd
}

func (a *App) updateDetail(msg tea.Msg) tea.Cmd {
	m, cmd := a.detail.Update(msg)
	if d, ok := m.(*DocumentDetailModel); ok {
		a.detail = d
	}
	return cmd
}

func (a *App) updateForm(msg tea.Msg) tea.Cmd {
	m, cmd := a.form.Update(msg)
	if f, ok := m.(*DocumentFormModel); ok {
		a.form = f
	}
	return cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var content string
	switch a.route {
	case RouteAdd:
		content = a.form.View()
	case RouteDetail:
		content = a.detail.View()
	default:
		content = a.list.View()
	}

	if a.statusMsg != "" {
		content = lipgloss.JoinVertical(lipgloss.Top, content, StatusBarStyle.Render(a.statusMsg))
	}

	return content
}

// Messages for communication between views

// StatusMsg sets the status bar text
type StatusMsg string

type clearStatusMsg struct {
	seq int
}

// SwitchViewMsg asks the shell to navigate
type SwitchViewMsg struct {
	Route Route
}

// DocumentSelectedMsg selects a document and opens its detail view
type DocumentSelectedMsg struct {
	ID models.DocumentID
}

// DocumentAddedMsg hands a freshly created document to the shell
type DocumentAddedMsg struct {
	Document models.Document
}

func switchView(route Route) tea.Cmd {
	return func() tea.Msg {
		return SwitchViewMsg{Route: route}
	}
}

func setStatus(text string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg(text)
	}
}
