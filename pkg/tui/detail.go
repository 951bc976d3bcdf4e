package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"go.uber.org/zap"

	"github.com/pluqqy/docdesk/pkg/client"
	"github.com/pluqqy/docdesk/pkg/models"
)

// Placeholder lines of the detail view
const (
	MsgNoSelection     = "Select a document to view details."
	MsgNoDocument      = "No document found."
	MsgLoadingDocument = "Loading document..."
)

// documentLoadedMsg carries the result of detail fetch number seq
type documentLoadedMsg struct {
	seq int
	id  models.DocumentID
	doc *models.Document
	err error
}

// DocumentDetailModel is the "/detail" view of one document
type DocumentDetailModel struct {
	ctx     context.Context
	service client.DocumentService
	logger  *zap.Logger

	id      models.DocumentID
	seq     int
	loading bool
	err     string
	doc     *models.Document

	viewport        viewport.Model
	copyToClipboard func(string) error

	width  int
	height int
}

// NewDocumentDetailModel creates the detail view
func NewDocumentDetailModel(opts Options) *DocumentDetailModel {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentDetailModel{
		ctx:             ctx,
		service:         opts.Service,
		logger:          logger,
		viewport:        viewport.New(80, 20),
		copyToClipboard: clipboard.WriteAll,
	}
}

func (m *DocumentDetailModel) Init() tea.Cmd {
	return nil
}

// SetSize updates the layout dimensions
func (m *DocumentDetailModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.updateViewportSize()
	m.updateContent()
}

// Load switches the view to id and fetches it. Responses for an id that has
// since been replaced are dropped.
func (m *DocumentDetailModel) Load(id models.DocumentID) tea.Cmd {
	m.seq++
	m.id = id
	m.doc = nil
	m.err = ""
	m.viewport.SetContent("")

	if id == "" {
		m.loading = false
		return nil
	}
	m.loading = true

	seq, ctx, service := m.seq, m.ctx, m.service
	return func() tea.Msg {
		doc, err := service.Get(ctx, id)
		return documentLoadedMsg{seq: seq, id: id, doc: doc, err: err}
	}
}

// Document returns the loaded document, if any
func (m *DocumentDetailModel) Document() *models.Document {
	return m.doc
}

// Message returns the placeholder or error line shown instead of a document
func (m *DocumentDetailModel) Message() string {
	switch {
	case m.id == "":
		return MsgNoSelection
	case m.loading:
		return MsgLoadingDocument
	case m.err != "":
		return m.err
	case m.doc == nil || m.doc.ID == "":
		return MsgNoDocument
	}
	return ""
}

func (m *DocumentDetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case documentLoadedMsg:
		if msg.seq != m.seq || msg.id != m.id {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.logger.Warn("get document failed", zap.String("id", msg.id.String()), zap.Error(msg.err))
			if errors.Is(msg.err, client.ErrNotFound) {
				m.err = ErrNotFound
			} else {
				m.err = ErrUnexpected
			}
			return m, nil
		}
		m.doc = msg.doc
		m.viewport.GotoTop()
		m.updateContent()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "backspace":
			return m, switchView(RouteList)
		case "y":
			return m, m.copyContent()
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *DocumentDetailModel) copyContent() tea.Cmd {
	if m.doc == nil {
		return nil
	}
	if err := m.copyToClipboard(m.doc.Content); err != nil {
		m.logger.Warn("copy to clipboard failed", zap.Error(err))
		return setStatus("Failed to copy to clipboard")
	}
	return setStatus(m.doc.Name + " → clipboard")
}

func (m *DocumentDetailModel) updateViewportSize() {
	// header, metadata block and help footer
	height := m.height - 12
	if height < 3 {
		height = 3
	}
	width := m.width - 4
	if width < 10 {
		width = 10
	}
	m.viewport.Width = width
	m.viewport.Height = height
}

func (m *DocumentDetailModel) updateContent() {
	if m.doc == nil {
		return
	}
	m.viewport.SetContent(wordwrap.String(m.doc.Content, m.viewport.Width))
}

func (m *DocumentDetailModel) View() string {
	var sections []string
	sections = append(sections, renderHeader(m.width, "Document Details", "[esc] Back"))

	if text := m.Message(); text != "" {
		style := EmptyStyle
		if m.err != "" {
			style = ErrorStyle
		}
		sections = append(sections, ContentPaddingStyle.Render(style.Render(text)))
	} else {
		var meta strings.Builder
		meta.WriteString(LabelStyle.Render("Name: ") + m.doc.Name + "\n")
		meta.WriteString(LabelStyle.Render("Created: ") + formatCreatedLong(m.doc.CreatedAt) + "\n")
		meta.WriteString(LabelStyle.Render("Size: ") + formatSize(m.doc.Size) + "\n")
		meta.WriteString(LabelStyle.Render("Content:"))
		sections = append(sections, ContentPaddingStyle.Render(meta.String()))

		box := InactiveBorderStyle
		if m.width > 4 {
			box = box.Width(m.width - 4)
		}
		sections = append(sections, ContentPaddingStyle.Render(box.Render(m.viewport.View())))
	}

	sections = append(sections, renderHelp(m.width, "↑/↓ scroll • y copy content • esc back"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func formatCreatedLong(ts models.Timestamp) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.Local().Format("Mon, 02 Jan 2006 15:04:05 MST")
}
