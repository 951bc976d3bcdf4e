package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/pluqqy/docdesk/pkg/client"
	"github.com/pluqqy/docdesk/pkg/models"
)

type formField int

const (
	nameField formField = iota
	contentField
)

// documentCreatedMsg carries the result of a create issued in form session seq
type documentCreatedMsg struct {
	seq int
	doc *models.Document
	err error
}

// DocumentFormModel is the "/add" view
type DocumentFormModel struct {
	ctx     context.Context
	service client.DocumentService
	logger  *zap.Logger

	nameInput    textinput.Model
	contentInput textarea.Model
	focus        formField

	fieldErrors map[string]string
	err         string
	submitting  bool
	// session changes on every Reset; completions from older sessions are dropped
	session int

	width  int
	height int
}

// NewDocumentFormModel creates the creation form
func NewDocumentFormModel(opts Options) *DocumentFormModel {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	name := textinput.New()
	name.Placeholder = "Document name"
	name.CharLimit = 200

	content := textarea.New()
	content.Placeholder = "Document content"
	content.ShowLineNumbers = false
	content.CharLimit = 0

	m := &DocumentFormModel{
		ctx:          ctx,
		service:      opts.Service,
		logger:       logger,
		nameInput:    name,
		contentInput: content,
	}
	m.Reset()
	return m
}

func (m *DocumentFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Reset clears the form and focuses the name field
func (m *DocumentFormModel) Reset() {
	m.nameInput.SetValue("")
	m.contentInput.SetValue("")
	m.fieldErrors = nil
	m.err = ""
	m.submitting = false
	m.session++
	m.setFocus(nameField)
}

// SetSize updates the layout dimensions
func (m *DocumentFormModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	inputWidth := width - 8
	if inputWidth < 20 {
		inputWidth = 20
	}
	m.nameInput.Width = inputWidth
	m.contentInput.SetWidth(inputWidth)

	contentHeight := height - 16
	if contentHeight < 3 {
		contentHeight = 3
	}
	m.contentInput.SetHeight(contentHeight)
}

// SetValues fills both fields
func (m *DocumentFormModel) SetValues(name, content string) {
	m.nameInput.SetValue(name)
	m.contentInput.SetValue(content)
}

// Input returns the current field values
func (m *DocumentFormModel) Input() models.DocumentInput {
	return models.DocumentInput{
		Name:    m.nameInput.Value(),
		Content: m.contentInput.Value(),
	}
}

// FieldErrors returns the validation messages from the last submit
func (m *DocumentFormModel) FieldErrors() map[string]string {
	return m.fieldErrors
}

// Error returns the submission error line
func (m *DocumentFormModel) Error() string {
	return m.err
}

// Submitting reports whether a create is outstanding
func (m *DocumentFormModel) Submitting() bool {
	return m.submitting
}

// Submit validates the form and, when valid, sends the create
func (m *DocumentFormModel) Submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	input := m.Input()
	if errs := input.FieldErrors(); len(errs) > 0 {
		m.fieldErrors = errs
		return nil
	}
	m.fieldErrors = nil
	m.err = ""
	m.submitting = true

	ctx, service, seq := m.ctx, m.service, m.session
	return func() tea.Msg {
		doc, err := service.Create(ctx, input)
		return documentCreatedMsg{seq: seq, doc: doc, err: err}
	}
}

func (m *DocumentFormModel) setFocus(field formField) tea.Cmd {
	m.focus = field
	if field == nameField {
		m.contentInput.Blur()
		return m.nameInput.Focus()
	}
	m.nameInput.Blur()
	return m.contentInput.Focus()
}

func (m *DocumentFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case documentCreatedMsg:
		if msg.seq != m.session {
			// the list picks a late document up on its next fetch
			m.logger.Debug("dropping create result from an earlier form", zap.Int("seq", msg.seq), zap.Int("session", m.session))
			return m, nil
		}
		m.submitting = false
		if msg.err != nil {
			m.logger.Warn("create document failed", zap.Error(msg.err))
			m.err = ErrAddDocument
			return m, nil
		}
		doc := *msg.doc
		m.Reset()
		return m, func() tea.Msg {
			return DocumentAddedMsg{Document: doc}
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, switchView(RouteList)
		case "ctrl+s":
			return m, m.Submit()
		case "tab", "shift+tab":
			if m.focus == nameField {
				return m, m.setFocus(contentField)
			}
			return m, m.setFocus(nameField)
		case "enter":
			if m.focus == nameField {
				return m, m.setFocus(contentField)
			}
		}
	}

	var cmd tea.Cmd
	if m.focus == nameField {
		m.nameInput, cmd = m.nameInput.Update(msg)
	} else {
		m.contentInput, cmd = m.contentInput.Update(msg)
	}

	// once a submit failed validation, keep the messages in step with the fields
	if m.fieldErrors != nil {
		m.fieldErrors = m.Input().FieldErrors()
	}
	return m, cmd
}

func (m *DocumentFormModel) View() string {
	var sections []string
	sections = append(sections, renderHeader(m.width, "Add Document", "[esc] Cancel"))

	sections = append(sections, m.renderField("Name", m.nameInput.View(), models.FieldName, m.focus == nameField))
	sections = append(sections, m.renderField("Content", m.contentInput.View(), models.FieldContent, m.focus == contentField))

	var status string
	switch {
	case m.submitting:
		status = DescriptionStyle.Render("Saving...")
	case m.err != "":
		status = ErrorStyle.Render(m.err)
	}
	if status != "" {
		sections = append(sections, ContentPaddingStyle.Render(status))
	}

	sections = append(sections, renderHelp(m.width, "tab switch field • ctrl+s save • esc cancel"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *DocumentFormModel) renderField(label, input, field string, active bool) string {
	var b strings.Builder
	b.WriteString(LabelStyle.Render(label))
	b.WriteString("\n")

	box := GetActiveBorderStyle(active).Padding(0, 1)
	b.WriteString(box.Render(input))

	if text, ok := m.fieldErrors[field]; ok {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render(text))
	}
	return ContentPaddingStyle.Render(b.String())
}
