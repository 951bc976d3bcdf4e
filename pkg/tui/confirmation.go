package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationModel is a yes/no gate in front of a destructive action.
// It is either closed or open with a message; confirming and cancelling
// both close it and run the matching callback.
type ConfirmationModel struct {
	active    bool
	title     string
	message   string
	onConfirm func() tea.Cmd
	onCancel  func() tea.Cmd
	width     int
}

// NewConfirmation creates a new confirmation model
func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show opens the dialog
func (m *ConfirmationModel) Show(title, message string, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.title = title
	m.message = message
	m.onConfirm = onConfirm
	m.onCancel = onCancel
}

// Active returns whether the confirmation is currently shown
func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Message returns the prompt of the open dialog
func (m *ConfirmationModel) Message() string {
	return m.message
}

// Confirm closes the dialog and runs the confirm callback
func (m *ConfirmationModel) Confirm() tea.Cmd {
	if !m.active {
		return nil
	}
	m.active = false
	if m.onConfirm != nil {
		return m.onConfirm()
	}
	return nil
}

// Cancel closes the dialog and runs the cancel callback
func (m *ConfirmationModel) Cancel() tea.Cmd {
	if !m.active {
		return nil
	}
	m.active = false
	if m.onCancel != nil {
		return m.onCancel()
	}
	return nil
}

// Update handles key events for the confirmation. Unrelated keys are swallowed
// while the dialog is open.
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "y", "Y", "enter":
		return m.Confirm()
	case "n", "N", "esc":
		return m.Cancel()
	}

	return nil
}

// SetWidth sets the dialog width
func (m *ConfirmationModel) SetWidth(width int) {
	m.width = width
}

// View renders the dialog with a border
func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorActive)).
		Padding(1, 2)

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorWarning))

	width := 60
	if m.width > 0 && m.width-4 < width {
		width = m.width - 4
	}
	contentWidth := width - 6 // border and padding

	center := lipgloss.NewStyle().Width(contentWidth).Align(lipgloss.Center)

	var content strings.Builder
	if m.title != "" {
		content.WriteString(center.Render(headerStyle.Render(m.title)))
		content.WriteString("\n\n")
	}
	content.WriteString(lipgloss.NewStyle().Width(contentWidth).Render(m.message))
	content.WriteString("\n\n")
	content.WriteString(center.Render(formatConfirmOptions(true)))

	return borderStyle.Width(width).Render(content.String())
}

// formatConfirmOptions renders the y/n choices, coloured by whether the
// confirmed action destroys data
func formatConfirmOptions(destructive bool) string {
	yes := lipgloss.NewStyle().Bold(true)
	no := lipgloss.NewStyle().Bold(true)
	if destructive {
		yes = yes.Foreground(lipgloss.Color(ColorDanger))
		no = no.Foreground(lipgloss.Color(ColorSuccess))
	} else {
		yes = yes.Foreground(lipgloss.Color(ColorSuccess))
		no = no.Foreground(lipgloss.Color(ColorNormal))
	}
	return "[" + yes.Render("y") + "]es  [" + no.Render("n") + "]o"
}
