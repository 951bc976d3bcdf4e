package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// renderHeader draws the title on the left and an optional hint on the right
func renderHeader(width int, title, hint string) string {
	headerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	titleRendered := TitleStyle.Render(title)
	if hint == "" || width == 0 {
		return headerPadding.Render(titleRendered)
	}

	hintRendered := DescriptionStyle.Render(hint)

	// -2 for left and right padding
	gap := width - 2 - lipgloss.Width(titleRendered) - lipgloss.Width(hintRendered)
	if gap < 1 {
		gap = 1
	}

	headerContent := lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleRendered,
		lipgloss.NewStyle().Width(gap).Render(""),
		hintRendered,
	)
	return headerPadding.Render(headerContent)
}

// renderHelp renders a footer of key hints
func renderHelp(width int, hints string) string {
	style := HelpBorderStyle
	if width > 4 {
		style = style.Width(width - 4)
	}
	return ContentPaddingStyle.Render(style.Render(HelpStyle.Render(hints)))
}
