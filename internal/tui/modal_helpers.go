package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// renderModal renders a near fullscreen bordered modal with a title and footer
func renderModal(title, body, footer string, totalWidth, totalHeight int) string {
	width := totalWidth - ModalWidthMargin
	height := totalHeight - ModalHeightMargin
	if width < 20 {
		width = 20
	}
	if height < ModalOverheadLines {
		height = ModalOverheadLines
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styleTitle.Render(title),
		"",
		body,
	)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCyan).
		Padding(1, 2).
		Width(width).
		Height(height - ModalFooterLines).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, box, styleSubtle.Render(footer))
}

// renderConfirmModal renders a small modal centered in the window
func renderConfirmModal(title, body, footer string, totalWidth, totalHeight int) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		styleTitle.Render(title),
		"",
		body,
		"",
		styleSubtle.Render(footer),
	)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorYellow).
		Padding(1, 2).
		Render(content)

	return lipgloss.Place(totalWidth, totalHeight, lipgloss.Center, lipgloss.Center, box)
}
