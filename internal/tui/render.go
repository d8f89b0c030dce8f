package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/sortstep/internal/bars"
	"github.com/studiowebux/sortstep/internal/keybinds"
	"github.com/studiowebux/sortstep/internal/parser"
	"github.com/studiowebux/sortstep/internal/sorting"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"}
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"}
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"}
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"}
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleSelected = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorYellow)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)
)

// renderMain renders the visualizer: header, chart, explanation and status bar
func (m Model) renderMain() string {
	if m.width == 0 {
		return ""
	}

	header := m.renderHeader()

	chartBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.chartBorderColor()).
		Padding(0, 1).
		Render(m.renderChart())

	explanation := m.renderExplanation()

	sections := []string{header, chartBox, explanation}
	if m.mode == ModeInput {
		sections = append(sections, "", m.arrayInput.View(),
			styleSubtle.Render(fmt.Sprintf("%s: apply | %s: cancel",
				m.keybinds.GetBindingString(keybinds.ContextInput, keybinds.ActionTextSubmit),
				m.keybinds.GetBindingString(keybinds.ContextInput, keybinds.ActionTextCancel))))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)

	// Pin the status bar to the last line
	bodyHeight := lipgloss.Height(body)
	padding := m.height - bodyHeight - 1
	if padding < 0 {
		padding = 0
	}

	return body + strings.Repeat("\n", padding+1) + m.renderStatusBar()
}

// renderHeader shows the app title, the algorithm choices and progress
func (m Model) renderHeader() string {
	var parts []string
	for i, a := range sorting.Algorithms {
		label := fmt.Sprintf("[%d] %s", i+1, a.Title())
		if m.engine.Active() && m.engine.Algorithm() == a {
			label = styleSelected.Render(label)
		} else {
			label = styleSubtle.Render(label)
		}
		parts = append(parts, label)
	}

	left := styleTitle.Render("sortstep")
	right := strings.Join(parts, "  ")

	if m.engine.Active() {
		progress := fmt.Sprintf("Step %d/%d", m.engine.Step()+1, m.engine.Len())
		if m.playing {
			progress += " ▶"
		}
		right = progress + "   " + right
	}

	spacing := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}
	return left + strings.Repeat(" ", spacing) + right
}

func (m Model) renderChart() string {
	chart := bars.New(m.engine.Array(), m.engine.Step())

	height := m.settings.BarHeight
	if maxHeight := m.height - MainViewHeightOffset; maxHeight > 0 && height > maxHeight {
		height = maxHeight
	}
	if height > 0 {
		chart.Height = height
	}
	if m.settings.BarWidth > 0 {
		chart.BarWidth = m.settings.BarWidth
	}
	if m.settings.Colors.Bar != "" {
		chart.NormalColor = lipgloss.Color(m.settings.Colors.Bar)
	}
	if m.settings.Colors.Highlight != "" {
		chart.HighlightColor = lipgloss.Color(m.settings.Colors.Highlight)
	}
	if m.engine.Active() {
		chart = chart.WithHighlight(m.engine.Touched())
	}

	return chart.Render()
}

func (m Model) chartBorderColor() lipgloss.TerminalColor {
	if m.engine.Complete() {
		return colorGreen
	}
	if m.engine.Active() {
		return colorCyan
	}
	return colorGray
}

func (m Model) renderExplanation() string {
	text := m.engine.Explanation()
	width := m.width - MinimalBorderMargin
	if width > 0 {
		text = wrapText(text, width)
	}

	if m.engine.Complete() {
		return styleSuccess.Render(text)
	}
	return text
}

// renderStatusBar renders the footer: array on the left, messages or hints on the right
func (m Model) renderStatusBar() string {
	left := fmt.Sprintf("Array: %d values", m.engine.Len())

	var right string
	switch {
	case m.errorMsg != "":
		right = styleError.Render(m.errorMsg)
	case m.statusMsg != "":
		if strings.Contains(m.statusMsg, "Copied") || strings.Contains(m.statusMsg, "cleared") ||
			strings.Contains(m.statusMsg, "Array set") || strings.Contains(m.statusMsg, "finished") {
			right = styleSuccess.Render(m.statusMsg)
		} else {
			right = m.statusMsg
		}
	default:
		right = styleSubtle.Render(fmt.Sprintf("%s/%s: step | %s: play | %s: edit | %s: help | %s: quit",
			m.keybinds.GetBindingString(keybinds.ContextNormal, keybinds.ActionStepBackward),
			m.keybinds.GetBindingString(keybinds.ContextNormal, keybinds.ActionStepForward),
			displayKey(m.keybinds.GetBindingString(keybinds.ContextNormal, keybinds.ActionTogglePlay)),
			m.keybinds.GetBindingString(keybinds.ContextNormal, keybinds.ActionEditArray),
			m.keybinds.GetBindingString(keybinds.ContextNormal, keybinds.ActionOpenHelp),
			m.keybinds.GetBindingString(keybinds.ContextNormal, keybinds.ActionQuit)))
	}

	spacing := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}

	return left + strings.Repeat(" ", spacing) + right
}

// displayKey makes whitespace key names readable
func displayKey(keys string) string {
	return strings.ReplaceAll(keys, " ", "space")
}

// updateViewport sizes the viewers to the window
func (m *Model) updateViewport() {
	m.helpView.Width = m.width - HelpViewWidthOffset
	m.helpView.Height = m.height - ContentOffsetHelp

	m.modalView.Width = m.width - ModalWidthMarginNarrow
	m.modalView.Height = m.height - ContentOffsetLarge - HistoryDetailLines

	m.arrayInput.Width = m.width - ModalWidthMarginNarrow

	if m.mode == ModeHelp {
		m.updateHelpView()
	}
	if m.mode == ModeHistory {
		m.updateHistoryView()
	}
}

// helpSections are the contexts shown in the help viewer, in order
var helpSections = []struct {
	title   string
	context keybinds.Context
}{
	{"Visualizer", keybinds.ContextNormal},
	{"Array input", keybinds.ContextInput},
	{"History", keybinds.ContextHistory},
	{"Viewers", keybinds.ContextHelp},
	{"Confirm", keybinds.ContextConfirm},
}

// helpLine is one action with every key bound to it
type helpLine struct {
	info keybinds.ActionInfo
	keys []string
}

// helpLines groups the bindings of a context by action.
// Global bindings are listed with the visualizer only.
func (m *Model) helpLines(context keybinds.Context) []helpLine {
	byAction := make(map[keybinds.Action]*helpLine)
	var lines []*helpLine

	for _, binding := range m.keybinds.ListBindings(context) {
		if binding.Action == keybinds.ActionNoOp {
			continue
		}
		if binding.Context == keybinds.ContextGlobal && context != keybinds.ContextNormal {
			continue
		}
		line, ok := byAction[binding.Action]
		if !ok {
			line = &helpLine{info: keybinds.GetActionInfo(binding.Action)}
			byAction[binding.Action] = line
			lines = append(lines, line)
		}
		line.keys = append(line.keys, displayKey(binding.Key))
	}

	sort.Slice(lines, func(i, j int) bool {
		if lines[i].info.Category != lines[j].info.Category {
			return lines[i].info.Category < lines[j].info.Category
		}
		return lines[i].info.Description < lines[j].info.Description
	})

	result := make([]helpLine, len(lines))
	for i, line := range lines {
		result[i] = *line
	}
	return result
}

// updateHelpView rebuilds the help content from the active keybindings
func (m *Model) updateHelpView() {
	var sb strings.Builder

	sb.WriteString("Step through bubble, selection and insertion sort one operation at a time.\n")
	sb.WriteString("All three run in O(n^2) time and O(1) extra space.\n")

	for _, section := range helpSections {
		lines := m.helpLines(section.context)
		if len(lines) == 0 {
			continue
		}

		sb.WriteString("\n" + styleTitle.Render(section.title) + "\n")
		category := ""
		for _, line := range lines {
			if line.info.Category != category {
				category = line.info.Category
				sb.WriteString("  " + styleSubtle.Render(category) + "\n")
			}
			sb.WriteString(fmt.Sprintf("    %-16s %s\n", strings.Join(line.keys, "/"), line.info.Description))
		}
	}

	sb.WriteString("\n" + styleSubtle.Render("Keybindings can be changed in ~/.sortstep/keybinds.json"))

	m.helpView.SetContent(sb.String())
}

func (m Model) renderHelp() string {
	footer := fmt.Sprintf("↑/↓: scroll | %s: close",
		m.keybinds.GetBindingString(keybinds.ContextHelp, keybinds.ActionCloseModal))
	return renderModal("Help", m.helpView.View(), footer, m.width, m.height)
}

// updateHistoryView rebuilds the journal list, keeping the selection visible
func (m *Model) updateHistoryView() {
	entries := m.history.GetEntries()
	index := m.history.GetIndex()

	var content strings.Builder

	if len(entries) == 0 {
		content.WriteString("No runs recorded yet.\n\nFinish a run to add it here.")
	} else {
		content.WriteString(fmt.Sprintf("%d recorded run(s)\n\n", len(entries)))
		for i, entry := range entries {
			line := entry.Summary()
			if i == index {
				line = styleSelected.Render(line)
			}
			content.WriteString(line + "\n")
		}
	}

	yOffset := m.modalView.YOffset
	m.modalView.SetContent(content.String())

	if len(entries) == 0 {
		m.modalView.GotoTop()
		return
	}

	// Each entry is 1 line, plus 2 lines for the header
	selectedLine := index + 2
	switch {
	case selectedLine < m.modalView.YOffset:
		m.modalView.SetYOffset(selectedLine)
	case selectedLine >= m.modalView.YOffset+m.modalView.Height:
		m.modalView.SetYOffset(selectedLine - m.modalView.Height + 1)
	default:
		m.modalView.SetYOffset(yOffset)
	}
}

// renderHistoryDetail shows the full arrays of the selected run
func (m Model) renderHistoryDetail() string {
	entry := m.history.GetCurrentEntry()
	if entry == nil {
		return ""
	}

	return strings.Join([]string{
		fmt.Sprintf("Input: [%s]", parser.FormatArray(entry.Input)),
		fmt.Sprintf("Final: [%s]", parser.FormatArray(entry.Final)),
		styleSubtle.Render(fmt.Sprintf("%s, %d steps", entry.Algorithm.Title(), entry.Steps)),
	}, "\n")
}

func (m Model) renderHistory() string {
	footer := fmt.Sprintf("↑/↓: navigate | %s: clear | %s: close",
		m.keybinds.GetBindingString(keybinds.ContextHistory, keybinds.ActionHistoryClear),
		m.keybinds.GetBindingString(keybinds.ContextHistory, keybinds.ActionCloseModal))

	body := m.modalView.View()
	if detail := m.renderHistoryDetail(); detail != "" {
		body += "\n\n" + detail
	}
	if m.errorMsg != "" {
		body += "\n" + styleError.Render(m.errorMsg)
	} else if m.statusMsg != "" {
		body += "\n" + styleSuccess.Render(m.statusMsg)
	}

	return renderModal("Run History", body, footer, m.width, m.height)
}

func (m Model) renderHistoryClearConfirmation() string {
	count := len(m.history.GetEntries())
	body := styleWarning.Render(fmt.Sprintf("Delete all %d recorded run(s)?", count)) +
		"\n\nThis cannot be undone."
	footer := fmt.Sprintf("%s: confirm | %s: cancel",
		m.keybinds.GetBindingString(keybinds.ContextConfirm, keybinds.ActionConfirm),
		m.keybinds.GetBindingString(keybinds.ContextConfirm, keybinds.ActionCancel))

	return renderConfirmModal("Clear History", body, footer, m.width, m.height)
}

// wrapText wraps long lines at word boundaries to fit within width
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	var out []string
	for _, line := range strings.Split(text, "\n") {
		words := strings.Fields(line)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}

		current := words[0]
		for _, word := range words[1:] {
			if lipgloss.Width(current)+1+lipgloss.Width(word) > width {
				out = append(out, current)
				current = word
				continue
			}
			current += " " + word
		}
		out = append(out, current)
	}

	return strings.Join(out, "\n")
}
