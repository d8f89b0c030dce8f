// Package bars renders an integer array as a vertical bar chart.
package bars

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// eighths are the partial block glyphs, one per eighth of a cell
var eighths = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

const (
	DefaultHeight   = 10
	DefaultBarWidth = 3
)

// Chart draws one bar per value with the value printed underneath.
type Chart struct {
	Values []int
	// Step is 0-based; the label shows it 1-based
	Step      int
	Height    int
	BarWidth  int
	Highlight []int

	NormalColor    lipgloss.TerminalColor
	HighlightColor lipgloss.TerminalColor
	// Plain disables all styling
	Plain bool
}

// New creates a chart with default sizing and colors
func New(values []int, step int) Chart {
	return Chart{
		Values:         values,
		Step:           step,
		Height:         DefaultHeight,
		BarWidth:       DefaultBarWidth,
		NormalColor:    lipgloss.Color("62"),  // Blue
		HighlightColor: lipgloss.Color("214"), // Orange
	}
}

// WithHighlight marks indices to draw in the highlight color.
func (c Chart) WithHighlight(indices []int) Chart {
	c.Highlight = indices
	return c
}

// Render produces the chart, label row and step line.
func (c Chart) Render() string {
	if len(c.Values) == 0 {
		return c.stepLine()
	}

	height := c.Height
	if height < 1 {
		height = DefaultHeight
	}
	width := c.cellWidth()

	maxVal := 0
	for _, v := range c.Values {
		if v > maxVal {
			maxVal = v
		}
	}

	// bar heights in eighths of a row
	levels := make([]int, len(c.Values))
	for i, v := range c.Values {
		if v <= 0 || maxVal == 0 {
			continue
		}
		// float64 keeps v*height*8 from overflowing for large values
		levels[i] = int(float64(v) * float64(height*8) / float64(maxVal))
		levels[i] = min(max(levels[i], 1), height*8)
	}

	highlighted := make(map[int]bool, len(c.Highlight))
	for _, i := range c.Highlight {
		highlighted[i] = true
	}

	normalStyle := lipgloss.NewStyle().Foreground(c.NormalColor)
	highlightStyle := lipgloss.NewStyle().Foreground(c.HighlightColor).Bold(true)

	var b strings.Builder
	for row := height; row >= 1; row-- {
		for i, level := range levels {
			if i > 0 {
				b.WriteString(" ")
			}
			cell := strings.Repeat(string(glyph(level, row)), width)
			switch {
			case c.Plain:
				b.WriteString(cell)
			case highlighted[i]:
				b.WriteString(highlightStyle.Render(cell))
			default:
				b.WriteString(normalStyle.Render(cell))
			}
		}
		b.WriteString("\n")
	}

	labels := make([]string, len(c.Values))
	for i, v := range c.Values {
		labels[i] = center(strconv.Itoa(v), width)
	}
	b.WriteString(strings.Join(labels, " "))
	b.WriteString("\n\n")
	b.WriteString(c.stepLine())

	return b.String()
}

func (c Chart) stepLine() string {
	return fmt.Sprintf("Step: %d", c.Step+1)
}

// cellWidth widens bars so the longest label fits underneath
func (c Chart) cellWidth() int {
	width := c.BarWidth
	if width < 1 {
		width = DefaultBarWidth
	}
	for _, v := range c.Values {
		if l := len(strconv.Itoa(v)); l > width {
			width = l
		}
	}
	return width
}

// glyph returns the block for a bar of the given level at row (1 = bottom)
func glyph(level, row int) rune {
	fill := level - (row-1)*8
	if fill <= 0 {
		return ' '
	}
	if fill >= 8 {
		return eighths[7]
	}
	return eighths[fill-1]
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}
