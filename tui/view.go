package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"
)

var (
	displayStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	keyStyle     = lipgloss.NewStyle().Align(lipgloss.Center).
			Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238"))
	pressedStyle = keyStyle.Bold(true).
			Foreground(lipgloss.Color("230")).Background(lipgloss.Color("63"))
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

const newlineMark = "⏎"

func (m *Model) View() string {
	var b strings.Builder

	text := strings.ReplaceAll(m.display.text, "\n", newlineMark)
	b.WriteString(displayStyle.Render(tail(text, m.displayWidth())))
	b.WriteString(strings.Repeat("\n", keysTop))

	for i, row := range m.rows {
		if i > 0 {
			b.WriteString(strings.Repeat("\n", rowStride))
		}
		for j, c := range row {
			if j > 0 {
				b.WriteString(strings.Repeat(" ", keyGap))
			}
			st := keyStyle
			if c.classes[m.cfg.PressedClass] {
				st = pressedStyle
			}
			b.WriteString(st.Width(c.width).Render(head(c.label, c.width)))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("click a key · esc to quit"))
	return b.String()
}

func (m *Model) displayWidth() int {
	if m.width > 0 {
		return m.width
	}
	w := 0
	for _, row := range m.rows {
		if n := len(row); n > 0 {
			last := row[n-1]
			if end := last.x + last.width; end > w {
				w = end
			}
		}
	}
	return w
}

// tail drops leading grapheme clusters until s fits in width cells.
func tail(s string, width int) string {
	for s != "" && uniseg.StringWidth(s) > width {
		_, s, _, _ = uniseg.FirstGraphemeClusterInString(s, -1)
	}
	return s
}

// head keeps the leading grapheme clusters of s which fit in width cells.
func head(s string, width int) string {
	var b strings.Builder
	w := 0
	state := -1
	for s != "" {
		var cluster string
		var cw int
		cluster, s, cw, state = uniseg.FirstGraphemeClusterInString(s, state)
		if w+cw > width {
			break
		}
		b.WriteString(cluster)
		w += cw
	}
	return b.String()
}
