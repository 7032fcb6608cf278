package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const uiDivider = "──────────────────────────────────────────────────────"

// column renders one table cell of a row.
type column[T any] struct {
	title string
	width int
	cell  func(T) string
}

func renderTable[T any](cols []column[T], rows []T, cursor int) string {
	var b strings.Builder

	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = pad(c.title, c.width)
	}
	b.WriteString(headerStyle.Render(strings.Join(header, " ")))
	b.WriteString("\n")

	for r, row := range rows {
		cells := make([]string, len(cols))
		for i, c := range cols {
			cells[i] = pad(fitText(c.cell(row), c.width), c.width)
		}
		line := strings.Join(cells, " ")
		if r == cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
	} else {
		b.WriteString("-\n")
	}

	b.WriteString(uiDivider)
	b.WriteString("\n")
	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys))
	}
	return b.String()
}

func renderField(label, input string, focused bool, fieldErr string) string {
	if focused {
		label = focusedStyle.Render("> " + label)
	} else {
		label = "  " + label
	}
	out := label + "\n  " + input + "\n"
	if fieldErr != "" {
		out += "  " + errorStyle.Render(fieldErr) + "\n"
	}
	return out
}

// fitText shortens v to max display cells.
func fitText(v string, max int) string {
	if max <= 0 || lipgloss.Width(v) <= max {
		return v
	}
	r := []rune(v)
	if max <= 3 {
		return string(r[:max])
	}
	for len(r) > 0 && lipgloss.Width(string(r))+3 > max {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}

func pad(v string, width int) string {
	if w := lipgloss.Width(v); w < width {
		return v + strings.Repeat(" ", width-w)
	}
	return v
}
