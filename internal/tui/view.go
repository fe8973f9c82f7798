package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// ModelView renders the TUI model's view as a string.
func ModelView(m model) string {
	switch m.ActiveView {
	case ViewQuitting:
		return ""
	case ViewGoto:
		return browseWithFooter(m, m.gotoIn.View())
	case ViewInsert:
		return insertView(m)
	case ViewConfirmDelete:
		return browseWithFooter(m, confirmDeleteView(m))
	case ViewConfirmQuit:
		return browseWithFooter(m, confirmQuitView())
	case ViewOutline:
		return outlineView(m)
	default:
		return browseView(m)
	}
}

func browseView(m model) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.vp.View(),
		statusBar(m),
		helpLine(),
	)
}

func browseWithFooter(m model, footer string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.vp.View(),
		statusBar(m),
		footer,
	)
}

// renderDocument builds the gutter-numbered document text the viewport
// scrolls over.
func renderDocument(m model) string {
	gutterStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
	cursorStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF"))

	lines := m.doc.Lines()
	if len(lines) == 0 {
		return gutterStyle.Render("(empty file)")
	}

	width := len(fmt.Sprint(len(lines)))
	if width < 4 {
		width = 4
	}
	var b strings.Builder
	for i, line := range lines {
		text := line.Text()
		if maxText := m.width - width - 2; maxText > 0 {
			text = runewidth.Truncate(text, maxText, "…")
		}
		num := fmt.Sprintf("%*d:", width, i+1)
		row := gutterStyle.Render(num) + " " + text
		if i == m.cursor {
			row = cursorStyle.Render(num + " " + text)
		}
		b.WriteString(row)
		if i < len(lines)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func statusBar(m model) string {
	barStyle := lipgloss.NewStyle().
		Background(lipgloss.Color("#333333")).
		Foreground(lipgloss.Color("#FFFFFF")).
		Padding(0, 1)
	warnStyle := lipgloss.NewStyle().
		Background(lipgloss.Color("#FF5F00")).
		Foreground(lipgloss.Color("#000000")).
		Bold(true).
		Padding(0, 1)

	name := m.doc.Path()
	if m.dirty {
		name += " *"
	}
	pos := m.cursor + 1
	if m.doc.Len() == 0 {
		pos = 0
	}
	text := fmt.Sprintf("%s  line %d/%d", name, pos, m.doc.Len())
	if m.status != "" {
		text += "  " + m.status
	}
	if m.externalEdit {
		return warnStyle.Render(text)
	}
	return barStyle.Render(text)
}

func helpLine() string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Render("j/k move  g goto  G end  i/I/A insert  d delete  o outline  s save  r reload  q quit")
}

func insertView(m model) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF"))
	return lipgloss.NewStyle().Padding(1).BorderStyle(lipgloss.RoundedBorder()).Render(
		fmt.Sprintf("%s\n\n%s\n\n%s",
			headerStyle.Render(fmt.Sprintf("Insert after line %d", m.insertAt)),
			m.textIn.View(),
			"Ctrl+D inserts, Esc cancels.",
		),
	)
}

func confirmDeleteView(m model) string {
	warnStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFF00"))
	line := ""
	if m.doc.Len() > 0 {
		line = runewidth.Truncate(m.doc.Lines()[m.cursor].Text(), 40, "…")
	}
	return warnStyle.Render(fmt.Sprintf("delete line %d? (y/n)  %s", m.cursor+1, line))
}

func confirmQuitView() string {
	warnStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFF00"))
	return warnStyle.Render("unsaved changes: y quits, s saves and quits, n stays")
}

func outlineView(m model) string {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#555555")).
		Padding(1).
		Render(m.outline.View())
}
