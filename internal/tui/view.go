package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m Model) View() string {
	if m.mode == modeDone {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")

	listView := m.listView()
	if paneW := m.paneWidth(); paneW > 0 {
		pane := paneBoxStyle.Render(m.pane.View())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, listView, pane))
	} else {
		b.WriteString(listView)
	}
	b.WriteString("\n")

	b.WriteString(m.statusView())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) headerView() string {
	left := headerStyle.Render("replan")
	right := countStyle.Render(fmt.Sprintf("%d steps", m.list.StepCount()))
	line := left + " " + right
	return ansi.Truncate(line, max(m.width, 1), "")
}

func (m Model) listView() string {
	bodyH := m.bodyHeight()
	listW := m.listWidth()

	entries := m.list.Entries()
	if len(entries) == 0 {
		return lipgloss.NewStyle().Width(listW).Height(bodyH).Render(fillerStyle.Render("(empty rebase plan)"))
	}

	lo, hi := m.selBounds()
	end := min(m.top+bodyH, len(entries))
	lines := make([]string, 0, bodyH)
	for i := m.top; i < end; i++ {
		e := entries[i]
		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
		}
		text := ansi.Truncate(e.Line(), max(listW-2, 1), "…")
		var style lipgloss.Style
		if e.IsStep() {
			style = styleForStep(e.Step())
		} else {
			style = fillerStyle
		}
		if m.anchor >= 0 && i >= lo && i <= hi {
			style = style.Background(selectedStyle.GetBackground())
		}
		lines = append(lines, prefix+style.Render(text))
	}
	return lipgloss.NewStyle().Width(listW).Height(bodyH).Render(strings.Join(lines, "\n"))
}

func (m Model) statusView() string {
	switch m.mode {
	case modeEditing:
		return ansi.Truncate(m.input.View(), max(m.width, 1), "")
	case modeConfirm:
		prompt := "Save changes and quit? (y/n)"
		if m.intent == OutcomeDiscard {
			prompt = "Discard all changes and quit? (y/n)"
		}
		return confirmStyle.Render(prompt)
	}
	if m.status == "" {
		return ""
	}
	style := statusStyle
	if m.statusErr {
		style = errStyle
	}
	return ansi.Truncate(style.Render(m.status), max(m.width, 1), "")
}
