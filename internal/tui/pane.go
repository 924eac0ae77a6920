package tui

import (
	"fmt"
	"strings"
)

// refreshPane re-resolves the highlighted step's commit when it changed.
func (m *Model) refreshPane() {
	if !m.showPane {
		return
	}
	ref := ""
	if m.list.IsStep(m.cursor) {
		if e, err := m.list.Entry(m.cursor); err == nil && e.Step().TakesCommit() {
			ref = e.Step().Ref
		}
	}
	if ref == m.paneFor && ref != "" {
		return
	}
	m.paneFor = ref
	m.pane.SetContent(m.paneContent(ref))
	m.pane.GotoTop()
}

// paneContent formats the detail pane for a commit ref. Lookup failures
// degrade to a placeholder; the editor keeps working without a repository.
func (m Model) paneContent(ref string) string {
	if ref == "" {
		return paneDimStyle.Render("no commit for this step")
	}
	if m.commits == nil {
		return paneDimStyle.Render("not inside a git repository")
	}
	c, err := m.commits.Lookup(ref)
	if err != nil {
		return paneDimStyle.Render("cannot resolve " + ref)
	}

	var b strings.Builder
	b.WriteString(paneHashStyle.Render(c.Hash))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Author: %s <%s>\n", c.Author, c.Email)
	fmt.Fprintf(&b, "Date:   %s\n", c.When.Format("Mon Jan 2 15:04:05 2006 -0700"))
	b.WriteString("\n")
	b.WriteString(strings.TrimRight(c.Message, "\n"))
	b.WriteString("\n")
	if c.Patch != "" {
		b.WriteString("\n")
		for _, line := range strings.Split(strings.TrimRight(c.Patch, "\n"), "\n") {
			switch {
			case strings.HasPrefix(line, "+"):
				line = diffAddStyle.Render(line)
			case strings.HasPrefix(line, "-"):
				line = diffDelStyle.Render(line)
			case strings.HasPrefix(line, "@@"):
				line = diffHunkStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}
