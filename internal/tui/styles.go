package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/replan/internal/todo"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	countStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	confirmStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("237"))
	fillerStyle   = lipgloss.NewStyle().Faint(true)
	rawStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	paneBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	paneHashStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	paneDimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	diffAddStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	diffDelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	diffHunkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
)

var actionStyles = map[todo.Action]lipgloss.Style{
	todo.ActionPick:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	todo.ActionReword:    lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	todo.ActionEdit:      lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
	todo.ActionSquash:    lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
	todo.ActionFixup:     lipgloss.NewStyle().Foreground(lipgloss.Color("228")),
	todo.ActionExec:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	todo.ActionBreak:     lipgloss.NewStyle().Foreground(lipgloss.Color("146")),
	todo.ActionDrop:      lipgloss.NewStyle().Strikethrough(true).Faint(true),
	todo.ActionLabel:     lipgloss.NewStyle().Foreground(lipgloss.Color("183")),
	todo.ActionReset:     lipgloss.NewStyle().Foreground(lipgloss.Color("183")),
	todo.ActionMerge:     lipgloss.NewStyle().Foreground(lipgloss.Color("183")),
	todo.ActionUpdateRef: lipgloss.NewStyle().Foreground(lipgloss.Color("183")),
}

func styleForStep(s todo.Step) lipgloss.Style {
	if a, ok := s.Action(); ok {
		if st, ok := actionStyles[a]; ok {
			return st
		}
	}
	return rawStyle
}
