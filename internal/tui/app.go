// Package tui is the interactive rebase-plan editor: a bubbletea state
// machine over a todo.List. It owns cursor and selection state; every
// mutation goes through the list so undo and cursor clamping stay in sync.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/replan/internal/gitinfo"
	"github.com/jask/replan/internal/todo"
)

// Outcome is what the user decided to do with the session.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeSave
	OutcomeDiscard
)

type mode int

const (
	modeBrowsing mode = iota
	modeEditing
	modeConfirm
	modeDone
)

type field int

const (
	fieldSummary field = iota
	fieldRef
	fieldAction
	fieldCommand // remainder of a freshly inserted exec step
)

// Model is the editor session. It satisfies tea.Model; the caller reads
// Outcome and List back off the final model after Run.
type Model struct {
	list    *todo.List
	commits *gitinfo.Service

	keys keyMap
	help help.Model

	cursor int // line index of the highlighted step, -1 when no steps
	anchor int // selection anchor line index, -1 when no selection
	top    int // first visible line of the step list

	mode      mode
	editField field
	editIndex int
	editFresh bool // the edited step was just inserted; cancel removes it
	input     textinput.Model

	intent  Outcome // pending confirm intent
	outcome Outcome

	pane     viewport.Model
	paneFor  string
	showPane bool

	status    string
	statusErr bool

	width  int
	height int
}

// New builds an editor over list. commits may be nil; the detail pane then
// shows a placeholder.
func New(list *todo.List, commits *gitinfo.Service, showPane bool) Model {
	m := Model{
		list:     list,
		commits:  commits,
		keys:     defaultKeyMap(),
		help:     help.New(),
		cursor:   list.FirstStep(),
		anchor:   -1,
		input:    textinput.New(),
		pane:     viewport.New(0, 0),
		showPane: showPane,
		width:    100,
		height:   32,
	}
	m.layout()
	m.refreshPane()
	return m
}

// Outcome reports how the session ended.
func (m Model) Outcome() Outcome { return m.outcome }

// List returns the edited list for serialization.
func (m Model) List() *todo.List { return m.list }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeBrowsing:
			return m.updateBrowsing(msg)
		case modeEditing:
			return m.updateEditing(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		}
	}
	return m, nil
}

// selBounds returns the inclusive line range covered by the cursor and, if
// active, the selection anchor.
func (m Model) selBounds() (lo, hi int) {
	if m.anchor < 0 || m.cursor < 0 || m.anchor == m.cursor {
		return m.cursor, m.cursor
	}
	if m.anchor < m.cursor {
		return m.anchor, m.cursor
	}
	return m.cursor, m.anchor
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

// layout splits the window between the step list and the commit pane.
func (m *Model) layout() {
	bodyH := m.bodyHeight()
	paneW := m.paneWidth()
	if paneW > 0 {
		// border and padding eat four columns and two rows
		m.pane.Width = max(paneW-4, 1)
		m.pane.Height = max(bodyH-2, 1)
	}
	m.scrollIntoView()
}

func (m Model) bodyHeight() int {
	// header, status and help lines surround the body
	return max(m.height-3, 3)
}

func (m Model) listWidth() int {
	if m.paneWidth() == 0 {
		return m.width
	}
	return min(48, m.width/2)
}

func (m Model) paneWidth() int {
	if !m.showPane || m.width < 72 {
		return 0
	}
	return m.width - min(48, m.width/2)
}

// scrollIntoView keeps the cursor line within the visible window.
func (m *Model) scrollIntoView() {
	if m.cursor < 0 {
		m.top = 0
		return
	}
	bodyH := m.bodyHeight()
	if m.cursor < m.top {
		m.top = m.cursor
	}
	if m.cursor >= m.top+bodyH {
		m.top = m.cursor - bodyH + 1
	}
	if maxTop := max(m.list.Len()-bodyH, 0); m.top > maxTop {
		m.top = maxTop
	}
}
