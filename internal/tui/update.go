package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/replan/internal/todo"
)

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if i := m.list.PrevStep(m.cursor); i >= 0 {
			m.cursor = i
		}
		m.scrollIntoView()
		m.refreshPane()

	case key.Matches(msg, m.keys.Down):
		if i := m.list.NextStep(m.cursor); i >= 0 {
			m.cursor = i
		}
		m.scrollIntoView()
		m.refreshPane()

	case key.Matches(msg, m.keys.MoveUp):
		m.moveSelection(-1)

	case key.Matches(msg, m.keys.MoveDown):
		m.moveSelection(1)

	case key.Matches(msg, m.keys.Pick):
		m.applyVerb(todo.ActionPick)
	case key.Matches(msg, m.keys.Reword):
		m.applyVerb(todo.ActionReword)
	case key.Matches(msg, m.keys.Edit):
		m.applyVerb(todo.ActionEdit)
	case key.Matches(msg, m.keys.Squash):
		m.applyVerb(todo.ActionSquash)
	case key.Matches(msg, m.keys.Fixup):
		m.applyVerb(todo.ActionFixup)
	case key.Matches(msg, m.keys.Drop):
		m.applyVerb(todo.ActionDrop)

	case key.Matches(msg, m.keys.Cycle):
		if m.list.IsStep(m.cursor) {
			e, _ := m.list.Entry(m.cursor)
			if a, ok := e.Step().Action(); ok && a.TakesCommit() {
				m.mutate(m.list.SetAction(m.cursor, string(todo.CycleAction(a))))
			}
		}

	case key.Matches(msg, m.keys.InsertBreak):
		pos := 0
		if m.cursor >= 0 {
			pos = m.cursor + 1
		}
		if m.mutate(m.list.Insert(pos, todo.Step{Token: string(todo.ActionBreak)})) {
			m.cursor = pos
			m.scrollIntoView()
		}

	case key.Matches(msg, m.keys.InsertExec):
		pos := 0
		if m.cursor >= 0 {
			pos = m.cursor + 1
		}
		if m.mutate(m.list.Insert(pos, todo.Step{Token: string(todo.ActionExec)})) {
			m.cursor = pos
			m.anchor = -1
			m.scrollIntoView()
			m.editFresh = true
			return m.startEdit(fieldCommand, pos, "", "exec> ")
		}

	case key.Matches(msg, m.keys.EditSummary):
		if m.list.IsStep(m.cursor) {
			e, _ := m.list.Entry(m.cursor)
			return m.startEdit(fieldSummary, m.cursor, e.Step().Summary, "summary> ")
		}

	case key.Matches(msg, m.keys.EditRef):
		if m.list.IsStep(m.cursor) {
			e, _ := m.list.Entry(m.cursor)
			return m.startEdit(fieldRef, m.cursor, e.Step().Ref, "ref> ")
		}

	case key.Matches(msg, m.keys.EditAction):
		if m.list.IsStep(m.cursor) {
			e, _ := m.list.Entry(m.cursor)
			return m.startEdit(fieldAction, m.cursor, e.Step().Token, "action> ")
		}

	case key.Matches(msg, m.keys.Select):
		if m.anchor >= 0 {
			m.anchor = -1
		} else if m.cursor >= 0 {
			m.anchor = m.cursor
		}

	case key.Matches(msg, m.keys.Delete):
		if m.list.IsStep(m.cursor) {
			lo, hi := m.selBounds()
			if m.mutate(m.list.DeleteRange(lo, hi-lo+1)) {
				m.anchor = -1
				m.cursor = m.list.NearestStep(lo)
				m.scrollIntoView()
				m.refreshPane()
			}
		}

	case key.Matches(msg, m.keys.Undo):
		if m.list.Undo() {
			m.anchor = -1
			m.cursor = m.list.NearestStep(m.cursor)
			m.scrollIntoView()
			m.refreshPane()
			m.setStatus("undone")
		} else {
			m.setStatus("nothing to undo")
		}

	case key.Matches(msg, m.keys.ScrollDown):
		m.pane.HalfViewDown()
	case key.Matches(msg, m.keys.ScrollUp):
		m.pane.HalfViewUp()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Save):
		m.intent = OutcomeSave
		m.mode = modeConfirm

	case key.Matches(msg, m.keys.Abort):
		if msg.String() == "esc" && m.anchor >= 0 {
			m.anchor = -1
			break
		}
		m.intent = OutcomeDiscard
		m.mode = modeConfirm
	}
	// every other key: no-op, redraw unchanged
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.cancelEdit()
		return m, nil
	case "enter":
		m.commitEdit()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.outcome = m.intent
		m.mode = modeDone
		return m, tea.Quit
	case "n", "N", "esc":
		m.intent = OutcomeNone
		m.mode = modeBrowsing
	}
	return m, nil
}

// mutate runs a list operation, surfacing any error in the status line.
// List errors here mean an internal bug, never user error.
func (m *Model) mutate(err error) bool {
	if err != nil {
		m.setError(err)
		return false
	}
	m.setStatus("")
	return true
}

// applyVerb sets the action of every commit step in the selection.
func (m *Model) applyVerb(a todo.Action) {
	lo, hi := m.selBounds()
	if lo < 0 {
		return
	}
	applied := 0
	for i := lo; i <= hi; i++ {
		if !m.list.IsStep(i) {
			continue
		}
		e, _ := m.list.Entry(i)
		if !e.Step().TakesCommit() {
			continue
		}
		if !m.mutate(m.list.SetAction(i, string(a))) {
			return
		}
		applied++
	}
	if applied == 0 {
		m.setStatus(fmt.Sprintf("%s applies to commit steps only", a))
	}
}

// moveSelection shifts the selected block one line up or down by moving
// the neighboring step across it.
func (m *Model) moveSelection(dir int) {
	lo, hi := m.selBounds()
	if lo < 0 || !m.list.IsStep(m.cursor) {
		return
	}
	// The neighbor step crosses the selection together with its trailing
	// filler: filler between two steps travels with the step above it,
	// filler after the last step stays at the end of the file.
	if dir < 0 {
		j := m.list.StepBefore(lo)
		if j < 0 {
			return
		}
		n := lo - j
		to := hi - n + 1
		if e := m.list.StepAfter(hi); e >= 0 {
			to = e - n
		}
		if m.mutate(m.list.MoveBlock(j, n, to)) {
			m.cursor -= n
			if m.anchor >= 0 {
				m.anchor -= n
			}
		}
	} else {
		j := m.list.StepAfter(hi)
		if j < 0 {
			return
		}
		n := 1
		if k := m.list.StepAfter(j); k >= 0 {
			n = k - j
		}
		if m.mutate(m.list.MoveBlock(j, n, lo)) {
			m.cursor += n
			if m.anchor >= 0 {
				m.anchor += n
			}
		}
	}
	m.scrollIntoView()
}

func (m Model) startEdit(f field, idx int, prefill, prompt string) (tea.Model, tea.Cmd) {
	m.mode = modeEditing
	m.editField = f
	m.editIndex = idx
	m.input = textinput.New()
	m.input.Prompt = prompt
	m.input.SetValue(prefill)
	m.input.CursorEnd()
	m.input.Focus()
	return m, textinput.Blink
}

func (m *Model) cancelEdit() {
	if m.editFresh {
		// the step was inserted just for this edit; take it back out
		m.list.Undo()
		m.cursor = m.list.NearestStep(m.cursor)
		m.scrollIntoView()
	}
	m.editFresh = false
	m.mode = modeBrowsing
	m.input.Blur()
	m.setStatus("")
}

func (m *Model) commitEdit() {
	value := m.input.Value()
	idx := m.editIndex
	switch m.editField {
	case fieldSummary:
		m.mutate(m.list.SetSummary(idx, value))
	case fieldRef:
		m.mutate(m.list.SetRef(idx, strings.TrimSpace(value)))
	case fieldAction:
		token := strings.TrimSpace(value)
		if token == "" {
			m.cancelEdit()
			return
		}
		if m.mutate(m.list.SetAction(idx, token)) && !todo.Known(token) {
			if s := todo.Suggest(token); s != "" {
				m.setStatus(fmt.Sprintf("unrecognized action %q kept as-is (closest verb: %s)", token, s))
			} else {
				m.setStatus(fmt.Sprintf("unrecognized action %q kept as-is", token))
			}
		}
	case fieldCommand:
		if strings.TrimSpace(value) == "" {
			m.cancelEdit()
			return
		}
		m.mutate(m.list.SetRemainder(idx, strings.TrimSpace(value)))
	}
	m.editFresh = false
	m.mode = modeBrowsing
	m.input.Blur()
	m.refreshPane()
}
