package todo

import (
	"fmt"
	"strings"
)

// DefaultUndoDepth bounds the history stack unless overridden.
const DefaultUndoDepth = 100

// List is the ordered sequence of steps and filler lines making up a todo
// file, plus a bounded undo history. All mutation goes through its methods
// so the history stays consistent.
type List struct {
	entries        []Entry
	history        [][]Entry
	maxUndo        int
	noFinalNewline bool
}

// NewList builds a list from entries, mainly for tests.
func NewList(entries ...Entry) *List {
	return &List{entries: entries, maxUndo: DefaultUndoDepth}
}

// SetUndoDepth bounds the history stack. Values below 1 keep just the
// previous state.
func (l *List) SetUndoDepth(n int) {
	if n < 1 {
		n = 1
	}
	l.maxUndo = n
}

// Len returns the number of lines, filler included.
func (l *List) Len() int { return len(l.entries) }

// StepCount returns the number of editable steps.
func (l *List) StepCount() int {
	n := 0
	for _, e := range l.entries {
		if e.IsStep() {
			n++
		}
	}
	return n
}

// Entries returns the lines in order. The slice is shared; callers must
// treat it as read-only.
func (l *List) Entries() []Entry { return l.entries }

// Entry returns the line at i.
func (l *List) Entry(i int) (Entry, error) {
	if i < 0 || i >= len(l.entries) {
		return Entry{}, fmt.Errorf("%w: %d of %d", ErrOutOfRange, i, len(l.entries))
	}
	return l.entries[i], nil
}

// IsStep reports whether line i exists and is an editable step.
func (l *List) IsStep(i int) bool {
	return i >= 0 && i < len(l.entries) && l.entries[i].IsStep()
}

// FirstStep returns the index of the first step, or -1.
func (l *List) FirstStep() int {
	for i, e := range l.entries {
		if e.IsStep() {
			return i
		}
	}
	return -1
}

// NextStep returns the index of the first step after i, wrapping past the
// end, or -1 when the list has no steps.
func (l *List) NextStep(i int) int {
	n := len(l.entries)
	for k := 0; k < n; k++ {
		i = (i + 1) % n
		if l.entries[i].IsStep() {
			return i
		}
	}
	return -1
}

// PrevStep returns the index of the first step before i, wrapping past the
// start, or -1 when the list has no steps.
func (l *List) PrevStep(i int) int {
	n := len(l.entries)
	for k := 0; k < n; k++ {
		i--
		if i < 0 {
			i = n - 1
		}
		if l.entries[i].IsStep() {
			return i
		}
	}
	return -1
}

// StepAfter returns the index of the first step strictly after i without
// wrapping, or -1.
func (l *List) StepAfter(i int) int {
	for k := i + 1; k < len(l.entries); k++ {
		if l.entries[k].IsStep() {
			return k
		}
	}
	return -1
}

// StepBefore returns the index of the last step strictly before i without
// wrapping, or -1.
func (l *List) StepBefore(i int) int {
	for k := i - 1; k >= 0; k-- {
		if l.entries[k].IsStep() {
			return k
		}
	}
	return -1
}

// NearestStep returns the step index closest to i, preferring forward, or
// -1 when no steps remain. Used to re-seat the cursor after a delete.
func (l *List) NearestStep(i int) int {
	if i < 0 {
		i = 0
	}
	if i >= len(l.entries) {
		i = len(l.entries) - 1
	}
	if l.IsStep(i) {
		return i
	}
	if k := l.StepAfter(i); k >= 0 {
		return k
	}
	return l.StepBefore(i)
}

// Clamp forces i into [0, Len-1], or -1 when the list is empty.
func (l *List) Clamp(i int) int {
	if len(l.entries) == 0 {
		return -1
	}
	if i < 0 {
		return 0
	}
	if i >= len(l.entries) {
		return len(l.entries) - 1
	}
	return i
}

// Move relocates the step at from so it occupies line to. Filler is never
// moved directly; it keeps its order relative to other filler. A move to
// the same index is a no-op and records no history.
func (l *List) Move(from, to int) error {
	return l.MoveBlock(from, 1, to)
}

// MoveBlock relocates the n contiguous lines starting at from so the block
// begins at line to. The first line of the block must be a step.
func (l *List) MoveBlock(from, n, to int) error {
	if n < 1 || from < 0 || from+n > len(l.entries) || to < 0 || to > len(l.entries)-n {
		return fmt.Errorf("%w: block %d+%d -> %d of %d", ErrOutOfRange, from, n, to, len(l.entries))
	}
	if !l.entries[from].IsStep() {
		return fmt.Errorf("%w: line %d is not a step", ErrOutOfRange, from)
	}
	if from == to {
		return nil
	}
	l.snapshot()
	block := make([]Entry, n)
	copy(block, l.entries[from:from+n])
	rest := append(append([]Entry{}, l.entries[:from]...), l.entries[from+n:]...)
	out := make([]Entry, 0, len(l.entries))
	out = append(out, rest[:to]...)
	out = append(out, block...)
	out = append(out, rest[to:]...)
	l.entries = out
	return nil
}

// SetAction replaces the verb of the step at i. Known verbs and aliases are
// written canonically; anything else is accepted as a raw token, matching
// the parser's permissiveness.
func (l *List) SetAction(i int, token string) error {
	s, err := l.stepAt(i)
	if err != nil {
		return err
	}
	if a, ok := Lookup(token); ok {
		token = string(a)
	}
	if s.Token == token {
		return nil
	}
	l.snapshot()
	s.Token = token
	l.entries[i] = StepEntry(s.edited())
	return nil
}

// SetRef replaces the reference argument of the step at i.
func (l *List) SetRef(i int, ref string) error {
	s, err := l.stepAt(i)
	if err != nil {
		return err
	}
	if s.Ref == ref {
		return nil
	}
	l.snapshot()
	s.Ref = ref
	l.entries[i] = StepEntry(s.edited())
	return nil
}

// SetSummary replaces the trailing text of the step at i.
func (l *List) SetSummary(i int, summary string) error {
	s, err := l.stepAt(i)
	if err != nil {
		return err
	}
	if s.Summary == summary {
		return nil
	}
	l.snapshot()
	s.Summary = summary
	l.entries[i] = StepEntry(s.edited())
	return nil
}

// SetRemainder replaces everything after the verb of the step at i, split
// into ref and summary the same way the parser splits a line. A single
// mutation, so one undo reverts it.
func (l *List) SetRemainder(i int, text string) error {
	s, err := l.stepAt(i)
	if err != nil {
		return err
	}
	ref, summary := splitWord(text)
	if s.Ref == ref && s.Summary == summary {
		return nil
	}
	l.snapshot()
	s.Ref = ref
	s.Summary = summary
	l.entries[i] = StepEntry(s.edited())
	return nil
}

// Insert places step s at line i. i == Len appends.
func (l *List) Insert(i int, s Step) error {
	if i < 0 || i > len(l.entries) {
		return fmt.Errorf("%w: %d of %d", ErrOutOfRange, i, len(l.entries))
	}
	l.snapshot()
	l.entries = append(l.entries[:i], append([]Entry{StepEntry(s)}, l.entries[i:]...)...)
	return nil
}

// Delete removes line i. Deleting the last remaining step is allowed; an
// empty plan is the caller's problem to surface.
func (l *List) Delete(i int) error {
	return l.DeleteRange(i, 1)
}

// DeleteRange removes the n contiguous lines starting at i.
func (l *List) DeleteRange(i, n int) error {
	if n < 1 || i < 0 || i+n > len(l.entries) {
		return fmt.Errorf("%w: %d+%d of %d", ErrOutOfRange, i, n, len(l.entries))
	}
	l.snapshot()
	l.entries = append(l.entries[:i], l.entries[i+n:]...)
	return nil
}

// Undo reverts the most recent mutation. It reports whether anything was
// reverted.
func (l *List) Undo() bool {
	if len(l.history) == 0 {
		return false
	}
	l.entries = l.history[len(l.history)-1]
	l.history = l.history[:len(l.history)-1]
	return true
}

func (l *List) snapshot() {
	saved := make([]Entry, len(l.entries))
	copy(saved, l.entries)
	l.history = append(l.history, saved)
	if len(l.history) > l.maxUndo {
		l.history = l.history[len(l.history)-l.maxUndo:]
	}
}

func (l *List) stepAt(i int) (Step, error) {
	if i < 0 || i >= len(l.entries) {
		return Step{}, fmt.Errorf("%w: %d of %d", ErrOutOfRange, i, len(l.entries))
	}
	if !l.entries[i].IsStep() {
		return Step{}, fmt.Errorf("%w: line %d is not a step", ErrOutOfRange, i)
	}
	return l.entries[i].step, nil
}

// Serialize renders the list back to file text, the exact inverse of Parse
// when nothing was edited.
func (l *List) Serialize() string {
	if len(l.entries) == 0 {
		return ""
	}
	var b strings.Builder
	for _, e := range l.entries {
		b.WriteString(e.Line())
		b.WriteByte('\n')
	}
	out := b.String()
	if l.noFinalNewline {
		out = strings.TrimSuffix(out, "\n")
	}
	return out
}
