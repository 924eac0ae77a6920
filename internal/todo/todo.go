// Package todo models a git-rebase-todo file: parsing its line format into
// an ordered, editable step list and serializing the list back out. The
// parser is deliberately permissive — lines it does not understand are kept
// verbatim, never dropped — so a full parse/serialize round trip of an
// unedited file is byte-identical.
package todo

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrFormat means the input could not be decoded as text at all.
	// Unrecognized verbs are not format errors.
	ErrFormat = errors.New("undecodable todo file")

	// ErrOutOfRange means an index passed to a list operation is outside
	// the current bounds. It indicates a caller bug, not user error.
	ErrOutOfRange = errors.New("index out of range")
)

// Step is one editable instruction line.
type Step struct {
	// Token is the verb exactly as written in the file. It may be a
	// canonical verb, a single-letter alias, or an unrecognized word.
	Token string

	// Ref is the first argument: a commit for pick-like verbs, a label or
	// command word for the others.
	Ref string

	// Summary is everything after Ref, verbatim including internal
	// whitespace.
	Summary string

	// raw is the original line text. It is reused on serialize until the
	// step is edited, so unusual spacing survives a round trip.
	raw string
}

// Action resolves the step's verb token. ok is false for raw tokens.
func (s Step) Action() (Action, bool) {
	return Lookup(s.Token)
}

// TakesCommit reports whether the step's Ref names a commit.
func (s Step) TakesCommit() bool {
	a, ok := s.Action()
	return ok && a.TakesCommit()
}

// Text renders the step as a todo line, without a trailing newline.
func (s Step) Text() string {
	if s.raw != "" {
		return s.raw
	}
	parts := make([]string, 0, 3)
	for _, p := range []string{s.Token, s.Ref, s.Summary} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// edited returns a copy of s with the raw text dropped, so the step
// serializes from its fields.
func (s Step) edited() Step {
	s.raw = ""
	return s
}

// Entry is one line of the file: either an editable step or verbatim
// filler (a comment or blank line).
type Entry struct {
	step   Step
	filler string
	isStep bool
}

// StepEntry wraps a step as a list entry.
func StepEntry(s Step) Entry {
	return Entry{step: s, isStep: true}
}

// FillerEntry wraps a verbatim comment or blank line.
func FillerEntry(line string) Entry {
	return Entry{filler: line}
}

// IsStep reports whether the entry is an editable step.
func (e Entry) IsStep() bool { return e.isStep }

// Step returns the entry's step. Zero for filler.
func (e Entry) Step() Step { return e.step }

// Line renders the entry as file text, without a trailing newline.
func (e Entry) Line() string {
	if e.isStep {
		return e.step.Text()
	}
	return e.filler
}

// Parse decodes a todo file into a List. A line that is blank or starts
// with the comment marker becomes filler; everything else splits on the
// first whitespace run into (verb, rest) and rest into (ref, summary).
// Unrecognized verbs are kept as raw steps.
func Parse(text string) (*List, error) {
	if !utf8.ValidString(text) {
		return nil, ErrFormat
	}
	l := &List{maxUndo: DefaultUndoDepth}
	if text == "" {
		return l, nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	} else {
		l.noFinalNewline = true
	}
	for _, line := range lines {
		l.entries = append(l.entries, parseLine(line))
	}
	return l, nil
}

func parseLine(line string) Entry {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return FillerEntry(line)
	}
	token, rest := splitWord(line)
	ref, summary := splitWord(rest)
	return StepEntry(Step{Token: token, Ref: ref, Summary: summary, raw: line})
}

// splitWord splits s at its first whitespace run into the leading word and
// the remainder, the remainder kept verbatim past that run.
func splitWord(s string) (word, rest string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeftFunc(s[i:], unicode.IsSpace)
}
