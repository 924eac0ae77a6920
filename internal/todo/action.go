package todo

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Action is a canonical rebase instruction verb.
type Action string

const (
	ActionPick      Action = "pick"
	ActionReword    Action = "reword"
	ActionEdit      Action = "edit"
	ActionSquash    Action = "squash"
	ActionFixup     Action = "fixup"
	ActionExec      Action = "exec"
	ActionBreak     Action = "break"
	ActionDrop      Action = "drop"
	ActionLabel     Action = "label"
	ActionReset     Action = "reset"
	ActionMerge     Action = "merge"
	ActionUpdateRef Action = "update-ref"
)

// commitActions are the verbs whose first argument is a commit, in the order
// the "cycle action" key steps through them.
var commitActions = []Action{
	ActionPick,
	ActionReword,
	ActionEdit,
	ActionSquash,
	ActionFixup,
	ActionDrop,
}

// canonical maps every recognized spelling, including git's single-letter
// aliases, to its canonical verb.
var canonical = map[string]Action{
	"pick": ActionPick, "p": ActionPick,
	"reword": ActionReword, "r": ActionReword,
	"edit": ActionEdit, "e": ActionEdit,
	"squash": ActionSquash, "s": ActionSquash,
	"fixup": ActionFixup, "f": ActionFixup,
	"exec": ActionExec, "x": ActionExec,
	"break": ActionBreak, "b": ActionBreak,
	"drop": ActionDrop, "d": ActionDrop,
	"label": ActionLabel, "l": ActionLabel,
	"reset": ActionReset, "t": ActionReset,
	"merge": ActionMerge, "m": ActionMerge,
	"update-ref": ActionUpdateRef, "u": ActionUpdateRef,
}

// Lookup resolves a verb token to its canonical action. ok is false for
// tokens outside the recognized set.
func Lookup(token string) (Action, bool) {
	a, ok := canonical[token]
	return a, ok
}

// Known reports whether token is a recognized verb or alias.
func Known(token string) bool {
	_, ok := canonical[token]
	return ok
}

// TakesCommit reports whether a's first argument names a commit.
func (a Action) TakesCommit() bool {
	switch a {
	case ActionPick, ActionReword, ActionEdit, ActionSquash, ActionFixup, ActionDrop:
		return true
	}
	return false
}

// CycleAction returns the commit verb after a in cycle order. Non-commit
// verbs cycle to pick.
func CycleAction(a Action) Action {
	for i, c := range commitActions {
		if c == a {
			return commitActions[(i+1)%len(commitActions)]
		}
	}
	return ActionPick
}

// Suggest returns the canonical verb closest to token, or "" when token is
// not within two edits of anything recognized.
func Suggest(token string) Action {
	token = strings.ToLower(token)
	best := Action("")
	bestDist := 3
	for _, a := range []Action{
		ActionPick, ActionReword, ActionEdit, ActionSquash, ActionFixup,
		ActionExec, ActionBreak, ActionDrop, ActionLabel, ActionReset,
		ActionMerge, ActionUpdateRef,
	} {
		if d := levenshtein.ComputeDistance(token, string(a)); d < bestDist {
			bestDist = d
			best = a
		}
	}
	return best
}
