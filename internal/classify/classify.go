// Package classify decides what kind of file git has asked us to edit.
package classify

import (
	"path/filepath"
	"strings"
)

// Kind is the classifier's verdict for an edit target.
type Kind int

const (
	// KindOther is everything we do not recognize: commit messages, tag
	// messages, unknown files. The safe default is to fall back to a real
	// editor rather than risk mangling a format we do not understand.
	KindOther Kind = iota

	// KindRebaseTodo is an interactive-rebase instruction file.
	KindRebaseTodo
)

// rebaseTodoName is the fixed basename git uses for the instruction file
// (.git/rebase-merge/git-rebase-todo).
const rebaseTodoName = "git-rebase-todo"

// Of classifies path by basename alone. A single trailing extension is
// ignored so backups like git-rebase-todo.backup still match.
func Of(path string) Kind {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == rebaseTodoName {
		return KindRebaseTodo
	}
	return KindOther
}
