// Package gitinfo resolves the commits named by rebase steps, for the
// detail pane. Everything here is best effort: a missing repository or an
// unresolvable ref degrades the pane, never the editor.
package gitinfo

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// maxPatchBytes caps the diff text kept per commit so a huge commit does
// not bloat the pane.
const maxPatchBytes = 64 << 10

// Commit is the resolved detail for one rebase step.
type Commit struct {
	Hash    string
	Author  string
	Email   string
	When    time.Time
	Message string
	Patch   string
}

// Service looks up commits in the repository the todo file belongs to,
// caching results per ref for the lifetime of the edit session.
type Service struct {
	repo  *git.Repository
	cache map[string]*Commit
}

// Discover opens the repository containing dir, searching upward the way
// git itself does.
func Discover(dir string) (*Service, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("discover repository from %s: %w", dir, err)
	}
	return &Service{repo: repo, cache: make(map[string]*Commit)}, nil
}

// Lookup resolves ref (a full or abbreviated hash, as written in the todo
// file) to its commit detail.
func (s *Service) Lookup(ref string) (*Commit, error) {
	if s == nil {
		return nil, errors.New("no repository")
	}
	if c, ok := s.cache[ref]; ok {
		return c, nil
	}
	hash, err := s.repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", ref, err)
	}
	obj, err := s.repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("load commit %s: %w", hash, err)
	}
	c := &Commit{
		Hash:    obj.Hash.String(),
		Author:  obj.Author.Name,
		Email:   obj.Author.Email,
		When:    obj.Author.When,
		Message: obj.Message,
		Patch:   patchText(obj),
	}
	s.cache[ref] = c
	return c, nil
}

// patchText renders the diff against the first parent. Root commits and
// diff failures yield an empty patch.
func patchText(c *object.Commit) string {
	parent, err := c.Parent(0)
	if err != nil {
		return ""
	}
	patch, err := parent.Patch(c)
	if err != nil {
		return ""
	}
	return truncatePatch(patch.String())
}

// truncatePatch caps the rendered diff, cutting at the last full line so the
// marker never lands mid-line or inside a multi-byte rune.
func truncatePatch(text string) string {
	if len(text) <= maxPatchBytes {
		return text
	}
	cut := maxPatchBytes
	if i := strings.LastIndexByte(text[:cut], '\n'); i > 0 {
		cut = i
	} else {
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
	}
	return text[:cut] + "\n... (patch truncated)"
}
