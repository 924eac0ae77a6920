package gitinfo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// initTestRepo creates a repository with two commits and returns their
// hashes.
func initTestRepo(t *testing.T, dir string) (first, second plumbing.Hash) {
	t.Helper()

	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("init repo: %v", err)
	}
	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("worktree: %v", err)
	}

	sig := &object.Signature{
		Name:  "Test Author",
		Email: "author@example.com",
		When:  time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
	}

	write := func(content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte(content), 0o644); err != nil {
			t.Fatalf("write file: %v", err)
		}
		if _, err := w.Add("notes.txt"); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	write("first draft\n")
	first, err = w.Commit("Add notes", &git.CommitOptions{Author: sig})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}

	write("first draft\nsecond draft\n")
	second, err = w.Commit("Extend notes", &git.CommitOptions{Author: sig})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	return first, second
}

func TestDiscoverAndLookup(t *testing.T) {
	dir := t.TempDir()
	_, second := initTestRepo(t, dir)

	svc, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	c, err := svc.Lookup(second.String())
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if c.Hash != second.String() {
		t.Errorf("Hash = %s, want %s", c.Hash, second)
	}
	if c.Author != "Test Author" || c.Email != "author@example.com" {
		t.Errorf("author = %s <%s>", c.Author, c.Email)
	}
	if !strings.Contains(c.Message, "Extend notes") {
		t.Errorf("message = %q", c.Message)
	}
	if !strings.Contains(c.Patch, "second draft") {
		t.Errorf("patch should contain the added line, got %q", c.Patch)
	}
}

func TestLookupAbbreviatedHash(t *testing.T) {
	dir := t.TempDir()
	_, second := initTestRepo(t, dir)

	svc, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	c, err := svc.Lookup(second.String()[:7])
	if err != nil {
		t.Fatalf("Lookup short hash: %v", err)
	}
	if c.Hash != second.String() {
		t.Errorf("Hash = %s, want %s", c.Hash, second)
	}
}

func TestLookupRootCommitHasNoPatch(t *testing.T) {
	dir := t.TempDir()
	first, _ := initTestRepo(t, dir)

	svc, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	c, err := svc.Lookup(first.String())
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if c.Patch != "" {
		t.Errorf("root commit patch should be empty, got %q", c.Patch)
	}
}

func TestDiscoverFromSubdirectory(t *testing.T) {
	dir := t.TempDir()
	initTestRepo(t, dir)

	sub := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if _, err := Discover(sub); err != nil {
		t.Errorf("Discover should walk up to the repository root: %v", err)
	}
}

func TestDiscoverOutsideRepo(t *testing.T) {
	if _, err := Discover(t.TempDir()); err == nil {
		t.Error("expected an error outside any repository")
	}
}

func TestLookupUnknownRef(t *testing.T) {
	dir := t.TempDir()
	initTestRepo(t, dir)

	svc, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if _, err := svc.Lookup("deadbeefdeadbeefdeadbeefdeadbeefdeadbeef"); err == nil {
		t.Error("expected an error for an unknown hash")
	}
}

func TestNilServiceLookup(t *testing.T) {
	var svc *Service
	if _, err := svc.Lookup("abc123"); err == nil {
		t.Error("nil service should report an error, not panic")
	}
}

func TestTruncatePatchCutsOnLineBoundary(t *testing.T) {
	if got := truncatePatch("short diff\n"); got != "short diff\n" {
		t.Errorf("small patch altered: %q", got)
	}

	// lines of multi-byte runes sized so the byte cap lands mid-rune
	line := strings.Repeat("é", 33) + "\n" // 67 bytes
	big := strings.Repeat(line, maxPatchBytes/len(line)+2)
	got := truncatePatch(big)

	if len(got) > maxPatchBytes+len("\n... (patch truncated)") {
		t.Errorf("truncated patch is %d bytes, over the cap", len(got))
	}
	if !strings.HasSuffix(got, "\n... (patch truncated)") {
		t.Errorf("missing truncation marker: %q", got[len(got)-40:])
	}
	if !utf8.ValidString(got) {
		t.Error("truncation split a rune")
	}
	kept := strings.TrimSuffix(got, "\n... (patch truncated)")
	for _, l := range strings.Split(kept, "\n") {
		if l != strings.Repeat("é", 33) {
			t.Errorf("partial line survived truncation: %q", l)
		}
	}
}
