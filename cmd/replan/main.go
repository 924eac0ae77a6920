// replan is a git sequence editor: point GIT_SEQUENCE_EDITOR (or
// sequence.editor) at it and interactive rebase opens a keyboard-driven
// plan editor instead of a text editor. Files that are not rebase
// instruction lists are handed to a configured fallback editor.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/replan/internal/classify"
	"github.com/jask/replan/internal/config"
	"github.com/jask/replan/internal/fallback"
	"github.com/jask/replan/internal/gitinfo"
	"github.com/jask/replan/internal/todo"
	"github.com/jask/replan/internal/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	fallbackFlag := flag.String("fallback", "", "editor command template for non-rebase files; {} is replaced by the path")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: replan [-fallback command] <file>\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		return 2
	}
	path := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		return fatal(err)
	}
	template := cfg.Fallback.Command
	if *fallbackFlag != "" {
		template = *fallbackFlag
	}

	if classify.Of(path) != classify.KindRebaseTodo {
		code, err := fallback.Run(template, path)
		if err != nil {
			return fatal(err)
		}
		return code
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fatal(fmt.Errorf("read %s: %w", path, err))
	}
	list, err := todo.Parse(string(raw))
	if err != nil {
		return fatal(fmt.Errorf("parse %s: %w", path, err))
	}
	list.SetUndoDepth(cfg.UI.UndoDepth)

	var commits *gitinfo.Service
	if cfg.UI.ShowCommitPane {
		// best effort; the editor works without a repository
		commits, _ = gitinfo.Discover(filepath.Dir(path))
	}

	if os.Getenv("REPLAN_DEBUG") != "" {
		f, err := tea.LogToFile("replan-debug.log", "replan")
		if err == nil {
			defer f.Close()
		}
	}

	prog := tea.NewProgram(tui.New(list, commits, cfg.UI.ShowCommitPane), tea.WithAltScreen())
	out, err := prog.Run()
	if err != nil {
		return fatal(err)
	}
	final, ok := out.(tui.Model)
	if !ok {
		return fatal(fmt.Errorf("unexpected final model %T", out))
	}

	return persist(path, final)
}

// persist applies the editor's outcome to the file on disk. Anything but an
// explicit save leaves the file untouched; the non-zero exit makes git abort
// the rebase itself.
func persist(path string, final tui.Model) int {
	if final.Outcome() == tui.OutcomeSave {
		if err := writeFile(path, final.List().Serialize()); err != nil {
			return fatal(fmt.Errorf("write %s: %w", path, err))
		}
		return 0
	}
	fmt.Fprintln(os.Stderr, "replan: plan discarded, aborting rebase")
	return 1
}

// writeFile replaces path's contents via a temp file and rename, so a save
// either fully lands or leaves the original alone.
func writeFile(path, content string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".replan-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func fatal(err error) int {
	fmt.Fprintf(os.Stderr, "replan: %v\n", err)
	return 1
}
