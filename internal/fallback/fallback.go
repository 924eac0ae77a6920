// Package fallback delegates non-rebase edit targets to the user's real
// editor.
package fallback

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"
)

// Placeholder is the token in a command template that is replaced by the
// target path. When the template has no placeholder the path is appended
// as the final argument.
const Placeholder = "{}"

// ErrLaunch means the fallback editor could not be started. The target
// file is untouched when this is returned.
var ErrLaunch = errors.New("fallback editor failed to launch")

// Argv splits a command template shell-style and substitutes path for
// every placeholder token.
func Argv(template, path string) ([]string, error) {
	words, err := shellquote.Split(template)
	if err != nil {
		return nil, fmt.Errorf("%w: bad command template %q: %v", ErrLaunch, template, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: no fallback command configured", ErrLaunch)
	}
	substituted := false
	out := make([]string, len(words))
	for i, w := range words {
		if w == Placeholder {
			out[i] = path
			substituted = true
		} else {
			out[i] = w
		}
	}
	if !substituted {
		out = append(out, path)
	}
	return out, nil
}

// Run launches the fallback editor on path with the terminal attached and
// returns the editor's exit code unchanged. A non-nil error means the
// process never ran.
func Run(template, path string) (int, error) {
	argv, err := Argv(template, path)
	if err != nil {
		return 1, err
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 1, fmt.Errorf("%w: %v", ErrLaunch, err)
	}
	return 0, nil
}
