// Package repopath normalises user-supplied repository paths into canonical
// git worktree roots.
package repopath

import (
	"os"
	"path/filepath"

	"github.com/bitpet/bitpet/internal/errtrack"
)

// Path is an absolute, canonicalised path to the root of a git worktree.
type Path struct {
	abs string
}

func (p *Path) String() string {
	return p.abs
}

// Dir returns the underlying directory.
func (p *Path) Dir() string {
	return p.abs
}

// New normalises raw into the root of the git repository containing it. The
// path must exist and sit inside a git worktree; relative paths are resolved
// against the working directory and symlinks are flattened.
func New(raw string) (*Path, error) {
	return errtrack.Do(func() (*Path, error) {
		return resolve(raw)
	})
}

func resolve(raw string) (*Path, error) {
	if raw == "" {
		return nil, &NotExistsError{Path: raw}
	}

	abs, err := filepath.Abs(raw)
	if err != nil {
		return nil, &ResolveError{Err: err}
	}
	if _, err := os.Stat(abs); err != nil {
		if os.IsNotExist(err) {
			return nil, &NotExistsError{Path: abs}
		}
		return nil, &ResolveError{Err: err}
	}

	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, &ResolveError{Err: err}
	}

	root, ok := gitRoot(canonical)
	if !ok {
		return nil, &NotGitRepositoryError{Path: canonical}
	}
	return &Path{abs: root}, nil
}

// IsGitRepo reports whether dir is inside a git worktree.
func IsGitRepo(dir string) bool {
	_, ok := gitRoot(dir)
	return ok
}

// gitRoot walks upward from dir looking for a .git entry. A .git file (as
// created for worktrees and submodules) counts the same as a directory.
func gitRoot(dir string) (string, bool) {
	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
