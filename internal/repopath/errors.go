package repopath

import "github.com/bitpet/bitpet/internal/errtrack"

// NotExistsError reports a repo path that does not point at anything.
type NotExistsError struct {
	errtrack.Tracked
	Path string
}

func (e *NotExistsError) Error() string {
	return "Path does not exist: " + e.Path
}

// NotGitRepositoryError reports an existing path with no git repository at or
// above it.
type NotGitRepositoryError struct {
	errtrack.Tracked
	Path string
}

func (e *NotGitRepositoryError) Error() string {
	return "Provided path is not a Git repository: " + e.Path
}

// ResolveError wraps a filesystem failure while normalising a path.
type ResolveError struct {
	errtrack.Tracked
	Err error
}

func (e *ResolveError) Error() string {
	return "Unable to resolve path: " + e.Err.Error()
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}
