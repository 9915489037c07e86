// Package git shells out to the git binary to read commit activity from the
// user's registered repositories.
package git

import (
	"context"
	stderrors "errors"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/bitpet/bitpet/internal/errtrack"
)

// shortTimeout bounds local read-only operations. Nothing here touches the
// network.
const shortTimeout = 30 * time.Second

// Git reads from a single repository.
type Git struct {
	repoPath string
}

// New creates a Git instance for the repository at repoPath.
func New(repoPath string) *Git {
	return &Git{
		repoPath: repoPath,
	}
}

// execGitCommand creates a git command with timeout context
func (g *Git) execGitCommand(timeout time.Duration, args ...string) *exec.Cmd {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	// The command takes ownership of the context; it is cleaned up when the
	// command completes or the timeout expires.
	_ = cancel

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = g.repoPath
	return cmd
}

// CommitCountSince counts commits on the current branch made after since.
// A repository with no commits yet counts as zero rather than failing, so a
// freshly initialised repo can still be registered.
func (g *Git) CommitCountSince(since time.Time) (int, error) {
	return errtrack.Do(func() (int, error) {
		return g.commitCountSince(since)
	})
}

func (g *Git) commitCountSince(since time.Time) (int, error) {
	args := []string{"rev-list", "--count", "--since=" + since.Format(time.RFC3339), "HEAD"}
	cmd := g.execGitCommand(shortTimeout, args...)

	output, err := cmd.CombinedOutput()
	if err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) {
			return 0, &TimeoutError{Command: "rev-list", Timeout: shortTimeout, Err: err}
		}
		if isEmptyRepo(string(output)) {
			return 0, nil
		}
		return 0, &CommandError{Command: "rev-list", Output: string(output), Err: err}
	}

	count, err := strconv.Atoi(strings.TrimSpace(string(output)))
	if err != nil {
		return 0, &CommandError{Command: "rev-list", Output: string(output), Err: err}
	}

	log.Debug().Str("repo", g.repoPath).Int("commits", count).Time("since", since).Msg("counted commits")
	return count, nil
}

// LastCommitTime returns the author time of the most recent commit, or the
// zero time if the repository has no commits.
func (g *Git) LastCommitTime() (time.Time, error) {
	return errtrack.Do(g.lastCommitTime)
}

func (g *Git) lastCommitTime() (time.Time, error) {
	cmd := g.execGitCommand(shortTimeout, "log", "-1", "--format=%aI")

	output, err := cmd.CombinedOutput()
	if err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) {
			return time.Time{}, &TimeoutError{Command: "log", Timeout: shortTimeout, Err: err}
		}
		if isEmptyRepo(string(output)) {
			return time.Time{}, nil
		}
		return time.Time{}, &CommandError{Command: "log", Output: string(output), Err: err}
	}

	raw := strings.TrimSpace(string(output))
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, &CommandError{Command: "log", Output: raw, Err: err}
	}
	return t, nil
}

// isEmptyRepo recognises git's complaints about a HEAD with no commits.
func isEmptyRepo(output string) bool {
	return strings.Contains(output, "unknown revision") ||
		strings.Contains(output, "ambiguous argument 'HEAD'") ||
		strings.Contains(output, "does not have any commits yet")
}
