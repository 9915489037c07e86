package git

import (
	"fmt"
	"time"

	"github.com/bitpet/bitpet/internal/errtrack"
)

// CommandError reports a failed git invocation.
type CommandError struct {
	errtrack.Tracked
	Command string
	Output  string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("git %s failed. Please ensure git is installed and the repository is readable.", e.Command)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// TimeoutError reports a git invocation that exceeded its deadline.
type TimeoutError struct {
	errtrack.Tracked
	Command string
	Timeout time.Duration
	Err     error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("git %s timed out after %v", e.Command, e.Timeout)
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}
