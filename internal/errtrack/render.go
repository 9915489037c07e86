package errtrack

import (
	"errors"
	"fmt"
	"strings"
)

// Render formats err as a two-part report: the root-cause line, then the
// accumulated call stack numbered from 1 (the deepest frame) upward.
//
//	Error: config file is corrupted
//	Call stack:
//	  1: config.load
//	  2: config.Load
//	  3: cmd.runStatus
//
// An error with no recorded frames, or one outside the tracked taxonomy,
// renders as the root-cause line alone.
func Render(err error) string {
	var b strings.Builder
	b.WriteString("Error: ")
	b.WriteString(err.Error())

	var t Trackable
	if !errors.As(err, &t) {
		return b.String()
	}
	frames := t.Backtrace().Frames()
	if len(frames) == 0 {
		return b.String()
	}

	b.WriteString("\nCall stack:")
	for i, frame := range frames {
		fmt.Fprintf(&b, "\n  %d: %s", i+1, frame)
	}
	return b.String()
}
