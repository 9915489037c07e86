package errtrack

import (
	"errors"
	"runtime"
	"strings"
)

// Do runs op and, on failure, appends the calling function's name to the
// error's backtrace. The success value passes through untouched: no
// allocation, no mutation.
//
// It does not matter whether op completes immediately or blocks on I/O,
// a subprocess, or a channel; the frame is attached at the moment op's
// result becomes available.
func Do[T any](op func() (T, error)) (T, error) {
	v, err := op()
	if err != nil {
		attach(err, callerName(1))
	}
	return v, err
}

// DoNamed is Do with an explicit frame label instead of the calling
// function's name. Useful when several call sites share one logical
// operation name or the function name alone is uninformative.
func DoNamed[T any](label string, op func() (T, error)) (T, error) {
	v, err := op()
	if err != nil {
		attach(err, label)
	}
	return v, err
}

// Err appends the calling function's name to err's backtrace and returns it.
// A nil err is returned as-is. This is the error-only spelling of Do for
// operations without a success value:
//
//	return errtrack.Err(c.save())
func Err(err error) error {
	if err != nil {
		attach(err, callerName(1))
	}
	return err
}

// ErrNamed is Err with an explicit frame label.
func ErrNamed(label string, err error) error {
	if err != nil {
		attach(err, label)
	}
	return err
}

// attach appends exactly one frame if err (or anything it wraps) is
// Trackable. Errors outside the tracked taxonomy pass through unchanged.
func attach(err error, label string) {
	var t Trackable
	if errors.As(err, &t) {
		t.AddContext(label)
	}
}

// callerName returns the short name of the function skip+1 frames up,
// e.g. "config.(*Config).Save" for a method or "repopath.New" for a
// function.
func callerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip + 1)
	if !ok {
		return ""
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return ""
	}
	name := fn.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
