package errtrack

import "fmt"

// messageError is a free-standing trackable error for failures that belong
// to no domain kind.
type messageError struct {
	Tracked
	msg string
}

func (e *messageError) Error() string {
	return e.msg
}

// New returns a trackable error with the given root-cause message and an
// empty backtrace.
func New(msg string) Trackable {
	return &messageError{msg: msg}
}

// Newf is New with fmt.Sprintf formatting.
func Newf(format string, args ...any) Trackable {
	return &messageError{msg: fmt.Sprintf(format, args...)}
}
