// Package errtrack records the path an error takes through the program as it
// propagates up the call chain. Unlike a stack trace captured at creation
// time, a backtrace here lists only the instrumented frames the error
// actually passed through, in the order it passed through them.
package errtrack

// Backtrace is an ordered, append-only list of frame labels, oldest first.
// The frame recorded at the deepest call site comes first; the frame nearest
// the final handler comes last.
type Backtrace struct {
	frames []string
}

// Record appends a frame label. Labels are never deduplicated or reordered;
// recursive calls legitimately produce repeated labels. Empty labels are
// ignored.
func (b *Backtrace) Record(label string) {
	if label == "" {
		return
	}
	b.frames = append(b.frames, label)
}

// Frames returns the recorded labels in insertion order. The returned slice
// is the backtrace's own storage and must not be modified.
func (b *Backtrace) Frames() []string {
	return b.frames
}

// Len returns the number of recorded frames.
func (b *Backtrace) Len() int {
	return len(b.frames)
}

// Trackable is the contract an error type satisfies to participate in
// propagation tracking. Instrumentation code operates only through this
// interface, never on concrete error kinds.
type Trackable interface {
	error

	// Backtrace returns the error's owned backtrace.
	Backtrace() *Backtrace

	// AddContext appends one frame label to the backtrace.
	AddContext(label string)
}

// Tracked implements the Trackable accessors and is meant to be embedded in
// concrete error kinds. A zero Tracked is an empty backtrace, so error
// constructors need no extra initialization.
type Tracked struct {
	bt Backtrace
}

func (t *Tracked) Backtrace() *Backtrace {
	return &t.bt
}

func (t *Tracked) AddContext(label string) {
	t.bt.Record(label)
}
