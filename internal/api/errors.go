package api

import (
	"fmt"

	"github.com/bitpet/bitpet/internal/errtrack"
)

// RequestError reports a request that never produced a usable response.
type RequestError struct {
	errtrack.Tracked
	Err error
}

func (e *RequestError) Error() string {
	return "Failed to reach the bitpet API: " + e.Err.Error()
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// UnexpectedStatusError reports a response status the client has no handling
// for.
type UnexpectedStatusError struct {
	errtrack.Tracked
	Status int
	Body   string
}

func (e *UnexpectedStatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("bitpet API returned %d: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("bitpet API returned %d", e.Status)
}
