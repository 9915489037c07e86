package auth

import "github.com/bitpet/bitpet/internal/errtrack"

// NotLoggedInError reports a command that needs an account when nobody is
// logged in.
type NotLoggedInError struct {
	errtrack.Tracked
}

func (e *NotLoggedInError) Error() string {
	return "Please login first using 'bitpet login'"
}

// AlreadyLoggedInError reports a login attempt over an existing session.
type AlreadyLoggedInError struct {
	errtrack.Tracked
	Email string
}

func (e *AlreadyLoggedInError) Error() string {
	return "You are already logged in with email: " + e.Email
}

// InvalidCodeError reports a rejected one-time login code.
type InvalidCodeError struct {
	errtrack.Tracked
}

func (e *InvalidCodeError) Error() string {
	return "Invalid one-time code. Please try again."
}

// SessionExpiredError reports a token the API no longer accepts.
type SessionExpiredError struct {
	errtrack.Tracked
}

func (e *SessionExpiredError) Error() string {
	return "Oops! Please login again!"
}
