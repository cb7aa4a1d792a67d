package session

import (
	"errors"
	"fmt"
)

// ErrNoSession is returned when a token does not name an open session.
var ErrNoSession = errors.New("no open session")

// RedirectError is returned by [Manager.RequireAuth] for an anonymous
// caller. Target is where the caller should be sent to sign in.
type RedirectError struct {
	Target string
}

func (e *RedirectError) Error() string {
	return fmt.Sprintf("authentication required, redirect to %s", e.Target)
}

// Unwrap lets errors.Is match [ErrNoSession].
func (e *RedirectError) Unwrap() error {
	return ErrNoSession
}
