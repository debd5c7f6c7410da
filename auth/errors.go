package auth

import "fmt"

// AuthenticationError reports that a challenge/response exchange failed.
// The acceptor translates this into an Abort with reason
// wamp.error.authentication_failed.
type AuthenticationError struct {
	Method string
	Msg    string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed (%s): %s", e.Method, e.Msg)
}
