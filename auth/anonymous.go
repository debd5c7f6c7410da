package auth

import (
	"fmt"

	"github.com/arcwamp/wampproto-go/messages"
)

// Anonymous declares the "anonymous" method and never expects a Challenge.
type Anonymous struct {
	authID string
}

// NewAnonymous returns an Anonymous authenticator claiming authid.
func NewAnonymous(authID string) *Anonymous {
	return &Anonymous{authID: authID}
}

func (a *Anonymous) AuthMethod() string        { return "anonymous" }
func (a *Anonymous) AuthID() string            { return a.authID }
func (a *Anonymous) AuthExtra() map[string]any { return map[string]any{} }

func (a *Anonymous) Authenticate(challenge *messages.Challenge) (*messages.Authenticate, error) {
	return nil, fmt.Errorf("auth: anonymous method does not expect a challenge")
}
