package auth

import "github.com/arcwamp/wampproto-go/messages"

// Ticket declares the "ticket" method and answers any Challenge with the
// shared ticket value as its signature.
type Ticket struct {
	authID string
	ticket string
}

// NewTicket returns a Ticket authenticator claiming authid and answering
// with the given pre-shared ticket.
func NewTicket(authID, ticket string) *Ticket {
	return &Ticket{authID: authID, ticket: ticket}
}

func (t *Ticket) AuthMethod() string        { return "ticket" }
func (t *Ticket) AuthID() string            { return t.authID }
func (t *Ticket) AuthExtra() map[string]any { return map[string]any{} }

func (t *Ticket) Authenticate(challenge *messages.Challenge) (*messages.Authenticate, error) {
	return &messages.Authenticate{Signature: t.ticket, Extra: map[string]any{}}, nil
}
