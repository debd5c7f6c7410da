package auth

import "github.com/arcwamp/wampproto-go/messages"

// ClientAuthenticator is the joiner-side half of one authentication method:
// it declares what to advertise in Hello, and how to answer a Challenge.
type ClientAuthenticator interface {
	// AuthMethod is the method name advertised in Hello.authmethods.
	AuthMethod() string
	// AuthID is the identity this authenticator is claiming, if any.
	AuthID() string
	// AuthExtra is merged into Hello.details.authextra.
	AuthExtra() map[string]any
	// Authenticate answers a Challenge for this method. Anonymous
	// authenticators never expect to be called and return an error, which
	// the joiner passes back to its caller after moving to ABORTED.
	Authenticate(challenge *messages.Challenge) (*messages.Authenticate, error)
}
