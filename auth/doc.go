// Package auth implements the client and server sides of the four WAMP
// authentication methods: anonymous, ticket, WAMP-CRA and cryptosign.
//
// Client authenticators implement ClientAuthenticator and are consumed by
// the joiner package; server authenticators implement Authenticator and are
// consumed by the acceptor package. No method owns a network round trip —
// each is a pure function from a challenge to a response.
package auth
