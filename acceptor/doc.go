// Package acceptor implements the router side of the WAMP join handshake: a
// state machine that receives Hello, challenges the peer according to the
// negotiated method via an auth.Authenticator, and settles into a welcomed
// session on success.
package acceptor
