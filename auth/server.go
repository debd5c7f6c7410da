package auth

// AnonymousRequest carries the authid/authrole the acceptor would grant an
// anonymous session, for the server authenticator to approve or reject.
type AnonymousRequest struct {
	AuthID   string
	AuthRole string
}

// TicketRequest carries the ticket a client returned in Authenticate.
type TicketRequest struct {
	AuthID string
	Ticket string
}

// CryptoSignRequest carries the public key a cryptosign client published in
// Hello.details.authextra.pubkey.
type CryptoSignRequest struct {
	AuthID    string
	PublicKey string
}

// CryptoSignResponse is returned by a successful CryptoSign authentication,
// naming the authrole the acceptor should grant.
type CryptoSignResponse struct {
	AuthRole string
}

// WAMPCRARequest asks the server authenticator for the shared secret
// belonging to authid, so the acceptor can build the signing challenge.
type WAMPCRARequest struct {
	AuthID string
}

// WAMPCRAResponse carries the shared secret (and optional PBKDF2 salt
// parameters) the acceptor uses to build the challenge and later verify the
// client's Authenticate signature.
type WAMPCRAResponse struct {
	Secret     string
	Salt       string
	Iterations int
	KeyLen     int
	AuthRole   string
}

// Authenticator is the acceptor-side counterpart to ClientAuthenticator: one
// method per auth method, each approving or rejecting a request built from
// the peer's Hello/Authenticate.
type Authenticator interface {
	AuthenticateAnonymous(req AnonymousRequest) error
	AuthenticateTicket(req TicketRequest) error
	AuthenticateCryptoSign(req CryptoSignRequest) (*CryptoSignResponse, error)
	AuthenticateWAMPCRA(req WAMPCRARequest) (*WAMPCRAResponse, error)
}

// NoOpAuthenticator approves every anonymous request and rejects every other
// method; it is the acceptor's default when the embedder configures no
// authenticator at all.
type NoOpAuthenticator struct{}

func (NoOpAuthenticator) AuthenticateAnonymous(req AnonymousRequest) error { return nil }

func (NoOpAuthenticator) AuthenticateTicket(req TicketRequest) error {
	return &AuthenticationError{Method: "ticket", Msg: "no authenticator configured"}
}

func (NoOpAuthenticator) AuthenticateCryptoSign(req CryptoSignRequest) (*CryptoSignResponse, error) {
	return nil, &AuthenticationError{Method: "cryptosign", Msg: "no authenticator configured"}
}

func (NoOpAuthenticator) AuthenticateWAMPCRA(req WAMPCRARequest) (*WAMPCRAResponse, error) {
	return nil, &AuthenticationError{Method: "wampcra", Msg: "no authenticator configured"}
}
