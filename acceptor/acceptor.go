package acceptor

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"github.com/arcwamp/wampproto-go/auth"
	"github.com/arcwamp/wampproto-go/clock"
	"github.com/arcwamp/wampproto-go/idgen"
	"github.com/arcwamp/wampproto-go/messages"
	"github.com/arcwamp/wampproto-go/metrics"
)

// State is one of the states the router join handshake moves through;
// ABORTED is terminal.
type State int

const (
	StateNone State = iota
	StateHelloReceived
	StateChallengeSent
	StateWelcomeSent
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateNone:
		return "NONE"
	case StateHelloReceived:
		return "HELLO_RECEIVED"
	case StateChallengeSent:
		return "CHALLENGE_SENT"
	case StateWelcomeSent:
		return "WELCOME_SENT"
	case StateAborted:
		return "ABORTED"
	default:
		return "UNKNOWN"
	}
}

// RouterRoles is the role set every Welcome advertises.
func RouterRoles() map[string]any {
	return map[string]any{
		messages.RoleDealer: map[string]any{},
		messages.RoleBroker: map[string]any{},
	}
}

// Acceptor drives one router-side join handshake. A zero-value
// Authenticator means "no authenticator configured": only anonymous Hellos
// succeed.
type Acceptor struct {
	authenticator auth.Authenticator
	clock         clock.Clock

	state   State
	details *messages.SessionDetails

	pendingSessionID  int64
	pendingAuthMethod string
	pendingAuthID     string
	pendingAuthRole   string
	pendingPubKey     string
	pendingChallenge  string
	pendingCRA        *auth.WAMPCRAResponse

	Metrics metrics.AcceptorMetrics
}

// New returns an Acceptor. authenticator may be nil, in which case only
// anonymous Hellos are accepted. c may be nil, in which case clock.System
// is used for WAMP-CRA challenge timestamps.
func New(authenticator auth.Authenticator, c clock.Clock) *Acceptor {
	if c == nil {
		c = clock.System{}
	}
	return &Acceptor{authenticator: authenticator, clock: c, state: StateNone, Metrics: metrics.NoOpAcceptorMetrics{}}
}

// State reports the acceptor's current state.
func (a *Acceptor) State() State { return a.state }

// IsAborted reports whether the handshake has terminated in ABORTED.
func (a *Acceptor) IsAborted() bool { return a.state == StateAborted }

// SessionDetails returns the welcomed session's identity. Valid only once
// State() == StateWelcomeSent.
func (a *Acceptor) SessionDetails() (*messages.SessionDetails, error) {
	if a.state != StateWelcomeSent {
		return nil, &ProtocolError{State: a.state, MessageKind: "GetSessionDetails"}
	}
	return a.details, nil
}

// ReceiveMessage processes one incoming message and returns the reply to
// send back (Challenge, Welcome or Abort) along with whether that reply is
// final (Welcome or Abort).
func (a *Acceptor) ReceiveMessage(msg messages.Message) (messages.Message, bool, error) {
	if _, ok := msg.(*messages.Abort); ok {
		a.state = StateAborted
		a.Metrics.Aborted("peer_abort")
		return nil, true, nil
	}

	switch a.state {
	case StateNone:
		hello, ok := msg.(*messages.Hello)
		if !ok {
			return nil, false, &ProtocolError{State: a.state, MessageKind: fmt.Sprintf("%T", msg)}
		}
		return a.handleHello(hello)

	case StateChallengeSent:
		authenticate, ok := msg.(*messages.Authenticate)
		if !ok {
			return nil, false, &ProtocolError{State: a.state, MessageKind: fmt.Sprintf("%T", msg)}
		}
		return a.handleAuthenticate(authenticate)

	default:
		return nil, false, &ProtocolError{State: a.state, MessageKind: fmt.Sprintf("%T", msg)}
	}
}

func (a *Acceptor) handleHello(hello *messages.Hello) (messages.Message, bool, error) {
	a.state = StateHelloReceived

	method := "anonymous"
	if a.authenticator != nil {
		if len(hello.AuthMethods) > 0 {
			method = hello.AuthMethods[0]
		}
	}
	a.pendingAuthMethod = method
	a.pendingAuthID = hello.AuthID
	a.pendingAuthRole = hello.AuthRole
	if a.pendingAuthRole == "" {
		a.pendingAuthRole = "anonymous"
	}

	authenticator := a.authenticator
	if authenticator == nil {
		authenticator = auth.NoOpAuthenticator{}
	}

	switch method {
	case "anonymous":
		if err := authenticator.AuthenticateAnonymous(auth.AnonymousRequest{AuthID: hello.AuthID, AuthRole: a.pendingAuthRole}); err != nil {
			return a.abort(err)
		}
		return a.welcome()

	case "cryptosign":
		pubkey, _ := hello.AuthExtra["pubkey"].(string)
		if pubkey == "" {
			return a.abort(&auth.AuthenticationError{Method: "cryptosign", Msg: "missing authextra.pubkey"})
		}
		resp, err := authenticator.AuthenticateCryptoSign(auth.CryptoSignRequest{AuthID: hello.AuthID, PublicKey: pubkey})
		if err != nil {
			return a.abort(err)
		}
		if resp != nil && resp.AuthRole != "" {
			a.pendingAuthRole = resp.AuthRole
		}
		a.pendingPubKey = pubkey

		challengeBytes := make([]byte, 32)
		if _, err := rand.Read(challengeBytes); err != nil {
			panic(fmt.Errorf("acceptor: crypto/rand failed: %w", err))
		}
		a.pendingChallenge = hex.EncodeToString(challengeBytes)
		a.state = StateChallengeSent
		a.Metrics.ChallengeSent("cryptosign")
		return &messages.Challenge{AuthMethod: "cryptosign", Extra: map[string]any{"challenge": a.pendingChallenge}}, false, nil

	case "wampcra":
		resp, err := authenticator.AuthenticateWAMPCRA(auth.WAMPCRARequest{AuthID: hello.AuthID})
		if err != nil {
			return a.abort(err)
		}
		if resp.AuthRole != "" {
			a.pendingAuthRole = resp.AuthRole
		}
		a.pendingCRA = resp
		a.pendingSessionID = idgen.NewSessionID()

		body := auth.CRAChallengeBody{
			Nonce:        hex.EncodeToString(randomBytes(16)),
			AuthProvider: "static",
			AuthID:       hello.AuthID,
			AuthRole:     a.pendingAuthRole,
			AuthMethod:   "wampcra",
			Session:      a.pendingSessionID,
			Timestamp:    a.clock.Now().UTC().Format("2006-01-02T15:04:05.000Z"),
		}
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, false, fmt.Errorf("acceptor: marshal wampcra challenge: %w", err)
		}
		a.pendingChallenge = string(encoded)
		extra := map[string]any{"challenge": a.pendingChallenge}
		if resp.Salt != "" {
			extra["salt"] = resp.Salt
			extra["iterations"] = resp.Iterations
			extra["keylen"] = resp.KeyLen
		}
		a.state = StateChallengeSent
		a.Metrics.ChallengeSent("wampcra")
		return &messages.Challenge{AuthMethod: "wampcra", Extra: extra}, false, nil

	case "ticket":
		a.state = StateChallengeSent
		a.Metrics.ChallengeSent("ticket")
		return &messages.Challenge{AuthMethod: "ticket", Extra: map[string]any{}}, false, nil

	default:
		return a.abort(&auth.AuthenticationError{Method: method, Msg: "unsupported auth method"})
	}
}

func (a *Acceptor) handleAuthenticate(authenticate *messages.Authenticate) (messages.Message, bool, error) {
	authenticator := a.authenticator
	if authenticator == nil {
		authenticator = auth.NoOpAuthenticator{}
	}

	var verifyErr error
	switch a.pendingAuthMethod {
	case "ticket":
		verifyErr = authenticator.AuthenticateTicket(auth.TicketRequest{AuthID: a.pendingAuthID, Ticket: authenticate.Signature})

	case "cryptosign":
		ok, err := auth.VerifyCryptoSign(a.pendingPubKey, authenticate.Signature)
		if err != nil {
			verifyErr = err
		} else if !ok {
			verifyErr = &auth.AuthenticationError{Method: "cryptosign", Msg: "signature verification failed"}
		}

	case "wampcra":
		verifyErr = a.verifyWAMPCRA(authenticate.Signature)

	default:
		verifyErr = &auth.AuthenticationError{Method: a.pendingAuthMethod, Msg: "no pending verification for method"}
	}

	if verifyErr != nil {
		return a.abort(verifyErr)
	}
	return a.welcome()
}

func (a *Acceptor) verifyWAMPCRA(signature string) error {
	key := []byte(a.pendingCRA.Secret)
	if a.pendingCRA.Salt != "" {
		if a.pendingCRA.Iterations <= 0 || a.pendingCRA.KeyLen <= 0 {
			return &auth.AuthenticationError{Method: "wampcra", Msg: "salted secret requires iterations>0 and keylen>0"}
		}
		key = pbkdf2.Key([]byte(a.pendingCRA.Secret), []byte(a.pendingCRA.Salt), a.pendingCRA.Iterations, a.pendingCRA.KeyLen, sha256.New)
	}
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(a.pendingChallenge))
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return &auth.AuthenticationError{Method: "wampcra", Msg: "signature mismatch"}
	}
	return nil
}

func (a *Acceptor) welcome() (messages.Message, bool, error) {
	if a.pendingSessionID == 0 {
		a.pendingSessionID = idgen.NewSessionID()
	}
	a.details = &messages.SessionDetails{
		SessionID: a.pendingSessionID, AuthID: a.pendingAuthID, AuthRole: a.pendingAuthRole, Roles: RouterRoles(),
	}
	a.state = StateWelcomeSent
	a.Metrics.Welcomed(a.pendingAuthMethod)
	return &messages.Welcome{
		SessionID: a.pendingSessionID, Roles: RouterRoles(),
		AuthID: a.pendingAuthID, AuthRole: a.pendingAuthRole, AuthMethod: a.pendingAuthMethod,
	}, true, nil
}

func (a *Acceptor) abort(cause error) (messages.Message, bool, error) {
	a.state = StateAborted
	a.Metrics.Aborted(cause.Error())
	return &messages.Abort{
		Details: map[string]any{},
		Reason:  "wamp.error.authentication_failed",
		Args:    []any{cause.Error()},
	}, true, nil
}

func randomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Errorf("acceptor: crypto/rand failed: %w", err))
	}
	return b
}
