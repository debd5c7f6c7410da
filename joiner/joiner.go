package joiner

import (
	"fmt"

	"github.com/arcwamp/wampproto-go/auth"
	"github.com/arcwamp/wampproto-go/messages"
	"github.com/arcwamp/wampproto-go/metrics"
)

// State is one of the states the client join handshake moves through;
// ABORTED is terminal.
type State int

const (
	StateNone State = iota
	StateHelloSent
	StateAuthenticateSent
	StateJoined
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateNone:
		return "NONE"
	case StateHelloSent:
		return "HELLO_SENT"
	case StateAuthenticateSent:
		return "AUTHENTICATE_SENT"
	case StateJoined:
		return "JOINED"
	case StateAborted:
		return "ABORTED"
	default:
		return "UNKNOWN"
	}
}

// DefaultRoles is the client role set advertised when the caller does not
// supply its own.
func DefaultRoles() map[string]any {
	return map[string]any{
		messages.RoleCaller:     map[string]any{},
		messages.RoleCallee:     map[string]any{},
		messages.RolePublisher:  map[string]any{},
		messages.RoleSubscriber: map[string]any{},
	}
}

// Joiner drives one client's join handshake against a single realm.
type Joiner struct {
	realm         string
	authenticator auth.ClientAuthenticator

	state   State
	details *messages.SessionDetails

	Metrics metrics.JoinerMetrics
}

// New returns a Joiner for realm, using authenticator to answer any
// Challenge the router sends back.
func New(realm string, authenticator auth.ClientAuthenticator) *Joiner {
	return &Joiner{realm: realm, authenticator: authenticator, state: StateNone, Metrics: metrics.NoOpJoinerMetrics{}}
}

// SendHello produces the Hello message and moves to HELLO_SENT. roles
// defaults to all four client roles with empty feature sets.
func (j *Joiner) SendHello(roles map[string]any) (*messages.Hello, error) {
	if j.state != StateNone {
		return nil, &ProtocolError{State: j.state, MessageKind: "SendHello"}
	}
	if roles == nil {
		roles = DefaultRoles()
	}

	hello := &messages.Hello{
		Realm:       j.realm,
		Roles:       roles,
		AuthID:      j.authenticator.AuthID(),
		AuthMethods: []string{j.authenticator.AuthMethod()},
		AuthExtra:   j.authenticator.AuthExtra(),
	}
	j.state = StateHelloSent
	return hello, nil
}

// Receive processes one incoming message and returns the Authenticate
// response to send back, if any. It returns (nil, nil) once the session has
// reached JOINED.
func (j *Joiner) Receive(msg messages.Message) (*messages.Authenticate, error) {
	switch m := msg.(type) {
	case *messages.Welcome:
		if j.state != StateHelloSent && j.state != StateAuthenticateSent {
			return nil, &ProtocolError{State: j.state, MessageKind: "WELCOME"}
		}
		j.details = &messages.SessionDetails{
			SessionID: m.SessionID, Realm: j.realm,
			AuthID: m.AuthID, AuthRole: m.AuthRole, Roles: m.Roles,
		}
		j.state = StateJoined
		j.Metrics.Joined()
		return nil, nil

	case *messages.Challenge:
		if j.state != StateHelloSent {
			return nil, &ProtocolError{State: j.state, MessageKind: "CHALLENGE"}
		}
		authenticate, err := j.authenticator.Authenticate(m)
		if err != nil {
			j.state = StateAborted
			j.Metrics.Aborted(err.Error())
			return nil, err
		}
		j.state = StateAuthenticateSent
		return authenticate, nil

	case *messages.Abort:
		j.state = StateAborted
		j.Metrics.Aborted(m.Reason)
		return nil, &ApplicationError{Reason: m.Reason, Args: m.Args, Kwargs: m.Kwargs}

	default:
		return nil, &ProtocolError{State: j.state, MessageKind: fmt.Sprintf("%T", msg)}
	}
}

// SessionDetails returns the joined session's identity. Valid only once
// State() == StateJoined.
func (j *Joiner) SessionDetails() (*messages.SessionDetails, error) {
	if j.state != StateJoined {
		return nil, &ProtocolError{State: j.state, MessageKind: "GetSessionDetails"}
	}
	return j.details, nil
}

// State reports the joiner's current state.
func (j *Joiner) State() State { return j.state }
