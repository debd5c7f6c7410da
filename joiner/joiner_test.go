package joiner

import (
	"testing"

	"github.com/arcwamp/wampproto-go/auth"
	"github.com/arcwamp/wampproto-go/messages"
)

func TestAnonymousJoinHappyPath(t *testing.T) {
	j := New("realm1", auth.NewAnonymous("anonymous"))

	hello, err := j.SendHello(nil)
	if err != nil {
		t.Fatalf("send hello: %v", err)
	}
	if hello.Realm != "realm1" {
		t.Fatalf("realm mismatch: got %q", hello.Realm)
	}
	if j.State() != StateHelloSent {
		t.Fatalf("expected HELLO_SENT, got %v", j.State())
	}

	welcome := &messages.Welcome{
		SessionID: 12345,
		Roles:     map[string]any{"dealer": map[string]any{}},
		AuthID:    "anonymous", AuthRole: "anonymous", AuthMethod: "anonymous",
	}
	reply, err := j.Receive(welcome)
	if err != nil {
		t.Fatalf("receive welcome: %v", err)
	}
	if reply != nil {
		t.Fatalf("expected no reply to welcome")
	}
	if j.State() != StateJoined {
		t.Fatalf("expected JOINED, got %v", j.State())
	}

	details, err := j.SessionDetails()
	if err != nil {
		t.Fatalf("session details: %v", err)
	}
	if details.SessionID != 12345 {
		t.Fatalf("session id mismatch: got %d", details.SessionID)
	}
}

func TestChallengeBeforeHelloIsProtocolError(t *testing.T) {
	j := New("realm1", auth.NewAnonymous("anonymous"))
	_, err := j.Receive(&messages.Challenge{AuthMethod: "wampcra"})
	if _, ok := err.(*ProtocolError); !ok {
		t.Fatalf("expected *ProtocolError, got %T (%v)", err, err)
	}
}

func TestAbortPromotesToApplicationError(t *testing.T) {
	j := New("realm1", auth.NewAnonymous("anonymous"))
	if _, err := j.SendHello(nil); err != nil {
		t.Fatalf("send hello: %v", err)
	}
	_, err := j.Receive(&messages.Abort{Reason: "wamp.error.authentication_failed"})
	appErr, ok := err.(*ApplicationError)
	if !ok {
		t.Fatalf("expected *ApplicationError, got %T", err)
	}
	if appErr.Reason != "wamp.error.authentication_failed" {
		t.Fatalf("reason mismatch: got %q", appErr.Reason)
	}
	if j.State() != StateAborted {
		t.Fatalf("expected ABORTED, got %v", j.State())
	}
}

func TestWAMPCRAJoinSignsChallenge(t *testing.T) {
	j := New("realm1", auth.NewWAMPCRA("alice", "password"))
	if _, err := j.SendHello(nil); err != nil {
		t.Fatalf("send hello: %v", err)
	}
	challenge := &messages.Challenge{
		AuthMethod: "wampcra",
		Extra:      map[string]any{"challenge": `{"nonce":"n","authmethod":"wampcra","session":1}`},
	}
	authenticate, err := j.Receive(challenge)
	if err != nil {
		t.Fatalf("receive challenge: %v", err)
	}
	if authenticate.Signature == "" {
		t.Fatalf("expected non-empty signature")
	}
	if j.State() != StateAuthenticateSent {
		t.Fatalf("expected AUTHENTICATE_SENT, got %v", j.State())
	}
}
