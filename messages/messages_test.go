package messages

import (
	"reflect"
	"testing"
)

func roundTrip(t *testing.T, m Message) Message {
	t.Helper()
	raw := m.Marshal()
	parsed, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse(marshal(%T)) failed: %v", m, err)
	}
	return parsed
}

func TestHelloRoundTrip(t *testing.T) {
	in := &Hello{
		Realm:       "realm1",
		Roles:       map[string]any{"caller": map[string]any{}},
		AuthMethods: []string{"anonymous"},
	}
	out := roundTrip(t, in)
	h, ok := out.(*Hello)
	if !ok {
		t.Fatalf("expected *Hello, got %T", out)
	}
	if h.Realm != in.Realm {
		t.Fatalf("realm mismatch: got %q want %q", h.Realm, in.Realm)
	}
	if !reflect.DeepEqual(h.AuthMethods, in.AuthMethods) {
		t.Fatalf("authmethods mismatch: got %v want %v", h.AuthMethods, in.AuthMethods)
	}
}

func TestWelcomeRoundTrip(t *testing.T) {
	in := &Welcome{
		SessionID:  12345,
		Roles:      map[string]any{"dealer": map[string]any{}},
		AuthMethod: "anonymous",
	}
	out := roundTrip(t, in)
	w, ok := out.(*Welcome)
	if !ok {
		t.Fatalf("expected *Welcome, got %T", out)
	}
	if w.SessionID != in.SessionID {
		t.Fatalf("session id mismatch: got %d want %d", w.SessionID, in.SessionID)
	}
}

func TestCallRoundTripWithArgsKwargs(t *testing.T) {
	in := &Call{
		RequestID: 1,
		Options:   map[string]any{},
		Procedure: "com.example.add",
		Args:      []any{1, 2},
		Kwargs:    map[string]any{"rounding": "up"},
	}
	out := roundTrip(t, in)
	c, ok := out.(*Call)
	if !ok {
		t.Fatalf("expected *Call, got %T", out)
	}
	if c.Procedure != in.Procedure {
		t.Fatalf("procedure mismatch: got %q want %q", c.Procedure, in.Procedure)
	}
	if !reflect.DeepEqual(c.Args, in.Args) {
		t.Fatalf("args mismatch: got %v want %v", c.Args, in.Args)
	}
	if !reflect.DeepEqual(c.Kwargs, in.Kwargs) {
		t.Fatalf("kwargs mismatch: got %v want %v", c.Kwargs, in.Kwargs)
	}
}

func TestCallMarshalOmitsAbsentArgsKwargs(t *testing.T) {
	in := &Call{RequestID: 1, Options: map[string]any{}, Procedure: "com.example.ping"}
	raw := in.Marshal()
	if len(raw) != 4 {
		t.Fatalf("expected 4-element sequence with no args/kwargs, got %d: %v", len(raw), raw)
	}
}

func TestCallMarshalInsertsEmptyArgsWhenOnlyKwargsPresent(t *testing.T) {
	in := &Call{
		RequestID: 1, Options: map[string]any{}, Procedure: "com.example.ping",
		Kwargs: map[string]any{"x": 1},
	}
	raw := in.Marshal()
	if len(raw) != 6 {
		t.Fatalf("expected 6-element sequence (args inserted), got %d: %v", len(raw), raw)
	}
	args, ok := raw[4].([]any)
	if !ok || len(args) != 0 {
		t.Fatalf("expected inserted empty args slice, got %v", raw[4])
	}
}

func TestRegisterRoundTrip(t *testing.T) {
	in := &Register{RequestID: 1, Options: map[string]any{}, Procedure: "com.example.add"}
	out := roundTrip(t, in)
	r, ok := out.(*Register)
	if !ok {
		t.Fatalf("expected *Register, got %T", out)
	}
	if r.Procedure != in.Procedure {
		t.Fatalf("procedure mismatch: got %q want %q", r.Procedure, in.Procedure)
	}
}

func TestEventPayloadPassthrough(t *testing.T) {
	in := &Event{
		SubscriptionID: 1, PublicationID: 2,
		Details: map[string]any{},
		Payload: &Payload{Serializer: PayloadSerializerCBOR, Data: []byte{0x01, 0x02}},
	}
	out := roundTrip(t, in)
	e, ok := out.(*Event)
	if !ok {
		t.Fatalf("expected *Event, got %T", out)
	}
	if e.Payload == nil {
		t.Fatalf("expected payload to survive round trip")
	}
	if e.Payload.Serializer != PayloadSerializerCBOR {
		t.Fatalf("serializer mismatch: got %v want %v", e.Payload.Serializer, PayloadSerializerCBOR)
	}
	if !reflect.DeepEqual(e.Payload.Data, in.Payload.Data) {
		t.Fatalf("payload data mismatch: got %v want %v", e.Payload.Data, in.Payload.Data)
	}
}

func TestErrorRoundTrip(t *testing.T) {
	in := &Error{
		MessageType: KindCall, RequestID: 7, Details: map[string]any{},
		URI: "wamp.error.no_such_procedure",
	}
	out := roundTrip(t, in)
	e, ok := out.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", out)
	}
	if e.MessageType != KindCall {
		t.Fatalf("message_type mismatch: got %v want %v", e.MessageType, KindCall)
	}
	if e.URI != in.URI {
		t.Fatalf("uri mismatch: got %q want %q", e.URI, in.URI)
	}
}

func TestParseRejectsEmptyMessage(t *testing.T) {
	if _, err := Parse(nil); err == nil {
		t.Fatalf("expected error for empty message")
	}
}

func TestParseRejectsUnknownKind(t *testing.T) {
	if _, err := Parse([]any{999}); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestParseAggregatesAllFieldErrors(t *testing.T) {
	_, err := Parse([]any{int(KindHello), 123, "not-a-dict"})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	verr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(verr.Errors) < 2 {
		t.Fatalf("expected multiple aggregated errors, got %d: %v", len(verr.Errors), verr.Errors)
	}
}

func TestAllKindsRoundTrip(t *testing.T) {
	msgs := []Message{
		&Hello{Realm: "r", Roles: map[string]any{"caller": map[string]any{}}},
		&Welcome{SessionID: 1, Roles: map[string]any{"dealer": map[string]any{}}},
		&Abort{Details: map[string]any{}, Reason: "wamp.error.not_authorized"},
		&Challenge{AuthMethod: "wampcra", Extra: map[string]any{}},
		&Authenticate{Signature: "sig", Extra: map[string]any{}},
		&Goodbye{Details: map[string]any{}, Reason: "wamp.close.normal"},
		&Error{MessageType: KindCall, RequestID: 1, Details: map[string]any{}, URI: "wamp.error.no_such_procedure"},
		&Publish{RequestID: 1, Options: map[string]any{}, Topic: "t"},
		&Published{RequestID: 1, PublicationID: 2},
		&Subscribe{RequestID: 1, Options: map[string]any{}, Topic: "t"},
		&Subscribed{RequestID: 1, SubscriptionID: 2},
		&Unsubscribe{RequestID: 1, SubscriptionID: 2},
		&Unsubscribed{RequestID: 1},
		&Event{SubscriptionID: 1, PublicationID: 2, Details: map[string]any{}},
		&Call{RequestID: 1, Options: map[string]any{}, Procedure: "p"},
		&Cancel{RequestID: 1, Options: map[string]any{}},
		&Result{RequestID: 1, Details: map[string]any{}},
		&Register{RequestID: 1, Options: map[string]any{}, Procedure: "p"},
		&Registered{RequestID: 1, RegistrationID: 2},
		&Unregister{RequestID: 1, RegistrationID: 2},
		&Unregistered{RequestID: 1},
		&Invocation{RequestID: 1, RegistrationID: 2, Details: map[string]any{}},
		&Interrupt{RequestID: 1, Options: map[string]any{}},
		&Yield{RequestID: 1, Options: map[string]any{}},
	}
	for _, in := range msgs {
		out := roundTrip(t, in)
		if out.Kind() != in.Kind() {
			t.Fatalf("kind mismatch for %T: got %v want %v", in, out.Kind(), in.Kind())
		}
	}
}
