package serializers

import (
	"testing"

	"github.com/arcwamp/wampproto-go/messages"
)

func TestJSONRoundTrip(t *testing.T) {
	s := JSONSerializer{}
	in := &messages.Hello{Realm: "realm1", Roles: map[string]any{"caller": map[string]any{}}}

	data, err := s.Serialize(in)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	out, err := s.Deserialize(data)
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	h, ok := out.(*messages.Hello)
	if !ok {
		t.Fatalf("expected *messages.Hello, got %T", out)
	}
	if h.Realm != in.Realm {
		t.Fatalf("realm mismatch: got %q want %q", h.Realm, in.Realm)
	}
}

func TestCBORRoundTrip(t *testing.T) {
	s := CBORSerializer{}
	in := &messages.Call{RequestID: 1, Options: map[string]any{}, Procedure: "com.example.add", Args: []any{int64(1), int64(2)}}

	data, err := s.Serialize(in)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	out, err := s.Deserialize(data)
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	c, ok := out.(*messages.Call)
	if !ok {
		t.Fatalf("expected *messages.Call, got %T", out)
	}
	if c.Procedure != in.Procedure {
		t.Fatalf("procedure mismatch: got %q want %q", c.Procedure, in.Procedure)
	}
}

func TestMsgpackRoundTrip(t *testing.T) {
	s := MsgpackSerializer{}
	in := &messages.Register{RequestID: 1, Options: map[string]any{}, Procedure: "com.example.add"}

	data, err := s.Serialize(in)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	out, err := s.Deserialize(data)
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	r, ok := out.(*messages.Register)
	if !ok {
		t.Fatalf("expected *messages.Register, got %T", out)
	}
	if r.Procedure != in.Procedure {
		t.Fatalf("procedure mismatch: got %q want %q", r.Procedure, in.Procedure)
	}
}

func TestByID(t *testing.T) {
	for _, id := range []ID{IDJSON, IDMsgpack, IDCBOR} {
		s, ok := ByID(id)
		if !ok {
			t.Fatalf("expected serializer for id %v", id)
		}
		if s.ID() != id {
			t.Fatalf("id mismatch: got %v want %v", s.ID(), id)
		}
	}
	if _, ok := ByID(ID(99)); ok {
		t.Fatalf("expected no serializer for unknown id")
	}
}
