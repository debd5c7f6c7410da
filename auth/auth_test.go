package auth

import (
	"crypto/ed25519"
	"encoding/hex"
	"testing"

	"github.com/arcwamp/wampproto-go/messages"
)

func TestAnonymousRejectsChallenge(t *testing.T) {
	a := NewAnonymous("anonymous")
	if _, err := a.Authenticate(&messages.Challenge{}); err == nil {
		t.Fatalf("expected anonymous authenticator to reject a challenge")
	}
}

func TestTicketEchoesSignature(t *testing.T) {
	tk := NewTicket("alice", "sekret")
	resp, err := tk.Authenticate(&messages.Challenge{AuthMethod: "ticket", Extra: map[string]any{}})
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if resp.Signature != "sekret" {
		t.Fatalf("expected ticket echoed back, got %q", resp.Signature)
	}
}

func TestWAMPCRAUnsaltedSignsWithRawSecret(t *testing.T) {
	w := NewWAMPCRA("alice", "password")
	challenge := &messages.Challenge{
		AuthMethod: "wampcra",
		Extra:      map[string]any{"challenge": `{"nonce":"n","session":1}`},
	}
	resp, err := w.Authenticate(challenge)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if resp.Signature == "" {
		t.Fatalf("expected non-empty signature")
	}
}

func TestWAMPCRASaltedRequiresIterationsAndKeyLen(t *testing.T) {
	w := NewWAMPCRA("alice", "password")
	challenge := &messages.Challenge{
		AuthMethod: "wampcra",
		Extra: map[string]any{
			"challenge": `{"nonce":"n","session":1}`,
			"salt":      "somesalt",
		},
	}
	if _, err := w.Authenticate(challenge); err == nil {
		t.Fatalf("expected error when salt present without iterations/keylen")
	}
}

func TestCryptoSignRoundTripsSignatureVerification(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	c := NewCryptoSign("alice", priv)

	challengeBytes := []byte("0123456789abcdef0123456789abcdef")
	challengeHex := hex.EncodeToString(challengeBytes)

	resp, err := c.Authenticate(&messages.Challenge{
		AuthMethod: "cryptosign",
		Extra:      map[string]any{"challenge": challengeHex},
	})
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	ok, err := VerifyCryptoSign(hex.EncodeToString(pub), resp.Signature)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Fatalf("expected signature to verify")
	}
}

func TestCryptoSignAuthExtraPublishesPubkey(t *testing.T) {
	pub, priv, _ := ed25519.GenerateKey(nil)
	c := NewCryptoSign("alice", priv)
	extra := c.AuthExtra()
	if extra["pubkey"] != hex.EncodeToString(pub) {
		t.Fatalf("expected pubkey in authextra")
	}
}

func TestNoOpAuthenticatorApprovesAnonymousOnly(t *testing.T) {
	n := NoOpAuthenticator{}
	if err := n.AuthenticateAnonymous(AnonymousRequest{}); err != nil {
		t.Fatalf("expected anonymous to succeed: %v", err)
	}
	if _, err := n.AuthenticateWAMPCRA(WAMPCRARequest{}); err == nil {
		t.Fatalf("expected wampcra to fail with no authenticator configured")
	}
}
