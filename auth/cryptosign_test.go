package auth

import (
	"crypto/ed25519"
	"encoding/hex"
	"testing"

	"github.com/arcwamp/wampproto-go/messages"
)

// Fixed Ed25519 test vector, carried over from the distillation's own
// cryptosign test fixture so the wire encoding (sig_hex || challenge_hex)
// is pinned against a known-good signature rather than only checked for
// self-consistency.
const (
	cryptosignFixturePrivateKeyHex = "c7e8c1f8f16ec37f53ed153f8afb7f18469b051f1d24dbea2097a2a104b2e9db"
	cryptosignFixturePublicKeyHex  = "c53e4f2756a52ca1ed5cd00da108b3ed7bcffe6294e78283521e5102824f52d3"
	cryptosignFixtureChallengeHex  = "a1d483092ec08960fedbaed2bc1d411568a59077b794210e251bd3abb1563f7c"
	cryptosignFixtureSignatureHex  = "01d4b7a515b1023196e2bbb57c5202da72088f99a17eaeed62ba97ebf93381b92" +
		"a3e8430154667e194d971fb41b090a9338b92021c39271e910a8ea072fe950c"
)

func TestCryptoSignFixtureVectorSigns(t *testing.T) {
	seed, err := hex.DecodeString(cryptosignFixturePrivateKeyHex)
	if err != nil {
		t.Fatalf("decode seed: %v", err)
	}
	c := NewCryptoSign("authID", ed25519.NewKeyFromSeed(seed))

	if got := c.AuthExtra()["pubkey"]; got != cryptosignFixturePublicKeyHex {
		t.Fatalf("expected derived pubkey %q, got %q", cryptosignFixturePublicKeyHex, got)
	}

	resp, err := c.Authenticate(&messages.Challenge{
		AuthMethod: "cryptosign",
		Extra:      map[string]any{"challenge": cryptosignFixtureChallengeHex},
	})
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	want := cryptosignFixtureSignatureHex + cryptosignFixtureChallengeHex
	if resp.Signature != want {
		t.Fatalf("expected signature %q, got %q", want, resp.Signature)
	}
}

func TestCryptoSignFixtureVectorVerifies(t *testing.T) {
	ok, err := VerifyCryptoSign(cryptosignFixturePublicKeyHex, cryptosignFixtureSignatureHex+cryptosignFixtureChallengeHex)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Fatalf("expected fixed vector signature to verify")
	}
}

func TestCryptoSignFixtureVectorRejectsFlippedSignatureBit(t *testing.T) {
	sigBytes, err := hex.DecodeString(cryptosignFixtureSignatureHex)
	if err != nil {
		t.Fatalf("decode signature: %v", err)
	}
	sigBytes[0] ^= 0x01
	flipped := hex.EncodeToString(sigBytes) + cryptosignFixtureChallengeHex

	ok, err := VerifyCryptoSign(cryptosignFixturePublicKeyHex, flipped)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if ok {
		t.Fatalf("expected a flipped signature bit to be rejected")
	}
}

func TestCryptoSignFixtureVectorRejectsFlippedChallengeBit(t *testing.T) {
	challengeBytes, err := hex.DecodeString(cryptosignFixtureChallengeHex)
	if err != nil {
		t.Fatalf("decode challenge: %v", err)
	}
	challengeBytes[0] ^= 0x01
	flipped := cryptosignFixtureSignatureHex + hex.EncodeToString(challengeBytes)

	ok, err := VerifyCryptoSign(cryptosignFixturePublicKeyHex, flipped)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if ok {
		t.Fatalf("expected a flipped challenge bit to be rejected")
	}
}

func TestCryptoSignFixtureVectorRejectsFlippedPublicKeyBit(t *testing.T) {
	pubBytes, err := hex.DecodeString(cryptosignFixturePublicKeyHex)
	if err != nil {
		t.Fatalf("decode public key: %v", err)
	}
	pubBytes[0] ^= 0x01

	ok, err := VerifyCryptoSign(hex.EncodeToString(pubBytes), cryptosignFixtureSignatureHex+cryptosignFixtureChallengeHex)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if ok {
		t.Fatalf("expected a flipped public key bit to be rejected")
	}
}
