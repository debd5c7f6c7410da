package auth

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"

	"github.com/arcwamp/wampproto-go/messages"
)

// CryptoSign declares the "cryptosign" method and signs challenges with an
// Ed25519 private key, publishing the corresponding public key in
// Hello.details.authextra.pubkey.
type CryptoSign struct {
	authID     string
	privateKey ed25519.PrivateKey
	publicKey  ed25519.PublicKey
}

// NewCryptoSign returns a CryptoSign authenticator claiming authid and
// signing with privateKey. The public key is derived from the private key.
func NewCryptoSign(authID string, privateKey ed25519.PrivateKey) *CryptoSign {
	return &CryptoSign{
		authID:     authID,
		privateKey: privateKey,
		publicKey:  privateKey.Public().(ed25519.PublicKey),
	}
}

func (c *CryptoSign) AuthMethod() string { return "cryptosign" }
func (c *CryptoSign) AuthID() string     { return c.authID }

func (c *CryptoSign) AuthExtra() map[string]any {
	return map[string]any{"pubkey": hex.EncodeToString(c.publicKey)}
}

func (c *CryptoSign) Authenticate(challenge *messages.Challenge) (*messages.Authenticate, error) {
	raw, ok := challenge.Extra["challenge"]
	if !ok {
		return nil, &AuthenticationError{Method: "cryptosign", Msg: "challenge extra missing \"challenge\""}
	}
	challengeHex, ok := raw.(string)
	if !ok {
		return nil, &AuthenticationError{Method: "cryptosign", Msg: "challenge extra \"challenge\" must be a string"}
	}
	challengeBytes, err := hex.DecodeString(challengeHex)
	if err != nil {
		return nil, &AuthenticationError{Method: "cryptosign", Msg: fmt.Sprintf("invalid hex challenge: %v", err)}
	}

	signature := ed25519.Sign(c.privateKey, challengeBytes)
	combined := hex.EncodeToString(signature) + hex.EncodeToString(challengeBytes)

	return &messages.Authenticate{Signature: combined, Extra: map[string]any{}}, nil
}

// VerifyCryptoSign checks that signatureHex is a valid Ed25519 signature by
// publicKeyHex over the decoded challenge bytes, matching the 192-hex-char
// sig||challenge encoding cryptosign uses on the wire.
func VerifyCryptoSign(publicKeyHex, signatureAndChallengeHex string) (bool, error) {
	if len(signatureAndChallengeHex) < 128 {
		return false, fmt.Errorf("auth: cryptosign signature too short")
	}
	sigHex := signatureAndChallengeHex[:128]
	challengeHex := signatureAndChallengeHex[128:]

	pubKeyBytes, err := hex.DecodeString(publicKeyHex)
	if err != nil {
		return false, fmt.Errorf("auth: invalid public key hex: %w", err)
	}
	sigBytes, err := hex.DecodeString(sigHex)
	if err != nil {
		return false, fmt.Errorf("auth: invalid signature hex: %w", err)
	}
	challengeBytes, err := hex.DecodeString(challengeHex)
	if err != nil {
		return false, fmt.Errorf("auth: invalid challenge hex: %w", err)
	}

	return ed25519.Verify(ed25519.PublicKey(pubKeyBytes), challengeBytes, sigBytes), nil
}
