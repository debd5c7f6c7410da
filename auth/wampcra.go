package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"github.com/arcwamp/wampproto-go/messages"
)

// WAMPCRA declares the "wampcra" method and answers a Challenge by signing
// the challenge text with HMAC-SHA256, optionally deriving the signing key
// with PBKDF2 when the challenge carries salt parameters.
type WAMPCRA struct {
	authID string
	secret string
}

// NewWAMPCRA returns a WAMP-CRA authenticator claiming authid and signing
// with secret (the raw shared secret, not a derived key).
func NewWAMPCRA(authID, secret string) *WAMPCRA {
	return &WAMPCRA{authID: authID, secret: secret}
}

func (w *WAMPCRA) AuthMethod() string        { return "wampcra" }
func (w *WAMPCRA) AuthID() string            { return w.authID }
func (w *WAMPCRA) AuthExtra() map[string]any { return map[string]any{} }

type craChallengeExtra struct {
	Salt       string `json:"salt,omitempty"`
	Iterations int    `json:"iterations,omitempty"`
	KeyLen     int    `json:"keylen,omitempty"`
}

func (w *WAMPCRA) Authenticate(challenge *messages.Challenge) (*messages.Authenticate, error) {
	raw, ok := challenge.Extra["challenge"]
	if !ok {
		return nil, &AuthenticationError{Method: "wampcra", Msg: "challenge extra missing \"challenge\""}
	}
	challengeText, ok := raw.(string)
	if !ok {
		return nil, &AuthenticationError{Method: "wampcra", Msg: "challenge extra \"challenge\" must be a string"}
	}

	key := []byte(w.secret)
	if saltInfo, hasSalt := derivedKeyParams(challenge.Extra); hasSalt {
		if saltInfo.Iterations <= 0 || saltInfo.KeyLen <= 0 {
			return nil, &AuthenticationError{Method: "wampcra", Msg: "salted challenge requires iterations>0 and keylen>0"}
		}
		key = pbkdf2.Key([]byte(w.secret), []byte(saltInfo.Salt), saltInfo.Iterations, saltInfo.KeyLen, sha256.New)
	}

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(challengeText))
	signature := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return &messages.Authenticate{Signature: signature, Extra: map[string]any{}}, nil
}

func derivedKeyParams(extra map[string]any) (craChallengeExtra, bool) {
	salt, ok := extra["salt"]
	if !ok {
		return craChallengeExtra{}, false
	}
	saltStr, _ := salt.(string)
	params := craChallengeExtra{Salt: saltStr}
	if it, ok := extra["iterations"]; ok {
		if n, ok := asNumber(it); ok {
			params.Iterations = n
		}
	}
	if kl, ok := extra["keylen"]; ok {
		if n, ok := asNumber(kl); ok {
			params.KeyLen = n
		}
	}
	return params, true
}

func asNumber(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// CRAChallengeBody is the canonical JSON challenge blob the acceptor embeds
// under Challenge.extra["challenge"] for the "wampcra" method.
type CRAChallengeBody struct {
	Nonce        string `json:"nonce"`
	AuthProvider string `json:"authprovider"`
	AuthID       string `json:"authid"`
	AuthRole     string `json:"authrole"`
	AuthMethod   string `json:"authmethod"`
	Session      int64  `json:"session"`
	Timestamp    string `json:"timestamp"`
}

// ParseCRAChallenge decodes a CRAChallengeBody from its JSON text.
func ParseCRAChallenge(challengeText string) (*CRAChallengeBody, error) {
	var body CRAChallengeBody
	if err := json.Unmarshal([]byte(challengeText), &body); err != nil {
		return nil, fmt.Errorf("auth: invalid wampcra challenge body: %w", err)
	}
	return &body, nil
}
