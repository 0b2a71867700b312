package security

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// jwk is the subset of RFC 7517 this service uses: a single symmetric
// ("oct") key whose material is in k, base64url-encoded.
type jwk struct {
	Kty string `json:"kty"`
	K   string `json:"k"`
}

// KeyFromJWK extracts the HS256 signing key from a serialized symmetric JWK.
// The same JWK string is served verbatim on GetJwk, so this service and its
// token consumers derive the identical key bytes.
func KeyFromJWK(raw string) ([]byte, error) {
	var k jwk
	if err := json.Unmarshal([]byte(raw), &k); err != nil {
		return nil, fmt.Errorf("parse jwk: %w", err)
	}
	if k.Kty != "oct" {
		return nil, fmt.Errorf("jwk: unsupported kty %q, want \"oct\"", k.Kty)
	}
	if k.K == "" {
		return nil, errors.New("jwk: missing k")
	}
	key, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(k.K, "="))
	if err != nil {
		return nil, fmt.Errorf("jwk: decode k: %w", err)
	}
	return key, nil
}
