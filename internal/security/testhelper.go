package security

import "time"

// TestSigningKey is the symmetric key used by test token providers.
const TestSigningKey = "test-signing-key"

// TestIssuer and TestAudience are the claim values test providers mint.
const (
	TestIssuer   = "user-svc-log"
	TestAudience = "log-svcs"
)

// NewTestTokenProvider returns a TokenProvider with fixed test key, issuer,
// and audience, 1h access TTL, and 24h refresh TTL.
func NewTestTokenProvider() *TokenProvider {
	return NewTokenProvider([]byte(TestSigningKey), TestIssuer, TestAudience, time.Hour, 24*time.Hour)
}
