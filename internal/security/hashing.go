package security

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// DoubleHash returns the hex-encoded SHA-256 digest of the hash the client
// submitted on the wire. Sign-up stores this transform, so the stored
// material is never directly comparable to what Login receives.
func DoubleHash(suppliedHash string) string {
	h := sha256.Sum256([]byte(suppliedHash))
	return hex.EncodeToString(h[:])
}

// HashEqual performs constant-time comparison of the supplied wire hash's
// transform with the stored double hash. Returns true only if they match.
func HashEqual(suppliedHash, storedDoubleHash string) bool {
	computed := DoubleHash(suppliedHash)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedDoubleHash)) == 1
}
