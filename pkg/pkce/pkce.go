// Package pkce generates Proof Key for Code Exchange pairs as described in RFC 7636.
package pkce

import (
	"golang.org/x/oauth2"
)

// Method is the only code challenge method produced by this package.
const Method = "S256"

// Pair is a freshly generated verifier along with its derived challenge.
//
// Only the Verifier needs to be persisted. The Challenge is sent once, in the authorize URL.
type Pair struct {
	Verifier  string
	Challenge string
}

// Generate creates a new Pair.
//
// The verifier is 32 bytes read from crypto/rand, base64url encoded without padding. If the secure
// random source is unavailable, Generate panics. It never falls back to a weaker source.
func Generate() Pair {
	verifier := oauth2.GenerateVerifier()
	return Pair{Verifier: verifier, Challenge: Challenge(verifier)}
}

// Challenge derives the S256 challenge for the given verifier: base64url(SHA-256(verifier)), unpadded.
//
// The digest is computed over the verifier string itself, not over its decoded bytes.
func Challenge(verifier string) string {
	return oauth2.S256ChallengeFromVerifier(verifier)
}
