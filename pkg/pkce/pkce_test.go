package pkce

import (
	"crypto/sha256"
	"encoding/base64"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// base64URLAlphabet matches unpadded base64url strings.
var base64URLAlphabet = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func TestGenerate(t *testing.T) {
	seen := map[string]struct{}{}

	for i := 0; i < 50; i++ {
		pair := Generate()

		// 32 random bytes encode to 43 unpadded characters.
		require.Len(t, pair.Verifier, 43, "Unexpected verifier length")
		require.Regexp(t, base64URLAlphabet, pair.Verifier, "Verifier is not base64url")
		require.NotContains(t, pair.Verifier, "=", "Verifier must not be padded")

		// Recompute the challenge by hand with the standard encoding and the character substitution.
		sum := sha256.Sum256([]byte(pair.Verifier))
		expected := base64.StdEncoding.EncodeToString(sum[:])
		expected = strings.NewReplacer("+", "-", "/", "_", "=", "").Replace(expected)
		require.Equal(t, expected, pair.Challenge, "Challenge does not match verifier")

		_, duplicate := seen[pair.Verifier]
		require.False(t, duplicate, "Verifier repeated")
		seen[pair.Verifier] = struct{}{}
	}
}

func TestChallenge_RFC7636Vector(t *testing.T) {
	// Appendix B of RFC 7636.
	verifier := "dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk"
	require.Equal(t, "E9Melhoa2OwvFrEMTJguCHaoeK1t8URWbuGJSstw-cM", Challenge(verifier))
}
