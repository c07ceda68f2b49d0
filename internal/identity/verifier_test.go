package identity

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenSigner struct {
	key *rsa.PrivateKey
	kid string
}

func newTokenSigner(t *testing.T) *tokenSigner {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return &tokenSigner{key: key, kid: "test-key-1"}
}

func (s *tokenSigner) jwksHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pub := &s.key.PublicKey
		e := big.NewInt(int64(pub.E))
		json.NewEncoder(w).Encode(jwks{Keys: []jwk{{
			Kty: "RSA",
			Kid: s.kid,
			Use: "sig",
			Alg: "RS256",
			N:   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
			E:   base64.RawURLEncoding.EncodeToString(e.Bytes()),
		}}})
	})
}

func (s *tokenSigner) sign(t *testing.T, header map[string]interface{}, claims map[string]interface{}) string {
	t.Helper()
	headerJSON, err := json.Marshal(header)
	require.NoError(t, err)
	claimsJSON, err := json.Marshal(claims)
	require.NoError(t, err)

	signingInput := base64.RawURLEncoding.EncodeToString(headerJSON) + "." +
		base64.RawURLEncoding.EncodeToString(claimsJSON)
	hashed := sha256.Sum256([]byte(signingInput))
	signature, err := rsa.SignPKCS1v15(rand.Reader, s.key, crypto.SHA256, hashed[:])
	require.NoError(t, err)

	return signingInput + "." + base64.RawURLEncoding.EncodeToString(signature)
}

func (s *tokenSigner) signDefault(t *testing.T, claims map[string]interface{}) string {
	return s.sign(t, map[string]interface{}{"alg": "RS256", "kid": s.kid, "typ": "JWT"}, claims)
}

func TestVerifyValidToken(t *testing.T) {
	signer := newTokenSigner(t)
	server := httptest.NewServer(signer.jwksHandler())
	defer server.Close()

	verifier := NewJWKSVerifier(server.URL, "https://issuer.example.com")
	token := signer.signDefault(t, map[string]interface{}{
		"iss":   "https://issuer.example.com",
		"sub":   "abc123",
		"email": "alice@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	email, err := verifier.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)
}

func TestVerifyRejections(t *testing.T) {
	signer := newTokenSigner(t)
	server := httptest.NewServer(signer.jwksHandler())
	defer server.Close()

	verifier := NewJWKSVerifier(server.URL, "https://issuer.example.com")
	validClaims := func() map[string]interface{} {
		return map[string]interface{}{
			"iss":   "https://issuer.example.com",
			"email": "alice@example.com",
			"exp":   time.Now().Add(time.Hour).Unix(),
		}
	}

	t.Run("malformed token", func(t *testing.T) {
		_, err := verifier.Verify("definitely.not-a-token")
		assert.Error(t, err)
	})

	t.Run("wrong algorithm", func(t *testing.T) {
		token := signer.sign(t, map[string]interface{}{"alg": "HS256", "kid": signer.kid}, validClaims())
		_, err := verifier.Verify(token)
		assert.ErrorContains(t, err, "unsupported algorithm")
	})

	t.Run("unknown kid", func(t *testing.T) {
		token := signer.sign(t, map[string]interface{}{"alg": "RS256", "kid": "rotated-away"}, validClaims())
		_, err := verifier.Verify(token)
		assert.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		claims := validClaims()
		claims["iss"] = "https://evil.example.com"
		_, err := verifier.Verify(signer.signDefault(t, claims))
		assert.ErrorContains(t, err, "invalid issuer")
	})

	t.Run("expired", func(t *testing.T) {
		claims := validClaims()
		claims["exp"] = time.Now().Add(-time.Minute).Unix()
		_, err := verifier.Verify(signer.signDefault(t, claims))
		assert.ErrorContains(t, err, "expired")
	})

	t.Run("missing email", func(t *testing.T) {
		claims := validClaims()
		delete(claims, "email")
		_, err := verifier.Verify(signer.signDefault(t, claims))
		assert.ErrorContains(t, err, "email")
	})

	t.Run("tampered payload", func(t *testing.T) {
		other := newTokenSigner(t)
		other.kid = signer.kid // claims the same kid, signed with a different key
		_, err := verifier.Verify(other.signDefault(t, validClaims()))
		assert.ErrorContains(t, err, "signature")
	})
}
