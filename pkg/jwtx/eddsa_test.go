package jwtx

import (
	"testing"
	"time"

	"github.com/askfold/askfold/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func newTestSignerVerifier(t *testing.T, issuer string) (Signer, Verifier, *KeySet) {
	t.Helper()

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	signer, err := NewSignerEdDSA("test-key", pemKey)
	require.NoError(t, err)
	require.NoError(t, signer.Validate())

	keys := NewKeySet()
	require.NoError(t, keys.AddSigner(signer))

	return signer, NewCommonEdDSA(keys, issuer), keys
}

func TestEdDSARoundTrip(t *testing.T) {
	t.Parallel()

	signer, verifier, _ := newTestSignerVerifier(t, "askfold-test")

	claims := NewAccessClaims("alice", "askfold-test", time.Minute, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "alice", got.Subject)
	require.Equal(t, "askfold-test", got.Issuer)
}

func TestEdDSAExpiredToken(t *testing.T) {
	t.Parallel()

	signer, verifier, _ := newTestSignerVerifier(t, "askfold-test")

	t.Run("zero ttl", func(t *testing.T) {
		claims := NewAccessClaims("alice", "askfold-test", 0, time.Now().UTC())
		token, err := signer.Sign(claims)
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, ErrExpired)
	})

	t.Run("issued in the past", func(t *testing.T) {
		claims := NewAccessClaims("alice", "askfold-test", time.Minute, time.Now().UTC().Add(-2*time.Minute))
		token, err := signer.Sign(claims)
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, ErrExpired)
	})
}

func TestEdDSAMalformedToken(t *testing.T) {
	t.Parallel()

	signer, verifier, _ := newTestSignerVerifier(t, "askfold-test")

	t.Run("garbage input", func(t *testing.T) {
		_, err := verifier.Verify("not-a-jwt")
		require.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := verifier.Verify("")
		require.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("signed by unknown key", func(t *testing.T) {
		pemKey, err := cryptox.GenerateEd25519Key()
		require.NoError(t, err)
		rogue, err := NewSignerEdDSA("rogue-key", pemKey)
		require.NoError(t, err)

		token, err := rogue.Sign(NewAccessClaims("alice", "askfold-test", time.Minute, time.Now().UTC()))
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("tampered payload", func(t *testing.T) {
		claims := NewAccessClaims("alice", "askfold-test", time.Minute, time.Now().UTC())
		token, err := signer.Sign(claims)
		require.NoError(t, err)

		tampered := token[:len(token)-4] + "AAAA"
		_, err = verifier.Verify(tampered)
		require.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("signature failure wins over expiry", func(t *testing.T) {
		// An expired token signed by the wrong key must report malformed,
		// proving the signature check runs first.
		pemKey, err := cryptox.GenerateEd25519Key()
		require.NoError(t, err)
		rogue, err := NewSignerEdDSA("rogue-key", pemKey)
		require.NoError(t, err)

		token, err := rogue.Sign(NewAccessClaims("alice", "askfold-test", 0, time.Now().UTC()))
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, ErrMalformed)
	})
}

func TestEdDSAIssuerMismatch(t *testing.T) {
	t.Parallel()

	signer, verifier, _ := newTestSignerVerifier(t, "askfold-test")

	token, err := signer.Sign(NewAccessClaims("alice", "someone-else", time.Minute, time.Now().UTC()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestKeySetJWKSPublishing(t *testing.T) {
	t.Parallel()

	signer, _, keys := newTestSignerVerifier(t, "askfold-test")

	require.True(t, keys.IsReady())

	jwks := keys.PublicJWKS()
	require.Len(t, jwks.Keys, 1)
	require.Equal(t, "OKP", jwks.Keys[0].Kty)
	require.Equal(t, "Ed25519", jwks.Keys[0].Crv)
	require.Equal(t, signer.KID(), jwks.Keys[0].Kid)

	_, err := keys.Get("missing")
	require.ErrorIs(t, err, ErrNoKey)
}
