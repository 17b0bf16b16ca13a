package jwtx

import "errors"

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	// ErrMalformed covers tokens that cannot be parsed or whose signature
	// does not verify. The signature check always precedes semantic checks,
	// so a tampered-but-expired token still reports ErrMalformed.
	ErrMalformed = errors.New("jwtx: malformed token")

	// ErrExpired means the signature verified but the embedded expiry has passed.
	ErrExpired = errors.New("jwtx: token expired")

	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
)

// EdDSAAdapter a Verifier wrapper for EdDSA.
type EdDSAAdapter struct{ *EdDSAVerifier }

func (a EdDSAAdapter) Verify(token string) (Claims, error) {
	c, err := a.EdDSAVerifier.Verify(token)
	if err != nil {
		return Claims{}, err
	}
	return *c, nil
}

// NewCommonEdDSA returns a Verifier using the EdDSA implementation wrapped
// in the common interface.
func NewCommonEdDSA(keys *KeySet, issuer string) Verifier {
	return EdDSAAdapter{NewVerifierEdDSA(keys, issuer)}
}
