package app

import (
	"fmt"
	"log/slog"

	"github.com/askfold/askfold/pkg/cryptox"
	"github.com/askfold/askfold/pkg/idx"
	"github.com/askfold/askfold/pkg/jwtx"
)

// InitSigningKey generates an ephemeral Ed25519 signing key and wires it into
// a KeySet plus verifier. Keys do not survive restarts; outstanding tokens
// become invalid, which is acceptable for 30-minute lifetimes.
func InitSigningKey(cfg Config, logger *slog.Logger) (jwtx.Signer, *jwtx.KeySet, jwtx.Verifier, error) {
	pemKey, err := cryptox.GenerateEd25519Key()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to generate signing key: %w", err)
	}

	kid := idx.New().String()
	signer, err := jwtx.NewSignerEdDSA(kid, pemKey)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create signer: %w", err)
	}

	keys := jwtx.NewKeySet()
	if err := keys.AddSigner(signer); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to register signer: %w", err)
	}

	logger.Info("signing key generated", "kid", kid, "alg", signer.Alg())

	return signer, keys, jwtx.NewCommonEdDSA(keys, cfg.Issuer), nil
}
