package service

import (
	"context"
	"errors"

	"github.com/askfold/askfold/internal/board/domain"
	"github.com/askfold/askfold/internal/board/store"
	"github.com/askfold/askfold/pkg/jwtx"
)

// IdentityService turns bearer tokens into users. Verification order matters:
// the verifier checks the signature before any semantic claim, so a tampered
// token is always malformed, never merely expired.
type IdentityService struct {
	Store    store.Store
	Verifier jwtx.Verifier
}

// Authenticate validates the token and resolves its subject to a user row.
// A valid token whose subject no longer exists maps to ErrUnknownSubject.
func (s *IdentityService) Authenticate(ctx context.Context, token string) (domain.User, error) {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return domain.User{}, err
	}

	user, err := s.Store.Users().GetUserByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUnknownSubject
		}
		return domain.User{}, err
	}

	return user, nil
}

// RequireAdmin returns ErrForbidden unless the user holds the admin role.
func (s *IdentityService) RequireAdmin(user domain.User) error {
	if !user.Role.IsAdmin() {
		return ErrForbidden
	}
	return nil
}
