package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/askfold/askfold/internal/board/domain"
	"github.com/askfold/askfold/internal/board/store"
	"github.com/askfold/askfold/pkg/cryptox"
	"github.com/askfold/askfold/pkg/jwtx"
	"github.com/askfold/askfold/pkg/slogx"
)

// AuthService owns credential verification and token issuance. Tokens carry
// the username as subject; the identity middleware resolves it back to a user
// row on every request so role changes take effect without re-login.
type AuthService struct {
	Store     store.Store
	Signer    jwtx.Signer
	Issuer    string
	AccessTTL time.Duration
}

func (s *AuthService) ttl() time.Duration {
	if s.AccessTTL > 0 {
		return s.AccessTTL
	}
	return jwtx.DefaultAccessTokenTTL
}

// Register creates a member account with an argon2id password hash.
// Usernames are unique; a taken name maps to ErrUsernameTaken.
func (s *AuthService) Register(ctx context.Context, username, password string) (domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return domain.User{}, ErrUsernameRequired
	}
	if password == "" {
		return domain.User{}, ErrPasswordRequired
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	u := domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         domain.RoleMember,
	}

	id, err := s.Store.Users().CreateUser(ctx, u)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, err
	}

	return s.Store.Users().GetUserByID(ctx, id)
}

// Login verifies the credentials and returns a signed bearer token plus its
// lifetime. Unknown usernames and wrong passwords are indistinguishable to
// the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (token string, expiresIn time.Duration, err error) {
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", 0, ErrInvalidCredentials
		}
		return "", 0, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		l.Info("login failed", slog.String("username", username))
		return "", 0, ErrInvalidCredentials
	}

	claims := jwtx.NewAccessClaims(user.Username, s.Issuer, s.ttl(), time.Now())
	token, err = s.Signer.Sign(claims)
	if err != nil {
		return "", 0, err
	}

	return token, s.ttl(), nil
}
