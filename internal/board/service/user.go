package service

import (
	"context"

	"github.com/askfold/askfold/internal/board/domain"
	"github.com/askfold/askfold/internal/board/store"
)

type UserService struct {
	Store store.Store
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID int64) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// UpdateProfile replaces the user's profile text and returns the fresh row.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, profile string) (domain.User, error) {
	if err := s.Store.Users().UpdateProfile(ctx, userID, profile); err != nil {
		return domain.User{}, err
	}
	return s.Store.Users().GetUserByID(ctx, userID)
}
