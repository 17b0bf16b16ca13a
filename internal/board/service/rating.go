package service

import (
	"context"
	"errors"

	"github.com/askfold/askfold/internal/board/domain"
	"github.com/askfold/askfold/internal/board/store"
)

// RatingService records likes. Uniqueness per (user, target) is enforced by
// the database constraint, not by the advisory pre-check, so two concurrent
// requests can't both land.
type RatingService struct {
	Store store.Store
}

// Create records a like by userID on the given target. A second like on the
// same target by the same user maps to ErrDuplicateRating, no matter how the
// requests interleave.
func (s *RatingService) Create(ctx context.Context, userID int64, target domain.TargetType, targetID int64) (domain.Rating, error) {
	if !target.Valid() {
		return domain.Rating{}, ErrInvalidTargetType
	}

	r := domain.Rating{
		UserID:     userID,
		TargetType: target,
		TargetID:   targetID,
	}

	id, err := s.Store.Ratings().CreateRating(ctx, r)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Rating{}, ErrDuplicateRating
		}
		return domain.Rating{}, err
	}
	r.ID = id
	return r, nil
}

// LikeCount derives the current like count for one target.
func (s *RatingService) LikeCount(ctx context.Context, target domain.TargetType, targetID int64) (int64, error) {
	if !target.Valid() {
		return 0, ErrInvalidTargetType
	}
	return s.Store.Ratings().CountForTarget(ctx, target, targetID)
}
