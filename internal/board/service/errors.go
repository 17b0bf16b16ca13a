package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrUsernameTaken      = errors.New("username_taken")
	ErrUnknownSubject     = errors.New("unknown_subject")
	ErrForbidden          = errors.New("forbidden")

	ErrDuplicateRating   = errors.New("duplicate_rating")
	ErrInvalidTargetType = errors.New("invalid_target_type")

	ErrUsernameRequired = errors.New("username_required")
	ErrPasswordRequired = errors.New("password_required")
	ErrTitleRequired    = errors.New("title_required")
	ErrContentRequired  = errors.New("content_required")
	ErrQueryRequired    = errors.New("query_required")
)
