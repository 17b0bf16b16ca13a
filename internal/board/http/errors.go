package http

import (
	"errors"
	"net/http"

	"github.com/askfold/askfold/internal/board/service"
	"github.com/askfold/askfold/internal/board/store"
	"github.com/askfold/askfold/pkg/httpx"
	"github.com/askfold/askfold/pkg/jwtx"
)

// APIError is the JSON error envelope every handler writes. The status code
// travels out-of-band; the body carries a stable machine code plus a human
// description.
type APIError struct {
	StatusCode  int    `json:"-"`
	Code        string `json:"error"`
	Description string `json:"error_description,omitempty"`
}

func (e *APIError) Error() string {
	if e.Description != "" {
		return e.Code + ": " + e.Description
	}
	return e.Code
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, e)
}

var (
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        "invalid_request",
		Description: "The request is missing a required parameter or is otherwise malformed.",
	}

	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        "invalid_credentials",
		Description: "Incorrect username or password.",
	}

	ErrInvalidToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        "invalid_token",
		Description: "The access token is missing, malformed, or expired.",
	}

	ErrForbidden = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        "forbidden",
		Description: "Admin privileges are required for this operation.",
	}

	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        "not_found",
		Description: "The requested resource does not exist.",
	}

	ErrUsernameTaken = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        "username_taken",
		Description: "That username is already registered.",
	}

	ErrDuplicateRating = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        "duplicate_rating",
		Description: "You have already rated this item.",
	}

	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        "server_error",
		Description: "The server encountered an unexpected condition.",
	}
)

func badRequest(description string) *APIError {
	return &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        "invalid_request",
		Description: description,
	}
}

// mapServiceError translates service and store sentinels into API errors.
// Anything unrecognized falls through to a 500 so internals never leak.
func mapServiceError(err error) *APIError {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return ErrInvalidCredentials
	case errors.Is(err, service.ErrUsernameTaken):
		return ErrUsernameTaken
	case errors.Is(err, service.ErrDuplicateRating):
		return ErrDuplicateRating
	case errors.Is(err, service.ErrForbidden):
		return ErrForbidden
	case errors.Is(err, service.ErrInvalidTargetType):
		return badRequest("target_type must be 'question' or 'answer'.")
	case errors.Is(err, service.ErrUsernameRequired):
		return badRequest("username is required.")
	case errors.Is(err, service.ErrPasswordRequired):
		return badRequest("password is required.")
	case errors.Is(err, service.ErrTitleRequired):
		return badRequest("title is required.")
	case errors.Is(err, service.ErrContentRequired):
		return badRequest("content is required.")
	case errors.Is(err, service.ErrQueryRequired):
		return badRequest("q is required.")
	case errors.Is(err, service.ErrUnknownSubject),
		errors.Is(err, jwtx.ErrMalformed),
		errors.Is(err, jwtx.ErrExpired),
		errors.Is(err, jwtx.ErrIssuer),
		errors.Is(err, jwtx.ErrNotYetValid):
		return ErrInvalidToken
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	default:
		return ErrServerError
	}
}
