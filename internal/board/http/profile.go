package http

import (
	"encoding/json"
	"net/http"

	"github.com/askfold/askfold/internal/board/service"
	"github.com/askfold/askfold/pkg/httpx"
	"github.com/askfold/askfold/pkg/slogx"
)

type ProfileHandler struct {
	UserService *service.UserService
}

// HandleGet returns the authenticated user's account.
//
//	@Summary		Get own profile
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	UserResponse
//	@Failure		401	{object}	APIError	"Invalid or missing access token"
//	@Router			/v1/users/me [get].
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, ok := CurrentUser(r.Context())
	if !ok {
		ErrInvalidToken.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// HandleUpdate replaces the authenticated user's profile text.
//
//	@Summary		Update own profile
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		object{profile=string}	true	"New profile text"
//	@Success		200		{object}	UserResponse			"The updated account"
//	@Failure		400		{object}	APIError				"Malformed body"
//	@Failure		401		{object}	APIError				"Invalid or missing access token"
//	@Router			/v1/users/me/profile [put].
func (h *ProfileHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := CurrentUser(ctx)
	if !ok {
		ErrInvalidToken.WriteError(w)
		return
	}

	var body struct {
		Profile string `json:"profile"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		ErrInvalidRequest.WriteError(w)
		return
	}

	updated, err := h.UserService.UpdateProfile(ctx, user.ID, body.Profile)
	if err != nil {
		log.Error("profile update failed", "user_id", user.ID, "err", err)
		mapServiceError(err).WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(updated))
}
