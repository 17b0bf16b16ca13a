package http

import (
	"net/http"

	"github.com/askfold/askfold/internal/board/service"
	"github.com/askfold/askfold/pkg/httpx"
	"github.com/askfold/askfold/pkg/slogx"
)

type RegisterHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles new account registration.
//
//	@Summary		Register a new account
//	@Description	Creates a member account from form-encoded credentials. Usernames are unique.
//	@Tags			Auth
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			username	formData	string		true	"Username"
//	@Param			password	formData	string		true	"Password"
//	@Success		200			{object}	UserResponse	"The created account"
//	@Failure		400			{object}	APIError		"Missing fields or username taken"
//	@Router			/v1/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := r.ParseForm(); err != nil {
		ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.AuthService.Register(ctx, r.PostFormValue("username"), r.PostFormValue("password"))
	if err != nil {
		apiErr := mapServiceError(err)
		if apiErr == ErrServerError {
			log.Error("registration failed", "err", err)
		}
		apiErr.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}
