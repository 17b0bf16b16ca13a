package http

import (
	"net/http"

	"github.com/askfold/askfold/internal/board/service"
	"github.com/askfold/askfold/pkg/httpx"
	"github.com/askfold/askfold/pkg/slogx"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP verifies form-encoded credentials and issues a bearer token.
//
//	@Summary		Log in
//	@Description	Exchanges username and password for a signed bearer token.
//	@Tags			Auth
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			username	formData	string			true	"Username"
//	@Param			password	formData	string			true	"Password"
//	@Success		200			{object}	TokenResponse	"access_token, token_type, expires_in"
//	@Failure		401			{object}	APIError		"Unknown username or wrong password"
//	@Router			/v1/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := r.ParseForm(); err != nil {
		ErrInvalidRequest.WriteError(w)
		return
	}

	token, expiresIn, err := h.AuthService.Login(ctx, r.PostFormValue("username"), r.PostFormValue("password"))
	if err != nil {
		apiErr := mapServiceError(err)
		if apiErr == ErrServerError {
			log.Error("login failed", "err", err)
		}
		apiErr.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(expiresIn.Seconds()),
	})
}
