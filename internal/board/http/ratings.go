package http

import (
	"encoding/json"
	"net/http"

	"github.com/askfold/askfold/internal/board/domain"
	"github.com/askfold/askfold/internal/board/service"
	"github.com/askfold/askfold/pkg/httpx"
	"github.com/askfold/askfold/pkg/slogx"
)

type RatingsHandler struct {
	RatingService *service.RatingService
}

// ServeHTTP records a like by the authenticated user. At most one like per
// (user, target) pair ever lands, regardless of request interleaving.
//
//	@Summary		Rate a question or answer
//	@Tags			Content
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		object{target_type=string,target_id=int}	true	"Rating target"
//	@Success		201		{object}	RatingResponse
//	@Failure		400		{object}	APIError	"Invalid target_type or duplicate rating"
//	@Failure		401		{object}	APIError	"Invalid or missing access token"
//	@Router			/v1/ratings [post].
func (h *RatingsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := CurrentUser(ctx)
	if !ok {
		ErrInvalidToken.WriteError(w)
		return
	}

	var body struct {
		TargetType string `json:"target_type"`
		TargetID   int64  `json:"target_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		ErrInvalidRequest.WriteError(w)
		return
	}

	rating, err := h.RatingService.Create(ctx, user.ID, domain.TargetType(body.TargetType), body.TargetID)
	if err != nil {
		apiErr := mapServiceError(err)
		if apiErr == ErrServerError {
			log.Error("rating creation failed", "err", err)
		}
		apiErr.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, RatingResponse{
		ID:         rating.ID,
		TargetType: string(rating.TargetType),
		TargetID:   rating.TargetID,
	})
}
