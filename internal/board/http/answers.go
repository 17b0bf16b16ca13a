package http

import (
	"encoding/json"
	"net/http"

	"github.com/askfold/askfold/internal/board/service"
	"github.com/askfold/askfold/pkg/httpx"
	"github.com/askfold/askfold/pkg/slogx"
)

type AnswersHandler struct {
	ContentService *service.ContentService
}

// ServeHTTP stores an answer attributed to the authenticated user. The body's
// author field, if any, is ignored; authorship comes from the token.
//
//	@Summary		Post an answer
//	@Tags			Content
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		object{question_id=int,content=string}	true	"Answer content"
//	@Success		201		{object}	AnswerResponse
//	@Failure		400		{object}	APIError	"Missing content"
//	@Failure		401		{object}	APIError	"Invalid or missing access token"
//	@Router			/v1/answers [post].
func (h *AnswersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := CurrentUser(ctx)
	if !ok {
		ErrInvalidToken.WriteError(w)
		return
	}

	var body struct {
		QuestionID int64  `json:"question_id"`
		Content    string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		ErrInvalidRequest.WriteError(w)
		return
	}

	a, err := h.ContentService.CreateAnswer(ctx, body.QuestionID, user.ID, body.Content)
	if err != nil {
		apiErr := mapServiceError(err)
		if apiErr == ErrServerError {
			log.Error("answer creation failed", "err", err)
		}
		apiErr.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, AnswerResponse{
		ID:         a.ID,
		QuestionID: a.QuestionID,
		AuthorID:   a.AuthorID,
		Content:    a.Content,
		CreatedAt:  a.CreatedAt,
	})
}
