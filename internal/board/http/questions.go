package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/askfold/askfold/internal/board/service"
	"github.com/askfold/askfold/pkg/httpx"
	"github.com/askfold/askfold/pkg/slogx"
)

type QuestionsHandler struct {
	ContentService *service.ContentService
}

// HandleList returns the bare question list.
//
//	@Summary		List questions
//	@Tags			Content
//	@Produce		json
//	@Success		200	{array}	QuestionResponse
//	@Router			/v1/questions [get].
func (h *QuestionsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	questions, err := h.ContentService.ListQuestions(ctx)
	if err != nil {
		log.Error("question listing failed", "err", err)
		ErrServerError.WriteError(w)
		return
	}

	out := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, toQuestionResponse(q))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleListExpanded returns questions with nested answers and derived like
// counts on both levels.
//
//	@Summary		List questions with answers and like counts
//	@Tags			Content
//	@Produce		json
//	@Success		200	{array}	QuestionThreadResponse
//	@Router			/v1/questions/expanded [get].
func (h *QuestionsHandler) HandleListExpanded(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	threads, err := h.ContentService.ListQuestionThreads(ctx)
	if err != nil {
		log.Error("thread listing failed", "err", err)
		ErrServerError.WriteError(w)
		return
	}

	out := make([]QuestionThreadResponse, 0, len(threads))
	for _, t := range threads {
		out = append(out, toThreadResponse(t))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate stores a new question.
//
//	@Summary		Post a question
//	@Tags			Content
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		object{title=string,body=string}	true	"Question content"
//	@Success		201		{object}	QuestionResponse
//	@Failure		400		{object}	APIError	"Missing title"
//	@Failure		401		{object}	APIError	"Invalid or missing access token"
//	@Router			/v1/questions [post].
func (h *QuestionsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var body struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		ErrInvalidRequest.WriteError(w)
		return
	}

	q, err := h.ContentService.CreateQuestion(ctx, body.Title, body.Body)
	if err != nil {
		apiErr := mapServiceError(err)
		if apiErr == ErrServerError {
			log.Error("question creation failed", "err", err)
		}
		apiErr.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toQuestionResponse(q))
}

// HandleDelete removes a question. Admin only; answers and ratings that
// reference it are left behind.
//
//	@Summary		Delete a question
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Question id"
//	@Success		200	{object}	object{message=string}
//	@Failure		401	{object}	APIError	"Invalid or missing access token"
//	@Failure		403	{object}	APIError	"Not an admin"
//	@Failure		404	{object}	APIError	"No such question"
//	@Router			/v1/admin/questions/{id} [delete].
func (h *QuestionsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		ErrInvalidRequest.WriteError(w)
		return
	}

	if err := h.ContentService.DeleteQuestion(ctx, id); err != nil {
		apiErr := mapServiceError(err)
		if apiErr == ErrServerError {
			log.Error("question deletion failed", "id", id, "err", err)
		}
		apiErr.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "question " + strconv.FormatInt(id, 10) + " deleted",
	})
}
