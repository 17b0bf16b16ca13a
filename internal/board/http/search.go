package http

import (
	"net/http"

	"github.com/askfold/askfold/internal/board/service"
	"github.com/askfold/askfold/pkg/httpx"
	"github.com/askfold/askfold/pkg/slogx"
)

type SearchHandler struct {
	ContentService *service.ContentService
}

// ServeHTTP runs a substring search over question titles and answer contents.
//
//	@Summary		Search questions and answers
//	@Tags			Content
//	@Produce		json
//	@Param			q	query		string	true	"Search term"
//	@Success		200	{object}	SearchResponse
//	@Failure		400	{object}	APIError	"Empty query"
//	@Router			/v1/search [get].
func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	query := r.URL.Query().Get("q")

	results, err := h.ContentService.Search(ctx, query)
	if err != nil {
		apiErr := mapServiceError(err)
		if apiErr == ErrServerError {
			log.Error("search failed", "err", err)
		}
		apiErr.WriteError(w)
		return
	}

	out := make([]SearchResultResponse, 0, len(results))
	for _, res := range results {
		out = append(out, SearchResultResponse{
			Type:       string(res.Type),
			ID:         res.ID,
			Content:    res.Content,
			QuestionID: res.QuestionID,
		})
	}

	httpx.WriteJSON(w, http.StatusOK, SearchResponse{Query: query, Results: out})
}
