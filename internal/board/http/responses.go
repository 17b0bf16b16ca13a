package http

import (
	"time"

	"github.com/askfold/askfold/internal/board/domain"
)

// TokenResponse is the login payload, shaped like an OAuth2 token response so
// off-the-shelf clients can consume it.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type UserResponse struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Profile  string `json:"profile"`
	Role     string `json:"role"`
}

type QuestionResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type AnswerResponse struct {
	ID         int64     `json:"id"`
	QuestionID int64     `json:"question_id"`
	AuthorID   int64     `json:"author_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	Likes      int64     `json:"likes"`
}

// QuestionThreadResponse is a question with its answers nested and like
// counts derived at read time.
type QuestionThreadResponse struct {
	QuestionResponse
	Likes   int64            `json:"likes"`
	Answers []AnswerResponse `json:"answers"`
}

type RatingResponse struct {
	ID         int64  `json:"id"`
	TargetType string `json:"target_type"`
	TargetID   int64  `json:"target_id"`
}

type SearchResultResponse struct {
	Type       string `json:"type"`
	ID         int64  `json:"id"`
	Content    string `json:"content"`
	QuestionID int64  `json:"question_id,omitempty"`
}

type SearchResponse struct {
	Query   string                 `json:"query"`
	Results []SearchResultResponse `json:"results"`
}

func toUserResponse(u domain.User) UserResponse {
	return UserResponse{
		UserID:   u.ID,
		Username: u.Username,
		Profile:  u.Profile,
		Role:     string(u.Role),
	}
}

func toQuestionResponse(q domain.Question) QuestionResponse {
	return QuestionResponse{
		ID:        q.ID,
		Title:     q.Title,
		Body:      q.Body,
		CreatedAt: q.CreatedAt,
	}
}

func toAnswerResponse(a domain.AnswerWithLikes) AnswerResponse {
	return AnswerResponse{
		ID:         a.ID,
		QuestionID: a.QuestionID,
		AuthorID:   a.AuthorID,
		Content:    a.Content,
		CreatedAt:  a.CreatedAt,
		Likes:      a.Likes,
	}
}

func toThreadResponse(t domain.QuestionThread) QuestionThreadResponse {
	answers := make([]AnswerResponse, 0, len(t.Answers))
	for _, a := range t.Answers {
		answers = append(answers, toAnswerResponse(a))
	}
	return QuestionThreadResponse{
		QuestionResponse: toQuestionResponse(t.Question),
		Likes:            t.Likes,
		Answers:          answers,
	}
}

type HealthChecks struct {
	Database string `json:"database,omitempty"`
	Signer   string `json:"signer,omitempty"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
