package service

import (
	"context"
	"strings"

	"github.com/askfold/askfold/internal/board/domain"
	"github.com/askfold/askfold/internal/board/store"
)

// ContentService owns questions, answers, and the combined read views.
// Like counts are never stored; every view derives them from the ratings
// table at read time so they can't drift.
type ContentService struct {
	Store store.Store
}

// ListQuestions returns the bare question rows in id order.
func (s *ContentService) ListQuestions(ctx context.Context) ([]domain.Question, error) {
	return s.Store.Questions().ListQuestions(ctx)
}

// ListQuestionThreads returns every question with its answers nested and like
// counts attached to both levels. Answers whose question was deleted simply
// don't appear; the questions drive the view.
func (s *ContentService) ListQuestionThreads(ctx context.Context) ([]domain.QuestionThread, error) {
	questions, err := s.Store.Questions().ListQuestions(ctx)
	if err != nil {
		return nil, err
	}

	answers, err := s.Store.Answers().ListAnswers(ctx)
	if err != nil {
		return nil, err
	}

	questionLikes, err := s.Store.Ratings().CountsByTargetType(ctx, domain.TargetQuestion)
	if err != nil {
		return nil, err
	}

	answerLikes, err := s.Store.Ratings().CountsByTargetType(ctx, domain.TargetAnswer)
	if err != nil {
		return nil, err
	}

	byQuestion := make(map[int64][]domain.AnswerWithLikes, len(questions))
	for _, a := range answers {
		byQuestion[a.QuestionID] = append(byQuestion[a.QuestionID], domain.AnswerWithLikes{
			Answer: a,
			Likes:  answerLikes[a.ID],
		})
	}

	threads := make([]domain.QuestionThread, 0, len(questions))
	for _, q := range questions {
		threads = append(threads, domain.QuestionThread{
			Question: q,
			Answers:  byQuestion[q.ID],
			Likes:    questionLikes[q.ID],
		})
	}

	return threads, nil
}

// CreateQuestion validates and stores a new question.
func (s *ContentService) CreateQuestion(ctx context.Context, title, body string) (domain.Question, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Question{}, ErrTitleRequired
	}

	id, err := s.Store.Questions().CreateQuestion(ctx, domain.Question{Title: title, Body: body})
	if err != nil {
		return domain.Question{}, err
	}

	return s.Store.Questions().GetQuestionByID(ctx, id)
}

// CreateAnswer stores an answer attributed to the author. The target question
// is not required to exist, matching the permissive write model.
func (s *ContentService) CreateAnswer(ctx context.Context, questionID, authorID int64, content string) (domain.Answer, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Answer{}, ErrContentRequired
	}

	a := domain.Answer{
		QuestionID: questionID,
		AuthorID:   authorID,
		Content:    content,
	}

	id, err := s.Store.Answers().CreateAnswer(ctx, a)
	if err != nil {
		return domain.Answer{}, err
	}
	a.ID = id
	return a, nil
}

// DeleteQuestion removes the question row. Its answers and ratings stay
// behind as orphans.
func (s *ContentService) DeleteQuestion(ctx context.Context, id int64) error {
	return s.Store.Questions().DeleteQuestion(ctx, id)
}

// Search runs a case-insensitive substring match over question titles and
// answer contents. Question hits come first, then answer hits.
func (s *ContentService) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrQueryRequired
	}

	questions, err := s.Store.Questions().SearchQuestions(ctx, query)
	if err != nil {
		return nil, err
	}

	answers, err := s.Store.Answers().SearchAnswers(ctx, query)
	if err != nil {
		return nil, err
	}

	results := make([]domain.SearchResult, 0, len(questions)+len(answers))
	for _, q := range questions {
		results = append(results, domain.SearchResult{
			Type:    domain.TargetQuestion,
			ID:      q.ID,
			Content: q.Title,
		})
	}
	for _, a := range answers {
		results = append(results, domain.SearchResult{
			Type:       domain.TargetAnswer,
			ID:         a.ID,
			Content:    a.Content,
			QuestionID: a.QuestionID,
		})
	}

	return results, nil
}
