package domain

import "time"

type Question struct {
	ID        int64
	Title     string
	Body      string // optional
	CreatedAt time.Time
}

// QuestionThread is the read-side view of a question with its answers and
// derived like counts attached. Counts are always recomputed from the rating
// set, never stored.
type QuestionThread struct {
	Question

	Answers []AnswerWithLikes
	Likes   int64
}
