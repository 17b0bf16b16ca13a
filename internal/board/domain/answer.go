package domain

import "time"

// Answer is immutable after creation. QuestionID is advisory: the store does
// not enforce that the referenced question exists, and deleting a question
// leaves its answers orphaned.
type Answer struct {
	ID         int64
	QuestionID int64
	AuthorID   int64
	Content    string
	CreatedAt  time.Time
}

// AnswerWithLikes pairs an answer with its derived like count.
type AnswerWithLikes struct {
	Answer

	Likes int64
}
