package domain

import "time"

// TargetType identifies what kind of record a rating endorses.
type TargetType string

const (
	TargetQuestion TargetType = "question"
	TargetAnswer   TargetType = "answer"
)

// Valid reports whether t is one of the two rateable target kinds.
func (t TargetType) Valid() bool {
	return t == TargetQuestion || t == TargetAnswer
}

// Rating records a single user's endorsement of a question or answer.
// The (UserID, TargetType, TargetID) combination is unique: the storage
// layer enforces at-most-one rating per user per target. Ratings are never
// updated or deleted.
type Rating struct {
	ID         int64
	UserID     int64
	TargetType TargetType
	TargetID   int64
	CreatedAt  time.Time
}

// SearchResult is one hit from the substring search over question titles and
// answer content. QuestionID is set only for answer hits.
type SearchResult struct {
	Type       TargetType
	ID         int64
	Content    string
	QuestionID int64
}
