package store

import (
	"context"
	"errors"

	"github.com/askfold/askfold/internal/board/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today,
// postgres if we ever need it) implement this. It exposes sub-repositories to
// keep concerns tidy and testable.
type Store interface {
	Users() Users
	Questions() Questions
	Answers() Answers
	Ratings() Ratings

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by its surrogate key.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByUsername resolves a token subject or login attempt.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user and returns the assigned id.
	// A duplicate username maps to ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) (int64, error)

	// UpdateProfile mutates the profile text and bumps updated_at.
	UpdateProfile(ctx context.Context, userID int64, profile string) error

	// UpdateRole changes the role attribute. Used only by out-of-band
	// provisioning at startup, never by an API operation.
	UpdateRole(ctx context.Context, userID int64, role domain.Role) error
}

type Questions interface {
	// GetQuestionByID returns a question by id.
	GetQuestionByID(ctx context.Context, id int64) (domain.Question, error)

	// ListQuestions returns all questions ordered by ascending id.
	ListQuestions(ctx context.Context) ([]domain.Question, error)

	// CreateQuestion inserts a question and returns the assigned id.
	CreateQuestion(ctx context.Context, q domain.Question) (int64, error)

	// DeleteQuestion removes the question row only. Answers and ratings
	// referencing it are deliberately left behind.
	DeleteQuestion(ctx context.Context, id int64) error

	// SearchQuestions returns questions whose title contains term
	// (case-insensitive), ordered by ascending id.
	SearchQuestions(ctx context.Context, term string) ([]domain.Question, error)
}

type Answers interface {
	// ListAnswers returns every answer ordered by (question_id, id) so the
	// read side can group them under their questions in one pass.
	ListAnswers(ctx context.Context) ([]domain.Answer, error)

	// CreateAnswer inserts an answer and returns the assigned id. The
	// referenced question is not required to exist.
	CreateAnswer(ctx context.Context, a domain.Answer) (int64, error)

	// SearchAnswers returns answers whose content contains term
	// (case-insensitive), ordered by ascending id.
	SearchAnswers(ctx context.Context, term string) ([]domain.Answer, error)
}

type Ratings interface {
	// CreateRating inserts a rating and returns the assigned id. The
	// UNIQUE(user_id, target_type, target_id) constraint maps to
	// ErrAlreadyExists, which is what closes the concurrent-duplicate race.
	CreateRating(ctx context.Context, r domain.Rating) (int64, error)

	// RatingExists reports whether the user already rated the target.
	// Advisory only: CreateRating remains the authoritative check.
	RatingExists(ctx context.Context, userID int64, target domain.TargetType, targetID int64) (bool, error)

	// CountForTarget derives the like count for one target.
	CountForTarget(ctx context.Context, target domain.TargetType, targetID int64) (int64, error)

	// CountsByTargetType derives like counts for every target of one kind,
	// keyed by target id. Targets with zero ratings are absent from the map.
	CountsByTargetType(ctx context.Context, target domain.TargetType) (map[int64]int64, error)
}
