package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/askfold/askfold/internal/board/domain"
	"github.com/askfold/askfold/internal/board/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore opens a throwaway file-backed database with the schema applied.
// A file DSN (not :memory:) is required because database/sql pools
// connections and each pooled in-memory connection would see its own database.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(FileDSN(filepath.Join(t.TempDir(), "board.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestUsersRepo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.Users().CreateUser(ctx, domain.User{
		Username:     "alice",
		PasswordHash: "$argon2id$fake",
		Role:         domain.RoleMember,
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	t.Run("get by id and username", func(t *testing.T) {
		byID, err := s.Users().GetUserByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "alice", byID.Username)
		assert.Equal(t, domain.RoleMember, byID.Role)

		byName, err := s.Users().GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, id, byName.ID)
	})

	t.Run("duplicate username maps to ErrAlreadyExists", func(t *testing.T) {
		_, err := s.Users().CreateUser(ctx, domain.User{
			Username:     "alice",
			PasswordHash: "$argon2id$other",
			Role:         domain.RoleMember,
		})
		assert.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("missing user maps to ErrNotFound", func(t *testing.T) {
		_, err := s.Users().GetUserByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, store.ErrNotFound)

		_, err = s.Users().GetUserByID(ctx, 9999)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("update profile and role", func(t *testing.T) {
		require.NoError(t, s.Users().UpdateProfile(ctx, id, "gopher"))
		require.NoError(t, s.Users().UpdateRole(ctx, id, domain.RoleAdmin))

		u, err := s.Users().GetUserByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "gopher", u.Profile)
		assert.Equal(t, domain.RoleAdmin, u.Role)

		assert.ErrorIs(t, s.Users().UpdateProfile(ctx, 9999, "x"), store.ErrNotFound)
	})
}

func TestQuestionsRepo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.Questions().CreateQuestion(ctx, domain.Question{Title: "How do goroutines work?", Body: "Details inside."})
	require.NoError(t, err)
	second, err := s.Questions().CreateQuestion(ctx, domain.Question{Title: "Best SQLite pragmas?"})
	require.NoError(t, err)

	t.Run("list in id order", func(t *testing.T) {
		qs, err := s.Questions().ListQuestions(ctx)
		require.NoError(t, err)
		require.Len(t, qs, 2)
		assert.Equal(t, first, qs[0].ID)
		assert.Equal(t, second, qs[1].ID)
		assert.Equal(t, "Details inside.", qs[0].Body)
		assert.Empty(t, qs[1].Body)
	})

	t.Run("search matches title case-insensitively", func(t *testing.T) {
		qs, err := s.Questions().SearchQuestions(ctx, "goroutines")
		require.NoError(t, err)
		require.Len(t, qs, 1)
		assert.Equal(t, first, qs[0].ID)

		qs, err = s.Questions().SearchQuestions(ctx, "SQLITE")
		require.NoError(t, err)
		require.Len(t, qs, 1)
		assert.Equal(t, second, qs[0].ID)
	})

	t.Run("delete leaves answers behind", func(t *testing.T) {
		_, err := s.Answers().CreateAnswer(ctx, domain.Answer{QuestionID: first, AuthorID: 1, Content: "They are green threads."})
		require.NoError(t, err)

		require.NoError(t, s.Questions().DeleteQuestion(ctx, first))

		_, err = s.Questions().GetQuestionByID(ctx, first)
		assert.ErrorIs(t, err, store.ErrNotFound)

		// Orphaned answers survive the delete.
		as, err := s.Answers().ListAnswers(ctx)
		require.NoError(t, err)
		require.Len(t, as, 1)
		assert.Equal(t, first, as[0].QuestionID)

		assert.ErrorIs(t, s.Questions().DeleteQuestion(ctx, first), store.ErrNotFound)
	})
}

func TestAnswersRepo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Answers against a question that doesn't exist are allowed.
	_, err := s.Answers().CreateAnswer(ctx, domain.Answer{QuestionID: 42, AuthorID: 7, Content: "dangling"})
	require.NoError(t, err)

	_, err = s.Answers().CreateAnswer(ctx, domain.Answer{QuestionID: 1, AuthorID: 7, Content: "first question answer"})
	require.NoError(t, err)

	t.Run("list ordered by question then id", func(t *testing.T) {
		as, err := s.Answers().ListAnswers(ctx)
		require.NoError(t, err)
		require.Len(t, as, 2)
		assert.Equal(t, int64(1), as[0].QuestionID)
		assert.Equal(t, int64(42), as[1].QuestionID)
	})

	t.Run("search matches content", func(t *testing.T) {
		as, err := s.Answers().SearchAnswers(ctx, "DANGLING")
		require.NoError(t, err)
		require.Len(t, as, 1)
		assert.Equal(t, "dangling", as[0].Content)
	})
}

func TestRatingsRepo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rate := func(userID int64, target domain.TargetType, targetID int64) error {
		_, err := s.Ratings().CreateRating(ctx, domain.Rating{
			UserID:     userID,
			TargetType: target,
			TargetID:   targetID,
		})
		return err
	}

	require.NoError(t, rate(1, domain.TargetQuestion, 10))
	require.NoError(t, rate(2, domain.TargetQuestion, 10))
	require.NoError(t, rate(1, domain.TargetAnswer, 10))

	t.Run("unique constraint maps to ErrAlreadyExists", func(t *testing.T) {
		assert.ErrorIs(t, rate(1, domain.TargetQuestion, 10), store.ErrAlreadyExists)
	})

	t.Run("same id under a different target type is distinct", func(t *testing.T) {
		exists, err := s.Ratings().RatingExists(ctx, 1, domain.TargetAnswer, 10)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = s.Ratings().RatingExists(ctx, 2, domain.TargetAnswer, 10)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("counts", func(t *testing.T) {
		n, err := s.Ratings().CountForTarget(ctx, domain.TargetQuestion, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		n, err = s.Ratings().CountForTarget(ctx, domain.TargetQuestion, 999)
		require.NoError(t, err)
		assert.Zero(t, n)

		counts, err := s.Ratings().CountsByTargetType(ctx, domain.TargetQuestion)
		require.NoError(t, err)
		assert.Equal(t, map[int64]int64{10: 2}, counts)
	})
}

func TestWithTx(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	t.Run("rolls back on error", func(t *testing.T) {
		err := s.WithTx(ctx, func(tx store.Tx) error {
			if _, err := tx.Questions().CreateQuestion(ctx, domain.Question{Title: "doomed"}); err != nil {
				return err
			}
			return assert.AnError
		})
		require.ErrorIs(t, err, assert.AnError)

		qs, err := s.Questions().ListQuestions(ctx)
		require.NoError(t, err)
		assert.Empty(t, qs)
	})

	t.Run("commits on success", func(t *testing.T) {
		err := s.WithTx(ctx, func(tx store.Tx) error {
			_, err := tx.Questions().CreateQuestion(ctx, domain.Question{Title: "kept"})
			return err
		})
		require.NoError(t, err)

		qs, err := s.Questions().ListQuestions(ctx)
		require.NoError(t, err)
		require.Len(t, qs, 1)
		assert.Equal(t, "kept", qs[0].Title)
	})
}
