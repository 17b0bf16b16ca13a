package service

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/askfold/askfold/internal/board/domain"
	"github.com/askfold/askfold/internal/board/store"
	"github.com/askfold/askfold/internal/board/store/drivers/sqlite"
	"github.com/askfold/askfold/pkg/cryptox"
	"github.com/askfold/askfold/pkg/jwtx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIssuer = "https://board.test"

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "service-test-*")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper.key"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type testEnv struct {
	store    store.Store
	auth     *AuthService
	identity *IdentityService
	users    *UserService
	content  *ContentService
	ratings  *RatingService
	signer   jwtx.Signer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	s, err := sqlite.NewStore(sqlite.FileDSN(filepath.Join(t.TempDir(), "board.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())

	pem, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	signer, err := jwtx.NewSignerEdDSA("test-key", pem)
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))
	verifier := jwtx.NewCommonEdDSA(keys, testIssuer)

	return &testEnv{
		store:    s,
		auth:     &AuthService{Store: s, Signer: signer, Issuer: testIssuer},
		identity: &IdentityService{Store: s, Verifier: verifier},
		users:    &UserService{Store: s},
		content:  &ContentService{Store: s},
		ratings:  &RatingService{Store: s},
		signer:   signer,
	}
}

func (e *testEnv) register(t *testing.T, username, password string) domain.User {
	t.Helper()
	u, err := e.auth.Register(context.Background(), username, password)
	require.NoError(t, err)
	return u
}

func TestAuthService_Register(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	u := env.register(t, "alice", "hunter2!")
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, domain.RoleMember, u.Role)
	assert.NotEqual(t, "hunter2!", u.PasswordHash)
	assert.Contains(t, u.PasswordHash, "$argon2id$")

	t.Run("duplicate username", func(t *testing.T) {
		_, err := env.auth.Register(ctx, "alice", "other")
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := env.auth.Register(ctx, "   ", "pw")
		assert.ErrorIs(t, err, ErrUsernameRequired)

		_, err = env.auth.Register(ctx, "bob", "")
		assert.ErrorIs(t, err, ErrPasswordRequired)
	})
}

func TestAuthService_Login(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "alice", "hunter2!")

	t.Run("valid credentials issue a verifiable token", func(t *testing.T) {
		token, expiresIn, err := env.auth.Login(ctx, "alice", "hunter2!")
		require.NoError(t, err)
		assert.Equal(t, jwtx.DefaultAccessTokenTTL, expiresIn)

		user, err := env.identity.Authenticate(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := env.auth.Login(ctx, "alice", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown username reports the same error", func(t *testing.T) {
		_, _, err := env.auth.Login(ctx, "mallory", "hunter2!")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestIdentityService_Authenticate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "alice", "hunter2!")

	t.Run("garbage token is malformed", func(t *testing.T) {
		_, err := env.identity.Authenticate(ctx, "not-a-token")
		assert.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("expired token", func(t *testing.T) {
		claims := jwtx.NewAccessClaims("alice", testIssuer, time.Minute, time.Now().Add(-2*time.Minute))
		token, err := env.signer.Sign(claims)
		require.NoError(t, err)

		_, err = env.identity.Authenticate(ctx, token)
		assert.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("valid token for a vanished subject", func(t *testing.T) {
		claims := jwtx.NewAccessClaims("ghost", testIssuer, time.Minute, time.Now())
		token, err := env.signer.Sign(claims)
		require.NoError(t, err)

		_, err = env.identity.Authenticate(ctx, token)
		assert.ErrorIs(t, err, ErrUnknownSubject)
	})
}

func TestIdentityService_RequireAdmin(t *testing.T) {
	env := newTestEnv(t)
	member := env.register(t, "alice", "pw")

	assert.ErrorIs(t, env.identity.RequireAdmin(member), ErrForbidden)

	require.NoError(t, env.store.Users().UpdateRole(context.Background(), member.ID, domain.RoleAdmin))
	admin, err := env.store.Users().GetUserByID(context.Background(), member.ID)
	require.NoError(t, err)
	assert.NoError(t, env.identity.RequireAdmin(admin))
}

func TestUserService_UpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	u := env.register(t, "alice", "pw")

	updated, err := env.users.UpdateProfile(ctx, u.ID, "likes long walks")
	require.NoError(t, err)
	assert.Equal(t, "likes long walks", updated.Profile)

	_, err = env.users.UpdateProfile(ctx, 9999, "x")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestContentService_Threads(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.register(t, "alice", "pw")

	q1, err := env.content.CreateQuestion(ctx, "First question", "body one")
	require.NoError(t, err)
	q2, err := env.content.CreateQuestion(ctx, "Second question", "")
	require.NoError(t, err)

	a1, err := env.content.CreateAnswer(ctx, q1.ID, alice.ID, "answer one")
	require.NoError(t, err)
	_, err = env.content.CreateAnswer(ctx, q1.ID, alice.ID, "answer two")
	require.NoError(t, err)

	// Three raters on q1, one on a1.
	for i, name := range []string{"r1", "r2", "r3"} {
		u := env.register(t, name, "pw")
		_, err := env.ratings.Create(ctx, u.ID, domain.TargetQuestion, q1.ID)
		require.NoError(t, err)
		if i == 0 {
			_, err = env.ratings.Create(ctx, u.ID, domain.TargetAnswer, a1.ID)
			require.NoError(t, err)
		}
	}

	threads, err := env.content.ListQuestionThreads(ctx)
	require.NoError(t, err)
	require.Len(t, threads, 2)

	assert.Equal(t, q1.ID, threads[0].ID)
	assert.Equal(t, int64(3), threads[0].Likes)
	require.Len(t, threads[0].Answers, 2)
	assert.Equal(t, int64(1), threads[0].Answers[0].Likes)
	assert.Zero(t, threads[0].Answers[1].Likes)

	assert.Equal(t, q2.ID, threads[1].ID)
	assert.Zero(t, threads[1].Likes)
	assert.Empty(t, threads[1].Answers)
}

func TestContentService_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.content.CreateQuestion(ctx, "  ", "body")
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = env.content.CreateAnswer(ctx, 1, 1, "  ")
	assert.ErrorIs(t, err, ErrContentRequired)

	_, err = env.content.Search(ctx, "")
	assert.ErrorIs(t, err, ErrQueryRequired)
}

func TestContentService_Search(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.register(t, "alice", "pw")
	q, err := env.content.CreateQuestion(ctx, "Tuning SQLite for writes", "")
	require.NoError(t, err)
	a, err := env.content.CreateAnswer(ctx, q.ID, alice.ID, "Enable WAL and set a busy timeout for sqlite.")
	require.NoError(t, err)
	_, err = env.content.CreateQuestion(ctx, "Unrelated", "")
	require.NoError(t, err)

	results, err := env.content.Search(ctx, "sqlite")
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Question hits precede answer hits.
	assert.Equal(t, domain.TargetQuestion, results[0].Type)
	assert.Equal(t, q.ID, results[0].ID)
	assert.Equal(t, domain.TargetAnswer, results[1].Type)
	assert.Equal(t, a.ID, results[1].ID)
	assert.Equal(t, q.ID, results[1].QuestionID)
}

func TestRatingService_Duplicate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	u := env.register(t, "alice", "pw")

	_, err := env.ratings.Create(ctx, u.ID, domain.TargetQuestion, 1)
	require.NoError(t, err)

	_, err = env.ratings.Create(ctx, u.ID, domain.TargetQuestion, 1)
	assert.ErrorIs(t, err, ErrDuplicateRating)

	_, err = env.ratings.Create(ctx, u.ID, "banana", 1)
	assert.ErrorIs(t, err, ErrInvalidTargetType)
}

// TestRatingService_ConcurrentDuplicates drives N simultaneous likes from the
// same user at the same target; exactly one may win.
func TestRatingService_ConcurrentDuplicates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	u := env.register(t, "alice", "pw")

	const n = 8
	errs := make([]error, n)

	var start, done sync.WaitGroup
	start.Add(1)
	done.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer done.Done()
			start.Wait()
			_, errs[i] = env.ratings.Create(ctx, u.ID, domain.TargetAnswer, 7)
		}(i)
	}
	start.Done()
	done.Wait()

	var ok, dup int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case assert.ErrorIs(t, err, ErrDuplicateRating):
			dup++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, dup)

	count, err := env.ratings.LikeCount(ctx, domain.TargetAnswer, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
