package services

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophaccounts/internal/common"
	"github.com/dmitrijs2005/gophaccounts/internal/dbx"
	"github.com/dmitrijs2005/gophaccounts/internal/logging"
	"github.com/dmitrijs2005/gophaccounts/internal/server/auth"
	"github.com/dmitrijs2005/gophaccounts/internal/server/config"
	"github.com/dmitrijs2005/gophaccounts/internal/server/models"
	"github.com/dmitrijs2005/gophaccounts/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario_RegisterVerifyLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u, err := f.accounts.Register(ctx, "Alice", "alice@x.com", "password1")
	require.NoError(t, err)
	token, err := f.store.VerifyTokens(nil).GetByUser(ctx, u.ID)
	require.NoError(t, err)

	_, err = f.sessions.Login(ctx, "alice@x.com", "password1", false)
	assert.ErrorIs(t, err, common.ErrUserNotVerified)

	require.NoError(t, f.accounts.VerifyEmail(ctx, token.ID))

	pair, err := f.sessions.Login(ctx, "alice@x.com", "password1", false)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.Empty(t, pair.RefreshToken)

	access, err := f.codec.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, access.UserID)
	assert.Equal(t, models.RoleUser, access.Role)

	s, err := f.store.Sessions(nil).Get(ctx, access.SessionID)
	require.NoError(t, err)
	assert.False(t, s.Remembered())
}

func TestLogin_Failures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerVerified(t, "Alice", "alice@x.com", "password1")

	_, err := f.sessions.Login(ctx, "ghost@x.com", "password1", false)
	assert.ErrorIs(t, err, common.ErrUserNotFound)

	_, err = f.sessions.Login(ctx, "alice@x.com", "wrong-password", false)
	assert.ErrorIs(t, err, common.ErrInvalidPassword)

	_, err = f.sessions.Login(ctx, "alice", "password1", false)
	assert.ErrorIs(t, err, common.ErrInvalidEmail)
}

func TestScenario_RememberThenRefresh(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.registerVerified(t, "Alice", "alice@x.com", "password1")

	pair, err := f.sessions.Login(ctx, "alice@x.com", "password1", true)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	refresh, err := f.codec.VerifyRefresh(pair.RefreshToken)
	require.NoError(t, err)
	stored, err := f.store.Sessions(nil).Get(ctx, refresh.SessionID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, stored.UserID)
	assert.Equal(t, stored.RefreshToken, refresh.RefreshToken)

	f.clock.Advance(time.Minute)
	next, err := f.sessions.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, next.RefreshToken)

	access, err := f.codec.VerifyAccess(next.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, refresh.SessionID, access.SessionID)

	rotated, err := f.store.Sessions(nil).Get(ctx, refresh.SessionID)
	require.NoError(t, err)
	assert.NotEqual(t, stored.RefreshToken, rotated.RefreshToken)
	assert.Equal(t, f.clock.Now(), rotated.UpdatedAt)

	_, err = f.sessions.Refresh(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, common.ErrInvalidRefreshToken)

	_, err = f.sessions.Refresh(ctx, next.RefreshToken)
	assert.NoError(t, err)
}

func TestRefresh_SucceedsAtMostOncePerEnvelope(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerVerified(t, "Alice", "alice@x.com", "password1")

	pair, err := f.sessions.Login(ctx, "alice@x.com", "password1", true)
	require.NoError(t, err)

	_, first := f.sessions.Refresh(ctx, pair.RefreshToken)
	_, second := f.sessions.Refresh(ctx, pair.RefreshToken)

	assert.NoError(t, first)
	assert.ErrorIs(t, second, common.ErrInvalidRefreshToken)
}

func TestRefresh_Failures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.registerVerified(t, "Alice", "alice@x.com", "password1")

	remembered, err := f.sessions.Login(ctx, "alice@x.com", "password1", true)
	require.NoError(t, err)
	plain, err := f.sessions.Login(ctx, "alice@x.com", "password1", false)
	require.NoError(t, err)

	t.Run("access token", func(t *testing.T) {
		_, err := f.sessions.Refresh(ctx, remembered.AccessToken)
		assert.ErrorIs(t, err, common.ErrWrongTokenType)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := f.sessions.Refresh(ctx, "garbage")
		assert.ErrorIs(t, err, common.ErrTokenMalformed)
	})

	t.Run("session without refresh secret", func(t *testing.T) {
		access, err := f.codec.VerifyAccess(plain.AccessToken)
		require.NoError(t, err)
		forged, err := f.codec.Issue(auth.RefreshPayload{UserID: u.ID, SessionID: access.SessionID, RefreshToken: "guess"}, time.Hour)
		require.NoError(t, err)

		_, err = f.sessions.Refresh(ctx, forged)
		assert.ErrorIs(t, err, common.ErrInvalidRefreshToken)
	})

	t.Run("claims disagree with session owner", func(t *testing.T) {
		payload, err := f.codec.VerifyRefresh(remembered.RefreshToken)
		require.NoError(t, err)
		payload.UserID = uuid.NewString()
		mismatched, err := f.codec.Issue(payload, time.Hour)
		require.NoError(t, err)

		_, err = f.sessions.Refresh(ctx, mismatched)
		assert.ErrorIs(t, err, common.ErrInternalInconsistency)
	})

	t.Run("session gone", func(t *testing.T) {
		id := f.identity(t, remembered)
		require.NoError(t, f.sessions.KillSession(ctx, id, id.SessionID))

		_, err := f.sessions.Refresh(ctx, remembered.RefreshToken)
		assert.ErrorIs(t, err, common.ErrSessionNotFound)
	})

	t.Run("expired", func(t *testing.T) {
		pair, err := f.sessions.Login(ctx, "alice@x.com", "password1", true)
		require.NoError(t, err)
		f.clock.Advance(8 * 24 * time.Hour)

		_, err = f.sessions.Refresh(ctx, pair.RefreshToken)
		assert.ErrorIs(t, err, common.ErrTokenExpired)
	})
}

func TestAuthenticate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.registerVerified(t, "Alice", "alice@x.com", "password1")

	id, err := f.sessions.Authenticate(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, id)

	pair, err := f.sessions.Login(ctx, "alice@x.com", "password1", true)
	require.NoError(t, err)

	id = f.identity(t, pair)
	assert.Equal(t, u.ID, id.User.ID)

	_, err = f.sessions.Authenticate(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, common.ErrWrongTokenType)

	f.clock.Advance(16 * time.Minute)
	_, err = f.sessions.Authenticate(ctx, pair.AccessToken)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestAuthenticate_SlidesUpdatedAtStrictly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerVerified(t, "Alice", "alice@x.com", "password1")

	pair, err := f.sessions.Login(ctx, "alice@x.com", "password1", false)
	require.NoError(t, err)
	id := f.identity(t, pair)

	before, err := f.store.Sessions(nil).Get(ctx, id.SessionID)
	require.NoError(t, err)

	// clock standing still
	f.identity(t, pair)
	after, err := f.store.Sessions(nil).Get(ctx, id.SessionID)
	require.NoError(t, err)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))

	f.clock.Advance(time.Minute)
	f.identity(t, pair)
	latest, err := f.store.Sessions(nil).Get(ctx, id.SessionID)
	require.NoError(t, err)
	assert.Equal(t, f.clock.Now(), latest.UpdatedAt)
}

func TestAuthenticate_RevokedSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerVerified(t, "Alice", "alice@x.com", "password1")

	pair, err := f.sessions.Login(ctx, "alice@x.com", "password1", false)
	require.NoError(t, err)
	id := f.identity(t, pair)

	n, err := f.sessions.KillAllSessions(ctx, id)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = f.sessions.Authenticate(ctx, pair.AccessToken)
	assert.ErrorIs(t, err, common.ErrSessionExpiredOrRevoked)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestScenario_CrossUserSessionIsolation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerVerified(t, "Alice", "alice@x.com", "password1")
	f.registerVerified(t, "Bob", "bob@x.com", "password2")

	alicePair, err := f.sessions.Login(ctx, "alice@x.com", "password1", false)
	require.NoError(t, err)
	bobPair, err := f.sessions.Login(ctx, "bob@x.com", "password2", false)
	require.NoError(t, err)

	alice := f.identity(t, alicePair)
	bob := f.identity(t, bobPair)

	err = f.sessions.KillSession(ctx, bob, alice.SessionID)
	assert.ErrorIs(t, err, common.ErrSessionNotFound)

	list, err := f.sessions.ListSessions(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, alice.SessionID, list[0].ID)

	bobList, err := f.sessions.ListSessions(ctx, bob)
	require.NoError(t, err)
	require.Len(t, bobList, 1)
	assert.Equal(t, bob.SessionID, bobList[0].ID)
}

func TestKillSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerVerified(t, "Alice", "alice@x.com", "password1")

	first, err := f.sessions.Login(ctx, "alice@x.com", "password1", false)
	require.NoError(t, err)
	second, err := f.sessions.Login(ctx, "alice@x.com", "password1", false)
	require.NoError(t, err)

	id := f.identity(t, first)
	other := f.identity(t, second)

	require.NoError(t, f.sessions.KillSession(ctx, id, other.SessionID))
	assert.ErrorIs(t, f.sessions.KillSession(ctx, id, other.SessionID), common.ErrSessionNotFound)

	list, err := f.sessions.ListSessions(ctx, id)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	assert.ErrorIs(t, f.sessions.KillSession(ctx, id, "not-a-uuid"), common.ErrInvalidSessionID)
}

func TestProtectedOperations_RequireIdentity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.sessions.ListSessions(ctx, nil)
	assert.ErrorIs(t, err, common.ErrNotAuthorized)

	assert.ErrorIs(t, f.sessions.KillSession(ctx, nil, uuid.NewString()), common.ErrNotAuthorized)

	_, err = f.sessions.KillAllSessions(ctx, nil)
	assert.ErrorIs(t, err, common.ErrNotAuthorized)
}

func TestKillSession_RunsInTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	s := NewSessionService(dbx.NewSQLRunner(db), repomanager.NewPostgresRepositoryManager(),
		auth.NewCodec([]byte("k")), nil, cfg, logging.Discard())

	identity := &Identity{User: &models.User{ID: "u-1"}}
	sessionID := uuid.NewString()
	q := regexp.QuoteMeta(`DELETE FROM sessions WHERE id = $1 AND user_id = $2`)

	mock.ExpectBegin()
	mock.ExpectExec(q).WithArgs(sessionID, "u-1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec(q).WithArgs(sessionID, "u-1").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	mock.ExpectBegin()
	mock.ExpectExec(q).WillReturnError(errors.New("conn lost"))
	mock.ExpectRollback()

	require.NoError(t, s.KillSession(context.Background(), identity, sessionID))
	assert.ErrorIs(t, s.KillSession(context.Background(), identity, sessionID), common.ErrSessionNotFound)
	assert.ErrorContains(t, s.KillSession(context.Background(), identity, sessionID), "db error: conn lost")
	require.NoError(t, mock.ExpectationsWereMet())
}
