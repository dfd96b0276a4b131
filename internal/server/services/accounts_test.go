package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophaccounts/internal/common"
	"github.com/dmitrijs2005/gophaccounts/internal/cryptox"
	"github.com/dmitrijs2005/gophaccounts/internal/dbx"
	"github.com/dmitrijs2005/gophaccounts/internal/logging"
	"github.com/dmitrijs2005/gophaccounts/internal/server/config"
	"github.com/dmitrijs2005/gophaccounts/internal/server/models"
	"github.com/dmitrijs2005/gophaccounts/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophaccounts/internal/server/repositories/resettokens"
	"github.com/dmitrijs2005/gophaccounts/internal/server/repositories/verifytokens"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_CreatesUnverifiedUserWithOneVerifyToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u, err := f.accounts.Register(ctx, "Alice", "alice@x.com", "password1")
	require.NoError(t, err)

	assert.False(t, u.Verified())
	assert.Equal(t, models.RoleUser, u.Role)
	assert.NotEqual(t, "password1", u.PasswordHash)
	require.NoError(t, f.hasher.Compare(u.PasswordHash, "password1"))

	token, err := f.store.VerifyTokens(nil).GetByUser(ctx, u.ID)
	require.NoError(t, err)

	msgs := f.sink.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "alice@x.com", msgs[0].To)
	assert.Equal(t, "Accounts: email verification", msgs[0].Subject)
	assert.Contains(t, msgs[0].Body, token.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.accounts.Register(ctx, "Alice", "alice@x.com", "password1")
	require.NoError(t, err)

	_, err = f.accounts.Register(ctx, "Alice Two", "alice@x.com", "password2")
	assert.ErrorIs(t, err, common.ErrEmailAlreadyInUse)
	assert.Len(t, f.sink.Messages(), 1)
}

func TestRegister_Validation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name, user, email, password string
		want                        error
	}{
		{"bad email", "Alice", "not-an-email", "password1", common.ErrInvalidEmail},
		{"empty email", "Alice", "", "password1", common.ErrInvalidEmail},
		{"short name", "A", "a@x.com", "password1", common.ErrInvalidName},
		{"weak password", "Alice", "a@x.com", "short", common.ErrWeakPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.accounts.Register(context.Background(), tt.user, tt.email, tt.password)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, common.ErrorValidation)
		})
	}
	assert.Empty(t, f.sink.Messages())
}

func TestRegister_NotificationFailureDoesNotFail(t *testing.T) {
	f := newFixture(t)
	f.sink.err = errors.New("queue full")

	u, err := f.accounts.Register(context.Background(), "Alice", "alice@x.com", "password1")
	require.NoError(t, err)

	_, err = f.store.Users(nil).GetByID(context.Background(), u.ID)
	assert.NoError(t, err, "user is persisted regardless of the mail")
}

func TestVerifyEmail_StampsUserAndConsumesToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u, err := f.accounts.Register(ctx, "Alice", "alice@x.com", "password1")
	require.NoError(t, err)
	token, err := f.store.VerifyTokens(nil).GetByUser(ctx, u.ID)
	require.NoError(t, err)

	f.clock.Advance(time.Minute)
	require.NoError(t, f.accounts.VerifyEmail(ctx, token.ID))

	got, err := f.store.Users(nil).GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.True(t, got.Verified())
	assert.True(t, got.EmailVerifiedAt.Equal(f.clock.Now()))

	_, err = f.store.VerifyTokens(nil).Get(ctx, token.ID)
	assert.ErrorIs(t, err, common.ErrVerifyTokenNotFound)

	msgs := f.sink.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "Accounts: email verified", msgs[1].Subject)

	// second redemption fails and leaves the user alone
	f.clock.Advance(time.Minute)
	err = f.accounts.VerifyEmail(ctx, token.ID)
	assert.ErrorIs(t, err, common.ErrVerifyTokenNotFound)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	again, err := f.store.Users(nil).GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, again.EmailVerifiedAt.Equal(*got.EmailVerifiedAt))
	assert.Len(t, f.sink.Messages(), 2)
}

func TestVerifyEmail_AlreadyVerifiedStillConsumesToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.registerVerified(t, "Alice", "alice@x.com", "password1")
	sent := len(f.sink.Messages())

	stale := &models.VerifyToken{ID: uuid.NewString(), UserID: u.ID, CreatedAt: f.clock.Now()}
	require.NoError(t, f.store.VerifyTokens(nil).Create(ctx, stale))

	f.clock.Advance(time.Hour)
	require.NoError(t, f.accounts.VerifyEmail(ctx, stale.ID))

	_, err := f.store.VerifyTokens(nil).Get(ctx, stale.ID)
	assert.ErrorIs(t, err, common.ErrVerifyTokenNotFound)

	got, err := f.store.Users(nil).GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, got.EmailVerifiedAt.Equal(*u.EmailVerifiedAt))
	assert.Len(t, f.sink.Messages(), sent)
}

func TestVerifyEmail_BadIdentifier(t *testing.T) {
	f := newFixture(t)

	err := f.accounts.VerifyEmail(context.Background(), "123")
	assert.ErrorIs(t, err, common.ErrTokenNotValidFormat)

	err = f.accounts.VerifyEmail(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, common.ErrVerifyTokenNotFound)
}

func TestResendVerifyEmail_ReusesOutstandingToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u, err := f.accounts.Register(ctx, "Alice", "alice@x.com", "password1")
	require.NoError(t, err)
	original, err := f.store.VerifyTokens(nil).GetByUser(ctx, u.ID)
	require.NoError(t, err)

	require.NoError(t, f.accounts.ResendVerifyEmail(ctx, "alice@x.com"))

	current, err := f.store.VerifyTokens(nil).GetByUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, original.ID, current.ID)

	msgs := f.sink.Messages()
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[1].Body, original.ID)
}

func TestResendVerifyEmail_CreatesTokenWhenNoneLeft(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u, err := f.accounts.Register(ctx, "Alice", "alice@x.com", "password1")
	require.NoError(t, err)
	original, err := f.store.VerifyTokens(nil).GetByUser(ctx, u.ID)
	require.NoError(t, err)
	require.NoError(t, f.store.VerifyTokens(nil).Delete(ctx, original.ID))

	require.NoError(t, f.accounts.ResendVerifyEmail(ctx, "alice@x.com"))

	fresh, err := f.store.VerifyTokens(nil).GetByUser(ctx, u.ID)
	require.NoError(t, err)
	assert.NotEqual(t, original.ID, fresh.ID)
	assert.Contains(t, f.sink.Messages()[1].Body, fresh.ID)
}

func TestResendVerifyEmail_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerVerified(t, "Alice", "alice@x.com", "password1")

	assert.ErrorIs(t, f.accounts.ResendVerifyEmail(ctx, "bad"), common.ErrInvalidEmail)
	assert.ErrorIs(t, f.accounts.ResendVerifyEmail(ctx, "ghost@x.com"), common.ErrUserNotFound)
	assert.ErrorIs(t, f.accounts.ResendVerifyEmail(ctx, "alice@x.com"), common.ErrUserAlreadyVerified)
}

func TestRequestReset_AlwaysCreatesNewToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.registerVerified(t, "Alice", "alice@x.com", "password1")
	sent := len(f.sink.Messages())

	require.NoError(t, f.accounts.RequestReset(ctx, "alice@x.com"))
	require.NoError(t, f.accounts.RequestReset(ctx, "alice@x.com"))

	msgs := f.sink.Messages()[sent:]
	require.Len(t, msgs, 2)
	assert.Equal(t, "Accounts: password reset", msgs[0].Subject)

	tokens := f.resetTokens(t)
	require.Len(t, tokens, 2)
	assert.NotEqual(t, tokens[0], tokens[1])
	for _, id := range tokens {
		got, err := f.store.ResetTokens(nil).Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.UserID)
	}

	assert.ErrorIs(t, f.accounts.RequestReset(ctx, "ghost@x.com"), common.ErrUserNotFound)
	assert.ErrorIs(t, f.accounts.RequestReset(ctx, "ghost"), common.ErrInvalidEmail)
}

func TestResetPassword_ConsumesOnlyRedeemedToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.registerVerified(t, "Alice", "alice@x.com", "password1")

	require.NoError(t, f.accounts.RequestReset(ctx, "alice@x.com"))
	f.clock.Advance(time.Second)
	require.NoError(t, f.accounts.RequestReset(ctx, "alice@x.com"))
	tokens := f.resetTokens(t)
	require.Len(t, tokens, 2)

	require.NoError(t, f.accounts.ResetPassword(ctx, tokens[0], "newpass123"))

	got, err := f.store.Users(nil).GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Error(t, f.hasher.Compare(got.PasswordHash, "password1"))
	assert.NoError(t, f.hasher.Compare(got.PasswordHash, "newpass123"))

	_, err = f.store.ResetTokens(nil).Get(ctx, tokens[0])
	assert.ErrorIs(t, err, common.ErrResetTokenNotFound)
	_, err = f.store.ResetTokens(nil).Get(ctx, tokens[1])
	assert.NoError(t, err, "other reset tokens stay valid")

	msgs := f.sink.Messages()
	assert.Equal(t, "Accounts: password changed", msgs[len(msgs)-1].Subject)

	err = f.accounts.ResetPassword(ctx, tokens[0], "another123")
	assert.ErrorIs(t, err, common.ErrResetTokenNotFound)

	after, err := f.store.Users(nil).GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, got.PasswordHash, after.PasswordHash)

	_, err = f.sessions.Login(ctx, "alice@x.com", "newpass123", false)
	assert.NoError(t, err)
}

func TestResetPassword_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.accounts.ResetPassword(ctx, "nope", "newpass123"), common.ErrTokenNotValidFormat)
	assert.ErrorIs(t, f.accounts.ResetPassword(ctx, uuid.NewString(), "short"), common.ErrWeakPassword)
	assert.ErrorIs(t, f.accounts.ResetPassword(ctx, uuid.NewString(), "newpass123"), common.ErrResetTokenNotFound)
}

func TestMeAndVersion(t *testing.T) {
	f := newFixture(t)
	u := f.registerVerified(t, "Alice", "alice@x.com", "password1")

	assert.Nil(t, f.accounts.Me(nil))
	assert.Equal(t, u, f.accounts.Me(&Identity{User: u}))
	assert.Equal(t, "1.2.3", f.accounts.Version())
}

// racedStore lets a concurrent redemption consume every token right after
// it has been read.
type racedStore struct {
	*repomanager.InMemoryRepositoryManager
}

func (m racedStore) VerifyTokens(db dbx.DBTX) verifytokens.Repository {
	return racedVerifyTokens{m.InMemoryRepositoryManager.VerifyTokens(db)}
}

func (m racedStore) ResetTokens(db dbx.DBTX) resettokens.Repository {
	return racedResetTokens{m.InMemoryRepositoryManager.ResetTokens(db)}
}

type racedVerifyTokens struct{ verifytokens.Repository }

func (r racedVerifyTokens) Get(ctx context.Context, id string) (*models.VerifyToken, error) {
	t, err := r.Repository.Get(ctx, id)
	if err == nil {
		_ = r.Repository.Delete(ctx, id)
	}
	return t, err
}

type racedResetTokens struct{ resettokens.Repository }

func (r racedResetTokens) Get(ctx context.Context, id string) (*models.ResetToken, error) {
	t, err := r.Repository.Get(ctx, id)
	if err == nil {
		_ = r.Repository.Delete(ctx, id)
	}
	return t, err
}

func TestRedeem_LosingConcurrentRedemptionChangesNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	alice := f.registerVerified(t, "Alice", "alice@x.com", "password1")
	require.NoError(t, f.accounts.RequestReset(ctx, "alice@x.com"))
	resetID := f.resetTokens(t)[0]

	bob, err := f.accounts.Register(ctx, "Bob", "bob@x.com", "password1")
	require.NoError(t, err)
	verify, err := f.store.VerifyTokens(nil).GetByUser(ctx, bob.ID)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	raced := NewAccountService(dbx.NopRunner{}, racedStore{f.store}, f.hasher, f.sink, cfg, "1.2.3", logging.Discard())
	sent := len(f.sink.Messages())

	assert.ErrorIs(t, raced.ResetPassword(ctx, resetID, "newpass123"), common.ErrResetTokenNotFound)
	got, err := f.store.Users(nil).GetByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.PasswordHash, got.PasswordHash)

	assert.ErrorIs(t, raced.VerifyEmail(ctx, verify.ID), common.ErrVerifyTokenNotFound)
	got, err = f.store.Users(nil).GetByID(ctx, bob.ID)
	require.NoError(t, err)
	assert.False(t, got.Verified())

	assert.Len(t, f.sink.Messages(), sent, "no confirmation mail for a lost redemption")
}

func TestResetPassword_LostRaceRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{}
	cfg.LoadDefaults()
	sink := &recordingSink{}
	svc := NewAccountService(dbx.NewSQLRunner(db), repomanager.NewPostgresRepositoryManager(),
		cryptox.NewBcryptHasher(4), sink, cfg, "1.2.3", logging.Discard())

	tokenID := uuid.NewString()
	mock.ExpectBegin()
	mock.ExpectQuery(`FROM reset_tokens WHERE id = \$1$`).WithArgs(tokenID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "created_at"}).AddRow(tokenID, "u-1", time.Now()))
	mock.ExpectExec(`^DELETE FROM reset_tokens WHERE id = \$1$`).WithArgs(tokenID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err = svc.ResetPassword(context.Background(), tokenID, "newpass123")
	assert.ErrorIs(t, err, common.ErrResetTokenNotFound)
	assert.Empty(t, sink.Messages())
	require.NoError(t, mock.ExpectationsWereMet())
}
