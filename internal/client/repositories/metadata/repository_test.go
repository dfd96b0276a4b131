package metadata

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSetAndGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyEmail, "alice@x.com"))

	v, ok, err := r.Get(ctx, KeyEmail)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "alice@x.com", v)
}

func TestGet_Absent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, ok, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestSet_Upserts(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyAccessToken, "old"))
	require.NoError(t, r.Set(ctx, KeyAccessToken, "new"))

	v, _, err := r.Get(ctx, KeyAccessToken)
	require.NoError(t, err)
	assert.Equal(t, "new", v)
}

func TestDeleteAndClear(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyAccessToken, "a"))
	require.NoError(t, r.Set(ctx, KeyRefreshToken, "r"))
	require.NoError(t, r.Set(ctx, KeyEmail, "e"))

	require.NoError(t, r.Delete(ctx, KeyAccessToken))
	_, ok, err := r.Get(ctx, KeyAccessToken)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, r.Clear(ctx))
	for _, k := range []string{KeyRefreshToken, KeyEmail} {
		_, ok, err := r.Get(ctx, k)
		require.NoError(t, err)
		assert.False(t, ok, k)
	}
}

func TestGet_WrapsDriverError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT value FROM metadata WHERE key = \?`).
		WithArgs(KeyEmail).
		WillReturnError(errors.New("disk I/O error"))

	_, _, err = NewSQLiteRepository(db).Get(context.Background(), KeyEmail)
	assert.ErrorContains(t, err, "failed to get metadata[email]")
	assert.NoError(t, mock.ExpectationsWereMet())
}
