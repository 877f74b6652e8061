package metadata

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/glowcart/internal/dbx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "storage.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE storage (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSetAndGet_InsertThenGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "access_token", "a"))

	v, err := r.Get(ctx, "access_token")
	require.NoError(t, err)
	require.Equal(t, "a", v)
}

func TestGet_NotExists_ReturnsEmpty(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Empty(t, v)
}

func TestSet_UpsertOverwritesValue(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "user", `{"username":"old"}`))
	require.NoError(t, r.Set(ctx, "user", `{"username":"new"}`))

	v, err := r.Get(ctx, "user")
	require.NoError(t, err)
	require.Equal(t, `{"username":"new"}`, v)
}

func TestDelete_RemovesKey_AndIsIdempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "x", "1"))
	require.NoError(t, r.Delete(ctx, "x"))

	v, err := r.Get(ctx, "x")
	require.NoError(t, err)
	require.Empty(t, v)

	require.NoError(t, r.Delete(ctx, "x"))
}

func TestRepository_InsideRolledBackTx_LeavesNothing(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		require.NoError(t, repo.Set(ctx, "access_token", "a"))
		require.NoError(t, repo.Set(ctx, "refresh_token", "r"))
		return errors.New("user write failed")
	})
	require.Error(t, err)

	repo := NewSQLiteRepository(db)
	for _, key := range []string{"access_token", "refresh_token"} {
		v, err := repo.Get(ctx, key)
		require.NoError(t, err)
		assert.Empty(t, v, key)
	}
}

func TestRepository_DBErrorsWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	require.NoError(t, db.Close())

	_, err := r.Get(ctx, "k")
	require.ErrorContains(t, err, "failed to get storage[k]")

	require.ErrorContains(t, r.Set(ctx, "k", "v"), "failed to set storage[k]")
	require.ErrorContains(t, r.Delete(ctx, "k"), "failed to delete storage[k]")
}
