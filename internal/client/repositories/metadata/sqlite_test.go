package metadata

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "meta.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSetAndGet_InsertThenGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k1", []byte{0x01, 0x02}))

	v, err := r.Get(ctx, "k1")
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02}, v)
}

func TestGet_NotExists_ReturnsNilNil(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSet_UpsertOverwritesValue(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", []byte("old")))
	require.NoError(t, r.Set(ctx, "k", []byte("new")))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), v)
}

func TestDelete_RemovesKey(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", []byte("v")))
	require.NoError(t, r.Delete(ctx, "k"))
	require.NoError(t, r.Delete(ctx, "k"))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestListAndClear(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.SetMany(ctx, map[string][]byte{"a": []byte("1"), "b": []byte("2")}))

	all, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"a": []byte("1"), "b": []byte("2")}, all)

	require.NoError(t, r.Clear(ctx))
	all, err = r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestStore_SetManyAndDeleteMany(t *testing.T) {
	s := NewStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.SetMany(ctx, map[string][]byte{
		"token": []byte("jwt"),
		"id":    []byte("42"),
	}))

	v, err := s.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, []byte("jwt"), v)

	require.NoError(t, s.DeleteMany(ctx, "token", "id"))
	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestStore_SetManyRollsBackOnFailure(t *testing.T) {
	db := setupDB(t)
	s := NewStore(db)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "id", []byte("1")))
	// NOT NULL on value makes the second write fail and the batch roll back.
	err := s.SetMany(ctx, map[string][]byte{
		"id":    []byte("2"),
		"token": nil,
	})
	require.Error(t, err)

	v, err := s.Get(ctx, "id")
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), v)
}

func TestRepository_ErrorsAfterClose(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	require.NoError(t, db.Close())

	_, err := r.Get(context.Background(), "k")
	assert.ErrorContains(t, err, "failed to get metadata[k]")
	_, err = r.List(context.Background())
	assert.ErrorContains(t, err, "failed to list metadata")
}
