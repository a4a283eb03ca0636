package metadata

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gophauth/internal/dbx"
)

// Store is the Repository used by the application. Multi-key writes run in
// one transaction so a crash never leaves half a session on disk.
type Store struct {
	*SQLiteRepository
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{SQLiteRepository: NewSQLiteRepository(db), db: db}
}

func (s *Store) SetMany(ctx context.Context, values map[string][]byte) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return NewSQLiteRepository(tx).SetMany(ctx, values)
	})
}

func (s *Store) DeleteMany(ctx context.Context, keys ...string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return NewSQLiteRepository(tx).DeleteMany(ctx, keys...)
	})
}
