package db

import (
	"context"

	"github.com/go-pg/pg/v10"
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
	}

	return nil
}

// appendColumn adds col to columns unless it is already present. Update
// statements build their SET list from this slice and a duplicate column is
// a syntax error in go-pg's generated query.
func appendColumn(columns []string, col string) []string {
	for _, c := range columns {
		if c == col {
			return columns
		}
	}
	return append(columns, col)
}
