// Package store persists users, planets, people and favorites and enforces
// their referential integrity at the storage boundary.
package store

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/juju/errors"
)

// Store is the entity store. Its embedded Queries run directly on the
// database handle; InTx hands out Queries bound to a transaction.
type Store struct {
	*Queries
	db *sqlx.DB
}

// Queries holds the entity operations for one execution context.
type Queries struct {
	ext sqlx.ExtContext
}

// New creates a store over an open database handle
func New(db *sqlx.DB) *Store {
	return &Store{
		Queries: &Queries{ext: db},
		db:      db,
	}
}

// InTx runs fn inside a single transaction. The transaction is committed
// when fn returns nil and rolled back otherwise.
func (s *Store) InTx(ctx context.Context, fn func(q *Queries) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Annotate(err, "starting transaction")
	}

	if err := fn(&Queries{ext: tx}); err != nil {
		_ = tx.Rollback()
		return errors.Trace(err)
	}

	if err := tx.Commit(); err != nil {
		return errors.Annotate(classify(err), "committing transaction")
	}
	return nil
}

func (q *Queries) get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return sqlx.GetContext(ctx, q.ext, dest, q.ext.Rebind(query), args...)
}

func (q *Queries) selectAll(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return sqlx.SelectContext(ctx, q.ext, dest, q.ext.Rebind(query), args...)
}

// insert runs an INSERT statement and returns the generated primary key.
func (q *Queries) insert(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var id int64
	err := q.ext.QueryRowxContext(ctx, q.ext.Rebind(query+" RETURNING id"), args...).Scan(&id)
	if err != nil {
		return 0, classify(err)
	}
	return id, nil
}

// count runs a COUNT(*) query.
func (q *Queries) count(ctx context.Context, query string, args ...interface{}) (int, error) {
	var n int
	if err := q.get(ctx, &n, query, args...); err != nil {
		return 0, err
	}
	return n, nil
}
