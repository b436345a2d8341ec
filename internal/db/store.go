package db

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sygpress/sygpress-api/internal/helpers"
)

//go:generate mockgen -source=store.go -destination=../mocks/mock_store.go -package=mocks

//go:embed schema.sql
var schema string

// Store is a Querier that can also run a function inside a transaction.
// The Querier handed to fn is bound to that transaction.
type Store interface {
	Querier
	ExecTx(ctx context.Context, opts pgx.TxOptions, fn func(Querier) error) error
}

// SQLStore is the Postgres-backed Store.
type SQLStore struct {
	*Queries
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *SQLStore {
	return &SQLStore{
		Queries: New(pool),
		pool:    pool,
	}
}

func (s *SQLStore) ExecTx(ctx context.Context, opts pgx.TxOptions, fn func(Querier) error) error {
	return helpers.WithTransactionOptions(ctx, s.pool, opts, func(tx pgx.Tx) error {
		return fn(s.WithTx(tx))
	})
}

// Migrate applies the embedded schema. Every statement is idempotent.
func Migrate(ctx context.Context, conn DBTX) error {
	if _, err := conn.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

var _ Store = (*SQLStore)(nil)
