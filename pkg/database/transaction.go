package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TxFunc is executed inside a transaction.
type TxFunc func(pgx.Tx) error

// Transactor runs a function inside one transactional scope.
// Services depend on this interface, tests substitute a fake that
// invokes the function without a live database.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn TxFunc) error
}

// TxManager implements Transactor on top of a pgx connection pool.
type TxManager struct {
	pool *pgxpool.Pool
}

func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool}
}

// WithinTransaction begins a transaction, runs fn, and commits.
// Rolls back on error or panic; a panic is re-raised after rollback.
func (m *TxManager) WithinTransaction(ctx context.Context, fn TxFunc) error {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
