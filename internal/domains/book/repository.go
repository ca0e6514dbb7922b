package book

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Repository maps books to and from relational rows. Writes that must
// share a transaction with the author-existence check take an explicit
// pgx.Tx; plain reads and deletes run against the pool.
type Repository interface {
	// FindByID returns (nil, nil) when no row matches.
	FindByID(ctx context.Context, id int) (*Book, error)

	// FindAll returns every book. Order is stable within one snapshot.
	FindAll(ctx context.Context) ([]Book, error)

	// FindByAuthorID returns all books referencing the author, an empty
	// slice when none match or the author does not exist.
	FindByAuthorID(ctx context.Context, authorID int) ([]Book, error)

	// Delete removes the row. Deleting a nonexistent id is a no-op.
	Delete(ctx context.Context, id int) error

	// SaveWithTx inserts a new row inside the caller's transaction,
	// ignoring any caller-provided id, and returns a copy carrying the
	// store-assigned id.
	SaveWithTx(ctx context.Context, tx pgx.Tx, b *Book) (*Book, error)

	// UpdateWithTx overwrites the row with b.ID inside the caller's
	// transaction. A nonexistent id is a no-op; the input is returned.
	UpdateWithTx(ctx context.Context, tx pgx.Tx, b *Book) (*Book, error)

	// CountByAuthorWithTx counts books referencing the author inside
	// the caller's transaction.
	CountByAuthorWithTx(ctx context.Context, tx pgx.Tx, authorID int) (int64, error)
}
