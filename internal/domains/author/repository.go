package author

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Repository is the only component that maps authors to and from
// relational rows. Absence is modeled as a nil entity, not an error;
// the service layer decides whether absence is a failure.
type Repository interface {
	// FindByID returns (nil, nil) when no row matches.
	FindByID(ctx context.Context, id int) (*Author, error)

	// FindAll returns every author. Order is stable within one snapshot.
	FindAll(ctx context.Context) ([]Author, error)

	// Save inserts a new row, ignoring any caller-provided id, and
	// returns a copy carrying the store-assigned id.
	Save(ctx context.Context, a *Author) (*Author, error)

	// Update overwrites name and birth date for the row with a.ID.
	// A nonexistent id is a no-op; the input is returned either way.
	Update(ctx context.Context, a *Author) (*Author, error)

	// Delete removes the row. Deleting a nonexistent id is a no-op.
	Delete(ctx context.Context, id int) error

	// ExistsWithTx checks existence inside the caller's transaction.
	ExistsWithTx(ctx context.Context, tx pgx.Tx, id int) (bool, error)

	// DeleteWithTx deletes inside the caller's transaction.
	DeleteWithTx(ctx context.Context, tx pgx.Tx, id int) error
}
