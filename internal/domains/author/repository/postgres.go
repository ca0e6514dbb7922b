package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookcatalog-backend/internal/domains/author"
	"bookcatalog-backend/pkg/logger"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates the author repository backed by pgx.
func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) FindByID(ctx context.Context, id int) (*author.Author, error) {
	const query = `
		SELECT id, name, birth_date
		FROM authors
		WHERE id = $1
	`

	var a author.Author
	err := r.pool.QueryRow(ctx, query, id).Scan(&a.ID, &a.Name, &a.BirthDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]author.Author, error) {
	const query = `
		SELECT id, name, birth_date
		FROM authors
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	authors := make([]author.Author, 0)
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.BirthDate); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}

// Save ignores any caller-provided id, the store assigns it.
func (r *postgresRepository) Save(ctx context.Context, a *author.Author) (*author.Author, error) {
	const query = `
		INSERT INTO authors (name, birth_date)
		VALUES ($1, $2)
		RETURNING id
	`

	created := *a
	err := r.pool.QueryRow(ctx, query, a.Name, a.BirthDate).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return &created, nil
}

// Update is a no-op when the id does not exist. Existence checks belong
// to the service layer.
func (r *postgresRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	const query = `
		UPDATE authors
		SET name = $1, birth_date = $2
		WHERE id = $3
	`

	cmdTag, err := r.pool.Exec(ctx, query, a.Name, a.BirthDate, a.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		logger.Debug(fmt.Sprintf("author update matched no rows (id=%d)", a.ID))
	}

	return a, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM authors WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return author.ErrAuthorHasBooks
		}
		return fmt.Errorf("failed to delete author: %w", err)
	}

	return nil
}

func (r *postgresRepository) ExistsWithTx(ctx context.Context, tx pgx.Tx, id int) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`

	var exists bool
	if err := tx.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) DeleteWithTx(ctx context.Context, tx pgx.Tx, id int) error {
	const query = `DELETE FROM authors WHERE id = $1`

	_, err := tx.Exec(ctx, query, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return author.ErrAuthorHasBooks
		}
		return fmt.Errorf("failed to delete author: %w", err)
	}

	return nil
}
