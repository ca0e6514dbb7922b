package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookcatalog-backend/internal/domains/book"
	"bookcatalog-backend/pkg/logger"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates the book repository backed by pgx.
func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) FindByID(ctx context.Context, id int) (*book.Book, error) {
	const query = `
		SELECT id, title, publication_year, author_id
		FROM books
		WHERE id = $1
	`

	var b book.Book
	err := r.pool.QueryRow(ctx, query, id).Scan(&b.ID, &b.Title, &b.PublicationYear, &b.AuthorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	return &b, nil
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]book.Book, error) {
	const query = `
		SELECT id, title, publication_year, author_id
		FROM books
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	return scanBooks(rows)
}

func (r *postgresRepository) FindByAuthorID(ctx context.Context, authorID int) ([]book.Book, error) {
	const query = `
		SELECT id, title, publication_year, author_id
		FROM books
		WHERE author_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query books by author: %w", err)
	}
	defer rows.Close()

	return scanBooks(rows)
}

func (r *postgresRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM books WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	return nil
}

// SaveWithTx ignores any caller-provided id, the store assigns it.
func (r *postgresRepository) SaveWithTx(ctx context.Context, tx pgx.Tx, b *book.Book) (*book.Book, error) {
	const query = `
		INSERT INTO books (title, publication_year, author_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	created := *b
	err := tx.QueryRow(ctx, query, b.Title, b.PublicationYear, b.AuthorID).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return &created, nil
}

// UpdateWithTx is a no-op when the id does not exist. Existence checks
// belong to the service layer.
func (r *postgresRepository) UpdateWithTx(ctx context.Context, tx pgx.Tx, b *book.Book) (*book.Book, error) {
	const query = `
		UPDATE books
		SET title = $1, publication_year = $2, author_id = $3
		WHERE id = $4
	`

	cmdTag, err := tx.Exec(ctx, query, b.Title, b.PublicationYear, b.AuthorID, b.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		logger.Debug(fmt.Sprintf("book update matched no rows (id=%d)", b.ID))
	}

	return b, nil
}

func (r *postgresRepository) CountByAuthorWithTx(ctx context.Context, tx pgx.Tx, authorID int) (int64, error) {
	const query = `SELECT COUNT(*) FROM books WHERE author_id = $1`

	var count int64
	if err := tx.QueryRow(ctx, query, authorID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count books by author: %w", err)
	}

	return count, nil
}

func scanBooks(rows pgx.Rows) ([]book.Book, error) {
	books := make([]book.Book, 0)
	for rows.Next() {
		var b book.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.PublicationYear, &b.AuthorID); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}
