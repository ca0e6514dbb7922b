package service

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"bookcatalog-backend/internal/domains/author"
	"bookcatalog-backend/internal/domains/book"
	"bookcatalog-backend/pkg/database"
)

type bookService struct {
	repo    book.Repository
	authors author.Repository
	tx      database.Transactor
}

// NewBookService wires the service with its dependencies explicitly.
// The author repository is needed for the referential check on writes.
func NewBookService(repo book.Repository, authors author.Repository, tx database.Transactor) book.Service {
	return &bookService{
		repo:    repo,
		authors: authors,
		tx:      tx,
	}
}

func (s *bookService) GetBook(ctx context.Context, id int) (*book.Book, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("%w: id %d", book.ErrBookNotFound, id)
	}
	return b, nil
}

func (s *bookService) GetAllBooks(ctx context.Context) ([]book.Book, error) {
	return s.repo.FindAll(ctx)
}

func (s *bookService) GetBooksByAuthor(ctx context.Context, authorID int) ([]book.Book, error) {
	return s.repo.FindByAuthorID(ctx, authorID)
}

// CreateBook verifies the referenced author exists and inserts the book.
// Both steps share one transaction so a concurrent author deletion
// cannot interleave between check and write. A failed check leaves the
// books table untouched.
func (s *bookService) CreateBook(ctx context.Context, b *book.Book) (*book.Book, error) {
	var created *book.Book

	err := s.tx.WithinTransaction(ctx, func(tx pgx.Tx) error {
		exists, err := s.authors.ExistsWithTx(ctx, tx, b.AuthorID)
		if err != nil {
			return fmt.Errorf("failed to check author existence: %w", err)
		}
		if !exists {
			return &book.InvalidAuthorError{AuthorID: b.AuthorID}
		}

		created, err = s.repo.SaveWithTx(ctx, tx, b)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateBook runs the same validate-then-write sequence as CreateBook.
// Path and body id agreement was already checked by the transport layer.
func (s *bookService) UpdateBook(ctx context.Context, b *book.Book) (*book.Book, error) {
	var updated *book.Book

	err := s.tx.WithinTransaction(ctx, func(tx pgx.Tx) error {
		exists, err := s.authors.ExistsWithTx(ctx, tx, b.AuthorID)
		if err != nil {
			return fmt.Errorf("failed to check author existence: %w", err)
		}
		if !exists {
			return &book.InvalidAuthorError{AuthorID: b.AuthorID}
		}

		updated, err = s.repo.UpdateWithTx(ctx, tx, b)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *bookService) DeleteBook(ctx context.Context, id int) error {
	// Deleting a book never requires checking authors.
	return s.repo.Delete(ctx, id)
}
