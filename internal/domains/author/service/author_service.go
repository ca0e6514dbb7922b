package service

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"bookcatalog-backend/internal/domains/author"
	"bookcatalog-backend/internal/domains/book"
	"bookcatalog-backend/pkg/database"
)

type authorService struct {
	repo  author.Repository
	books book.Repository
	tx    database.Transactor
}

// NewAuthorService wires the service with its dependencies explicitly.
// The book repository is needed to guard deletion of referenced authors.
func NewAuthorService(repo author.Repository, books book.Repository, tx database.Transactor) author.Service {
	return &authorService{
		repo:  repo,
		books: books,
		tx:    tx,
	}
}

func (s *authorService) GetAuthor(ctx context.Context, id int) (*author.Author, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("%w: id %d", author.ErrAuthorNotFound, id)
	}
	return a, nil
}

func (s *authorService) GetAllAuthors(ctx context.Context) ([]author.Author, error) {
	return s.repo.FindAll(ctx)
}

func (s *authorService) CreateAuthor(ctx context.Context, a *author.Author) (*author.Author, error) {
	// Authors carry no foreign keys, nothing to cross-check.
	return s.repo.Save(ctx, a)
}

func (s *authorService) UpdateAuthor(ctx context.Context, a *author.Author) (*author.Author, error) {
	// The transport layer has already confirmed path and body ids agree.
	return s.repo.Update(ctx, a)
}

// DeleteAuthor refuses to delete an author that still has books; the
// check and the delete share one transaction so a concurrent book
// create cannot slip between them.
func (s *authorService) DeleteAuthor(ctx context.Context, id int) error {
	return s.tx.WithinTransaction(ctx, func(tx pgx.Tx) error {
		count, err := s.books.CountByAuthorWithTx(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("failed to check linked books: %w", err)
		}

		if count > 0 {
			return fmt.Errorf("%w: author has %d linked books", author.ErrAuthorHasBooks, count)
		}

		return s.repo.DeleteWithTx(ctx, tx, id)
	})
}
