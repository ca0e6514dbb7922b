package book

import "context"

// Service exposes book CRUD and enforces the one cross-entity rule of
// the catalog: a book's author id must reference an existing author at
// the moment of create or update.
type Service interface {
	GetBook(ctx context.Context, id int) (*Book, error)
	GetAllBooks(ctx context.Context) ([]Book, error)
	GetBooksByAuthor(ctx context.Context, authorID int) ([]Book, error)
	CreateBook(ctx context.Context, b *Book) (*Book, error)
	UpdateBook(ctx context.Context, b *Book) (*Book, error)
	DeleteBook(ctx context.Context, id int) error
}
