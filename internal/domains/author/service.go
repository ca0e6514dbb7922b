package author

import "context"

// Service exposes author CRUD. Unlike the repository it treats a
// missing author as a failure (ErrAuthorNotFound).
type Service interface {
	GetAuthor(ctx context.Context, id int) (*Author, error)
	GetAllAuthors(ctx context.Context) ([]Author, error)
	CreateAuthor(ctx context.Context, a *Author) (*Author, error)
	UpdateAuthor(ctx context.Context, a *Author) (*Author, error)
	DeleteAuthor(ctx context.Context, id int) error
}
