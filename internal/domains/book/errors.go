package book

import (
	"errors"
	"fmt"
)

var (
	ErrBookNotFound = errors.New("book not found")
)

// InvalidAuthorError is returned when a book operation references an
// author that does not exist. It carries the offending id for diagnostics.
type InvalidAuthorError struct {
	AuthorID int
}

func (e *InvalidAuthorError) Error() string {
	return fmt.Sprintf("author with id %d does not exist", e.AuthorID)
}

// ToErrorCode converts an error to an API error code.
func ToErrorCode(err error) string {
	var invalidAuthor *InvalidAuthorError
	switch {
	case errors.Is(err, ErrBookNotFound):
		return "BOOK_NOT_FOUND"
	case errors.As(err, &invalidAuthor):
		return "INVALID_AUTHOR"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts an error to an HTTP status code.
func ToHTTPStatus(err error) int {
	var invalidAuthor *InvalidAuthorError
	switch {
	case errors.Is(err, ErrBookNotFound):
		return 404
	case errors.As(err, &invalidAuthor):
		return 400
	default:
		return 500
	}
}
