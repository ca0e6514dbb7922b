package author

import "errors"

var (
	// Business rule errors
	ErrAuthorNotFound = errors.New("author not found")
	ErrAuthorHasBooks = errors.New("cannot delete author with linked books")
)

// ToErrorCode converts an error to an API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrAuthorHasBooks):
		return "AUTHOR_HAS_BOOKS"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts an error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return 404
	case errors.Is(err, ErrAuthorHasBooks):
		return 409
	default:
		return 500
	}
}
