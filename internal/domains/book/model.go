package book

// Book is a persisted catalog entity referencing exactly one author.
// ID is zero until the store assigns one on create.
type Book struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	PublicationYear *int   `json:"publication_year,omitempty"`
	AuthorID        int    `json:"author_id"`
}

// Persisted reports whether the book has a store-assigned id.
func (b *Book) Persisted() bool {
	return b.ID > 0
}
