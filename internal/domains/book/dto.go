package book

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateBookRequest struct {
	Title           string `json:"title"`
	PublicationYear *int   `json:"publication_year,omitempty"`
	AuthorID        int    `json:"author_id"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
		),
		validation.Field(&r.PublicationYear,
			validation.Min(0).Error("publication year must not be negative"),
		),
		validation.Field(&r.AuthorID,
			validation.Required.Error("author id is required"),
			validation.Min(1).Error("author id must be a positive integer"),
		),
	)
}

func (r CreateBookRequest) ToEntity() *Book {
	return &Book{
		Title:           r.Title,
		PublicationYear: r.PublicationYear,
		AuthorID:        r.AuthorID,
	}
}

// UpdateBookRequest carries the same fields as create plus an optional
// body id, which must agree with the path id when present.
type UpdateBookRequest struct {
	ID              *int   `json:"id,omitempty"`
	Title           string `json:"title"`
	PublicationYear *int   `json:"publication_year,omitempty"`
	AuthorID        int    `json:"author_id"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
		),
		validation.Field(&r.PublicationYear,
			validation.Min(0).Error("publication year must not be negative"),
		),
		validation.Field(&r.AuthorID,
			validation.Required.Error("author id is required"),
			validation.Min(1).Error("author id must be a positive integer"),
		),
	)
}

func (r UpdateBookRequest) ToEntity(id int) *Book {
	return &Book{
		ID:              id,
		Title:           r.Title,
		PublicationYear: r.PublicationYear,
		AuthorID:        r.AuthorID,
	}
}

type BookResponse struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	PublicationYear *int   `json:"publication_year,omitempty"`
	AuthorID        int    `json:"author_id"`
}

func (b *Book) ToResponse() *BookResponse {
	return &BookResponse{
		ID:              b.ID,
		Title:           b.Title,
		PublicationYear: b.PublicationYear,
		AuthorID:        b.AuthorID,
	}
}
