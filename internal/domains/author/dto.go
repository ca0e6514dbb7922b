package author

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const dateLayout = "2006-01-02"

type CreateAuthorRequest struct {
	Name      string  `json:"name"`
	BirthDate *string `json:"birth_date,omitempty"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(2, 100).Error("name must be between 2 and 100 characters"),
		),
		validation.Field(&r.BirthDate,
			validation.Date(dateLayout).Error("birth date must use YYYY-MM-DD format"),
			validation.By(dateInPast),
		),
	)
}

// ToEntity builds the domain entity from a validated request.
func (r CreateAuthorRequest) ToEntity() *Author {
	return &Author{
		Name:      r.Name,
		BirthDate: parseDate(r.BirthDate),
	}
}

// UpdateAuthorRequest carries the same fields as create plus an optional
// body id, which must agree with the path id when present.
type UpdateAuthorRequest struct {
	ID        *int    `json:"id,omitempty"`
	Name      string  `json:"name"`
	BirthDate *string `json:"birth_date,omitempty"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(2, 100).Error("name must be between 2 and 100 characters"),
		),
		validation.Field(&r.BirthDate,
			validation.Date(dateLayout).Error("birth date must use YYYY-MM-DD format"),
			validation.By(dateInPast),
		),
	)
}

func (r UpdateAuthorRequest) ToEntity(id int) *Author {
	return &Author{
		ID:        id,
		Name:      r.Name,
		BirthDate: parseDate(r.BirthDate),
	}
}

type AuthorResponse struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	BirthDate *string `json:"birth_date,omitempty"`
}

func (a *Author) ToResponse() *AuthorResponse {
	resp := &AuthorResponse{
		ID:   a.ID,
		Name: a.Name,
	}
	if a.BirthDate != nil {
		formatted := a.BirthDate.Format(dateLayout)
		resp.BirthDate = &formatted
	}
	return resp
}

// dateInPast requires the value, when set, to be strictly before today.
// The rule receives the field as it is declared, a *string.
func dateInPast(value interface{}) error {
	s, ok := value.(*string)
	if !ok || s == nil || *s == "" {
		return nil
	}

	d, err := time.Parse(dateLayout, *s)
	if err != nil {
		// Format errors are reported by the Date rule.
		return nil
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !d.Before(today) {
		return fmt.Errorf("birth date must be in the past")
	}

	return nil
}

func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	d, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil
	}
	return &d
}
