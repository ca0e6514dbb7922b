package author

import "time"

// Author is a persisted catalog entity. ID is zero until the store
// assigns one on create and is never reassigned afterwards.
type Author struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
}

// Persisted reports whether the author has a store-assigned id.
func (a *Author) Persisted() bool {
	return a.ID > 0
}
