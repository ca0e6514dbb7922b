package author

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateAuthorRequest_Validate(t *testing.T) {
	t.Run("valid with birth date", func(t *testing.T) {
		req := CreateAuthorRequest{Name: "Jane Austen", BirthDate: strPtr("1775-12-16")}
		assert.NoError(t, req.Validate())
	})

	t.Run("valid without birth date", func(t *testing.T) {
		req := CreateAuthorRequest{Name: "Jane Austen"}
		assert.NoError(t, req.Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		req := CreateAuthorRequest{}
		assert.Error(t, req.Validate())
	})

	t.Run("name too short", func(t *testing.T) {
		req := CreateAuthorRequest{Name: "J"}
		assert.Error(t, req.Validate())
	})

	t.Run("name too long", func(t *testing.T) {
		long := make([]byte, 101)
		for i := range long {
			long[i] = 'a'
		}
		req := CreateAuthorRequest{Name: string(long)}
		assert.Error(t, req.Validate())
	})

	t.Run("name at boundaries", func(t *testing.T) {
		assert.NoError(t, CreateAuthorRequest{Name: "Bo"}.Validate())

		exact := make([]byte, 100)
		for i := range exact {
			exact[i] = 'a'
		}
		assert.NoError(t, CreateAuthorRequest{Name: string(exact)}.Validate())
	})

	t.Run("malformed birth date", func(t *testing.T) {
		req := CreateAuthorRequest{Name: "Jane Austen", BirthDate: strPtr("16-12-1775")}
		assert.Error(t, req.Validate())
	})

	t.Run("birth date today is rejected", func(t *testing.T) {
		today := time.Now().UTC().Format("2006-01-02")
		req := CreateAuthorRequest{Name: "Jane Austen", BirthDate: strPtr(today)}
		assert.Error(t, req.Validate())
	})

	t.Run("birth date in the future is rejected", func(t *testing.T) {
		future := time.Now().UTC().AddDate(1, 0, 0).Format("2006-01-02")
		req := CreateAuthorRequest{Name: "Jane Austen", BirthDate: strPtr(future)}
		assert.Error(t, req.Validate())
	})

	t.Run("birth date yesterday is accepted", func(t *testing.T) {
		yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
		req := CreateAuthorRequest{Name: "Jane Austen", BirthDate: strPtr(yesterday)}
		assert.NoError(t, req.Validate())
	})
}

func TestUpdateAuthorRequest_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := 3
		req := UpdateAuthorRequest{ID: &id, Name: "Jane Austen"}
		assert.NoError(t, req.Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		req := UpdateAuthorRequest{}
		assert.Error(t, req.Validate())
	})
}

func TestCreateAuthorRequest_ToEntity(t *testing.T) {
	req := CreateAuthorRequest{Name: "Jane Austen", BirthDate: strPtr("1775-12-16")}

	a := req.ToEntity()

	assert.Equal(t, 0, a.ID)
	assert.Equal(t, "Jane Austen", a.Name)
	require.NotNil(t, a.BirthDate)
	assert.Equal(t, "1775-12-16", a.BirthDate.Format("2006-01-02"))
	assert.False(t, a.Persisted())
}

func TestAuthor_ToResponse(t *testing.T) {
	birth := time.Date(1775, 12, 16, 0, 0, 0, 0, time.UTC)
	a := &Author{ID: 7, Name: "Jane Austen", BirthDate: &birth}

	resp := a.ToResponse()

	assert.Equal(t, 7, resp.ID)
	assert.Equal(t, "Jane Austen", resp.Name)
	require.NotNil(t, resp.BirthDate)
	assert.Equal(t, "1775-12-16", *resp.BirthDate)

	t.Run("nil birth date stays nil", func(t *testing.T) {
		resp := (&Author{ID: 8, Name: "Anonymous"}).ToResponse()
		assert.Nil(t, resp.BirthDate)
	})
}
