package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog-backend/internal/domains/author"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// noopCache always misses and swallows writes.
type noopCache struct{}

func (noopCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, nil
}
func (noopCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}
func (noopCache) Delete(ctx context.Context, keys ...string) error { return nil }

func (noopCache) Increment(ctx context.Context, key string) (int64, error) { return 0, nil }
func (noopCache) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return nil
}
func (noopCache) Ping(ctx context.Context) error { return nil }

type fakeAuthorService struct {
	authors   map[int]author.Author
	withBooks map[int]bool
}

func (s *fakeAuthorService) GetAuthor(ctx context.Context, id int) (*author.Author, error) {
	a, ok := s.authors[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", author.ErrAuthorNotFound, id)
	}
	return &a, nil
}

func (s *fakeAuthorService) GetAllAuthors(ctx context.Context) ([]author.Author, error) {
	out := make([]author.Author, 0, len(s.authors))
	for _, a := range s.authors {
		out = append(out, a)
	}
	return out, nil
}

func (s *fakeAuthorService) CreateAuthor(ctx context.Context, a *author.Author) (*author.Author, error) {
	created := *a
	created.ID = len(s.authors) + 1
	s.authors[created.ID] = created
	return &created, nil
}

func (s *fakeAuthorService) UpdateAuthor(ctx context.Context, a *author.Author) (*author.Author, error) {
	s.authors[a.ID] = *a
	return a, nil
}

func (s *fakeAuthorService) DeleteAuthor(ctx context.Context, id int) error {
	if s.withBooks[id] {
		return fmt.Errorf("%w: author has 2 linked books", author.ErrAuthorHasBooks)
	}
	delete(s.authors, id)
	return nil
}

func newTestRouter(svc author.Service) *gin.Engine {
	h := NewAuthorHandler(svc, noopCache{})
	r := gin.New()
	r.POST("/authors", h.Create)
	r.GET("/authors", h.GetAll)
	r.GET("/authors/:id", h.GetByID)
	r.PUT("/authors/:id", h.Update)
	r.DELETE("/authors/:id", h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	body := decodeBody(t, w)
	errObj, ok := body["error"].(map[string]interface{})
	require.True(t, ok, "expected an error object in the response")
	code, _ := errObj["code"].(string)
	return code
}

func TestAuthorHandler_Create(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		r := newTestRouter(&fakeAuthorService{authors: map[int]author.Author{}})

		w := doJSON(t, r, http.MethodPost, "/authors", gin.H{
			"name":       "Jane Austen",
			"birth_date": "1775-12-16",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, true, body["success"])
		data := body["data"].(map[string]interface{})
		assert.Equal(t, float64(1), data["id"])
		assert.Equal(t, "Jane Austen", data["name"])
	})

	t.Run("validation failure carries field details", func(t *testing.T) {
		r := newTestRouter(&fakeAuthorService{authors: map[int]author.Author{}})

		w := doJSON(t, r, http.MethodPost, "/authors", gin.H{"name": "J"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		errObj := body["error"].(map[string]interface{})
		assert.Equal(t, "VALIDATION_FAILED", errObj["code"])
		assert.Contains(t, errObj["details"], "name")
	})

	t.Run("malformed json", func(t *testing.T) {
		r := newTestRouter(&fakeAuthorService{authors: map[int]author.Author{}})

		req := httptest.NewRequest(http.MethodPost, "/authors", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthorHandler_GetByID(t *testing.T) {
	r := newTestRouter(&fakeAuthorService{authors: map[int]author.Author{
		1: {ID: 1, Name: "Jane Austen"},
	}})

	t.Run("found", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/authors/1", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing id yields 404 with domain code", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/authors/42", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "AUTHOR_NOT_FOUND", errorCode(t, w))
	})

	t.Run("non numeric id", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/authors/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("zero id", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/authors/0", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthorHandler_Update(t *testing.T) {
	r := newTestRouter(&fakeAuthorService{authors: map[int]author.Author{
		1: {ID: 1, Name: "Jane Austen"},
	}})

	t.Run("valid request", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/authors/1", gin.H{"id": 1, "name": "J. Austen"})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("body id without path mismatch is fine", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/authors/1", gin.H{"name": "J. Austen"})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("path and body id disagree", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/authors/1", gin.H{"id": 2, "name": "J. Austen"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthorHandler_Delete(t *testing.T) {
	t.Run("success is 204 with empty body", func(t *testing.T) {
		r := newTestRouter(&fakeAuthorService{authors: map[int]author.Author{
			1: {ID: 1, Name: "Jane Austen"},
		}})

		w := doJSON(t, r, http.MethodDelete, "/authors/1", nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.Bytes())
	})

	t.Run("author with books yields 409", func(t *testing.T) {
		r := newTestRouter(&fakeAuthorService{
			authors:   map[int]author.Author{1: {ID: 1, Name: "Bram Stoker"}},
			withBooks: map[int]bool{1: true},
		})

		w := doJSON(t, r, http.MethodDelete, "/authors/1", nil)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "AUTHOR_HAS_BOOKS", errorCode(t, w))
	})
}

func TestAuthorHandler_GetAll(t *testing.T) {
	r := newTestRouter(&fakeAuthorService{authors: map[int]author.Author{
		1: {ID: 1, Name: "Jane Austen"},
		2: {ID: 2, Name: "Bram Stoker"},
	}})

	w := doJSON(t, r, http.MethodGet, "/authors", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data, ok := body["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, data, 2)
}
