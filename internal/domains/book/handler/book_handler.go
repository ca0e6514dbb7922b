package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"bookcatalog-backend/internal/domains/book"
	"bookcatalog-backend/internal/shared/response"
	"bookcatalog-backend/pkg/cache"
	"bookcatalog-backend/pkg/logger"
)

const (
	bookListCacheKey = "books:list"
	bookListCacheTTL = time.Minute
)

type BookHandler struct {
	service book.Service
	cache   cache.Cache
}

func NewBookHandler(svc book.Service, cache cache.Cache) *BookHandler {
	return &BookHandler{
		service: svc,
		cache:   cache,
	}
}

// Create handles POST /api/v1/books
func (h *BookHandler) Create(c *gin.Context) {
	var req book.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	created, err := h.service.CreateBook(c.Request.Context(), req.ToEntity())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	h.invalidateListCache(c)
	response.Success(c, http.StatusCreated, created.ToResponse())
}

// GetByID handles GET /api/v1/books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	b, err := h.service.GetBook(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b.ToResponse())
}

// GetAll handles GET /api/v1/books
// The full list is cached briefly; writes invalidate the key.
func (h *BookHandler) GetAll(c *gin.Context) {
	var cached []book.BookResponse
	if hit, err := h.cache.Get(c.Request.Context(), bookListCacheKey, &cached); err == nil && hit {
		response.Success(c, http.StatusOK, cached)
		return
	}

	books, err := h.service.GetAllBooks(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	resp := make([]book.BookResponse, len(books))
	for i := range books {
		resp[i] = *books[i].ToResponse()
	}

	if err := h.cache.Set(c.Request.Context(), bookListCacheKey, resp, bookListCacheTTL); err != nil {
		logger.Error("failed to cache book list", err)
	}

	response.Success(c, http.StatusOK, resp)
}

// GetByAuthor handles GET /api/v1/books/author/:authorId
// An unknown author yields an empty list, not an error.
func (h *BookHandler) GetByAuthor(c *gin.Context) {
	authorID, ok := pathID(c, "authorId")
	if !ok {
		return
	}

	books, err := h.service.GetBooksByAuthor(c.Request.Context(), authorID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	resp := make([]book.BookResponse, len(books))
	for i := range books {
		resp[i] = *books[i].ToResponse()
	}

	response.Success(c, http.StatusOK, resp)
}

// Update handles PUT /api/v1/books/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req book.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if req.ID != nil && *req.ID != id {
		response.BadRequest(c, "path id and body id do not match")
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	updated, err := h.service.UpdateBook(c.Request.Context(), req.ToEntity(id))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	h.invalidateListCache(c)
	response.Success(c, http.StatusOK, updated.ToResponse())
}

// Delete handles DELETE /api/v1/books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteBook(c.Request.Context(), id); err != nil {
		respondDomainError(c, err)
		return
	}

	h.invalidateListCache(c)
	c.Status(http.StatusNoContent)
}

func (h *BookHandler) invalidateListCache(c *gin.Context) {
	if err := h.cache.Delete(c.Request.Context(), bookListCacheKey); err != nil {
		logger.Error("failed to invalidate book list cache", err)
	}
}

func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		response.BadRequest(c, "invalid id, must be a positive integer")
		return 0, false
	}
	return id, true
}

func respondDomainError(c *gin.Context, err error) {
	response.ErrorResponse(c, book.ToHTTPStatus(err), book.ToErrorCode(err), err.Error())
}

func respondValidationError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "request validation failed", verrs)
		return
	}
	response.BadRequest(c, err.Error())
}
