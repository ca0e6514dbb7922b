package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"bookcatalog-backend/internal/domains/author"
	"bookcatalog-backend/internal/shared/response"
	"bookcatalog-backend/pkg/cache"
	"bookcatalog-backend/pkg/logger"
)

const (
	authorListCacheKey = "authors:list"
	authorListCacheTTL = time.Minute
)

type AuthorHandler struct {
	service author.Service
	cache   cache.Cache
}

func NewAuthorHandler(svc author.Service, cache cache.Cache) *AuthorHandler {
	return &AuthorHandler{
		service: svc,
		cache:   cache,
	}
}

// Create handles POST /api/v1/authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	created, err := h.service.CreateAuthor(c.Request.Context(), req.ToEntity())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	h.invalidateListCache(c)
	response.Success(c, http.StatusCreated, created.ToResponse())
}

// GetByID handles GET /api/v1/authors/:id
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	a, err := h.service.GetAuthor(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, a.ToResponse())
}

// GetAll handles GET /api/v1/authors
// The full list is cached briefly; writes invalidate the key.
func (h *AuthorHandler) GetAll(c *gin.Context) {
	var cached []author.AuthorResponse
	if hit, err := h.cache.Get(c.Request.Context(), authorListCacheKey, &cached); err == nil && hit {
		response.Success(c, http.StatusOK, cached)
		return
	}

	authors, err := h.service.GetAllAuthors(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	resp := make([]author.AuthorResponse, len(authors))
	for i := range authors {
		resp[i] = *authors[i].ToResponse()
	}

	if err := h.cache.Set(c.Request.Context(), authorListCacheKey, resp, authorListCacheTTL); err != nil {
		logger.Error("failed to cache author list", err)
	}

	response.Success(c, http.StatusOK, resp)
}

// Update handles PUT /api/v1/authors/:id
func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req author.UpdateAuthorRequest
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

	updated, err := h.service.UpdateAuthor(c.Request.Context(), req.ToEntity(id))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	h.invalidateListCache(c)
	response.Success(c, http.StatusOK, updated.ToResponse())
}

// Delete handles DELETE /api/v1/authors/:id
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteAuthor(c.Request.Context(), id); err != nil {
		respondDomainError(c, err)
		return
	}

	h.invalidateListCache(c)
	c.Status(http.StatusNoContent)
}

func (h *AuthorHandler) invalidateListCache(c *gin.Context) {
	if err := h.cache.Delete(c.Request.Context(), authorListCacheKey); err != nil {
		logger.Error("failed to invalidate author list cache", err)
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
	response.ErrorResponse(c, author.ToHTTPStatus(err), author.ToErrorCode(err), err.Error())
}

func respondValidationError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "request validation failed", verrs)
		return
	}
	response.BadRequest(c, err.Error())
}
