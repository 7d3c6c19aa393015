package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lokavera/catalog-admin/internal/dto"
	"github.com/lokavera/catalog-admin/internal/model"
	"github.com/lokavera/catalog-admin/internal/service"
	"github.com/lokavera/catalog-admin/pkg/response"
	"github.com/lokavera/catalog-admin/pkg/validator"
)

// CatalogHandler exposes the generic catalog workflow over HTTP; one
// instance is mounted per entity type.
type CatalogHandler[T model.CatalogEntity] struct {
	service *service.CatalogService[T]
}

func NewCatalogHandler[T model.CatalogEntity](svc *service.CatalogService[T]) *CatalogHandler[T] {
	return &CatalogHandler[T]{service: svc}
}

func (h *CatalogHandler[T]) Create(c *gin.Context) {
	var req dto.CreateCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	entity, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": entity})
}

func (h *CatalogHandler[T]) List(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	result, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *CatalogHandler[T]) Show(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	entity, err := h.service.Show(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": entity})
}

// ShowDeleted reads one row including soft-deleted ones, for inspecting
// what a restore or force delete would act on.
func (h *CatalogHandler[T]) ShowDeleted(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	entity, err := h.service.ShowDeleted(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": entity})
}

func (h *CatalogHandler[T]) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	entity, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": entity})
}

func (h *CatalogHandler[T]) ToggleStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	entity, err := h.service.ToggleStatus(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": entity})
}

func (h *CatalogHandler[T]) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var q dto.DeleteCatalogQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	entity, err := h.service.Delete(c.Request.Context(), id, q.Force)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": entity})
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid uuid format")
		return uuid.Nil, false
	}
	return id, true
}
