package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/developia-II/catalog-api/internal/models"
	"github.com/developia-II/catalog-api/internal/services/catalog"
	"github.com/developia-II/catalog-api/utils"
	"github.com/gin-gonic/gin"
)

type SubcategoryHandler struct {
	Catalog *catalog.Service
	Timeout time.Duration
}

func NewSubcategoryHandler(svc *catalog.Service, timeout time.Duration) *SubcategoryHandler {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &SubcategoryHandler{Catalog: svc, Timeout: timeout}
}

// GetAllSubcategories accepts an optional ?categoryId= equality filter.
func (h *SubcategoryHandler) GetAllSubcategories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.Timeout)
	defer cancel()

	subcategories, err := h.Catalog.ListSubcategories(ctx, c.Query("categoryId"))
	if err != nil {
		respondError(c, err, "subcategory", "failed to fetch subcategories")
		return
	}
	c.JSON(http.StatusOK, subcategories)
}

func (h *SubcategoryHandler) GetSubcategoryById(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.Timeout)
	defer cancel()

	subcategory, err := h.Catalog.GetSubcategory(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err, "subcategory", "failed to fetch subcategory")
		return
	}
	c.JSON(http.StatusOK, subcategory)
}

func (h *SubcategoryHandler) CreateSubcategory(c *gin.Context) {
	var input models.CreateSubcategoryInput
	if err := bindJSON(c, &input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid json payload"))
		return
	}
	if err := validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse(validationMessage(err)))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.Timeout)
	defer cancel()

	subcategory, err := h.Catalog.CreateSubcategory(ctx, input)
	if err != nil {
		respondError(c, err, "subcategory", "failed to create subcategory")
		return
	}
	c.JSON(http.StatusCreated, subcategory)
}

func (h *SubcategoryHandler) UpdateSubcategory(c *gin.Context) {
	var input models.UpdateSubcategoryInput
	if err := bindJSON(c, &input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid json payload"))
		return
	}
	if err := validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse(validationMessage(err)))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.Timeout)
	defer cancel()

	subcategory, err := h.Catalog.UpdateSubcategory(ctx, c.Param("id"), input)
	if err != nil {
		respondError(c, err, "subcategory", "failed to update subcategory")
		return
	}
	c.JSON(http.StatusOK, subcategory)
}

func (h *SubcategoryHandler) DeleteSubcategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.Timeout)
	defer cancel()

	if err := h.Catalog.DeleteSubcategory(ctx, c.Param("id")); err != nil {
		respondError(c, err, "subcategory", "failed to delete subcategory")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "subcategory deleted successfully"})
}
