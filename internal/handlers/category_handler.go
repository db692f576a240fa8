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

const defaultRequestTimeout = 10 * time.Second

type CategoryHandler struct {
	Catalog *catalog.Service
	Timeout time.Duration
}

func NewCategoryHandler(svc *catalog.Service, timeout time.Duration) *CategoryHandler {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &CategoryHandler{Catalog: svc, Timeout: timeout}
}

func (h *CategoryHandler) GetAllCategories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.Timeout)
	defer cancel()

	categories, err := h.Catalog.ListCategories(ctx)
	if err != nil {
		respondError(c, err, "category", "failed to fetch categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategoryById(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.Timeout)
	defer cancel()

	category, err := h.Catalog.GetCategory(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err, "category", "failed to fetch category")
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var input models.CreateCategoryInput
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

	category, err := h.Catalog.CreateCategory(ctx, input)
	if err != nil {
		respondError(c, err, "category", "failed to create category")
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var input models.UpdateCategoryInput
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

	category, err := h.Catalog.UpdateCategory(ctx, c.Param("id"), input)
	if err != nil {
		respondError(c, err, "category", "failed to update category")
		return
	}
	c.JSON(http.StatusOK, category)
}

// DeleteCategory also removes every subcategory of the category.
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.Timeout)
	defer cancel()

	removed, err := h.Catalog.DeleteCategory(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err, "category", "failed to delete category")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":              "category deleted successfully",
		"deletedSubcategories": removed,
	})
}
