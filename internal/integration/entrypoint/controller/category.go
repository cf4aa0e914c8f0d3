// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budgetwise/backend/internal/integration/entrypoint/dto"
)

// CategoryController serves the fixed category catalog.
type CategoryController struct {
	catalog dto.CategoryCatalogResponse
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController() *CategoryController {
	return &CategoryController{
		catalog: dto.NewCategoryCatalogResponse(),
	}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.catalog)
}
