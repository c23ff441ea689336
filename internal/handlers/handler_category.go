package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/ports/services"
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/dto"
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// categoryHandler handles HTTP requests for the category index.
type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

// registerCategoryRoutes registers routes related to categories.
func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvcFacade) {
	h := &categoryHandler{categoryService: categoryService}

	categories := rg.Group("/categories")
	{
		categories.GET("", h.getCategories)
		categories.GET("/all", h.getAllCategories)
		categories.GET("/children", h.getCategoriesByParent)
	}
}

// getCategories returns tier-2 and tier-3 values, optionally scoped to a
// tier-1 value via ?category1=.
func (h *categoryHandler) getCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tree, err := h.categoryService.GetCategoriesByType(c.Request.Context(), c.Query("category1"))
	if err != nil {
		logger.Error("Failed to get categories", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve categories"})
		return
	}

	c.JSON(http.StatusOK, tree)
}

// getAllCategories returns the distinct values of all three tiers.
func (h *categoryHandler) getAllCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tree, err := h.categoryService.GetAllCategories(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get all categories", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve categories"})
		return
	}

	c.JSON(http.StatusOK, tree)
}

// getCategoriesByParent returns tier-2/tier-3 values scoped by
// ?category1= and optionally ?category2=.
func (h *categoryHandler) getCategoriesByParent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.CategoryScopeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	tree, err := h.categoryService.GetCategoriesByParent(c.Request.Context(), params.Category1, params.Category2)
	if err != nil {
		logger.Error("Failed to get scoped categories", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve categories"})
		return
	}

	c.JSON(http.StatusOK, tree)
}
