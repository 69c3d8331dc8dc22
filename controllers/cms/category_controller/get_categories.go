package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/durable-fastener/durable-cms-backend/config"
	"github.com/durable-fastener/durable-cms-backend/controllers/respond"
	"github.com/durable-fastener/durable-cms-backend/models"
	"github.com/durable-fastener/durable-cms-backend/services"
)

// GetCategoryTree godoc
// @Summary Get category tree
// @Description Categories with their sub-categories and child categories, each level sorted by name. Pass refresh=true to bypass the cache.
// @Tags CMS - Categories
// @Produce json
// @Param refresh query bool false "Rebuild the cached tree"
// @Success 200 {object} models.ApiResponse{data=catalog.Tree}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/categories [get]
func GetCategoryTree(categories *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		load := categories.Tree
		if c.Query("refresh") == "true" {
			load = categories.Refresh
		}
		tree, err := load(ctx)
		if err != nil {
			respond.Error(c, err, "Categories")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories retrieved successfully", tree))
	}
}

// GetCategoryStats godoc
// @Summary Category counts
// @Description Number of categories, sub-categories and child categories
// @Tags CMS - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CategoryStatsResponse}
// @Router /admin/categories/stats [get]
func GetCategoryStats(categories *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		stats, err := categories.Stats(ctx)
		if err != nil {
			respond.Error(c, err, "Categories")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Category stats retrieved successfully", stats))
	}
}

// GetSubCategoriesByCategory godoc
// @Summary Sub-categories of a category
// @Description Feeds the product form's sub-category dropdown. The category is matched by exact name.
// @Tags CMS - Categories
// @Produce json
// @Security BearerAuth
// @Param category query string true "Category name"
// @Success 200 {object} models.ApiResponse{data=[]catalog.SubCategoryNode}
// @Failure 400 {object} models.ApiResponse
// @Router /admin/categories/sub-categories [get]
func GetSubCategoriesByCategory(categories *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Query("category")
		if name == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "category is required"))
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		subs, err := categories.SubCategoriesOf(ctx, name)
		if err != nil {
			respond.Error(c, err, "Categories")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Sub-categories retrieved successfully", subs))
	}
}
