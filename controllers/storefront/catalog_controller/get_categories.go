package catalog_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/durable-fastener/durable-cms-backend/config"
	"github.com/durable-fastener/durable-cms-backend/controllers/respond"
	"github.com/durable-fastener/durable-cms-backend/models"
	"github.com/durable-fastener/durable-cms-backend/services"
)

// GetCategories godoc
// @Summary Get category tree
// @Description The three-level category hierarchy used by the product sidebar
// @Tags Store - Catalog
// @Produce json
// @Success 200 {object} models.ApiResponse{data=catalog.Tree}
// @Router /categories [get]
func GetCategories(categories *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		tree, err := categories.Tree(ctx)
		if err != nil {
			respond.Error(c, err, "Categories")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories retrieved successfully", tree))
	}
}
