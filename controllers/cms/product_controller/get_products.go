package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/durable-fastener/durable-cms-backend/config"
	"github.com/durable-fastener/durable-cms-backend/controllers/respond"
	"github.com/durable-fastener/durable-cms-backend/models"
	"github.com/durable-fastener/durable-cms-backend/services"
)

// GetProducts godoc
// @Summary List products
// @Description Paginated products, newest first. category takes a category, sub-category or child category name or ID.
// @Tags CMS - Products
// @Produce json
// @Security BearerAuth
// @Param category query string false "Category token"
// @Param search query string false "Name contains (case-insensitive)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(9)
// @Success 200 {object} models.ApiResponse{data=models.ProductListResponse}
// @Router /admin/products [get]
func GetProducts(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q services.ProductQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid query parameters"))
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		page, err := products.List(ctx, q)
		if err != nil {
			respond.Error(c, err, "Products")
			return
		}
		c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products retrieved successfully",
			models.NewProductListResponse(page.Products, page.Resolution, page.Token), &page.Pagination))
	}
}
