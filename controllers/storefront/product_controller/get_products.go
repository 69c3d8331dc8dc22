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
// @Summary Browse products
// @Description Nine products per page. category accepts a name or ID at any level; the response says which node it resolved to and which category to expand. An unknown token lists everything.
// @Tags Store - Products
// @Produce json
// @Param category query string false "Category token (name or ID at any level, or all)"
// @Param search query string false "Name contains (case-insensitive)"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} models.ApiResponse{data=models.ProductListResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /products [get]
func GetProducts(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q services.ProductQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid query parameters"))
			return
		}
		q.Limit = services.ProductsPerPage

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
