package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/durable-fastener/durable-cms-backend/config"
	"github.com/durable-fastener/durable-cms-backend/controllers/respond"
	"github.com/durable-fastener/durable-cms-backend/models"
	"github.com/durable-fastener/durable-cms-backend/services"
)

// UpdateProduct godoc
// @Summary Update a product
// @Description Replaces every field of the product and rebuilds its whole variant set in one transaction
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID (UUID)"
// @Param product body models.ProductRequest true "Product editor state"
// @Success 200 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Slug already in use"
// @Router /admin/products/{id} [put]
func UpdateProduct(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := respond.UUIDParam(c, "id", "product")
		if !ok {
			return
		}
		var req models.ProductRequest
		if !respond.BindJSON(c, &req) {
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		product, err := products.Update(ctx, id, req)
		if err != nil {
			respond.Error(c, err, "Product")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated successfully", product))
	}
}
