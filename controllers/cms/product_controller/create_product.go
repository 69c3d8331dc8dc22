package product_controller

import (
	"github.com/gin-gonic/gin"

	"github.com/durable-fastener/durable-cms-backend/config"
	"github.com/durable-fastener/durable-cms-backend/controllers/respond"
	"github.com/durable-fastener/durable-cms-backend/models"
	"github.com/durable-fastener/durable-cms-backend/services"
)

// CreateProduct godoc
// @Summary Create a product
// @Description Stores the product and one variant per size row and finish. The slug is derived from the name when left blank.
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body models.ProductRequest true "Product editor state"
// @Success 201 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Slug already in use"
// @Router /admin/products [post]
func CreateProduct(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ProductRequest
		if !respond.BindJSON(c, &req) {
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		product, err := products.Create(ctx, req)
		if err != nil {
			respond.Error(c, err, "Product")
			return
		}
		respond.Created(c, product.ID.String(), "Product created successfully", product)
	}
}
