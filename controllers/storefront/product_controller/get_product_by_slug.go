package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/durable-fastener/durable-cms-backend/catalog"
	"github.com/durable-fastener/durable-cms-backend/config"
	"github.com/durable-fastener/durable-cms-backend/controllers/respond"
	"github.com/durable-fastener/durable-cms-backend/models"
	"github.com/durable-fastener/durable-cms-backend/services"
)

// GetProductBySlug godoc
// @Summary Get a product page
// @Description Product, its applications and the size selectors resolved for the optional selection
// @Tags Store - Products
// @Produce json
// @Param slug path string true "Product slug"
// @Param diameter query string false "Selected diameter"
// @Param length query string false "Selected length"
// @Param finish query string false "Selected finish"
// @Success 200 {object} models.ApiResponse{data=models.ProductDetailResponse}
// @Failure 404 {object} models.ApiResponse
// @Router /products/{slug} [get]
func GetProductBySlug(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sel catalog.Selection
		_ = c.ShouldBindQuery(&sel)

		ctx, cancel := config.WithTimeout()
		defer cancel()

		detail, err := products.Detail(ctx, c.Param("slug"), sel)
		if err != nil {
			respond.Error(c, err, "Product")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Product retrieved successfully", detail))
	}
}

// GetProductOptions godoc
// @Summary Resolve size selectors
// @Description Available diameters, lengths for the chosen diameter and finishes for the chosen pair, with the effective selection and gallery images
// @Tags Store - Products
// @Produce json
// @Param slug path string true "Product slug"
// @Param diameter query string false "Selected diameter"
// @Param length query string false "Selected length"
// @Param finish query string false "Selected finish"
// @Success 200 {object} models.ApiResponse{data=catalog.Options}
// @Failure 404 {object} models.ApiResponse
// @Router /products/{slug}/options [get]
func GetProductOptions(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sel catalog.Selection
		_ = c.ShouldBindQuery(&sel)

		ctx, cancel := config.WithTimeout()
		defer cancel()

		opts, err := products.Options(ctx, c.Param("slug"), sel)
		if err != nil {
			respond.Error(c, err, "Product")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Options resolved successfully", opts))
	}
}
