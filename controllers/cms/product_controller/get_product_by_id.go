package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/durable-fastener/durable-cms-backend/config"
	"github.com/durable-fastener/durable-cms-backend/controllers/respond"
	"github.com/durable-fastener/durable-cms-backend/models"
	"github.com/durable-fastener/durable-cms-backend/services"
)

// GetProductByID godoc
// @Summary Get product editor state
// @Description Product with its material rows decoded, applications normalized and the size and finish axes rebuilt from its variants
// @Tags CMS - Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} models.ApiResponse{data=models.ProductEditorResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/products/{id} [get]
func GetProductByID(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := respond.UUIDParam(c, "id", "product")
		if !ok {
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		state, err := products.EditorState(ctx, id)
		if err != nil {
			respond.Error(c, err, "Product")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Product retrieved successfully", state))
	}
}
