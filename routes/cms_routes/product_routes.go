package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/durable-fastener/durable-cms-backend/controllers/cms/product_controller"
	"github.com/durable-fastener/durable-cms-backend/services"
)

func SetupProductRoutes(rg *gin.RouterGroup, s *services.Services) {
	products := rg.Group("/products")
	{
		products.GET("", product_controller.GetProducts(s.Products))
		products.GET("/:id", product_controller.GetProductByID(s.Products))
		products.POST("", product_controller.CreateProduct(s.Products))
		products.PUT("/:id", product_controller.UpdateProduct(s.Products))
		products.DELETE("/:id", product_controller.DeleteProduct(s.Products))
	}

	rg.POST("/uploads", product_controller.UploadMedia(s.Uploads))
}
