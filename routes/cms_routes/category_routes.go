package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/durable-fastener/durable-cms-backend/controllers/cms/category_controller"
	"github.com/durable-fastener/durable-cms-backend/services"
)

func SetupCategoryRoutes(rg *gin.RouterGroup, s *services.Services) {
	categories := rg.Group("/categories")
	{
		categories.GET("", category_controller.GetCategoryTree(s.Categories))
		categories.GET("/stats", category_controller.GetCategoryStats(s.Categories))
		categories.GET("/sub-categories", category_controller.GetSubCategoriesByCategory(s.Categories))
		categories.POST("", category_controller.CreateCategory(s.Categories))
		categories.POST("/:id/sub-categories", category_controller.CreateSubCategory(s.Categories))
		categories.DELETE("/:id", category_controller.DeleteCategory(s.Categories))
	}

	rg.POST("/sub-categories/:id/child-categories", category_controller.CreateChildCategory(s.Categories))
	rg.DELETE("/sub-categories/:id", category_controller.DeleteSubCategory(s.Categories))
	rg.DELETE("/child-categories/:id", category_controller.DeleteChildCategory(s.Categories))
}
