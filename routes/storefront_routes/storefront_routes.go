package storefront_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/durable-fastener/durable-cms-backend/controllers/cms/content_controller"
	"github.com/durable-fastener/durable-cms-backend/controllers/storefront/careers_controller"
	"github.com/durable-fastener/durable-cms-backend/controllers/storefront/catalog_controller"
	"github.com/durable-fastener/durable-cms-backend/controllers/storefront/finder_controller"
	store_product "github.com/durable-fastener/durable-cms-backend/controllers/storefront/product_controller"
	"github.com/durable-fastener/durable-cms-backend/services"
)

// SetupStorefrontRoutes mounts the public website API (no auth). limit runs
// in front of the finder and enquiry routes.
func SetupStorefrontRoutes(api *gin.RouterGroup, s *services.Services, limit ...gin.HandlerFunc) {
	guarded := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(limit[:len(limit):len(limit)], h)
	}

	api.GET("/categories", catalog_controller.GetCategories(s.Categories))

	products := api.Group("/products")
	{
		products.GET("", store_product.GetProducts(s.Products))
		products.GET("/:slug", store_product.GetProductBySlug(s.Products))
		products.GET("/:slug/options", store_product.GetProductOptions(s.Products))
		products.GET("/:slug/datasheet", store_product.DownloadDatasheet(s.Datasheets))
	}

	api.POST("/finder", guarded(finder_controller.FindProducts(s.Finder))...)

	api.GET("/jobs", careers_controller.GetJobs(s.Jobs))
	api.GET("/job-attributes", careers_controller.GetJobAttributeGroups(s.Attributes))

	api.GET("/blogs", content_controller.GetBlogs(s.Content))
	api.GET("/blogs/:id", content_controller.GetBlogByID(s.Content))
	api.POST("/enquiries", guarded(content_controller.CreateEnquiry(s.Content))...)
	api.GET("/site-content", content_controller.GetSiteContent(s.Content))
	api.GET("/menu-items", content_controller.GetMenuItems(s.Content))
	api.GET("/site-links", content_controller.GetSiteLinks(s.Content))
	api.GET("/gallery", content_controller.GetGallery(s.Content))
}
