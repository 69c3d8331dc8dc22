package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/durable-fastener/durable-cms-backend/controllers/cms/content_controller"
	"github.com/durable-fastener/durable-cms-backend/services"
)

func SetupContentRoutes(rg *gin.RouterGroup, s *services.Services) {
	content := s.Content

	blogs := rg.Group("/blogs")
	{
		blogs.GET("", content_controller.GetBlogs(content))
		blogs.GET("/:id", content_controller.GetBlogByID(content))
		blogs.POST("", content_controller.CreateBlog(content))
		blogs.PUT("/:id", content_controller.UpdateBlog(content))
		blogs.DELETE("/:id", content_controller.DeleteBlog(content))
	}

	enquiries := rg.Group("/enquiries")
	{
		enquiries.GET("", content_controller.GetEnquiries(content))
		enquiries.PATCH("/:id/status", content_controller.UpdateEnquiryStatus(content))
		enquiries.DELETE("/:id", content_controller.DeleteEnquiry(content))
	}

	gallery := rg.Group("/gallery")
	{
		gallery.GET("", content_controller.GetGallery(content))
		gallery.POST("", content_controller.CreateGalleryItem(content))
		gallery.DELETE("/:id", content_controller.DeleteGalleryItem(content))
	}

	rg.GET("/site-content", content_controller.GetSiteContent(content))
	rg.PUT("/site-content", content_controller.UpdateSiteContent(content))

	menu := rg.Group("/menu-items")
	{
		menu.GET("", content_controller.GetMenuItems(content))
		menu.POST("", content_controller.CreateMenuItem(content))
		menu.DELETE("/:id", content_controller.DeleteMenuItem(content))
	}

	links := rg.Group("/site-links")
	{
		links.GET("", content_controller.GetSiteLinks(content))
		links.PUT("", content_controller.UpsertSiteLink(content))
		links.DELETE("/:key", content_controller.DeleteSiteLink(content))
	}
}
