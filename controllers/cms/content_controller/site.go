package content_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/durable-fastener/durable-cms-backend/config"
	"github.com/durable-fastener/durable-cms-backend/controllers/respond"
	"github.com/durable-fastener/durable-cms-backend/middleware"
	"github.com/durable-fastener/durable-cms-backend/models"
	"github.com/durable-fastener/durable-cms-backend/services"
)

// GetSiteContent godoc
// @Summary Get homepage imagery
// @Tags Content - Site
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.SiteContent}
// @Router /site-content [get]
func GetSiteContent(content *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		sc, err := content.SiteContent(ctx)
		if err != nil {
			respond.Error(c, err, "Site content")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Site content retrieved successfully", sc))
	}
}

// UpdateSiteContent godoc
// @Summary Update homepage imagery
// @Description Only the fields present in the body are changed
// @Tags Content - Site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param content body models.UpdateSiteContentRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse{data=models.SiteContent}
// @Router /admin/site-content [put]
func UpdateSiteContent(content *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.UpdateSiteContentRequest
		if !respond.BindJSON(c, &req) {
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		sc, err := content.UpdateSiteContent(ctx, req)
		if err != nil {
			respond.Error(c, err, "Site content")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Site content updated successfully", sc))
	}
}

// GetMenuItems godoc
// @Summary List navigation menu items
// @Tags Content - Site
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.MenuItem}
// @Router /menu-items [get]
func GetMenuItems(content *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		items, err := content.ListMenuItems(ctx)
		if err != nil {
			respond.Error(c, err, "Menu items")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Menu items retrieved successfully", items))
	}
}

// CreateMenuItem godoc
// @Summary Add a menu item
// @Tags Content - Site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body models.MenuItemRequest true "Menu item"
// @Success 201 {object} models.ApiResponse{data=models.MenuItem}
// @Router /admin/menu-items [post]
func CreateMenuItem(content *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.MenuItemRequest
		if !respond.BindJSON(c, &req) {
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		item, err := content.CreateMenuItem(ctx, req)
		if err != nil {
			respond.Error(c, err, "Menu item")
			return
		}
		respond.Created(c, item.ID.String(), "Menu item created successfully", item)
	}
}

// DeleteMenuItem godoc
// @Summary Delete a menu item
// @Tags Content - Site
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Success 200 {object} models.ApiResponse
// @Router /admin/menu-items/{id} [delete]
func DeleteMenuItem(content *services.ContentService) gin.HandlerFunc {
	return deleteByID("Menu item", content.DeleteMenuItem)
}

// GetSiteLinks godoc
// @Summary List site links
// @Tags Content - Site
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.SiteLink}
// @Router /site-links [get]
func GetSiteLinks(content *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		links, err := content.ListSiteLinks(ctx)
		if err != nil {
			respond.Error(c, err, "Site links")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Site links retrieved successfully", links))
	}
}

// UpsertSiteLink godoc
// @Summary Set a site link
// @Description Creates the key or replaces its URL
// @Tags Content - Site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param link body models.SiteLinkRequest true "Key and URL"
// @Success 200 {object} models.ApiResponse{data=models.SiteLink}
// @Router /admin/site-links [put]
func UpsertSiteLink(content *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SiteLinkRequest
		if !respond.BindJSON(c, &req) {
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		link, err := content.UpsertSiteLink(ctx, req)
		if err != nil {
			respond.Error(c, err, "Site link")
			return
		}
		c.Set(middleware.CreatedResourceKey, link.KeyName)
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Site link saved successfully", link))
	}
}

// DeleteSiteLink godoc
// @Summary Delete a site link
// @Tags Content - Site
// @Produce json
// @Security BearerAuth
// @Param key path string true "Link key"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/site-links/{key} [delete]
func DeleteSiteLink(content *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("key")

		ctx, cancel := config.WithTimeout()
		defer cancel()

		if err := content.DeleteSiteLink(ctx, key); err != nil {
			respond.Error(c, err, "Site link")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Site link deleted successfully", map[string]string{
			"key_name": key,
		}))
	}
}
