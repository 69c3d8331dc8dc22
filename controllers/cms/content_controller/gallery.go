package content_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/durable-fastener/durable-cms-backend/config"
	"github.com/durable-fastener/durable-cms-backend/controllers/respond"
	"github.com/durable-fastener/durable-cms-backend/models"
	"github.com/durable-fastener/durable-cms-backend/services"
)

// GetGallery godoc
// @Summary List gallery images
// @Tags Content - Gallery
// @Produce json
// @Param tag query string false "Filter by tag"
// @Success 200 {object} models.ApiResponse{data=[]models.GalleryItem}
// @Router /gallery [get]
func GetGallery(content *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		items, err := content.ListGallery(ctx, c.Query("tag"))
		if err != nil {
			respond.Error(c, err, "Gallery")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Gallery retrieved successfully", items))
	}
}

// CreateGalleryItem godoc
// @Summary Add a gallery image
// @Tags Content - Gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body models.GalleryItemRequest true "Gallery item"
// @Success 201 {object} models.ApiResponse{data=models.GalleryItem}
// @Router /admin/gallery [post]
func CreateGalleryItem(content *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.GalleryItemRequest
		if !respond.BindJSON(c, &req) {
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		item, err := content.CreateGalleryItem(ctx, req)
		if err != nil {
			respond.Error(c, err, "Gallery item")
			return
		}
		respond.Created(c, item.ID.String(), "Gallery item created successfully", item)
	}
}

// DeleteGalleryItem godoc
// @Summary Delete a gallery image
// @Tags Content - Gallery
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gallery item ID"
// @Success 200 {object} models.ApiResponse
// @Router /admin/gallery/{id} [delete]
func DeleteGalleryItem(content *services.ContentService) gin.HandlerFunc {
	return deleteByID("Gallery item", content.DeleteGalleryItem)
}
