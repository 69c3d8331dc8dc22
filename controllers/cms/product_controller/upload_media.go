package product_controller

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/durable-fastener/durable-cms-backend/controllers/respond"
	"github.com/durable-fastener/durable-cms-backend/models"
	"github.com/durable-fastener/durable-cms-backend/services"
)

const uploadTimeout = 2 * time.Minute

// UploadMedia godoc
// @Summary Upload images
// @Description Uploads one or more images to object storage and returns their URLs in the order sent
// @Tags CMS - Media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param folder formData string true "Target folder" Enums(products, gallery, tech, finishes, applications, blog, site)
// @Param files formData file true "Images (repeat the field for several)"
// @Success 200 {object} models.ApiResponse{data=[]string}
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse "Object storage not configured"
// @Router /admin/uploads [post]
func UploadMedia(uploads *services.UploadService) gin.HandlerFunc {
	return func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid multipart form"))
			return
		}

		headers := form.File["files"]
		sources := make([]services.UploadSource, len(headers))
		for i, fh := range headers {
			sources[i] = services.UploadSource{
				Name: fh.Filename,
				Open: func() (io.ReadCloser, error) { return fh.Open() },
			}
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), uploadTimeout)
		defer cancel()

		urls, err := uploads.UploadFiles(ctx, c.PostForm("folder"), sources)
		if err != nil {
			respond.Error(c, err, "Upload")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Files uploaded successfully", urls))
	}
}
