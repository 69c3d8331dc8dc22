package product_controller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/durable-fastener/durable-cms-backend/config"
	"github.com/durable-fastener/durable-cms-backend/controllers/respond"
	"github.com/durable-fastener/durable-cms-backend/services"
)

// DownloadDatasheet godoc
// @Summary Download product datasheet
// @Description PDF with the product's specifications, dimensions and available sizes
// @Tags Store - Products
// @Produce application/pdf
// @Param slug path string true "Product slug"
// @Success 200 "PDF file"
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /products/{slug}/datasheet [get]
func DownloadDatasheet(datasheets *services.DatasheetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		product, data, err := datasheets.Render(ctx, c.Param("slug"))
		if err != nil {
			respond.Error(c, err, "Product")
			return
		}

		filename := fmt.Sprintf("%s-datasheet.pdf", product.Slug)
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		c.Header("Content-Length", strconv.Itoa(len(data)))
		c.Header("Cache-Control", "no-cache")
		c.Data(http.StatusOK, "application/pdf", data)
	}
}
