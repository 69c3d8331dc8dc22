package admin_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/durable-fastener/durable-cms-backend/config"
	"github.com/durable-fastener/durable-cms-backend/controllers/respond"
	"github.com/durable-fastener/durable-cms-backend/models"
	"github.com/durable-fastener/durable-cms-backend/services"
)

// GetDashboardStats godoc
// @Summary Dashboard stats
// @Description Counts of products, enquiries (total and new), blogs and jobs
// @Tags Admin - Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.DashboardStats}
// @Router /admin/dashboard/stats [get]
func GetDashboardStats(content *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		stats, err := content.DashboardStats(ctx)
		if err != nil {
			respond.Error(c, err, "Stats")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Dashboard stats retrieved successfully", stats))
	}
}
