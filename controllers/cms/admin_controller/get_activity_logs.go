package admin_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/durable-fastener/durable-cms-backend/config"
	"github.com/durable-fastener/durable-cms-backend/controllers/respond"
	"github.com/durable-fastener/durable-cms-backend/models"
	"github.com/durable-fastener/durable-cms-backend/services"
)

// GetActivityLogs godoc
// @Summary List admin activity
// @Description Paginated admin activity, newest first, filterable by admin, resource type and free text
// @Tags Admin - Activity
// @Produce json
// @Security BearerAuth
// @Param admin_id query string false "Admin ID"
// @Param resource_type query string false "Resource type (product, category, job, ...)"
// @Param search query string false "Matches resource name, admin email or action"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} models.ApiResponse{data=[]models.ActivityLogResponse}
// @Router /admin/activity-logs [get]
func GetActivityLogs(activity *services.ActivityLogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter services.ActivityLogFilter
		if err := c.ShouldBindQuery(&filter); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid query parameters"))
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		logs, meta, err := activity.List(ctx, filter)
		if err != nil {
			respond.Error(c, err, "Activity logs")
			return
		}
		c.JSON(http.StatusOK, models.PaginatedResponse(c, "Activity logs retrieved successfully", logs, &meta))
	}
}
