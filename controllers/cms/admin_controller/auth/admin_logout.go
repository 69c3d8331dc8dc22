package admin_auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/durable-fastener/durable-cms-backend/config"
	"github.com/durable-fastener/durable-cms-backend/middleware"
	"github.com/durable-fastener/durable-cms-backend/models"
	"github.com/durable-fastener/durable-cms-backend/services"
	"github.com/durable-fastener/durable-cms-backend/utils"
)

// AdminLogout godoc
// @Summary Logout admin
// @Description Logout the current admin and deactivate session
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /admin/logout [post]
func AdminLogout(auth *services.AdminAuthService, activity *services.ActivityLogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID := c.MustGet(middleware.AdminIDKey).(uuid.UUID)

		ctx, cancel := config.WithTimeout()
		defer cancel()

		if err := auth.Logout(ctx, adminID); err != nil {
			config.Log.Error("[admin.logout] failed to deactivate session", zap.Error(err))
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
			return
		}

		activity.LogActivity(ctx, services.LogActivityRequest{
			AdminID:      adminID,
			AdminEmail:   c.GetString(middleware.AdminEmailKey),
			Action:       models.ActionName(models.ActionLogout, models.ResourceTypeAdmin),
			ResourceType: models.ResourceTypeAdmin,
			ResourceID:   adminID.String(),
			IPAddress:    utils.GetClientIP(c),
			UserAgent:    c.Request.UserAgent(),
		})

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(utils.AdminTokenCookie, "", -1, "/", "", config.App.IsProduction(), true)
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out successfully", nil))
	}
}
