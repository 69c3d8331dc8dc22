package admin_auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/durable-fastener/durable-cms-backend/config"
	"github.com/durable-fastener/durable-cms-backend/controllers/respond"
	"github.com/durable-fastener/durable-cms-backend/middleware"
	"github.com/durable-fastener/durable-cms-backend/models"
	"github.com/durable-fastener/durable-cms-backend/services"
)

// GetAdminMe godoc
// @Summary Get current admin
// @Description Get the profile of the signed-in admin
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.AdminResponse}
// @Failure 401 {object} models.ApiResponse
// @Router /admin/me [get]
func GetAdminMe(auth *services.AdminAuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		admin, err := auth.AdminByID(ctx, c.MustGet(middleware.AdminIDKey).(uuid.UUID))
		if err != nil {
			respond.Error(c, err, "Admin")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Admin retrieved successfully", admin.ToResponse()))
	}
}
