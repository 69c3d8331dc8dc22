package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/durable-fastener/durable-cms-backend/config"
	"github.com/durable-fastener/durable-cms-backend/models"
	"github.com/durable-fastener/durable-cms-backend/services"
	"github.com/durable-fastener/durable-cms-backend/utils"
)

// Context keys set by AdminAuthMiddleware.
const (
	AdminIDKey    = "adminID"
	AdminEmailKey = "adminEmail"
	AdminRoleKey  = "adminRole"
)

// AdminAuthMiddleware validates the admin token and its session, then puts
// the admin's id, email and role on the context.
func AdminAuthMiddleware(auth *services.AdminAuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := utils.AdminToken(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - no token provided"))
			c.Abort()
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		admin, err := auth.Authenticate(ctx, token)
		if err != nil {
			config.Log.Info("[auth] rejected token", zap.Error(err))
			msg := "Unauthorized - invalid token"
			switch {
			case errors.Is(err, services.ErrSessionExpired):
				msg = "Unauthorized - session expired"
			case errors.Is(err, services.ErrAdminSuspended):
				msg = "Unauthorized - account suspended"
			case errors.Is(err, services.ErrNotFound):
				msg = "Unauthorized - admin not found"
			}
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, msg))
			c.Abort()
			return
		}

		c.Set(AdminIDKey, admin.ID)
		c.Set(AdminEmailKey, admin.Email)
		c.Set(AdminRoleKey, admin.Role)
		c.Next()
	}
}

// RequireSuperAdminMiddleware checks if the admin is a super admin
func RequireSuperAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(AdminRoleKey) != models.AdminRoleSuperAdmin {
			config.Log.Warn("[auth] non-super-admin attempted restricted action", zap.String("path", c.FullPath()))
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - super admin access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}
