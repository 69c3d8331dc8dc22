package cms_routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	admin_controller "github.com/durable-fastener/durable-cms-backend/controllers/cms/admin_controller"
	admin_auth "github.com/durable-fastener/durable-cms-backend/controllers/cms/admin_controller/auth"
	"github.com/durable-fastener/durable-cms-backend/middleware"
	"github.com/durable-fastener/durable-cms-backend/services"
)

// SetupAdminRoutes mounts the login endpoint and returns the protected admin
// group every other CMS route hangs off.
func SetupAdminRoutes(admin *gin.RouterGroup, db *gorm.DB, s *services.Services) *gin.RouterGroup {
	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════
	admin.POST("/login", admin_auth.AdminLogin(s.Auth, s.Activity))

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth + Activity Logging)
	// ════════════════════════════════════════════════════════════
	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware(s.Auth))
	protected.Use(middleware.ActivityLoggingMiddleware(db, s.Activity))
	{
		protected.POST("/logout", admin_auth.AdminLogout(s.Auth, s.Activity))
		protected.GET("/me", admin_auth.GetAdminMe(s.Auth))

		protected.GET("/dashboard/stats", admin_controller.GetDashboardStats(s.Content))
	}

	superAdmin := protected.Group("")
	superAdmin.Use(middleware.RequireSuperAdminMiddleware())
	{
		superAdmin.GET("/activity-logs", admin_controller.GetActivityLogs(s.Activity))
	}

	return protected
}
