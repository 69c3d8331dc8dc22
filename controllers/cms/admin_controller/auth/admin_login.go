package admin_auth_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/durable-fastener/durable-cms-backend/config"
	"github.com/durable-fastener/durable-cms-backend/controllers/respond"
	"github.com/durable-fastener/durable-cms-backend/models"
	"github.com/durable-fastener/durable-cms-backend/services"
	"github.com/durable-fastener/durable-cms-backend/utils"
)

// AdminLogin godoc
// @Summary Login as admin
// @Description Authenticate admin with email and password. Returns JWT token and creates session
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Param loginRequest body models.AdminLoginRequest true "Email and password"
// @Success 200 {object} models.ApiResponse{data=models.AdminLoginResponse}
// @Failure 400 {object} models.ApiResponse "Invalid credentials"
// @Failure 403 {object} models.ApiResponse "Account suspended"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/login [post]
func AdminLogin(auth *services.AdminAuthService, activity *services.ActivityLogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AdminLoginRequest
		if !respond.BindJSON(c, &req) {
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		ip, ua := utils.GetClientIP(c), c.Request.UserAgent()
		res, err := auth.Login(ctx, req.Email, req.Password, ip, ua)
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid email or password"))
			return
		case errors.Is(err, services.ErrAdminSuspended):
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Account is suspended"))
			return
		case err != nil:
			config.Log.Error("[admin.login] failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
			return
		}

		activity.LogActivity(ctx, services.LogActivityRequest{
			AdminID:      res.Admin.ID,
			AdminEmail:   res.Admin.Email,
			Action:       models.ActionName(models.ActionLogin, models.ResourceTypeAdmin),
			ResourceType: models.ResourceTypeAdmin,
			ResourceID:   res.Admin.ID.String(),
			ResourceName: utils.DescribeUserAgent(ua),
			IPAddress:    ip,
			UserAgent:    ua,
		})

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(utils.AdminTokenCookie, res.Token, int(services.SessionTTL.Seconds()), "/", "", config.App.IsProduction(), true)

		c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", res))
	}
}
