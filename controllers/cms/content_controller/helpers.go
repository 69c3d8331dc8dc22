package content_controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/durable-fastener/durable-cms-backend/config"
	"github.com/durable-fastener/durable-cms-backend/controllers/respond"
	"github.com/durable-fastener/durable-cms-backend/models"
)

func deleteByID(what string, del func(context.Context, uuid.UUID) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := respond.UUIDParam(c, "id", what)
		if !ok {
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		if err := del(ctx, id); err != nil {
			respond.Error(c, err, what)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, what+" deleted successfully", map[string]string{
			"id": id.String(),
		}))
	}
}
