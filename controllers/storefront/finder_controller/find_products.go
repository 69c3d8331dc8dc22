package finder_controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/durable-fastener/durable-cms-backend/controllers/respond"
	"github.com/durable-fastener/durable-cms-backend/models"
	"github.com/durable-fastener/durable-cms-backend/services"
)

const finderTimeout = 30 * time.Second

type FinderRequest struct {
	Query string `json:"query" binding:"required" example:"rust proof screws for roofing sheets"`
}

// FindProducts godoc
// @Summary AI product finder
// @Description Up to three catalogue products ranked for a free-text need. Falls back to keyword matching when the model is unavailable.
// @Tags Store - Finder
// @Accept json
// @Produce json
// @Param request body FinderRequest true "What the customer needs"
// @Success 200 {object} models.ApiResponse{data=[]services.Recommendation}
// @Failure 400 {object} models.ApiResponse
// @Router /finder [post]
func FindProducts(finder *services.FinderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req FinderRequest
		if !respond.BindJSON(c, &req) {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), finderTimeout)
		defer cancel()

		recs, err := finder.Find(ctx, req.Query)
		if err != nil {
			respond.Error(c, err, "Products")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Recommendations ready", recs))
	}
}
