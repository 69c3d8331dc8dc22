package careers_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/durable-fastener/durable-cms-backend/config"
	"github.com/durable-fastener/durable-cms-backend/controllers/respond"
	"github.com/durable-fastener/durable-cms-backend/models"
	"github.com/durable-fastener/durable-cms-backend/services"
)

// GetJobs godoc
// @Summary Open positions
// @Tags Store - Careers
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.Job}
// @Router /jobs [get]
func GetJobs(jobs *services.JobService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		list, err := jobs.List(ctx)
		if err != nil {
			respond.Error(c, err, "Jobs")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Jobs retrieved successfully", list))
	}
}

// GetJobAttributeGroups godoc
// @Summary Job filter vocabularies
// @Description Departments, locations and employment types for the careers filters
// @Tags Store - Careers
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.JobAttributeGroups}
// @Router /job-attributes [get]
func GetJobAttributeGroups(attributes *services.AttributeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		groups, err := attributes.Groups(ctx)
		if err != nil {
			respond.Error(c, err, "Job attributes")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Job attributes retrieved successfully", groups))
	}
}
