package job_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/durable-fastener/durable-cms-backend/config"
	"github.com/durable-fastener/durable-cms-backend/controllers/respond"
	"github.com/durable-fastener/durable-cms-backend/models"
	"github.com/durable-fastener/durable-cms-backend/services"
)

// GetJobs godoc
// @Summary List job postings
// @Tags CMS - Jobs
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.Job}
// @Router /admin/jobs [get]
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

// GetJobByID godoc
// @Summary Get job editor state
// @Description The job with its HTML description decompiled into the structured editor fields
// @Tags CMS - Jobs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} models.ApiResponse{data=models.JobEditorResponse}
// @Failure 404 {object} models.ApiResponse
// @Router /admin/jobs/{id} [get]
func GetJobByID(jobs *services.JobService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := respond.UUIDParam(c, "id", "job")
		if !ok {
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		state, err := jobs.EditorState(ctx, id)
		if err != nil {
			respond.Error(c, err, "Job")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Job retrieved successfully", state))
	}
}
