package job_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/durable-fastener/durable-cms-backend/config"
	"github.com/durable-fastener/durable-cms-backend/controllers/respond"
	"github.com/durable-fastener/durable-cms-backend/models"
	"github.com/durable-fastener/durable-cms-backend/services"
)

// CreateJob godoc
// @Summary Create a job posting
// @Description The structured fields are compiled into the stored HTML description
// @Tags CMS - Jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param job body models.JobRequest true "Job editor state"
// @Success 201 {object} models.ApiResponse{data=models.Job}
// @Failure 400 {object} models.ApiResponse
// @Router /admin/jobs [post]
func CreateJob(jobs *services.JobService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.JobRequest
		if !respond.BindJSON(c, &req) {
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		job, err := jobs.Create(ctx, req)
		if err != nil {
			respond.Error(c, err, "Job")
			return
		}
		respond.Created(c, job.ID.String(), "Job created successfully", job)
	}
}

// UpdateJob godoc
// @Summary Update a job posting
// @Tags CMS - Jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param job body models.JobRequest true "Job editor state"
// @Success 200 {object} models.ApiResponse{data=models.Job}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/jobs/{id} [put]
func UpdateJob(jobs *services.JobService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := respond.UUIDParam(c, "id", "job")
		if !ok {
			return
		}
		var req models.JobRequest
		if !respond.BindJSON(c, &req) {
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		job, err := jobs.Update(ctx, id, req)
		if err != nil {
			respond.Error(c, err, "Job")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Job updated successfully", job))
	}
}

// DeleteJob godoc
// @Summary Delete a job posting
// @Tags CMS - Jobs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/jobs/{id} [delete]
func DeleteJob(jobs *services.JobService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := respond.UUIDParam(c, "id", "job")
		if !ok {
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		if err := jobs.Delete(ctx, id); err != nil {
			respond.Error(c, err, "Job")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Job deleted successfully", map[string]string{
			"id": id.String(),
		}))
	}
}
