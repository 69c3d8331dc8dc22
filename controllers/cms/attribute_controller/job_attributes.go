package attribute_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/durable-fastener/durable-cms-backend/config"
	"github.com/durable-fastener/durable-cms-backend/controllers/respond"
	"github.com/durable-fastener/durable-cms-backend/models"
	"github.com/durable-fastener/durable-cms-backend/services"
)

// GetJobAttributes godoc
// @Summary List job attribute options
// @Description Options of one dropdown vocabulary, ordered by value
// @Tags CMS - Job Attributes
// @Produce json
// @Security BearerAuth
// @Param category query string true "Vocabulary" Enums(department, location, type)
// @Success 200 {object} models.ApiResponse{data=[]models.JobAttribute}
// @Failure 400 {object} models.ApiResponse
// @Router /admin/job-attributes [get]
func GetJobAttributes(attributes *services.AttributeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		list, err := attributes.List(ctx, c.Query("category"))
		if err != nil {
			respond.Error(c, err, "Job attributes")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Job attributes retrieved successfully", list))
	}
}

// CreateJobAttribute godoc
// @Summary Add a job attribute option
// @Tags CMS - Job Attributes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param attribute body models.JobAttributeRequest true "Vocabulary and value"
// @Success 201 {object} models.ApiResponse{data=models.JobAttribute}
// @Failure 400 {object} models.ApiResponse
// @Router /admin/job-attributes [post]
func CreateJobAttribute(attributes *services.AttributeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.JobAttributeRequest
		if !respond.BindJSON(c, &req) {
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		attr, err := attributes.Create(ctx, req)
		if err != nil {
			respond.Error(c, err, "Job attribute")
			return
		}
		respond.Created(c, attr.ID.String(), "Job attribute created successfully", attr)
	}
}

// DeleteJobAttribute godoc
// @Summary Delete a job attribute option
// @Tags CMS - Job Attributes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Attribute ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/job-attributes/{id} [delete]
func DeleteJobAttribute(attributes *services.AttributeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := respond.UUIDParam(c, "id", "attribute")
		if !ok {
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		if err := attributes.Delete(ctx, id); err != nil {
			respond.Error(c, err, "Job attribute")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Job attribute deleted successfully", map[string]string{
			"id": id.String(),
		}))
	}
}
