package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/durable-fastener/durable-cms-backend/controllers/cms/attribute_controller"
	"github.com/durable-fastener/durable-cms-backend/controllers/cms/job_controller"
	"github.com/durable-fastener/durable-cms-backend/services"
)

func SetupJobRoutes(rg *gin.RouterGroup, s *services.Services) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", job_controller.GetJobs(s.Jobs))
		jobs.GET("/:id", job_controller.GetJobByID(s.Jobs))
		jobs.POST("", job_controller.CreateJob(s.Jobs))
		jobs.PUT("/:id", job_controller.UpdateJob(s.Jobs))
		jobs.DELETE("/:id", job_controller.DeleteJob(s.Jobs))
	}

	attributes := rg.Group("/job-attributes")
	{
		attributes.GET("", attribute_controller.GetJobAttributes(s.Attributes))
		attributes.POST("", attribute_controller.CreateJobAttribute(s.Attributes))
		attributes.DELETE("/:id", attribute_controller.DeleteJobAttribute(s.Attributes))
	}
}
