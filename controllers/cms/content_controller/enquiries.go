package content_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/durable-fastener/durable-cms-backend/config"
	"github.com/durable-fastener/durable-cms-backend/controllers/respond"
	"github.com/durable-fastener/durable-cms-backend/models"
	"github.com/durable-fastener/durable-cms-backend/services"
)

// CreateEnquiry godoc
// @Summary Submit a contact enquiry
// @Tags Content - Enquiries
// @Accept json
// @Produce json
// @Param enquiry body models.EnquiryRequest true "Enquiry"
// @Success 201 {object} models.ApiResponse{data=models.Enquiry}
// @Failure 400 {object} models.ApiResponse
// @Router /enquiries [post]
func CreateEnquiry(content *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.EnquiryRequest
		if !respond.BindJSON(c, &req) {
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		enquiry, err := content.CreateEnquiry(ctx, req)
		if err != nil {
			respond.Error(c, err, "Enquiry")
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(c, "Enquiry received", enquiry))
	}
}

// GetEnquiries godoc
// @Summary List enquiries
// @Tags Content - Enquiries
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status" Enums(new, read, contacted)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} models.ApiResponse{data=[]models.Enquiry}
// @Router /admin/enquiries [get]
func GetEnquiries(content *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

		ctx, cancel := config.WithTimeout()
		defer cancel()

		enquiries, meta, err := content.ListEnquiries(ctx, c.Query("status"), page, limit)
		if err != nil {
			respond.Error(c, err, "Enquiries")
			return
		}
		c.JSON(http.StatusOK, models.PaginatedResponse(c, "Enquiries retrieved successfully", enquiries, &meta))
	}
}

// UpdateEnquiryStatus godoc
// @Summary Update enquiry status
// @Tags Content - Enquiries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Enquiry ID"
// @Param status body models.UpdateEnquiryStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/enquiries/{id}/status [patch]
func UpdateEnquiryStatus(content *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := respond.UUIDParam(c, "id", "enquiry")
		if !ok {
			return
		}
		var req models.UpdateEnquiryStatusRequest
		if !respond.BindJSON(c, &req) {
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		if err := content.UpdateEnquiryStatus(ctx, id, req.Status); err != nil {
			respond.Error(c, err, "Enquiry")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Enquiry status updated", map[string]string{
			"id":     id.String(),
			"status": req.Status,
		}))
	}
}

// DeleteEnquiry godoc
// @Summary Delete an enquiry
// @Tags Content - Enquiries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Enquiry ID"
// @Success 200 {object} models.ApiResponse
// @Router /admin/enquiries/{id} [delete]
func DeleteEnquiry(content *services.ContentService) gin.HandlerFunc {
	return deleteByID("Enquiry", content.DeleteEnquiry)
}
