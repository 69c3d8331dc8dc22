package category_controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/durable-fastener/durable-cms-backend/config"
	"github.com/durable-fastener/durable-cms-backend/controllers/respond"
	"github.com/durable-fastener/durable-cms-backend/models"
	"github.com/durable-fastener/durable-cms-backend/services"
)

func deleteNode(what string, del func(context.Context, uuid.UUID) error) gin.HandlerFunc {
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

// DeleteCategory godoc
// @Summary Delete a category
// @Description Deletes the category with all its sub-categories and child categories. Products keep their stored names.
// @Tags CMS - Categories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/categories/{id} [delete]
func DeleteCategory(categories *services.CategoryService) gin.HandlerFunc {
	return deleteNode("Category", categories.DeleteCategory)
}

// DeleteSubCategory godoc
// @Summary Delete a sub-category
// @Description Deletes the sub-category and its child categories
// @Tags CMS - Categories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sub-category ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/sub-categories/{id} [delete]
func DeleteSubCategory(categories *services.CategoryService) gin.HandlerFunc {
	return deleteNode("Sub-category", categories.DeleteSubCategory)
}

// DeleteChildCategory godoc
// @Summary Delete a child category
// @Tags CMS - Categories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Child category ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/child-categories/{id} [delete]
func DeleteChildCategory(categories *services.CategoryService) gin.HandlerFunc {
	return deleteNode("Child category", categories.DeleteChildCategory)
}
