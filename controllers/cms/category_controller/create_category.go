package category_controller

import (
	"github.com/gin-gonic/gin"

	"github.com/durable-fastener/durable-cms-backend/config"
	"github.com/durable-fastener/durable-cms-backend/controllers/respond"
	"github.com/durable-fastener/durable-cms-backend/models"
	"github.com/durable-fastener/durable-cms-backend/services"
)

// CreateCategory godoc
// @Summary Create a category
// @Tags CMS - Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body models.CategoryRequest true "Category name"
// @Success 201 {object} models.ApiResponse{data=models.Category}
// @Failure 400 {object} models.ApiResponse
// @Router /admin/categories [post]
func CreateCategory(categories *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CategoryRequest
		if !respond.BindJSON(c, &req) {
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		cat, err := categories.CreateCategory(ctx, req.Name)
		if err != nil {
			respond.Error(c, err, "Category")
			return
		}
		respond.Created(c, cat.ID.String(), "Category created successfully", cat)
	}
}

// CreateSubCategory godoc
// @Summary Create a sub-category
// @Description Adds a sub-category under the category with the given ID
// @Tags CMS - Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Parent category ID"
// @Param category body models.CategoryRequest true "Sub-category name"
// @Success 201 {object} models.ApiResponse{data=models.SubCategory}
// @Failure 400 {object} models.ApiResponse "Blank name or unknown parent"
// @Router /admin/categories/{id}/sub-categories [post]
func CreateSubCategory(categories *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		parentID, ok := respond.UUIDParam(c, "id", "category")
		if !ok {
			return
		}
		var req models.CategoryRequest
		if !respond.BindJSON(c, &req) {
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		sub, err := categories.CreateSubCategory(ctx, parentID, req.Name)
		if err != nil {
			respond.Error(c, err, "Category")
			return
		}
		respond.Created(c, sub.ID.String(), "Sub-category created successfully", sub)
	}
}

// CreateChildCategory godoc
// @Summary Create a child category
// @Description Adds a child category under the sub-category with the given ID
// @Tags CMS - Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Parent sub-category ID"
// @Param category body models.CategoryRequest true "Child category name"
// @Success 201 {object} models.ApiResponse{data=models.ChildCategory}
// @Failure 400 {object} models.ApiResponse "Blank name or unknown parent"
// @Router /admin/sub-categories/{id}/child-categories [post]
func CreateChildCategory(categories *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		parentID, ok := respond.UUIDParam(c, "id", "sub-category")
		if !ok {
			return
		}
		var req models.CategoryRequest
		if !respond.BindJSON(c, &req) {
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		child, err := categories.CreateChildCategory(ctx, parentID, req.Name)
		if err != nil {
			respond.Error(c, err, "Sub-category")
			return
		}
		respond.Created(c, child.ID.String(), "Child category created successfully", child)
	}
}
