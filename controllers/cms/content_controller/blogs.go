package content_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/durable-fastener/durable-cms-backend/config"
	"github.com/durable-fastener/durable-cms-backend/controllers/respond"
	"github.com/durable-fastener/durable-cms-backend/models"
	"github.com/durable-fastener/durable-cms-backend/services"
)

// GetBlogs godoc
// @Summary List blog posts
// @Tags Content - Blogs
// @Produce json
// @Param category query string false "Blog category"
// @Success 200 {object} models.ApiResponse{data=[]models.Blog}
// @Router /blogs [get]
func GetBlogs(content *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		blogs, err := content.ListBlogs(ctx, c.Query("category"))
		if err != nil {
			respond.Error(c, err, "Blogs")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Blogs retrieved successfully", blogs))
	}
}

// GetBlogByID godoc
// @Summary Get a blog post
// @Tags Content - Blogs
// @Produce json
// @Param id path string true "Blog ID"
// @Success 200 {object} models.ApiResponse{data=models.Blog}
// @Failure 404 {object} models.ApiResponse
// @Router /blogs/{id} [get]
func GetBlogByID(content *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := respond.UUIDParam(c, "id", "blog")
		if !ok {
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		blog, err := content.GetBlog(ctx, id)
		if err != nil {
			respond.Error(c, err, "Blog")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Blog retrieved successfully", blog))
	}
}

// CreateBlog godoc
// @Summary Create a blog post
// @Description Content is sanitised HTML; scripts and event handlers are stripped
// @Tags Content - Blogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param blog body models.BlogRequest true "Blog post"
// @Success 201 {object} models.ApiResponse{data=models.Blog}
// @Failure 400 {object} models.ApiResponse
// @Router /admin/blogs [post]
func CreateBlog(content *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.BlogRequest
		if !respond.BindJSON(c, &req) {
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		blog, err := content.CreateBlog(ctx, req)
		if err != nil {
			respond.Error(c, err, "Blog")
			return
		}
		respond.Created(c, blog.ID.String(), "Blog created successfully", blog)
	}
}

// UpdateBlog godoc
// @Summary Update a blog post
// @Tags Content - Blogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Blog ID"
// @Param blog body models.BlogRequest true "Blog post"
// @Success 200 {object} models.ApiResponse{data=models.Blog}
// @Failure 404 {object} models.ApiResponse
// @Router /admin/blogs/{id} [put]
func UpdateBlog(content *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := respond.UUIDParam(c, "id", "blog")
		if !ok {
			return
		}
		var req models.BlogRequest
		if !respond.BindJSON(c, &req) {
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		blog, err := content.UpdateBlog(ctx, id, req)
		if err != nil {
			respond.Error(c, err, "Blog")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Blog updated successfully", blog))
	}
}

// DeleteBlog godoc
// @Summary Delete a blog post
// @Tags Content - Blogs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Blog ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/blogs/{id} [delete]
func DeleteBlog(content *services.ContentService) gin.HandlerFunc {
	return deleteByID("Blog", content.DeleteBlog)
}
