package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blogspace-be/internal/models"
	"blogspace-be/internal/service"
)

type BlogController struct {
	blogService service.BlogService
	uploads     uploadReader
}

func NewBlogController(blogService service.BlogService, maxUploadBytes int64) *BlogController {
	return &BlogController{
		blogService: blogService,
		uploads:     uploadReader{maxBytes: maxUploadBytes},
	}
}

// CreateBlog handles POST /api/blogs (multipart)
func (bc *BlogController) CreateBlog(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var form models.BlogForm
	if !bc.uploads.bind(c, &form, service.ErrBlogFieldsRequired.Message) {
		return
	}

	image, file, err := bc.uploads.open(c)
	if err != nil {
		respondError(c, err)
		return
	}
	defer closeUpload(c, file)

	blog, err := bc.blogService.CreateBlog(c.Request.Context(), userID, &form, image)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.CreateBlogResponse{
		Message: "Blog created successfully",
		Blog:    blog,
	})
}

// ListBlogs handles GET /api/blogs?search=&page=&limit=
func (bc *BlogController) ListBlogs(c *gin.Context) {
	// Unparseable numbers fall through as zero and take the defaults
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	response, err := bc.blogService.ListBlogs(c.Request.Context(), &models.BlogListQuery{
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetBlog handles GET /api/blogs/:id
func (bc *BlogController) GetBlog(c *gin.Context) {
	blog, err := bc.blogService.GetBlog(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, blog)
}

// GetMyBlogs handles GET /api/blogs/my-blogs
func (bc *BlogController) GetMyBlogs(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	blogs, err := bc.blogService.ListMyBlogs(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, blogs)
}

// UpdateBlog handles PUT /api/blogs/:id (multipart)
func (bc *BlogController) UpdateBlog(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var form models.BlogForm
	if !bc.uploads.bind(c, &form, service.ErrBlogFieldsRequired.Message) {
		return
	}

	image, file, err := bc.uploads.open(c)
	if err != nil {
		respondError(c, err)
		return
	}
	defer closeUpload(c, file)

	blog, err := bc.blogService.UpdateBlog(c.Request.Context(), userID, c.Param("id"), &form, image)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.UpdateBlogResponse{Blog: blog})
}

// DeleteBlog handles DELETE /api/blogs/:id
func (bc *BlogController) DeleteBlog(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := bc.blogService.DeleteBlog(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Blog deleted successfully"})
}
