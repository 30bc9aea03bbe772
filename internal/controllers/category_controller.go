package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogspace-be/internal/models"
	"blogspace-be/internal/service"
)

type CategoryController struct {
	categoryService service.CategoryService
}

func NewCategoryController(categoryService service.CategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

// CreateCategory handles POST /api/categories
func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, service.ErrCategoryNameRequired.Message, err)
		return
	}

	category, err := cc.categoryService.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.CategoryResponse{
		Message:  "Category created successfully",
		Category: category,
	})
}

// ListCategories handles GET /api/categories
func (cc *CategoryController) ListCategories(c *gin.Context) {
	categories, err := cc.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// GetCategory handles GET /api/categories/:id
func (cc *CategoryController) GetCategory(c *gin.Context) {
	category, err := cc.categoryService.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// UpdateCategory handles PUT /api/categories/:id
func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	category, err := cc.categoryService.UpdateCategory(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CategoryResponse{
		Message:  "Category updated successfully",
		Category: category,
	})
}

// DeleteCategory handles DELETE /api/categories/:id
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	if err := cc.categoryService.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Category deleted successfully"})
}
