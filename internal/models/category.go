package models

import "blogspace-be/internal/entities"

// CreateCategoryRequest represents the request body for creating a category
type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
}

// UpdateCategoryRequest changes only the fields that are present
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CategoryResponse wraps a category with a status message
type CategoryResponse struct {
	Message  string             `json:"message"`
	Category *entities.Category `json:"category"`
}
