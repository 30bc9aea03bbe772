package models

// AddQuestionCategoryRequest creates a study folder. UserID is optional and must match the caller.
type AddQuestionCategoryRequest struct {
	UserID string `json:"userId"`
	Name   string `json:"name" binding:"required"`
}

// AddQuestionRequest creates a question in one of the caller's folders
type AddQuestionRequest struct {
	UserID     string `json:"userId"`
	CategoryID string `json:"categoryId" binding:"required"`
	Question   string `json:"question" binding:"required"`
	Answer     string `json:"answer" binding:"required"` // HTML, stored verbatim
}
