package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogspace-be/internal/models"
	"blogspace-be/internal/service"
)

type StudyController struct {
	studyService service.StudyService
}

func NewStudyController(studyService service.StudyService) *StudyController {
	return &StudyController{studyService: studyService}
}

// AddCategory handles POST /api/study/category
func (sc *StudyController) AddCategory(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.AddQuestionCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, service.ErrStudyFieldsRequired.Message, err)
		return
	}

	category, err := sc.studyService.AddCategory(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// ListCategories handles GET /api/study/categories/:userId
func (sc *StudyController) ListCategories(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	categories, err := sc.studyService.ListCategories(c.Request.Context(), userID, c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// AddQuestion handles POST /api/study/question
func (sc *StudyController) AddQuestion(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.AddQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, service.ErrStudyFieldsRequired.Message, err)
		return
	}

	question, err := sc.studyService.AddQuestion(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, question)
}

// ListQuestions handles GET /api/study/questions/:userId/:categoryId
func (sc *StudyController) ListQuestions(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	questions, err := sc.studyService.ListQuestions(c.Request.Context(), userID, c.Param("userId"), c.Param("categoryId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, questions)
}

// DeleteQuestion handles DELETE /api/study/question/:id
func (sc *StudyController) DeleteQuestion(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := sc.studyService.DeleteQuestion(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Deleted successfully"})
}
