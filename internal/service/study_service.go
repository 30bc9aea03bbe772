package service

import (
	"context"
	"errors"
	"strings"

	"blogspace-be/internal/entities"
	"blogspace-be/internal/models"
	"blogspace-be/internal/repository"
)

// StudyService manages each user's private question notebook
type StudyService interface {
	AddCategory(ctx context.Context, userID string, req *models.AddQuestionCategoryRequest) (*entities.QuestionCategory, error)
	ListCategories(ctx context.Context, userID, ownerID string) ([]*entities.QuestionCategory, error)
	AddQuestion(ctx context.Context, userID string, req *models.AddQuestionRequest) (*entities.Question, error)
	ListQuestions(ctx context.Context, userID, ownerID, categoryID string) ([]*entities.Question, error)
	DeleteQuestion(ctx context.Context, userID, id string) error
}

type studyService struct {
	categoryRepo repository.QuestionCategoryRepository
	questionRepo repository.QuestionRepository
}

// NewStudyService creates a new study service
func NewStudyService(categoryRepo repository.QuestionCategoryRepository, questionRepo repository.QuestionRepository) StudyService {
	return &studyService{categoryRepo: categoryRepo, questionRepo: questionRepo}
}

// ensureSelf rejects a request naming a user other than the caller; an empty id means the caller
func ensureSelf(userID, claimed string) error {
	if claimed != "" && claimed != userID {
		return ErrNotStudyOwner
	}
	return nil
}

func (s *studyService) AddCategory(ctx context.Context, userID string, req *models.AddQuestionCategoryRequest) (*entities.QuestionCategory, error) {
	if err := ensureSelf(userID, req.UserID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrStudyFieldsRequired
	}
	return s.categoryRepo.Create(ctx, userID, name)
}

// ListCategories returns ownerID's folders oldest first. Only the owner may list them.
func (s *studyService) ListCategories(ctx context.Context, userID, ownerID string) ([]*entities.QuestionCategory, error) {
	if ownerID != userID {
		return nil, ErrNotStudyOwner
	}
	return s.categoryRepo.FindByUser(ctx, userID)
}

// AddQuestion stores a question in one of the caller's folders. The answer is kept verbatim.
func (s *studyService) AddQuestion(ctx context.Context, userID string, req *models.AddQuestionRequest) (*entities.Question, error) {
	if err := ensureSelf(userID, req.UserID); err != nil {
		return nil, err
	}
	categoryID := strings.TrimSpace(req.CategoryID)
	if categoryID == "" || strings.TrimSpace(req.Question) == "" || strings.TrimSpace(req.Answer) == "" {
		return nil, ErrStudyFieldsRequired
	}
	if !isUUID(categoryID) {
		return nil, ErrInvalidCategory
	}

	folder, err := s.categoryRepo.FindByID(ctx, categoryID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCategory
	}
	if err != nil {
		return nil, err
	}
	if folder.UserID != userID {
		return nil, ErrInvalidCategory
	}

	question, err := s.questionRepo.Create(ctx, &entities.Question{
		UserID:     userID,
		CategoryID: categoryID,
		Question:   req.Question,
		Answer:     req.Answer,
	})
	if errors.Is(err, repository.ErrForeignKey) {
		return nil, ErrInvalidCategory
	}
	return question, err
}

func (s *studyService) ListQuestions(ctx context.Context, userID, ownerID, categoryID string) ([]*entities.Question, error) {
	if ownerID != userID {
		return nil, ErrNotStudyOwner
	}
	if !isUUID(categoryID) {
		return []*entities.Question{}, nil
	}
	return s.questionRepo.FindByUserAndCategory(ctx, userID, categoryID)
}

// DeleteQuestion removes a question the caller owns
func (s *studyService) DeleteQuestion(ctx context.Context, userID, id string) error {
	if !isUUID(id) {
		return ErrQuestionNotFound
	}
	question, err := s.questionRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrQuestionNotFound
	}
	if err != nil {
		return err
	}
	if question.UserID != userID {
		return ErrNotStudyOwner
	}

	err = s.questionRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrQuestionNotFound
	}
	return err
}
