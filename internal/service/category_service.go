package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"blogspace-be/internal/cache"
	"blogspace-be/internal/entities"
	"blogspace-be/internal/models"
	"blogspace-be/internal/repository"
)

const (
	categoryListKey  = "categories:all"
	categoryCacheTTL = 10 * time.Minute
)

func categoryKey(id string) string {
	return fmt.Sprintf("categories:%s", id)
}

// CategoryService defines the interface for category business logic
type CategoryService interface {
	CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*entities.Category, error)
	ListCategories(ctx context.Context) ([]*entities.Category, error)
	GetCategory(ctx context.Context, id string) (*entities.Category, error)
	UpdateCategory(ctx context.Context, id string, req *models.UpdateCategoryRequest) (*entities.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	blogRepo     repository.BlogRepository
	cache        cache.Cache
	logger       *zap.Logger
}

// NewCategoryService creates a new category service. cacheClient may be nil.
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	blogRepo repository.BlogRepository,
	cacheClient cache.Cache,
	logger *zap.Logger,
) CategoryService {
	svc := &categoryService{
		categoryRepo: categoryRepo,
		blogRepo:     blogRepo,
		logger:       logger,
	}
	// Only set cache if provided (allows graceful degradation)
	if cacheClient != nil {
		svc.cache = cacheClient
	}
	return svc
}

func (s *categoryService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*entities.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrCategoryNameRequired
	}

	category, err := s.categoryRepo.Create(ctx, name, req.Description)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return category, nil
}

// ListCategories returns all categories, newest first
func (s *categoryService) ListCategories(ctx context.Context) ([]*entities.Category, error) {
	if s.cache != nil {
		var cached []*entities.Category
		if err := s.cache.GetJSON(ctx, categoryListKey, &cached); err == nil {
			return cached, nil
		}
	}

	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	s.store(ctx, categoryListKey, categories)
	return categories, nil
}

func (s *categoryService) GetCategory(ctx context.Context, id string) (*entities.Category, error) {
	if !isUUID(id) {
		return nil, ErrCategoryNotFound
	}
	if s.cache != nil {
		var cached entities.Category
		if err := s.cache.GetJSON(ctx, categoryKey(id), &cached); err == nil {
			return &cached, nil
		}
	}

	category, err := s.categoryRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	s.store(ctx, categoryKey(id), category)
	return category, nil
}

// UpdateCategory changes only the fields present in req
func (s *categoryService) UpdateCategory(ctx context.Context, id string, req *models.UpdateCategoryRequest) (*entities.Category, error) {
	name := req.Name
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, ErrCategoryNameRequired
		}
		name = &trimmed
	}
	if !isUUID(id) {
		return nil, ErrCategoryNotFound
	}

	category, err := s.categoryRepo.Update(ctx, id, name, req.Description)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return category, nil
}

// DeleteCategory removes a category no blog refers to
func (s *categoryService) DeleteCategory(ctx context.Context, id string) error {
	if !isUUID(id) {
		return ErrCategoryNotFound
	}
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	count, err := s.blogRepo.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}

	err = s.categoryRepo.Delete(ctx, id)
	switch {
	case errors.Is(err, repository.ErrForeignKey):
		return ErrCategoryInUse
	case errors.Is(err, repository.ErrNotFound):
		return ErrCategoryNotFound
	case err != nil:
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *categoryService) store(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, key, value, categoryCacheTTL); err != nil {
		s.logger.Warn("Failed to cache categories", zap.String("key", key), zap.Error(err))
	}
}

func (s *categoryService) invalidate(ctx context.Context, ids ...string) {
	if s.cache == nil {
		return
	}
	keys := []string{categoryListKey}
	for _, id := range ids {
		keys = append(keys, categoryKey(id))
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.logger.Warn("Failed to invalidate category cache", zap.Strings("keys", keys), zap.Error(err))
	}
}
