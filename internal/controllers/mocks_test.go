package controllers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"blogspace-be/internal/entities"
	"blogspace-be/internal/models"
	"blogspace-be/internal/storage"
)

// MockAuthService is a mock implementation of service.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RegisterResponse), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LoginResponse), args.Error(1)
}

func (m *MockAuthService) Me(ctx context.Context, userID string) (*models.ProfileResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProfileResponse), args.Error(1)
}

// MockBlogService is a mock implementation of service.BlogService
type MockBlogService struct {
	mock.Mock
}

func (m *MockBlogService) CreateBlog(ctx context.Context, userID string, form *models.BlogForm, image *storage.Object) (*models.BlogResponse, error) {
	args := m.Called(ctx, userID, form, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogResponse), args.Error(1)
}

func (m *MockBlogService) ListBlogs(ctx context.Context, query *models.BlogListQuery) (*models.BlogListResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogListResponse), args.Error(1)
}

func (m *MockBlogService) GetBlog(ctx context.Context, id string) (*models.BlogResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogResponse), args.Error(1)
}

func (m *MockBlogService) UpdateBlog(ctx context.Context, userID, id string, form *models.BlogForm, image *storage.Object) (*models.BlogResponse, error) {
	args := m.Called(ctx, userID, id, form, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogResponse), args.Error(1)
}

func (m *MockBlogService) DeleteBlog(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockBlogService) ListMyBlogs(ctx context.Context, userID string) ([]*models.BlogResponse, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*models.BlogResponse), args.Error(1)
}

// MockCategoryService is a mock implementation of service.CategoryService
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*entities.Category, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Category), args.Error(1)
}

func (m *MockCategoryService) ListCategories(ctx context.Context) ([]*entities.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entities.Category), args.Error(1)
}

func (m *MockCategoryService) GetCategory(ctx context.Context, id string) (*entities.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Category), args.Error(1)
}

func (m *MockCategoryService) UpdateCategory(ctx context.Context, id string, req *models.UpdateCategoryRequest) (*entities.Category, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Category), args.Error(1)
}

func (m *MockCategoryService) DeleteCategory(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockStudyService is a mock implementation of service.StudyService
type MockStudyService struct {
	mock.Mock
}

func (m *MockStudyService) AddCategory(ctx context.Context, userID string, req *models.AddQuestionCategoryRequest) (*entities.QuestionCategory, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.QuestionCategory), args.Error(1)
}

func (m *MockStudyService) ListCategories(ctx context.Context, userID, ownerID string) ([]*entities.QuestionCategory, error) {
	args := m.Called(ctx, userID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.QuestionCategory), args.Error(1)
}

func (m *MockStudyService) AddQuestion(ctx context.Context, userID string, req *models.AddQuestionRequest) (*entities.Question, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Question), args.Error(1)
}

func (m *MockStudyService) ListQuestions(ctx context.Context, userID, ownerID, categoryID string) ([]*entities.Question, error) {
	args := m.Called(ctx, userID, ownerID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Question), args.Error(1)
}

func (m *MockStudyService) DeleteQuestion(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// MockProfileService is a mock implementation of service.ProfileService
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID string) (*models.ProfileResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProfileResponse), args.Error(1)
}

func (m *MockProfileService) UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest, image *storage.Object) (*models.ProfileResponse, error) {
	args := m.Called(ctx, userID, req, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProfileResponse), args.Error(1)
}
