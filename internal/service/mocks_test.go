package service

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"blogspace-be/internal/cache"
	"blogspace-be/internal/entities"
	"blogspace-be/internal/repository"
	"blogspace-be/internal/storage"
)

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, name, email, passwordHash string) (*entities.User, error) {
	args := m.Called(ctx, name, email, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id, name, email string, image *string) (*entities.User, error) {
	args := m.Called(ctx, id, name, email, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

// MockBlogRepository is a mock implementation of repository.BlogRepository
type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) Create(ctx context.Context, blog *entities.Blog) (*entities.Blog, error) {
	args := m.Called(ctx, blog)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Blog), args.Error(1)
}

func (m *MockBlogRepository) FindByID(ctx context.Context, id string) (*entities.PopulatedBlog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PopulatedBlog), args.Error(1)
}

func (m *MockBlogRepository) Find(ctx context.Context, filter repository.BlogFilter) ([]*entities.PopulatedBlog, int, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*entities.PopulatedBlog), args.Int(1), args.Error(2)
}

func (m *MockBlogRepository) FindByAuthor(ctx context.Context, authorID string) ([]*entities.PopulatedBlog, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).([]*entities.PopulatedBlog), args.Error(1)
}

func (m *MockBlogRepository) Update(ctx context.Context, blog *entities.Blog) error {
	args := m.Called(ctx, blog)
	return args.Error(0)
}

func (m *MockBlogRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBlogRepository) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	args := m.Called(ctx, categoryID)
	return args.Int(0), args.Error(1)
}

// MockCategoryRepository is a mock implementation of repository.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, name string, description *string) (*entities.Category, error) {
	args := m.Called(ctx, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context) ([]*entities.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entities.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id string) (*entities.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Category), args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, id string, name, description *string) (*entities.Category, error) {
	args := m.Called(ctx, id, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Category), args.Error(1)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockQuestionCategoryRepository is a mock implementation of repository.QuestionCategoryRepository
type MockQuestionCategoryRepository struct {
	mock.Mock
}

func (m *MockQuestionCategoryRepository) Create(ctx context.Context, userID, name string) (*entities.QuestionCategory, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.QuestionCategory), args.Error(1)
}

func (m *MockQuestionCategoryRepository) FindByUser(ctx context.Context, userID string) ([]*entities.QuestionCategory, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*entities.QuestionCategory), args.Error(1)
}

func (m *MockQuestionCategoryRepository) FindByID(ctx context.Context, id string) (*entities.QuestionCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.QuestionCategory), args.Error(1)
}

// MockQuestionRepository is a mock implementation of repository.QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Create(ctx context.Context, q *entities.Question) (*entities.Question, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Question), args.Error(1)
}

func (m *MockQuestionRepository) FindByUserAndCategory(ctx context.Context, userID, categoryID string) ([]*entities.Question, error) {
	args := m.Called(ctx, userID, categoryID)
	return args.Get(0).([]*entities.Question), args.Error(1)
}

func (m *MockQuestionRepository) FindByID(ctx context.Context, id string) (*entities.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Question), args.Error(1)
}

func (m *MockQuestionRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockStorage is a mock implementation of storage.Storage
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Save(ctx context.Context, obj *storage.Object) (string, error) {
	args := m.Called(ctx, obj)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, ref string) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

// memoryCache is an in-process cache.Cache for tests
type memoryCache struct {
	mu      sync.Mutex
	entries map[string]string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]string)}
}

func (c *memoryCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	if !ok {
		return "", cache.ErrCacheMiss
	}
	return v, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
	}
	return nil
}

func (c *memoryCache) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, string(data), expiration)
}

func (c *memoryCache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	v, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(v), dest)
}

func (c *memoryCache) Close() error { return nil }

func (c *memoryCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

func testImage(name string) *storage.Object {
	return &storage.Object{Filename: name, Size: 3, Body: strings.NewReader("img")}
}
