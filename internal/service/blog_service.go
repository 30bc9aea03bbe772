package service

import (
	"context"
	"errors"
	"math"
	"strings"

	"go.uber.org/zap"

	"blogspace-be/internal/entities"
	"blogspace-be/internal/models"
	"blogspace-be/internal/repository"
	"blogspace-be/internal/storage"
)

const (
	// PlaceholderImage is recorded when a blog is created without an upload
	PlaceholderImage = "https://via.placeholder.com/300x200"

	defaultPage  = 1
	defaultLimit = 6
	maxLimit     = 100
)

// BlogService defines the interface for blog business logic
type BlogService interface {
	CreateBlog(ctx context.Context, userID string, form *models.BlogForm, image *storage.Object) (*models.BlogResponse, error)
	ListBlogs(ctx context.Context, query *models.BlogListQuery) (*models.BlogListResponse, error)
	GetBlog(ctx context.Context, id string) (*models.BlogResponse, error)
	UpdateBlog(ctx context.Context, userID, id string, form *models.BlogForm, image *storage.Object) (*models.BlogResponse, error)
	DeleteBlog(ctx context.Context, userID, id string) error
	ListMyBlogs(ctx context.Context, userID string) ([]*models.BlogResponse, error)
}

type blogService struct {
	blogRepo     repository.BlogRepository
	categoryRepo repository.CategoryRepository
	storage      storage.Storage
	logger       *zap.Logger
}

// NewBlogService creates a new blog service
func NewBlogService(
	blogRepo repository.BlogRepository,
	categoryRepo repository.CategoryRepository,
	store storage.Storage,
	logger *zap.Logger,
) BlogService {
	return &blogService{
		blogRepo:     blogRepo,
		categoryRepo: categoryRepo,
		storage:      store,
		logger:       logger,
	}
}

type blogFields struct {
	title, description, categoryID string
}

func (s *blogService) validate(ctx context.Context, form *models.BlogForm) (*blogFields, error) {
	f := &blogFields{
		title:       strings.TrimSpace(form.Title),
		description: strings.TrimSpace(form.Description),
		categoryID:  strings.TrimSpace(form.Category),
	}
	if f.title == "" || f.description == "" || f.categoryID == "" {
		return nil, ErrBlogFieldsRequired
	}
	if !isUUID(f.categoryID) {
		return nil, ErrInvalidCategory
	}
	if _, err := s.categoryRepo.FindByID(ctx, f.categoryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCategory
		}
		return nil, err
	}
	return f, nil
}

// CreateBlog stores a new post authored by userID
func (s *blogService) CreateBlog(ctx context.Context, userID string, form *models.BlogForm, image *storage.Object) (*models.BlogResponse, error) {
	fields, err := s.validate(ctx, form)
	if err != nil {
		return nil, err
	}

	imageRef := PlaceholderImage
	var uploaded string
	if image != nil {
		uploaded, err = saveUpload(ctx, s.storage, image)
		if err != nil {
			return nil, err
		}
		imageRef = uploaded
	}

	created, err := s.blogRepo.Create(ctx, &entities.Blog{
		Title:       fields.title,
		Description: fields.description,
		Image:       imageRef,
		CategoryID:  fields.categoryID,
		AuthorID:    userID,
		UserID:      userID,
	})
	if err != nil {
		discardUpload(ctx, s.storage, s.logger, uploaded)
		return nil, blogWriteError(err)
	}

	blog, err := s.blogRepo.FindByID(ctx, created.ID)
	if err != nil {
		return nil, err
	}
	return toBlogResponse(blog), nil
}

// ListBlogs returns one page of the feed, newest first
func (s *blogService) ListBlogs(ctx context.Context, query *models.BlogListQuery) (*models.BlogListResponse, error) {
	page, limit := query.Page, query.Limit
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	// Keeps the offset inside a Postgres integer
	if lastPage := math.MaxInt32/limit + 1; page > lastPage {
		page = lastPage
	}

	blogs, total, err := s.blogRepo.Find(ctx, repository.BlogFilter{
		Search: strings.TrimSpace(query.Search),
		Offset: (page - 1) * limit,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	return &models.BlogListResponse{
		Blogs:       toBlogResponses(blogs),
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
		CurrentPage: page,
		TotalBlogs:  total,
	}, nil
}

// blogWriteError tells a vanished category apart from a vanished author
func blogWriteError(err error) error {
	switch {
	case repository.Violates(err, repository.BlogCategoryConstraint):
		return ErrInvalidCategory
	case errors.Is(err, repository.ErrForeignKey):
		return ErrUserNotFound
	}
	return err
}

func (s *blogService) find(ctx context.Context, id string) (*entities.PopulatedBlog, error) {
	if !isUUID(id) {
		return nil, ErrBlogNotFound
	}
	blog, err := s.blogRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrBlogNotFound
	}
	if err != nil {
		return nil, err
	}
	return blog, nil
}

// GetBlog returns a single post with its category and author
func (s *blogService) GetBlog(ctx context.Context, id string) (*models.BlogResponse, error) {
	blog, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBlogResponse(blog), nil
}

// UpdateBlog edits a post owned by userID. The image only changes when a new one is sent.
func (s *blogService) UpdateBlog(ctx context.Context, userID, id string, form *models.BlogForm, image *storage.Object) (*models.BlogResponse, error) {
	if strings.TrimSpace(form.Title) == "" || strings.TrimSpace(form.Description) == "" || strings.TrimSpace(form.Category) == "" {
		return nil, ErrBlogFieldsRequired
	}

	existing, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, ErrNotBlogOwner
	}

	fields, err := s.validate(ctx, form)
	if err != nil {
		return nil, err
	}

	updated := existing.Blog
	updated.Title = fields.title
	updated.Description = fields.description
	updated.CategoryID = fields.categoryID

	var uploaded string
	if image != nil {
		uploaded, err = saveUpload(ctx, s.storage, image)
		if err != nil {
			return nil, err
		}
		updated.Image = uploaded
	}

	if err := s.blogRepo.Update(ctx, &updated); err != nil {
		discardUpload(ctx, s.storage, s.logger, uploaded)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, blogWriteError(err)
	}
	if uploaded != "" {
		discardUpload(ctx, s.storage, s.logger, existing.Image)
	}

	blog, err := s.blogRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBlogResponse(blog), nil
}

// DeleteBlog removes a post owned by userID along with its upload
func (s *blogService) DeleteBlog(ctx context.Context, userID, id string) error {
	existing, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return ErrNotBlogOwner
	}

	if err := s.blogRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrBlogNotFound
		}
		return err
	}
	discardUpload(ctx, s.storage, s.logger, existing.Image)
	return nil
}

// ListMyBlogs returns every post authored by userID, newest first
func (s *blogService) ListMyBlogs(ctx context.Context, userID string) ([]*models.BlogResponse, error) {
	blogs, err := s.blogRepo.FindByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toBlogResponses(blogs), nil
}

func toBlogResponse(b *entities.PopulatedBlog) *models.BlogResponse {
	return &models.BlogResponse{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Image:       b.Image,
		Category: models.BlogCategory{
			ID:          b.CategoryID,
			Name:        b.CategoryName,
			Description: b.CategoryDescription,
		},
		Author: models.BlogAuthor{
			ID:   b.AuthorID,
			Name: b.AuthorName,
		},
		User:      b.UserID,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toBlogResponses(blogs []*entities.PopulatedBlog) []*models.BlogResponse {
	out := make([]*models.BlogResponse, 0, len(blogs))
	for _, b := range blogs {
		out = append(out, toBlogResponse(b))
	}
	return out
}
