package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"blogspace-be/internal/models"
	"blogspace-be/internal/repository"
	"blogspace-be/internal/storage"
)

// ProfileService reads and edits the caller's own profile
type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*models.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest, image *storage.Object) (*models.ProfileResponse, error)
}

type profileService struct {
	userRepo repository.UserRepository
	storage  storage.Storage
	logger   *zap.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(userRepo repository.UserRepository, store storage.Storage, logger *zap.Logger) ProfileService {
	return &profileService{userRepo: userRepo, storage: store, logger: logger}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*models.ProfileResponse, error) {
	return findProfile(ctx, s.userRepo, userID)
}

// UpdateProfile replaces name and email, and the image only when a new one is sent
func (s *profileService) UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest, image *storage.Object) (*models.ProfileResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)
	if name == "" || email == "" {
		return nil, ErrProfileFieldsRequired
	}
	if !isUUID(userID) {
		return nil, ErrUserNotFound
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	if email != user.Email {
		other, err := s.userRepo.FindByEmail(ctx, email)
		if err == nil && other.ID != user.ID {
			return nil, ErrEmailTaken
		}
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	imageRef := user.Image
	var uploaded string
	if image != nil {
		uploaded, err = saveUpload(ctx, s.storage, image)
		if err != nil {
			return nil, err
		}
		imageRef = &uploaded
	}

	updated, err := s.userRepo.UpdateProfile(ctx, userID, name, email, imageRef)
	if err != nil {
		discardUpload(ctx, s.storage, s.logger, uploaded)
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if uploaded != "" && user.Image != nil {
		discardUpload(ctx, s.storage, s.logger, *user.Image)
	}
	return toProfile(updated), nil
}
