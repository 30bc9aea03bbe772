package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"blogspace-be/internal/entities"
	"blogspace-be/internal/jwt"
	"blogspace-be/internal/models"
	"blogspace-be/internal/repository"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	Me(ctx context.Context, userID string) (*models.ProfileResponse, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
	hashCost   int
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtService *jwt.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		hashCost:   bcrypt.DefaultCost,
	}
}

// normalizeEmail makes email lookups case-insensitive
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user account
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)
	if name == "" || email == "" || req.Password == "" {
		return nil, validationError("Name, email and password are required")
	}

	// Check if user already exists
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, ErrEmailTaken
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(ctx, name, email, string(hashedPassword))
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}

	return &models.RegisterResponse{
		Status: http.StatusCreated,
		Data:   summarize(user),
	}, nil
}

// Login authenticates a user and returns user info with JWT token
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(req.Email))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.LoginResponse{
		Status:  http.StatusOK,
		Message: "Logged in successfully.",
		Data:    summarize(user),
		Token:   token,
	}, nil
}

// Me resolves the session identity to the current profile
func (s *authService) Me(ctx context.Context, userID string) (*models.ProfileResponse, error) {
	return findProfile(ctx, s.userRepo, userID)
}

func summarize(user *entities.User) models.UserSummary {
	return models.UserSummary{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
	}
}

func toProfile(user *entities.User) *models.ProfileResponse {
	return &models.ProfileResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Image: user.Image,
	}
}

func findProfile(ctx context.Context, users repository.UserRepository, userID string) (*models.ProfileResponse, error) {
	if !isUUID(userID) {
		return nil, ErrUserNotFound
	}
	user, err := users.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return toProfile(user), nil
}
