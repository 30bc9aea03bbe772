package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"blogspace-be/internal/entities"
)

// UserRepository defines the interface for user database operations
type UserRepository interface {
	Create(ctx context.Context, name, email, passwordHash string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByID(ctx context.Context, id string) (*entities.User, error)
	UpdateProfile(ctx context.Context, id, name, email string, image *string) (*entities.User, error)
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, name, email, password_hash, image, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Image,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, name, email, passwordHash string) (*entities.User, error) {
	query := `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRowContext(ctx, query, name, email, passwordHash))
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", translate(err))
	}
	return user, nil
}

// FindByEmail finds a user by email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// FindByID finds a user by ID (UUID)
func (r *userRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", translate(err))
	}
	return user, nil
}

// UpdateProfile replaces name, email and image of a user
func (r *userRepository) UpdateProfile(ctx context.Context, id, name, email string, image *string) (*entities.User, error) {
	query := `
		UPDATE users
		SET name = $2, email = $3, image = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id, name, email, image))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", translate(err))
	}
	return user, nil
}
