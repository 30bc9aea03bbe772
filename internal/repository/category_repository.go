package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"blogspace-be/internal/entities"
)

// CategoryRepository defines the interface for category database operations
type CategoryRepository interface {
	Create(ctx context.Context, name string, description *string) (*entities.Category, error)
	FindAll(ctx context.Context) ([]*entities.Category, error)
	FindByID(ctx context.Context, id string) (*entities.Category, error)
	Update(ctx context.Context, id string, name, description *string) (*entities.Category, error)
	Delete(ctx context.Context, id string) error
}

type categoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *sql.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

const categoryColumns = `id, name, description, created_at, updated_at`

func scanCategory(row interface{ Scan(...any) error }) (*entities.Category, error) {
	var c entities.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new category
func (r *categoryRepository) Create(ctx context.Context, name string, description *string) (*entities.Category, error) {
	query := `
		INSERT INTO categories (name, description)
		VALUES ($1, $2)
		RETURNING ` + categoryColumns

	c, err := scanCategory(r.db.QueryRowContext(ctx, query, name, description))
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", translate(err))
	}
	return c, nil
}

// FindAll lists categories newest first
func (r *categoryRepository) FindAll(ctx context.Context) ([]*entities.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	defer rows.Close()

	categories := []*entities.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}
	return categories, nil
}

// FindByID finds a category by ID
func (r *categoryRepository) FindByID(ctx context.Context, id string) (*entities.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

	c, err := scanCategory(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", translate(err))
	}
	return c, nil
}

// Update changes the non-nil fields of a category
func (r *categoryRepository) Update(ctx context.Context, id string, name, description *string) (*entities.Category, error) {
	query := `
		UPDATE categories
		SET name = COALESCE($2, name),
		    description = COALESCE($3, description),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + categoryColumns

	c, err := scanCategory(r.db.QueryRowContext(ctx, query, id, name, description))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update category: %w", translate(err))
	}
	return c, nil
}

// Delete removes a category. Categories still referenced by blogs yield ErrForeignKey.
func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", translate(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
