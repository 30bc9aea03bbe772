package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"blogspace-be/internal/entities"
)

// BlogFilter narrows the blog feed; an empty Search matches everything
type BlogFilter struct {
	Search string
	Offset int
	Limit  int
}

// BlogRepository defines the interface for blog database operations
type BlogRepository interface {
	Create(ctx context.Context, blog *entities.Blog) (*entities.Blog, error)
	FindByID(ctx context.Context, id string) (*entities.PopulatedBlog, error)
	Find(ctx context.Context, filter BlogFilter) ([]*entities.PopulatedBlog, int, error)
	FindByAuthor(ctx context.Context, authorID string) ([]*entities.PopulatedBlog, error)
	Update(ctx context.Context, blog *entities.Blog) error
	Delete(ctx context.Context, id string) error
	CountByCategory(ctx context.Context, categoryID string) (int, error)
}

type blogRepository struct {
	db *sql.DB
}

// NewBlogRepository creates a new blog repository
func NewBlogRepository(db *sql.DB) BlogRepository {
	return &blogRepository{db: db}
}

// populatedSelect joins the category and author of every blog
const populatedSelect = `
	SELECT b.id, b.title, b.description, b.image, b.category_id, b.author_id, b.user_id,
	       b.created_at, b.updated_at, c.name, c.description, u.name
	FROM blogs b
	JOIN categories c ON c.id = b.category_id
	JOIN users u ON u.id = b.author_id`

const searchClause = ` WHERE (b.title ILIKE $1 OR b.description ILIKE $1 OR c.name ILIKE $1)`

const newestFirst = ` ORDER BY b.created_at DESC, b.id DESC`

func scanPopulatedBlog(row interface{ Scan(...any) error }) (*entities.PopulatedBlog, error) {
	var b entities.PopulatedBlog
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Description,
		&b.Image,
		&b.CategoryID,
		&b.AuthorID,
		&b.UserID,
		&b.CreatedAt,
		&b.UpdatedAt,
		&b.CategoryName,
		&b.CategoryDescription,
		&b.AuthorName,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *blogRepository) queryPopulated(ctx context.Context, query string, args ...any) ([]*entities.PopulatedBlog, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get blogs: %w", translate(err))
	}
	defer rows.Close()

	blogs := []*entities.PopulatedBlog{}
	for rows.Next() {
		b, err := scanPopulatedBlog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan blog: %w", err)
		}
		blogs = append(blogs, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating blogs: %w", err)
	}
	return blogs, nil
}

// Create inserts a blog and fills in the generated id and timestamps
func (r *blogRepository) Create(ctx context.Context, blog *entities.Blog) (*entities.Blog, error) {
	query := `
		INSERT INTO blogs (title, description, image, category_id, author_id, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	created := *blog
	err := r.db.QueryRowContext(ctx, query,
		blog.Title, blog.Description, blog.Image, blog.CategoryID, blog.AuthorID, blog.UserID,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create blog: %w", translate(err))
	}
	return &created, nil
}

// FindByID returns one blog with its references resolved
func (r *blogRepository) FindByID(ctx context.Context, id string) (*entities.PopulatedBlog, error) {
	b, err := scanPopulatedBlog(r.db.QueryRowContext(ctx, populatedSelect+` WHERE b.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find blog: %w", translate(err))
	}
	return b, nil
}

// Find returns one page of the feed and the number of blogs matching the filter
func (r *blogRepository) Find(ctx context.Context, filter BlogFilter) ([]*entities.PopulatedBlog, int, error) {
	countQuery := `
		SELECT COUNT(*)
		FROM blogs b
		JOIN categories c ON c.id = b.category_id
		JOIN users u ON u.id = b.author_id`
	pageQuery := populatedSelect

	var args []any
	if filter.Search != "" {
		countQuery += searchClause
		pageQuery += searchClause
		args = append(args, likePattern(filter.Search))
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count blogs: %w", err)
	}

	n := len(args)
	pageQuery += newestFirst + fmt.Sprintf(` LIMIT $%d OFFSET $%d`, n+1, n+2)
	args = append(args, filter.Limit, filter.Offset)

	blogs, err := r.queryPopulated(ctx, pageQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	return blogs, total, nil
}

// FindByAuthor returns every blog written by the user, newest first
func (r *blogRepository) FindByAuthor(ctx context.Context, authorID string) ([]*entities.PopulatedBlog, error) {
	return r.queryPopulated(ctx, populatedSelect+` WHERE b.author_id = $1`+newestFirst, authorID)
}

// Update stores the mutable fields of a blog. Author and owner are never changed.
func (r *blogRepository) Update(ctx context.Context, blog *entities.Blog) error {
	query := `
		UPDATE blogs
		SET title = $2, description = $3, category_id = $4, image = $5, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, blog.ID, blog.Title, blog.Description, blog.CategoryID, blog.Image)
	if err != nil {
		return fmt.Errorf("failed to update blog: %w", translate(err))
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

// Delete removes a blog
func (r *blogRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", translate(err))
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

// CountByCategory returns how many blogs reference the category
func (r *blogRepository) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM blogs WHERE category_id = $1`, categoryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count blogs: %w", translate(err))
	}
	return count, nil
}
