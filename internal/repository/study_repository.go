package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"blogspace-be/internal/entities"
)

// QuestionCategoryRepository defines the database operations on study folders
type QuestionCategoryRepository interface {
	Create(ctx context.Context, userID, name string) (*entities.QuestionCategory, error)
	FindByUser(ctx context.Context, userID string) ([]*entities.QuestionCategory, error)
	FindByID(ctx context.Context, id string) (*entities.QuestionCategory, error)
}

// QuestionRepository defines the database operations on study questions
type QuestionRepository interface {
	Create(ctx context.Context, q *entities.Question) (*entities.Question, error)
	FindByUserAndCategory(ctx context.Context, userID, categoryID string) ([]*entities.Question, error)
	FindByID(ctx context.Context, id string) (*entities.Question, error)
	Delete(ctx context.Context, id string) error
}

type questionCategoryRepository struct {
	db *sql.DB
}

// NewQuestionCategoryRepository creates a new study folder repository
func NewQuestionCategoryRepository(db *sql.DB) QuestionCategoryRepository {
	return &questionCategoryRepository{db: db}
}

const questionCategoryColumns = `id, user_id, name, created_at, updated_at`

func scanQuestionCategory(row interface{ Scan(...any) error }) (*entities.QuestionCategory, error) {
	var c entities.QuestionCategory
	if err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *questionCategoryRepository) Create(ctx context.Context, userID, name string) (*entities.QuestionCategory, error) {
	query := `
		INSERT INTO question_categories (user_id, name)
		VALUES ($1, $2)
		RETURNING ` + questionCategoryColumns

	c, err := scanQuestionCategory(r.db.QueryRowContext(ctx, query, userID, name))
	if err != nil {
		return nil, fmt.Errorf("failed to create question category: %w", translate(err))
	}
	return c, nil
}

// FindByUser lists the user's folders in creation order
func (r *questionCategoryRepository) FindByUser(ctx context.Context, userID string) ([]*entities.QuestionCategory, error) {
	query := `SELECT ` + questionCategoryColumns + `
		FROM question_categories
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get question categories: %w", translate(err))
	}
	defer rows.Close()

	categories := []*entities.QuestionCategory{}
	for rows.Next() {
		c, err := scanQuestionCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan question category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating question categories: %w", err)
	}
	return categories, nil
}

func (r *questionCategoryRepository) FindByID(ctx context.Context, id string) (*entities.QuestionCategory, error) {
	query := `SELECT ` + questionCategoryColumns + ` FROM question_categories WHERE id = $1`

	c, err := scanQuestionCategory(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find question category: %w", translate(err))
	}
	return c, nil
}

type questionRepository struct {
	db *sql.DB
}

// NewQuestionRepository creates a new study question repository
func NewQuestionRepository(db *sql.DB) QuestionRepository {
	return &questionRepository{db: db}
}

const questionColumns = `id, user_id, category_id, question, answer, created_at, updated_at`

func scanQuestion(row interface{ Scan(...any) error }) (*entities.Question, error) {
	var q entities.Question
	err := row.Scan(&q.ID, &q.UserID, &q.CategoryID, &q.Question, &q.Answer, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *questionRepository) Create(ctx context.Context, q *entities.Question) (*entities.Question, error) {
	query := `
		INSERT INTO questions (user_id, category_id, question, answer)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + questionColumns

	created, err := scanQuestion(r.db.QueryRowContext(ctx, query, q.UserID, q.CategoryID, q.Question, q.Answer))
	if err != nil {
		return nil, fmt.Errorf("failed to create question: %w", translate(err))
	}
	return created, nil
}

// FindByUserAndCategory lists a folder's questions in creation order
func (r *questionRepository) FindByUserAndCategory(ctx context.Context, userID, categoryID string) ([]*entities.Question, error) {
	query := `SELECT ` + questionColumns + `
		FROM questions
		WHERE user_id = $1 AND category_id = $2
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, userID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", translate(err))
	}
	defer rows.Close()

	questions := []*entities.Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating questions: %w", err)
	}
	return questions, nil
}

func (r *questionRepository) FindByID(ctx context.Context, id string) (*entities.Question, error) {
	q, err := scanQuestion(r.db.QueryRowContext(ctx, `SELECT `+questionColumns+` FROM questions WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find question: %w", translate(err))
	}
	return q, nil
}

func (r *questionRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", translate(err))
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
