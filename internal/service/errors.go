package service

import (
	"errors"

	"github.com/google/uuid"
)

// Kind classifies a service error for the transport layer
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

// Error is a failure the caller can act on; Message is safe to show to clients
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf reports the kind of err, KindInternal for anything that is not a service error
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

var (
	ErrEmailTaken         = newError(KindConflict, "User already exists")
	ErrInvalidCredentials = newError(KindUnauthorized, "Invalid credentials")
	ErrUserNotFound       = newError(KindNotFound, "User not found")

	ErrBlogFieldsRequired = newError(KindValidation, "All required fields (title, description, category) must be provided")
	ErrInvalidCategory    = newError(KindValidation, "Invalid category ID")
	ErrBlogNotFound       = newError(KindNotFound, "Blog not found")
	ErrNotBlogOwner       = newError(KindForbidden, "Not authorized to modify this blog")

	ErrCategoryNameRequired = newError(KindValidation, "Category name is required")
	ErrCategoryNotFound     = newError(KindNotFound, "Category not found")
	ErrCategoryInUse        = newError(KindValidation, "Cannot delete category with associated blogs")

	ErrStudyFieldsRequired = newError(KindValidation, "All required fields must be provided")
	ErrQuestionNotFound    = newError(KindNotFound, "Question not found")
	ErrNotStudyOwner       = newError(KindForbidden, "Not authorized to access this study material")

	ErrProfileFieldsRequired = newError(KindValidation, "Name and email are required")
)

// validationError wraps a message as a KindValidation error
func validationError(message string) error {
	return newError(KindValidation, message)
}

// isUUID reports whether id can be a primary key, malformed ids are treated as missing rows
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
