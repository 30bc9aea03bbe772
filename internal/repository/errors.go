package repository

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrDuplicate  = errors.New("record already exists")
	ErrForeignKey = errors.New("record is still referenced or references a missing record")
)

// Postgres error codes we translate
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqInvalidText         = "22P02" // e.g. a malformed uuid
)

// BlogCategoryConstraint is the foreign key from blogs to categories
const BlogCategoryConstraint = "blogs_category_id_fkey"

// ReferenceError is a foreign key violation on a named constraint. It matches ErrForeignKey.
type ReferenceError struct {
	Constraint string
}

func (e *ReferenceError) Error() string {
	return ErrForeignKey.Error() + " (" + e.Constraint + ")"
}

func (e *ReferenceError) Unwrap() error {
	return ErrForeignKey
}

// Violates reports whether err is a foreign key violation of constraint
func Violates(err error, constraint string) bool {
	var refErr *ReferenceError
	return errors.As(err, &refErr) && refErr.Constraint == constraint
}

// translate maps driver errors onto the repository sentinels, leaving others untouched
func translate(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch string(pqErr.Code) {
	case pqUniqueViolation:
		return ErrDuplicate
	case pqForeignKeyViolation:
		return &ReferenceError{Constraint: pqErr.Constraint}
	case pqInvalidText:
		return ErrNotFound
	}
	return err
}

// likePattern builds an ILIKE substring pattern with wildcards in term escaped
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}
