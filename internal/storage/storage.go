// Package storage keeps uploaded images and hands back the reference recorded on entities.
package storage

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrUnsupportedType = errors.New("only jpg, jpeg, png, gif and webp images are allowed")

var allowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// Object is an upload on its way into storage
type Object struct {
	Filename string // client side name, only the extension is kept
	Size     int64
	Body     io.Reader
}

// Storage saves uploads and removes the ones it owns
type Storage interface {
	// Save stores the object and returns the reference to record on the entity
	Save(ctx context.Context, obj *Object) (string, error)
	// Delete removes a reference returned by Save. References it did not issue are ignored.
	Delete(ctx context.Context, ref string) error
}

// objectName returns a fresh unique name keeping the lower-cased extension
func objectName(filename string) (name, contentType string, err error) {
	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := allowedExtensions[ext]
	if !ok {
		return "", "", ErrUnsupportedType
	}
	return uuid.NewString() + ext, contentType, nil
}
