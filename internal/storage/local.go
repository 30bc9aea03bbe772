package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// LocalStorage writes uploads to a directory that is served statically under publicPath
type LocalStorage struct {
	dir        string
	publicPath string
	logger     *zap.Logger
}

var _ Storage = (*LocalStorage)(nil)

// NewLocalStorage creates the upload directory if needed
func NewLocalStorage(dir, publicPath string, logger *zap.Logger) (*LocalStorage, error) {
	if dir == "" {
		return nil, errors.New("upload directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocalStorage{
		dir:        dir,
		publicPath: "/" + strings.Trim(publicPath, "/"),
		logger:     logger,
	}, nil
}

// Dir is the directory to mount for static serving
func (s *LocalStorage) Dir() string {
	return s.dir
}

// PublicPath is the URL prefix of stored references
func (s *LocalStorage) PublicPath() string {
	return s.publicPath
}

// Save writes the object and returns "<publicPath>/<name>"
func (s *LocalStorage) Save(ctx context.Context, obj *Object) (string, error) {
	name, _, err := objectName(obj.Filename)
	if err != nil {
		return "", err
	}

	dst := filepath.Join(s.dir, name)
	f, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	if _, err := io.Copy(f, obj.Body); err != nil {
		f.Close()
		os.Remove(dst)
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	s.logger.Debug("Stored upload", zap.String("file", name))
	return path.Join(s.publicPath, name), nil
}

// Delete removes a file previously returned by Save
func (s *LocalStorage) Delete(ctx context.Context, ref string) error {
	prefix := s.publicPath + "/"
	if !strings.HasPrefix(ref, prefix) {
		return nil
	}
	name := filepath.Base(strings.TrimPrefix(ref, prefix))
	if name == "." || name == "/" {
		return nil
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete upload: %w", err)
	}
	return nil
}
