package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"blogspace-be/internal/storage"
)

func saveUpload(ctx context.Context, store storage.Storage, obj *storage.Object) (string, error) {
	ref, err := store.Save(ctx, obj)
	if errors.Is(err, storage.ErrUnsupportedType) {
		return "", validationError(err.Error())
	}
	if err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}
	return ref, nil
}

// discardUpload removes a stored image; failures are only logged
func discardUpload(ctx context.Context, store storage.Storage, logger *zap.Logger, ref string) {
	if ref == "" {
		return
	}
	if err := store.Delete(ctx, ref); err != nil && logger != nil {
		logger.Warn("Failed to remove upload", zap.String("ref", ref), zap.Error(err))
	}
}
