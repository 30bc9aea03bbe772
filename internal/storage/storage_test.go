package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogspace-be/internal/config"
)

func TestLocalStorage_SaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir, "uploads/", nil)
	require.NoError(t, err)
	ctx := context.Background()

	ref, err := s.Save(ctx, &Object{Filename: "Cover.PNG", Body: strings.NewReader("png-bytes")})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref, "/uploads/"))
	assert.True(t, strings.HasSuffix(ref, ".png"))
	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(ref)))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, s.Delete(ctx, ref))
	_, err = os.Stat(filepath.Join(dir, filepath.Base(ref)))
	assert.True(t, os.IsNotExist(err))

	// deleting twice is not an error
	assert.NoError(t, s.Delete(ctx, ref))
}

func TestLocalStorage_RejectsUnsupportedType(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "/uploads", nil)
	require.NoError(t, err)

	_, err = s.Save(context.Background(), &Object{Filename: "script.sh", Body: strings.NewReader("#!")})

	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestLocalStorage_IgnoresForeignReferences(t *testing.T) {
	dir := t.TempDir()
	keep := filepath.Join(dir, "keep.png")
	require.NoError(t, os.WriteFile(keep, []byte("x"), 0o644))
	s, err := NewLocalStorage(dir, "/uploads", nil)
	require.NoError(t, err)

	assert.NoError(t, s.Delete(context.Background(), "https://via.placeholder.com/300x200"))
	assert.NoError(t, s.Delete(context.Background(), "/other/keep.png"))

	_, err = os.Stat(keep)
	assert.NoError(t, err)
}

func TestLocalStorage_DeleteStaysInsideDir(t *testing.T) {
	parent := t.TempDir()
	outside := filepath.Join(parent, "secret.png")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o644))
	s, err := NewLocalStorage(filepath.Join(parent, "uploads"), "/uploads", nil)
	require.NoError(t, err)

	assert.NoError(t, s.Delete(context.Background(), "/uploads/../secret.png"))

	_, err = os.Stat(outside)
	assert.NoError(t, err)
}

func TestNewS3Storage_Validation(t *testing.T) {
	ctx := context.Background()

	t.Run("nil config returns error", func(t *testing.T) {
		_, err := NewS3Storage(ctx, nil, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "configuration is required")
	})

	t.Run("missing bucket returns error", func(t *testing.T) {
		_, err := NewS3Storage(ctx, &config.StorageConfig{AccessKey: "k", SecretKey: "s", PublicURL: "https://cdn.test"}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bucket is required")
	})

	t.Run("missing credentials returns error", func(t *testing.T) {
		_, err := NewS3Storage(ctx, &config.StorageConfig{Bucket: "b", PublicURL: "https://cdn.test"}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "secret key are required")
	})

	t.Run("valid config creates storage", func(t *testing.T) {
		s, err := NewS3Storage(ctx, &config.StorageConfig{
			Bucket:       "blog-images",
			AccessKey:    "k",
			SecretKey:    "s",
			Endpoint:     "http://localhost:9000",
			UsePathStyle: true,
			KeyPrefix:    "uploads/",
			PublicURL:    "https://cdn.test/",
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.test", s.publicURL)
	})
}

func TestS3Storage_KeyFor(t *testing.T) {
	s := &S3Storage{publicURL: "https://cdn.test", keyPrefix: "uploads/"}

	key, ok := s.keyFor("https://cdn.test/uploads/abc.png")
	assert.True(t, ok)
	assert.Equal(t, "uploads/abc.png", key)

	_, ok = s.keyFor("https://via.placeholder.com/300x200")
	assert.False(t, ok)

	_, ok = s.keyFor("https://cdn.test/other/abc.png")
	assert.False(t, ok)
}
