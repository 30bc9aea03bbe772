package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"blogspace-be/internal/entities"
	"blogspace-be/internal/models"
	"blogspace-be/internal/repository"
)

func TestProfileService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	oldImage := "/uploads/old.png"
	current := &entities.User{ID: userA, Name: "Ada", Email: "ada@example.com", Image: &oldImage}

	t.Run("email held by another user", func(t *testing.T) {
		users, store := new(MockUserRepository), new(MockStorage)
		svc := NewProfileService(users, store, zap.NewNop())
		users.On("FindByID", ctx, userA).Return(current, nil)
		users.On("FindByEmail", ctx, "grace@example.com").Return(&entities.User{ID: userB}, nil)

		_, err := svc.UpdateProfile(ctx, userA, &models.UpdateProfileRequest{Name: "Ada", Email: "grace@example.com"}, nil)

		assert.ErrorIs(t, err, ErrEmailTaken)
		assert.Equal(t, KindConflict, KindOf(err))
		users.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("keeps image without a file", func(t *testing.T) {
		users, store := new(MockUserRepository), new(MockStorage)
		svc := NewProfileService(users, store, zap.NewNop())
		users.On("FindByID", ctx, userA).Return(current, nil)
		users.On("UpdateProfile", ctx, userA, "Ada L", "ada@example.com", &oldImage).
			Return(&entities.User{ID: userA, Name: "Ada L", Email: "ada@example.com", Image: &oldImage}, nil)

		profile, err := svc.UpdateProfile(ctx, userA, &models.UpdateProfileRequest{Name: "Ada L", Email: "ada@example.com"}, nil)

		require.NoError(t, err)
		assert.Equal(t, "Ada L", profile.Name)
		assert.Equal(t, &oldImage, profile.Image)
		store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("replaces the image", func(t *testing.T) {
		users, store := new(MockUserRepository), new(MockStorage)
		svc := NewProfileService(users, store, zap.NewNop())
		img := testImage("me.jpg")
		newImage := "/uploads/new.jpg"
		users.On("FindByID", ctx, userA).Return(current, nil)
		store.On("Save", ctx, img).Return(newImage, nil)
		store.On("Delete", ctx, oldImage).Return(nil)
		users.On("UpdateProfile", ctx, userA, "Ada", "ada@example.com", &newImage).
			Return(&entities.User{ID: userA, Name: "Ada", Email: "ada@example.com", Image: &newImage}, nil)

		profile, err := svc.UpdateProfile(ctx, userA, &models.UpdateProfileRequest{Name: "Ada", Email: "ada@example.com"}, img)

		require.NoError(t, err)
		assert.Equal(t, newImage, *profile.Image)
		store.AssertExpectations(t)
	})

	t.Run("required fields", func(t *testing.T) {
		users, store := new(MockUserRepository), new(MockStorage)
		svc := NewProfileService(users, store, zap.NewNop())

		_, err := svc.UpdateProfile(ctx, userA, &models.UpdateProfileRequest{Name: "", Email: "ada@example.com"}, nil)

		assert.ErrorIs(t, err, ErrProfileFieldsRequired)
	})

	t.Run("absent user", func(t *testing.T) {
		users, store := new(MockUserRepository), new(MockStorage)
		svc := NewProfileService(users, store, zap.NewNop())
		users.On("FindByID", ctx, userB).Return(nil, repository.ErrNotFound)

		_, err := svc.GetProfile(ctx, userB)

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
