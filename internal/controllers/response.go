package controllers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blogspace-be/internal/logger"
	"blogspace-be/internal/middleware"
	"blogspace-be/internal/service"
	"blogspace-be/internal/storage"
)

// imageField is the multipart part holding an upload
const imageField = "image"

// formOverhead is the room left for the text fields of a multipart body
const formOverhead = 1 << 20

var statusByKind = map[service.Kind]int{
	service.KindValidation:   http.StatusBadRequest,
	service.KindUnauthorized: http.StatusUnauthorized,
	service.KindForbidden:    http.StatusForbidden,
	service.KindNotFound:     http.StatusNotFound,
	service.KindConflict:     http.StatusConflict,
}

// respondError writes err with the status of its kind. Unclassified errors are logged and answered with 500.
func respondError(c *gin.Context, err error) {
	if status, ok := statusByKind[service.KindOf(err)]; ok {
		c.JSON(status, gin.H{"message": err.Error()})
		return
	}

	logger.FromGin(c, nil).Error("Request failed", zap.Error(err))
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"message": "Server error",
		"error":   err.Error(),
	})
}

func badRequest(c *gin.Context, message string, err error) {
	body := gin.H{"message": message}
	if err != nil {
		body["error"] = err.Error()
	}
	c.JSON(http.StatusBadRequest, body)
}

// currentUser returns the caller or answers 401
func currentUser(c *gin.Context) (string, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"message": "User ID not found in token",
		})
	}
	return userID, ok
}

// uploadReader opens the optional image part of a multipart request
type uploadReader struct {
	maxBytes int64
}

// bind caps the request body and binds obj from it, answering 400 on failure
func (u uploadReader) bind(c *gin.Context, obj any, message string) bool {
	if u.maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, u.maxBytes+formOverhead)
	}
	if err := c.ShouldBind(obj); err != nil {
		if tooLarge(err) {
			respondError(c, errImageTooLarge(u.maxBytes))
			return false
		}
		badRequest(c, message, err)
		return false
	}
	return true
}

// open returns nil when no image was sent. The caller closes the returned file.
func (u uploadReader) open(c *gin.Context) (*storage.Object, multipart.File, error) {
	header, err := c.FormFile(imageField)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil, nil
	}
	if tooLarge(err) {
		return nil, nil, errImageTooLarge(u.maxBytes)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read image: %w", err)
	}
	if u.maxBytes > 0 && header.Size > u.maxBytes {
		return nil, nil, errImageTooLarge(u.maxBytes)
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open image: %w", err)
	}
	return &storage.Object{
		Filename: header.Filename,
		Size:     header.Size,
		Body:     file,
	}, file, nil
}

func errImageTooLarge(maxBytes int64) error {
	return &service.Error{
		Kind:    service.KindValidation,
		Message: fmt.Sprintf("Image must be at most %d MB", maxBytes>>20),
	}
}

func tooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

func closeUpload(c *gin.Context, file multipart.File) {
	if file == nil {
		return
	}
	if err := file.Close(); err != nil {
		logger.FromGin(c, nil).Warn("Failed to close upload", zap.Error(err))
	}
}
