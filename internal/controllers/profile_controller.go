package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogspace-be/internal/models"
	"blogspace-be/internal/service"
)

type ProfileController struct {
	profileService service.ProfileService
	uploads        uploadReader
}

func NewProfileController(profileService service.ProfileService, maxUploadBytes int64) *ProfileController {
	return &ProfileController{
		profileService: profileService,
		uploads:        uploadReader{maxBytes: maxUploadBytes},
	}
}

// GetProfile handles GET /api/user/profile
func (pc *ProfileController) GetProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	profile, err := pc.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile handles PUT /api/user/profile (JSON or multipart)
func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if !pc.uploads.bind(c, &req, service.ErrProfileFieldsRequired.Message) {
		return
	}

	image, file, err := pc.uploads.open(c)
	if err != nil {
		respondError(c, err)
		return
	}
	defer closeUpload(c, file)

	profile, err := pc.profileService.UpdateProfile(c.Request.Context(), userID, &req, image)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
