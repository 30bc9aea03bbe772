package models

// ProfileResponse is the public projection of a user
type ProfileResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Image *string `json:"image"`
}

// UpdateProfileRequest accepts either JSON or multipart form fields
type UpdateProfileRequest struct {
	Name  string `json:"name" form:"name" binding:"required"`
	Email string `json:"email" form:"email" binding:"required,email"`
}
