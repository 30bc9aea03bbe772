package models

// UserSummary is the minimal profile returned by auth endpoints
type UserSummary struct {
	UserID string `json:"userId"` // UUID
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// RegisterResponse represents the response after user registration
type RegisterResponse struct {
	Status int         `json:"status"`
	Data   UserSummary `json:"data"`
}

// LoginResponse represents the response after successful authentication
type LoginResponse struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    UserSummary `json:"data"`
	Token   string      `json:"token"` // JWT token
}

// MessageResponse is the body of operations that only report success
type MessageResponse struct {
	Message string `json:"message"`
}
