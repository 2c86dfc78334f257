package dto

import "github.com/emre/schoolhub/internal/app/models"

// AdminRegisterRequest carries the admin registration payload.
type AdminRegisterRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	SchoolName string `json:"schoolName" binding:"required"`
}

// AdminLoginRequest carries the admin login payload.
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginResponse is the admin record plus the issued access token.
// The password field is always cleared before the record is embedded.
type AdminLoginResponse struct {
	models.Admin
	Token string `json:"token,omitempty"`
}
