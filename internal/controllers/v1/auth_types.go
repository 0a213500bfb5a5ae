package v1

import (
	"github.com/pocketbook-app/backend/internal/auth"
)

type RegisterEditable struct {
	Email       string `json:"email" example:"jane@example.com"`      // Email address used to sign in
	Password    string `json:"password" example:"correct-horse"`      // Password, at least 6 characters
	DisplayName string `json:"displayName" example:"Jane" default:""` // Name shown in the application
}

type LoginEditable struct {
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"correct-horse"`
}

type TokenResponse struct {
	Error *string     `json:"error" example:"Invalid email or password. Please try again."` // The error, if any occurred
	Data  *auth.Token `json:"data"`                                                         // The token
}
