// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budgetwise/backend/internal/application/usecase/auth"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Email         string `json:"email" binding:"required,email"`
	Name          string `json:"name" binding:"required,min=1,max=100"`
	Password      string `json:"password" binding:"required"`
	TermsAccepted bool   `json:"terms_accepted" binding:"required"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"remember_me"`
}

// RefreshTokenRequest is the body of POST /auth/refresh and POST /auth/logout.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// SessionResponse is returned by register, login and refresh.
type SessionResponse struct {
	AccessToken     string       `json:"access_token"`
	RefreshToken    string       `json:"refresh_token"`
	TokenType       string       `json:"token_type"`
	AccessExpiresAt time.Time    `json:"access_expires_at"`
	User            UserResponse `json:"user"`
}

// ToSessionResponse converts a session output to its response body.
func ToSessionResponse(output *auth.SessionOutput) SessionResponse {
	return SessionResponse{
		AccessToken:     output.AccessToken,
		RefreshToken:    output.RefreshToken,
		TokenType:       "Bearer",
		AccessExpiresAt: output.AccessExpiresAt,
		User:            ToUserResponse(output.User),
	}
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse represents the user data in API responses.
type UserResponse struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	Name               string    `json:"name"`
	EmailNotifications bool      `json:"email_notifications"`
	BudgetAlerts       bool      `json:"budget_alerts"`
	CreatedAt          time.Time `json:"created_at"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:                 user.ID.String(),
		Email:              user.Email,
		Name:               user.Name,
		EmailNotifications: user.EmailNotifications,
		BudgetAlerts:       user.BudgetAlerts,
		CreatedAt:          user.CreatedAt,
	}
}

// UpdatePreferencesRequest represents the request body for PATCH /users/me/preferences.
type UpdatePreferencesRequest struct {
	Name               *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	EmailNotifications *bool   `json:"email_notifications,omitempty"`
	BudgetAlerts       *bool   `json:"budget_alerts,omitempty"`
}
