package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/nucleobets/backend/internal/models"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ChangePasswordRequest keeps the camelCase keys the dashboard sends.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

type AuthResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	TokenType    string          `json:"token_type"`
	Account      AccountResponse `json:"account"`
}

type AccountResponse struct {
	ID              uuid.UUID   `json:"id"`
	Username        string      `json:"username"`
	Email           string      `json:"email"`
	Role            models.Role `json:"role"`
	ApprovedByAdmin bool        `json:"approved_by_admin"`
	IsActive        bool        `json:"is_active"`
	ExpiresAt       *time.Time  `json:"expires_at"`
	DaysRemaining   *int        `json:"days_remaining"` // null means permanent
	CreatedAt       time.Time   `json:"created_at"`
}

func NewAccountResponse(a *models.Account) AccountResponse {
	resp := AccountResponse{
		ID:              a.ID,
		Username:        a.Username,
		Email:           a.Email,
		Role:            a.Role,
		ApprovedByAdmin: a.ApprovedByAdmin,
		IsActive:        a.IsActive,
		ExpiresAt:       a.ExpiresAt,
		CreatedAt:       a.CreatedAt,
	}
	if days, permanent := a.DaysRemaining(time.Now().UTC()); !permanent {
		resp.DaysRemaining = &days
	}
	return resp
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}
