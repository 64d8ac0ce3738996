package dto

import (
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
)

// LoginRequest defines the admin credentials.
type LoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Message   string    `json:"message"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AdminResponse identifies the logged-in admin.
type AdminResponse struct {
	AdminID string `json:"adminID"`
	Name    string `json:"name"`
}

// ToAdminResponse converts a domain.Admin to AdminResponse DTO
func ToAdminResponse(a *domain.Admin) AdminResponse {
	return AdminResponse{AdminID: a.AdminID, Name: a.Name}
}
