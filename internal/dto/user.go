package dto

import (
	"time"

	"github.com/taskhive/taskhive_backend/internal/core/domain"
)

// UserResponse defines the user representation returned to clients.
type UserResponse struct {
	UserID       string              `json:"userId"`
	Name         string              `json:"name"`
	Email        string              `json:"email"`
	AuthProvider domain.AuthProvider `json:"authProvider"`
	CreatedAt    time.Time           `json:"createdAt"`
}

// ToUserResponse maps a domain.User to its API representation.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:       user.UserID,
		Name:         user.Name,
		Email:        user.Email,
		AuthProvider: user.AuthProvider,
		CreatedAt:    user.CreatedAt,
	}
}
