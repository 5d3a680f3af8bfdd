package dto

import "time"

// RegisterRequest defines data for registering a local account.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest defines credentials for local login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned on successful login/registration/refresh. The
// refresh token itself travels in an HTTP-only cookie, not in this body.
type AuthResponse struct {
	AccessToken          string       `json:"accessToken"`
	AccessTokenExpiresAt time.Time    `json:"accessTokenExpiresAt"`
	User                 UserResponse `json:"user"`
}

// RefreshRequest identifies whose refresh token cookie should be validated.
type RefreshRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// GoogleCallbackRequest carries a Google ID token for validation.
type GoogleCallbackRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}
