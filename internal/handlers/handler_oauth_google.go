package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	portssvc "github.com/taskhive/taskhive_backend/internal/core/ports/services"
	"github.com/taskhive/taskhive_backend/internal/middleware"
	"github.com/taskhive/taskhive_backend/internal/platform/config"
)

const oauthStateCookieName = "oauth_state"

// GoogleOAuthHandler handles the Google OAuth login flow.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	userService        portssvc.UserSvcFacade
	auth               *AuthHandler
	cfg                *config.Config
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade, userService portssvc.UserSvcFacade, auth *AuthHandler, cfg *config.Config) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: googleOAuthService,
		userService:        userService,
		auth:               auth,
		cfg:                cfg,
	}
}

// registerGoogleOAuthRoutes sets up the public Google OAuth routes.
func registerGoogleOAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	authHandler := NewAuthHandler(services.User, services.TokenService, cfg)
	h := NewGoogleOAuthHandler(services.GoogleOAuthHandler, services.User, authHandler, cfg)

	google := rg.Group("/api/v1/auth/google")
	{
		google.GET("/login", h.LoginGoogle)
		google.POST("/exchange-code", h.ExchangeCodeGoogle)
	}
}

// ExchangeCodeRequest defines the JSON body for the exchange-code endpoint.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// LoginGoogle godoc
// @Summary Start Google login
// @Description Returns the Google consent URL and sets the CSRF state cookie.
// @Tags oauth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/login [get]
func (h *GoogleOAuthHandler) LoginGoogle(c *gin.Context) {
	state, err := h.googleOAuthService.GenerateStateString(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to start Google login")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookieName, state, 600, "/", "", h.cfg.IsProduction, true)
	c.JSON(http.StatusOK, gin.H{"url": h.googleOAuthService.GetGoogleLoginURL(c.Request.Context(), state)})
}

// ExchangeCodeGoogle godoc
// @Summary Exchange Google authorization code
// @Description Exchanges the authorization code for Google tokens, validates
// @Description the ID token, resolves or creates the local account and signs
// @Description the user in.
// @Tags oauth
// @Accept json
// @Produce json
// @Param code body ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *GoogleOAuthHandler) ExchangeCodeGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		if strings.Contains(strings.ToLower(err.Error()), "invalid_grant") {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or expired authorization code"})
			return
		}
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to communicate with Google"})
		return
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		logger.Error("ID token not found in Google's token response")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve ID token from Google"})
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		logger.Error("Google ID token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid Google ID token"})
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" || payload.Subject == "" {
		logger.Error("Essential claims missing from Google ID token payload")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Essential user information missing from Google token"})
		return
	}

	user, err := h.userService.FindOrCreateGoogleUser(ctx, payload.Subject, email, name)
	if err != nil {
		respondWithError(c, err, "Failed to resolve Google account")
		return
	}

	authResp, err := h.auth.issueTokens(c, user)
	if err != nil {
		respondWithError(c, err, "Failed to issue tokens")
		return
	}
	c.JSON(http.StatusOK, authResp)
}
