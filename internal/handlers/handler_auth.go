package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/taskhive/taskhive_backend/internal/core/ports/services"
	"github.com/taskhive/taskhive_backend/internal/core/domain"
	"github.com/taskhive/taskhive_backend/internal/dto"
	"github.com/taskhive/taskhive_backend/internal/middleware"
	"github.com/taskhive/taskhive_backend/internal/platform/config"
	"github.com/taskhive/taskhive_backend/internal/utils"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	cfg          *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService:  us,
		tokenService: ts,
		cfg:          cfg,
	}
}

// registerAuthRoutes sets up the public routes for authentication.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.User, services.TokenService, cfg)

	// 5 requests per minute per IP on credential endpoints
	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/register", limitMiddleware, h.Register)
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/logout", h.Logout)
	}
}

// issueTokens generates the access/refresh token pair, persists the refresh
// token hash and sets the refresh token cookie.
func (h *AuthHandler) issueTokens(c *gin.Context, user *domain.User) (*dto.AuthResponse, error) {
	accessToken, accessExpiry, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		return nil, err
	}

	refreshToken, refreshExpiry, err := h.tokenService.GenerateRefreshToken(c.Request.Context(), user)
	if err != nil {
		return nil, err
	}
	if err := h.userService.StoreRefreshToken(c.Request.Context(), user.UserID, utils.HashRefreshToken(refreshToken), refreshExpiry); err != nil {
		return nil, err
	}

	maxAge := int(time.Until(refreshExpiry).Seconds())
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cfg.RefreshTokenCookieName, refreshToken, maxAge, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)

	return &dto.AuthResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresAt: accessExpiry,
		User:                 dto.ToUserResponse(user),
	}, nil
}

// Register godoc
// @Summary Register new user
// @Description Creates a local account and signs the user in.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	newUser, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to register user")
		return
	}

	authResp, err := h.issueTokens(c, newUser)
	if err != nil {
		respondWithError(c, err, "Failed to issue tokens")
		return
	}
	c.JSON(http.StatusCreated, authResp)
}

// Login godoc
// @Summary User login
// @Description Authenticates with email and password, returns an access token
// @Description and sets the refresh token cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.userService.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
		return
	}
	if user.PasswordHash == nil || !utils.CheckPasswordHash(req.Password, *user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
		return
	}

	authResp, err := h.issueTokens(c, user)
	if err != nil {
		respondWithError(c, err, "Failed to issue tokens")
		return
	}
	c.JSON(http.StatusOK, authResp)
}

// Refresh godoc
// @Summary Refresh access token
// @Description Validates the refresh token cookie and rotates the token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshRequest true "User whose session to refresh"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	refreshToken, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Refresh token missing"})
		return
	}

	user, err := h.tokenService.ValidateAndParseRefreshToken(c.Request.Context(), req.UserID, refreshToken)
	if err != nil {
		respondWithError(c, err, "Failed to validate refresh token")
		return
	}

	authResp, err := h.issueTokens(c, user)
	if err != nil {
		respondWithError(c, err, "Failed to issue tokens")
		return
	}
	c.JSON(http.StatusOK, authResp)
}

// Logout godoc
// @Summary Log out
// @Description Clears the stored refresh token and the cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param logout body dto.RefreshRequest true "User to log out"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.userService.ClearRefreshToken(c.Request.Context(), req.UserID); err != nil {
		// Logout is best-effort; an already-cleared token is not an error worth surfacing.
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to clear refresh token", slog.String("error", err.Error()))
	}

	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
	c.Status(http.StatusNoContent)
}
