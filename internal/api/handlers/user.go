package handlers

import (
	"net/http"

	"wishlist-backend/internal/auth"
	"wishlist-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for account operations
type UserHandler struct {
	userService *service.UserService
	authService *auth.AuthService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService, authService *auth.AuthService) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
	}
}

// TokenResponse represents an issued access token
type TokenResponse struct {
	AccessToken string               `json:"access_token"`
	TokenType   string               `json:"token_type" example:"Bearer"`
	User        service.UserResponse `json:"user"`
}

// LoginRequest represents the payload for exchanging an email for a token.
// Identity verification is delegated to the fronting identity provider; this
// endpoint only mints the API token.
type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Register handles POST /auth/register
// @Summary Register a new account
// @Description Create an account and return an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.RegisterRequest true "Account details"
// @Success 201 {object} TokenResponse "Account created"
// @Failure 400 {object} ErrorResponse "Invalid payload"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Router /auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.userService.Register(req)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.authService.GenerateJWT(user)
	if err != nil {
		respondError(c, err)
		return
	}

	profile, err := h.userService.GetProfile(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		User:        *profile,
	})
}

// Login handles POST /auth/login
// @Summary Exchange an email for an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login payload"
// @Success 200 {object} TokenResponse "Token issued"
// @Failure 404 {object} ErrorResponse "Unknown account"
// @Router /auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.userService.GetByEmail(req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.authService.GenerateJWT(user)
	if err != nil {
		respondError(c, err)
		return
	}

	profile, err := h.userService.GetProfile(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		User:        *profile,
	})
}

// Me handles GET /me
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce json
// @Success 200 {object} service.UserResponse "Profile"
// @Security BearerAuth
// @Router /me [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	profile, err := h.userService.GetProfile(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateMe handles PATCH /me
// @Summary Update the authenticated user's profile
// @Tags users
// @Accept json
// @Produce json
// @Param request body service.UpdateProfileRequest true "Profile changes"
// @Success 200 {object} service.UserResponse "Updated profile"
// @Failure 400 {object} ErrorResponse "Invalid payload"
// @Security BearerAuth
// @Router /me [patch]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	profile, err := h.userService.UpdateProfile(userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
