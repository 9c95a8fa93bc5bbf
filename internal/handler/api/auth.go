package api

import (
	"log/slog"
	"net/http"
	"time"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/cookie"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// SessionTTL supplies cookie lifetimes matching the issued tokens.
type SessionTTL interface {
	AccessDuration() time.Duration
	RefreshDuration() time.Duration
}

type AuthHandler struct {
	authCommands commands.AuthCommands
	userQueries  queries.UserQueries
	cookieCfg    config.CookieConfig
	ttl          SessionTTL
}

func NewAuthHandler(authCommands commands.AuthCommands, userQueries queries.UserQueries, cfg config.Config, ttl SessionTTL) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		userQueries:  userQueries,
		cookieCfg:    cfg.Cookie,
		ttl:          ttl,
	}
}

// @Summary Register client
// @Description Self-service sign-up; the account always gets the client role
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	reg, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	id, err := h.authCommands.Register(c.Request.Context(), reg)
	if err != nil {
		abortWithUsecaseError(c, err, "Registration failed")
		return
	}

	view, err := h.userQueries.GetCurrentUser(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load user")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromUserView(view))
}

// @Summary User login
// @Description Login with email and password; tokens are returned as HttpOnly cookies
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	credentials, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid credentials format", nil)
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), credentials)
	if err != nil {
		abortWithUsecaseError(c, err, "Authentication failed")
		return
	}

	view, err := h.userQueries.GetCurrentUser(c.Request.Context(), result.UserID)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load user")
		return
	}

	h.setSession(c, result.TokenPair)
	slog.Info("user logged in", "user_id", result.UserID.String(), "role", result.Role.String())
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

// @Summary Refresh session
// @Description Exchange the refresh cookie for a new token pair
// @Tags auth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken := cookie.RefreshToken(c)
	if refreshToken == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Refresh token required", nil)
		return
	}

	pair, err := h.authCommands.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		cookie.ClearSession(c, h.cookieCfg)
		abortWithUsecaseError(c, err, "Token refresh failed")
		return
	}

	h.setSession(c, pair)
	c.Status(http.StatusNoContent)
}

// @Summary User logout
// @Description Clear the session cookies
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearSession(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Authentication required", nil)
		return
	}

	view, err := h.userQueries.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load user")
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

func (h *AuthHandler) setSession(c *gin.Context, pair *commands.TokenPair) {
	cookie.SetSession(c, h.cookieCfg, cookie.Session{
		AccessToken:   pair.AccessToken,
		RefreshToken:  pair.RefreshToken,
		AccessExpiry:  h.ttl.AccessDuration(),
		RefreshExpiry: h.ttl.RefreshDuration(),
	})
}
