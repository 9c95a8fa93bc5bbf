package middleware

import (
	"log/slog"
	"net/http"

	"hotel-booking/internal/domain/access"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/cookie"
	"hotel-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey    = "user_id"
	ctxUserRoleKey  = "user_role"
	ctxPrincipalKey = "principal"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// Authenticate attaches the principal when a valid access token is present and never aborts.
// Gates further down decide whether an anonymous request may continue.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		m.resolve(c)
		c.Next()
	}
}

// RequireOperation enforces the role policy declared for op.
func (m *AuthMiddleware) RequireOperation(op access.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		m.enforce(c, access.AuthorizeOperation(m.resolve(c), op))
	}
}

// AdminOnly requires the admin role itself; role sets do not apply.
func (m *AuthMiddleware) AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		m.enforce(c, access.AuthorizeAdmin(m.resolve(c)))
	}
}

func (m *AuthMiddleware) enforce(c *gin.Context, d access.Decision) {
	switch d {
	case access.Allow:
		return
	case access.DenyUnauthenticated:
		httperr.AbortWithError(c, http.StatusUnauthorized, d.Err(), "Authentication required", nil)
	default:
		httperr.AbortWithError(c, http.StatusForbidden, d.Err(), "Insufficient permissions", nil)
	}
}

func (m *AuthMiddleware) resolve(c *gin.Context) *access.Principal {
	if p, ok := GetPrincipal(c); ok {
		return p
	}

	token := cookie.AccessToken(c)
	if token == "" {
		return nil
	}

	p, err := m.tokenValidator.ValidateToken(token)
	if err != nil {
		slog.Debug("Token validation failed in auth middleware", "error", err.Error())
		return nil
	}

	SetPrincipal(c, p)
	return p
}

func SetPrincipal(c *gin.Context, p *access.Principal) {
	c.Set(ctxPrincipalKey, p)
	c.Set(ctxUserIDKey, p.UserID)
	c.Set(ctxUserRoleKey, p.Role)
}

func GetPrincipal(c *gin.Context) (*access.Principal, bool) {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return nil, false
	}
	p, ok := v.(*access.Principal)
	return p, ok && p != nil
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}
