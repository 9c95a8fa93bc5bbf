package cookie

import (
	"net/http"
	"strings"
	"time"

	"hotel-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"

	bearerPrefix = "Bearer "
)

// Session is the pair of tokens handed to the browser after login.
type Session struct {
	AccessToken   string
	RefreshToken  string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

func SetSession(c *gin.Context, cfg config.CookieConfig, s Session) {
	c.SetSameSite(sameSite(cfg.SameSite))
	c.SetCookie(AccessTokenCookieName, s.AccessToken, int(s.AccessExpiry.Seconds()), "/", cfg.Domain, cfg.Secure, true)
	c.SetCookie(RefreshTokenCookieName, s.RefreshToken, int(s.RefreshExpiry.Seconds()), "/", cfg.Domain, cfg.Secure, true)
}

func ClearSession(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(sameSite(cfg.SameSite))
	c.SetCookie(AccessTokenCookieName, "", -1, "/", cfg.Domain, cfg.Secure, true)
	c.SetCookie(RefreshTokenCookieName, "", -1, "/", cfg.Domain, cfg.Secure, true)
}

// AccessToken prefers the session cookie and falls back to an Authorization bearer header.
func AccessToken(c *gin.Context) string {
	if token, err := c.Cookie(AccessTokenCookieName); err == nil && token != "" {
		return token
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(header[len(bearerPrefix):])
	}
	return ""
}

func RefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

func sameSite(v string) http.SameSite {
	switch v {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
