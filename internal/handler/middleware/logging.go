package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"os"
	"strings"
	"time"

	"hotel-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const ctxRequestIDKey = "request_id"

// NewLogger builds the process logger: JSON in release mode, text otherwise,
// timestamps rendered in the configured zone.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(cfg.Level))); err != nil {
		level = slog.LevelInfo
	}
	zone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key != slog.TimeKey {
				return a
			}
			if t, ok := a.Value.Any().(time.Time); ok {
				a.Value = slog.StringValue(t.In(zone).Format(cfg.TimeFormat))
			}
			return a
		},
	}

	if gin.Mode() == gin.ReleaseMode {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// RequestLogger writes one line per request once the handler chain has run, so the
// principal resolved by Authenticate is included. Health probes are not logged.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		start := time.Now()
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = newRequestID()
		}
		c.Set(ctxRequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)

		c.Next()

		status := c.Writer.Status()
		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("route", routeOf(c)),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		}
		if id := c.Param("id"); id != "" {
			attrs = append(attrs, slog.String("resource_id", id))
		}
		if p, ok := GetPrincipal(c); ok {
			attrs = append(attrs,
				slog.String("user_id", p.UserID.String()),
				slog.String("role", p.Role.String()),
			)
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		msg := "request completed"
		if strings.HasPrefix(c.Writer.Header().Get("Content-Type"), "text/event-stream") {
			msg = "event stream closed"
		}

		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}
		logger.LogAttrs(c.Request.Context(), level, msg, attrs...)
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(ctxRequestIDKey)
}

func routeOf(c *gin.Context) string {
	if r := c.FullPath(); r != "" {
		return r
	}
	return c.Request.URL.Path
}

func newRequestID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return time.Now().UTC().Format("20060102150405.000000000")
	}
	return hex.EncodeToString(b)
}
