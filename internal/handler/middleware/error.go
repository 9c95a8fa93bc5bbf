package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"hotel-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors that a handler attached with c.Error but never wrote.
// The most recent public error wins; anything else becomes a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			if resp, ok := c.Errors[i].Meta.(httperr.Response); ok && c.Errors[i].IsType(gin.ErrorTypePublic) {
				c.JSON(resp.Status, resp)
				return
			}
		}
		c.JSON(http.StatusInternalServerError,
			httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic",
					"error", rec,
					"route", routeOf(c),
					"request_id", GetRequestID(c),
					"stack", string(debug.Stack()),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil))
			}
		}()
		c.Next()
	}
}
