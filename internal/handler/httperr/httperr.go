package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// Response is the error body shared by every endpoint: {"error":{"message":...},"detail":...}.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

// AbortWithError writes the public message and keeps err on the context for the request log.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}
	resp := NewResponse(status, msg, detail)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
