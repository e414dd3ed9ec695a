package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is an error ready to be shown to the visitor. Err keeps the underlying
// cause for the logs and is never rendered.
type Err struct {
	HTTPStatusCode int    `json:"-"`
	Message        string `json:"message"`
	Err            error  `json:"-"`
}

func (e *Err) Error() string {
	if e.Err == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *Err) Unwrap() error {
	return e.Err
}

func ErrBadRequest(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusBadRequest,
		Message:        err.Error(),
		Err:            err,
	}
}

func ErrUnauthorized(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusUnauthorized,
		Message:        "Datos incorrectos",
		Err:            err,
	}
}

func ErrNotFound(resource, key string, value any) *Err {
	return &Err{
		HTTPStatusCode: http.StatusNotFound,
		Message:        fmt.Sprintf("%s with %s %v not found", resource, key, value),
	}
}

func ErrBadGateway(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusBadGateway,
		Message:        "upstream service failed, please try again",
		Err:            err,
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusInternalServerError,
		Message:        "internal server error",
		Err:            err,
	}
}

// RenderErr renders the error page and aborts the chain.
func RenderErr(ctx *gin.Context, e *Err) {
	if e.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("path", ctx.Request.URL.Path),
			zap.Int("status", e.HTTPStatusCode),
			zap.Error(e.Err),
		)
	}
	_ = ctx.Error(e)

	ctx.HTML(e.HTTPStatusCode, "error.html", gin.H{
		"Status":  e.HTTPStatusCode,
		"Message": e.Message,
	})
	ctx.Abort()
}
