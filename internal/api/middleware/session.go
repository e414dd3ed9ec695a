package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jarana/guia/internal/pkg/jwthelper"
)

const SessionCookieName = "jarana_session"

type Authenticator struct {
	secretKey string
}

func NewAuthenticator(secretKey string) *Authenticator {
	return &Authenticator{
		secretKey: secretKey,
	}
}

// RequireSession lets the request through only with a valid admin session
// cookie and sends everyone else to the login page.
func (a *Authenticator) RequireSession() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !a.LoggedIn(ctx) {
			ctx.Redirect(http.StatusFound, "/login")
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}

func (a *Authenticator) LoggedIn(ctx *gin.Context) bool {
	token, err := ctx.Cookie(SessionCookieName)
	if err != nil || token == "" {
		return false
	}

	_, err = jwthelper.ValidateSessionToken(a.secretKey, token)

	return err == nil
}

// SetSessionCookie stores token in the browser for ttl.
func SetSessionCookie(ctx *gin.Context, token string, ttl time.Duration, secure bool) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(SessionCookieName, token, int(ttl.Seconds()), "/", "", secure, true)
}

func ClearSessionCookie(ctx *gin.Context, secure bool) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(SessionCookieName, "", -1, "/", "", secure, true)
}
