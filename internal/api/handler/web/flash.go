package web

import (
	"github.com/gin-gonic/gin"
)

const flashCookieName = "jarana_flash"

// setFlash leaves a message for the next page the browser loads.
func setFlash(ctx *gin.Context, msg string) {
	ctx.SetCookie(flashCookieName, msg, 60, "/", "", false, true)
}

// popFlash returns the pending message, if any, and clears it.
func popFlash(ctx *gin.Context) string {
	msg, err := ctx.Cookie(flashCookieName)
	if err != nil || msg == "" {
		return ""
	}
	ctx.SetCookie(flashCookieName, "", -1, "/", "", false, true)

	return msg
}
