package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jarana/guia/internal/api/handler/web/request"
	"github.com/jarana/guia/internal/api/handler/web/response"
	"github.com/jarana/guia/internal/api/middleware"
	"github.com/jarana/guia/internal/config"
	"github.com/jarana/guia/internal/pkg/jwthelper"
	"github.com/jarana/guia/internal/service"
)

const msgWrongCredentials = "Datos incorrectos"

type AuthService interface {
	Login(username, password string) error
}

type AuthHandler struct {
	conf    *config.APIConfig
	svc     AuthService
	catalog CatalogService
	auth    *middleware.Authenticator
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService, catalog CatalogService) *AuthHandler {
	return &AuthHandler{
		conf:    conf,
		svc:     svc,
		catalog: catalog,
		auth:    middleware.NewAuthenticator(conf.SecretKey),
	}
}

func (h *AuthHandler) HandleLoginPage(ctx *gin.Context) {
	if h.auth.LoggedIn(ctx) {
		ctx.Redirect(http.StatusFound, "/admin")
		return
	}

	h.renderLogin(ctx, http.StatusOK, popFlash(ctx))
}

func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	var req request.LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		h.renderLogin(ctx, http.StatusUnauthorized, msgWrongCredentials)
		return
	}

	if err := h.svc.Login(req.Username, req.Password); err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.renderLogin(ctx, http.StatusUnauthorized, msgWrongCredentials)
			return
		}

		err = fmt.Errorf("HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	token, err := jwthelper.GenerateSessionToken(h.conf.SecretKey, h.conf.SessionTTL)
	if err != nil {
		err = fmt.Errorf("HandleLogin -> jwthelper.GenerateSessionToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	middleware.SetSessionCookie(ctx, token, h.conf.SessionTTL, h.secureCookies())
	ctx.Redirect(http.StatusFound, "/admin")
}

func (h *AuthHandler) HandleLogout(ctx *gin.Context) {
	middleware.ClearSessionCookie(ctx, h.secureCookies())
	ctx.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) renderLogin(ctx *gin.Context, status int, flash string) {
	conf, err := h.catalog.SiteConfig(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("renderLogin -> h.catalog.SiteConfig -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.HTML(status, "login.html", gin.H{
		"Config": conf,
		"Flash":  flash,
	})
}

func (h *AuthHandler) secureCookies() bool {
	return h.conf.Environment == "production"
}
