package web

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jarana/guia/internal/api/handler/web/response"
	"github.com/jarana/guia/internal/domain"
	"github.com/jarana/guia/internal/service"
)

type CatalogService interface {
	SiteConfig(ctx context.Context) (domain.SiteConfig, error)
	PromoterPage(ctx context.Context) (service.PromoterPage, error)
	TransportPage(ctx context.Context) (service.TransportPage, error)
	AdminListing(ctx context.Context) (service.AdminListing, error)
	Promoter(ctx context.Context, id uint) (domain.Promoter, error)
	Transport(ctx context.Context, id uint) (domain.TransportProvider, error)
}

// Relative paths from each public page back to the site root. /transportes
// and its frozen transportes/index.html both sit one level down.
const (
	indexRoot      = "./"
	transportsRoot = "../"
)

type PublicHandler struct {
	svc CatalogService
}

func NewPublicHandler(svc CatalogService) *PublicHandler {
	return &PublicHandler{
		svc: svc,
	}
}

func (h *PublicHandler) HandleIndex(ctx *gin.Context) {
	page, err := h.svc.PromoterPage(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleIndex -> h.svc.PromoterPage -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.HTML(http.StatusOK, "index.html", gin.H{
		"Page":      "rrpp",
		"Root":      indexRoot,
		"Config":    page.Config,
		"Promoters": page.Promoters,
	})
}

func (h *PublicHandler) HandleTransports(ctx *gin.Context) {
	page, err := h.svc.TransportPage(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleTransports -> h.svc.TransportPage -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.HTML(http.StatusOK, "transportes.html", gin.H{
		"Page":      "transporte",
		"Root":      transportsRoot,
		"Config":    page.Config,
		"Providers": page.Providers,
		"Cities":    page.Cities,
	})
}

func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
