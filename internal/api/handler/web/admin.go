package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jarana/guia/internal/api/handler/web/request"
	"github.com/jarana/guia/internal/api/handler/web/response"
	"github.com/jarana/guia/internal/config"
	"github.com/jarana/guia/internal/domain"
	"github.com/jarana/guia/internal/service"
)

const (
	msgPublishRequested     = "Publicación solicitada, la web se actualizará en unos minutos"
	msgPublishNotConfigured = "Publicación no configurada: faltan GITHUB_OWNER, GITHUB_REPO o GITHUB_TOKEN"
	msgPublishUnreachable   = "Error al publicar: no se pudo contactar con GitHub"
)

type AdminService interface {
	Apply(ctx context.Context, m domain.Mutation) error
	UpdatePromoter(ctx context.Context, id uint, in domain.PromoterInput) (domain.Promoter, error)
	UpdateTransport(ctx context.Context, id uint, in domain.TransportInput) (domain.TransportProvider, error)
}

type Publisher interface {
	Publish(ctx context.Context) error
}

type AdminHandler struct {
	conf      *config.ImagesConfig
	catalog   CatalogService
	svc       AdminService
	publisher Publisher
}

func NewAdminHandler(conf *config.ImagesConfig, catalog CatalogService, svc AdminService, publisher Publisher) *AdminHandler {
	return &AdminHandler{
		conf:      conf,
		catalog:   catalog,
		svc:       svc,
		publisher: publisher,
	}
}

func (h *AdminHandler) HandleAdminPage(ctx *gin.Context) {
	listing, err := h.catalog.AdminListing(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleAdminPage -> h.catalog.AdminListing -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.HTML(http.StatusOK, "admin.html", gin.H{
		"Config":    listing.Config,
		"Promoters": listing.Promoters,
		"Providers": listing.Providers,
		"Flash":     popFlash(ctx),
	})
}

// HandleAdminMutation dispatches every admin panel form on its "tipo" field.
func (h *AdminHandler) HandleAdminMutation(ctx *gin.Context) {
	var req request.MutationRequest
	if err := ctx.ShouldBind(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	m := domain.Mutation{Tag: domain.MutationTag(req.Tag)}

	switch m.Tag {
	case domain.MutationUpdateConfig:
		var cfgReq request.SiteConfigRequest
		if !bindAndValidate(ctx, &cfgReq) {
			return
		}
		m.SiteConfig = cfgReq.ToDomain()

	case domain.MutationAddPromoter:
		var pReq request.PromoterRequest
		if !bindAndValidate(ctx, &pReq) {
			return
		}
		upload, err := request.ImageUpload(ctx, "foto", h.conf.MaxUploadBytes)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}
		m.Promoter = pReq.ToDomain(upload)

	case domain.MutationAddTransport:
		var tReq request.TransportRequest
		if !bindAndValidate(ctx, &tReq) {
			return
		}
		m.Transport = tReq.ToDomain()

	case domain.MutationToggle, domain.MutationDelete:
		id, err := req.ParseID()
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}
		m.Table = domain.Table(req.Table)
		m.ID = id
	}

	if err := h.svc.Apply(ctx.Request.Context(), m); err != nil {
		renderServiceErr(ctx, fmt.Errorf("HandleAdminMutation -> h.svc.Apply -> %w", err), string(m.Table), m.ID)
		return
	}

	ctx.Redirect(http.StatusFound, "/admin")
}

func (h *AdminHandler) HandleEditPromoterPage(ctx *gin.Context) {
	id, err := request.ParseID(ctx.Param("id"))
	if err != nil {
		response.RenderErr(ctx, response.ErrNotFound(string(domain.TablePromoter), "id", ctx.Param("id")))
		return
	}

	p, err := h.catalog.Promoter(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, fmt.Errorf("HandleEditPromoterPage -> h.catalog.Promoter -> %w", err), string(domain.TablePromoter), id)
		return
	}

	ctx.HTML(http.StatusOK, "edit_rrpp.html", gin.H{
		"Promoter": p,
	})
}

func (h *AdminHandler) HandleEditPromoter(ctx *gin.Context) {
	id, err := request.ParseID(ctx.Param("id"))
	if err != nil {
		response.RenderErr(ctx, response.ErrNotFound(string(domain.TablePromoter), "id", ctx.Param("id")))
		return
	}

	var req request.PromoterRequest
	if !bindAndValidate(ctx, &req) {
		return
	}

	upload, err := request.ImageUpload(ctx, "foto", h.conf.MaxUploadBytes)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if _, err = h.svc.UpdatePromoter(ctx.Request.Context(), id, req.ToDomain(upload)); err != nil {
		renderServiceErr(ctx, fmt.Errorf("HandleEditPromoter -> h.svc.UpdatePromoter -> %w", err), string(domain.TablePromoter), id)
		return
	}

	ctx.Redirect(http.StatusFound, "/admin")
}

func (h *AdminHandler) HandleEditTransportPage(ctx *gin.Context) {
	id, err := request.ParseID(ctx.Param("id"))
	if err != nil {
		response.RenderErr(ctx, response.ErrNotFound(string(domain.TableTransport), "id", ctx.Param("id")))
		return
	}

	t, err := h.catalog.Transport(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, fmt.Errorf("HandleEditTransportPage -> h.catalog.Transport -> %w", err), string(domain.TableTransport), id)
		return
	}

	ctx.HTML(http.StatusOK, "edit_transporte.html", gin.H{
		"Transport": t,
	})
}

func (h *AdminHandler) HandleEditTransport(ctx *gin.Context) {
	id, err := request.ParseID(ctx.Param("id"))
	if err != nil {
		response.RenderErr(ctx, response.ErrNotFound(string(domain.TableTransport), "id", ctx.Param("id")))
		return
	}

	var req request.TransportRequest
	if !bindAndValidate(ctx, &req) {
		return
	}

	if _, err = h.svc.UpdateTransport(ctx.Request.Context(), id, req.ToDomain()); err != nil {
		renderServiceErr(ctx, fmt.Errorf("HandleEditTransport -> h.svc.UpdateTransport -> %w", err), string(domain.TableTransport), id)
		return
	}

	ctx.Redirect(http.StatusFound, "/admin")
}

// HandlePublish asks the static site to rebuild. The outcome is reported on
// the admin page.
func (h *AdminHandler) HandlePublish(ctx *gin.Context) {
	err := h.publisher.Publish(ctx.Request.Context())

	var pubErr *service.PublishError
	switch {
	case err == nil:
		setFlash(ctx, msgPublishRequested)
	case errors.Is(err, service.ErrPublishNotConfigured):
		setFlash(ctx, msgPublishNotConfigured)
	case errors.As(err, &pubErr):
		zap.L().Warn("publish rejected", zap.Int("status", pubErr.StatusCode), zap.String("body", pubErr.Body))
		setFlash(ctx, fmt.Sprintf("Error al publicar: %d", pubErr.StatusCode))
	default:
		zap.L().Error("publish failed", zap.Error(err))
		setFlash(ctx, msgPublishUnreachable)
	}

	ctx.Redirect(http.StatusFound, "/admin")
}

type validatable interface {
	Validate() error
}

func bindAndValidate(ctx *gin.Context, req validatable) bool {
	if err := ctx.ShouldBind(req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return false
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return false
	}

	return true
}

func renderServiceErr(ctx *gin.Context, err error, resource string, id any) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.RenderErr(ctx, response.ErrNotFound(resource, "id", id))
	case errors.Is(err, service.ErrUnknownMutation):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrUnknownMutation))
	case errors.Is(err, service.ErrUnknownTable):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrUnknownTable))
	case errors.Is(err, service.ErrInvalidImage):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidImage))
	case errors.Is(err, service.ErrUploadFailed):
		response.RenderErr(ctx, response.ErrBadGateway(err))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}
