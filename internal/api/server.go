package api

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jarana/guia/internal/api/handler/web"
	"github.com/jarana/guia/internal/api/middleware"
	"github.com/jarana/guia/internal/config"
	"github.com/jarana/guia/internal/repository"
	"github.com/jarana/guia/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB, images service.ImageStore) (*Server, error) {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	tmpl, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("loadTemplates -> %w", err)
	}
	engine.SetHTMLTemplate(tmpl)
	if conf.Images.MaxUploadBytes > 0 {
		engine.MaxMultipartMemory = conf.Images.MaxUploadBytes
	}

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	store := repository.NewStore(db)
	catalog := service.NewCatalogService(store)

	publicHandler := web.NewPublicHandler(catalog)
	authHandler := s.initAuthHandler(catalog)
	adminHandler := s.initAdminHandler(store, catalog, images)
	s.MountHandlers(publicHandler, authHandler, adminHandler)

	return s, nil
}

func (s *Server) initAuthHandler(catalog *service.CatalogService) *web.AuthHandler {
	svc := service.NewAuthService(s.Config.Admin.Username, s.Config.Admin.Password)
	handler := web.NewAuthHandler(s.Config.API, svc, catalog)

	return handler
}

func (s *Server) initAdminHandler(store *repository.Store, catalog *service.CatalogService, images service.ImageStore) *web.AdminHandler {
	svc := service.NewAdminService(store, images)
	publisher := service.NewPublisher(s.Config.Publish)
	handler := web.NewAdminHandler(s.Config.Images, catalog, svc, publisher)

	return handler
}

func (s *Server) MountMiddlewares() {
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.RequestLogger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(publicHandler *web.PublicHandler, authHandler *web.AuthHandler, adminHandler *web.AdminHandler) {
	s.Router.GET("/", publicHandler.HandleIndex)
	s.Router.GET("/transportes", publicHandler.HandleTransports)
	s.Router.GET("/transportes/", func(ctx *gin.Context) {
		ctx.Redirect(http.StatusMovedPermanently, "/transportes")
	})

	s.Router.GET("/login", authHandler.HandleLoginPage)
	s.Router.POST("/login", authHandler.HandleLogin)

	admin := s.Router.Group("", middleware.NewAuthenticator(s.Config.API.SecretKey).RequireSession())
	{
		admin.GET("/logout", authHandler.HandleLogout)
		admin.GET("/admin", adminHandler.HandleAdminPage)
		admin.POST("/admin", adminHandler.HandleAdminMutation)
		admin.GET("/edit/rrpp/:id", adminHandler.HandleEditPromoterPage)
		admin.POST("/edit/rrpp/:id", adminHandler.HandleEditPromoter)
		admin.GET("/edit/transporte/:id", adminHandler.HandleEditTransportPage)
		admin.POST("/edit/transporte/:id", adminHandler.HandleEditTransport)
		admin.POST("/publicar", adminHandler.HandlePublish)
	}

	s.Router.Static(UploadsPath, s.Config.Images.UploadDir)
	s.Router.GET("/healthz", web.HandleHealthcheck)
}

func (s *Server) Run() error {
	return s.Router.Run(":" + s.Config.API.Port)
}
