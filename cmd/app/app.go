package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jarana/guia/internal/api"
	"github.com/jarana/guia/internal/config"
	"github.com/jarana/guia/internal/db"
	"github.com/jarana/guia/internal/logger"
	"github.com/jarana/guia/internal/repository/dao"
	"github.com/jarana/guia/internal/service"
)

const configPath = "./cmd/app/config.yml"

func Start() error {
	s, err := newServer()
	if err != nil {
		return err
	}

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Run(); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

// newServer loads the configuration and wires every dependency of the web
// server: logger, database, tables and image storage.
func newServer() (*api.Server, error) {
	conf, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment, conf.Log); err != nil {
		return nil, fmt.Errorf("failed to initialize logger -> %w", err)
	}
	if conf.UsesDevSecret() {
		zap.L().Warn("SECRET_KEY is not set, using the development session key")
	}
	if conf.Admin.Username == "" || conf.Admin.Password == "" {
		zap.L().Warn("ADMIN_USER or ADMIN_PASS is not set, admin login is disabled")
	}

	gormDB, err := db.Open(conf.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = dao.InitTables(context.Background(), gormDB); err != nil {
		return nil, fmt.Errorf("failed to initialize tables -> %w", err)
	}

	images, err := newImageStore(conf.Images)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize image store -> %w", err)
	}

	s, err := api.NewServer(conf, gormDB, images)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize server -> %w", err)
	}

	return s, nil
}

// newImageStore hosts pictures on UploadThing when a token is configured and
// keeps them on local disk otherwise.
func newImageStore(conf *config.ImagesConfig) (service.ImageStore, error) {
	if conf.UploadThingToken != "" {
		store, err := service.NewUploadThingImageStore(conf.UploadThingToken, conf.Timeout)
		if err != nil {
			return nil, err
		}
		zap.L().Info("storing images on UploadThing")
		return store, nil
	}

	store, err := service.NewLocalImageStore(conf.UploadDir)
	if err != nil {
		return nil, err
	}
	zap.L().Info("storing images locally", zap.String("dir", conf.UploadDir))

	return store, nil
}
