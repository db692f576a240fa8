package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/developia-II/catalog-api/config"
	"github.com/developia-II/catalog-api/internal/adapters/repository"
	"github.com/developia-II/catalog-api/internal/adapters/repository/memory"
	"github.com/developia-II/catalog-api/internal/core/domain"
	"github.com/developia-II/catalog-api/internal/handlers"
	"github.com/developia-II/catalog-api/internal/services/catalog"
	"github.com/developia-II/catalog-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	configureLogging(cfg)

	if err := run(cfg); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}

func configureLogging(cfg *config.Config) {
	if cfg.IsProduction() {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		gin.SetMode(gin.ReleaseMode)
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Warnf("unknown LOG_LEVEL %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

func run(cfg *config.Config) error {
	tokens, err := utils.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return err
	}

	deps := handlers.Dependencies{
		Tokens:         tokens,
		AllowedOrigins: cfg.AllowedOrigins,
		RequestTimeout: cfg.RequestTimeout,
		DebugRoutes:    cfg.DebugRoutes,
	}

	switch cfg.StorageDriver {
	case config.StorageMemory:
		logrus.Warn("using in-memory storage - data is lost on restart")
		var tx domain.TxRunner
		if cfg.CascadeInTransaction {
			tx = memory.TxRunner{}
		}
		deps.Catalog = catalog.NewService(memory.NewCategoryRepository(), memory.NewSubcategoryRepository(), tx)
		deps.Collections = memory.Collections{}
	default:
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		logrus.Info("Connecting to MongoDB...")
		client, err := repository.Connect(ctx, cfg.MongoURI)
		if err != nil {
			return err
		}
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				logrus.WithError(err).Error("failed to disconnect from MongoDB")
			}
		}()

		db := client.Database(cfg.MongoDatabase)
		if err := repository.EnsureIndexes(ctx, db); err != nil {
			return err
		}
		logrus.WithField("database", cfg.MongoDatabase).Info("Connected to MongoDB")

		var tx domain.TxRunner
		if cfg.CascadeInTransaction {
			tx = repository.NewTxRunner(client)
		}
		deps.Catalog = catalog.NewService(repository.NewCategoryRepository(db), repository.NewSubcategoryRepository(db), tx)
		deps.Collections = db
	}

	uploader, err := utils.NewCloudinaryUploader(utils.CloudinaryConfig{
		CloudName: cfg.CloudinaryCloudName,
		APIKey:    cfg.CloudinaryAPIKey,
		APISecret: cfg.CloudinaryAPISecret,
	})
	switch {
	case errors.Is(err, utils.ErrUploadsDisabled):
		logrus.Warn("Cloudinary credentials missing - image uploads disabled")
	case err != nil:
		return err
	default:
		deps.Uploader = uploader
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handlers.NewRouter(deps),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logrus.Infof("Server listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case sig := <-quit:
		logrus.Infof("received %s, shutting down", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
