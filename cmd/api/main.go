package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jwtauth "pet-events/internal/adapters/auth/jwtauth"
	"pet-events/internal/adapters/auth/odin"
	"pet-events/internal/adapters/storage/mongodb"
	"pet-events/internal/adapters/storage/objectstore"
	pg "pet-events/internal/adapters/storage/postgres"
	"pet-events/internal/config"
	"pet-events/internal/domain/events"
	"pet-events/internal/domain/images"
	"pet-events/internal/platform/logger"
	"pet-events/internal/ports/auth"
	"pet-events/internal/router"
)

// @title Pet Events API
// @version 1.0
// @description Eventos de mascotas del usuario logueado.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}

func run(cfg config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eventRepo, closeEvents, err := openEventStore(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer closeEvents()

	imageRepo, err := openImageStore(ctx, cfg.Images)
	if err != nil {
		return err
	}

	verifier, err := newVerifier(cfg.Auth)
	if err != nil {
		return err
	}
	if verifier == nil {
		log.Warn("auth en modo dev: se acepta el header X-Debug-User-ID", nil)
	}

	r := router.NewRouter(router.Options{
		AuthVerifier:      verifier,
		Events:            eventRepo,
		Images:            imageRepo,
		Logger:            log,
		RequireFutureDate: cfg.Events.RequireFutureDate,
		ImageMaxBytes:     cfg.Images.MaxBytes,
		CORSOrigins:       cfg.HTTP.Origins(),
	})

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":    srv.Addr,
			"storage": cfg.Storage.Driver,
			"images":  cfg.Images.Driver,
			"auth":    cfg.Auth.Mode,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openEventStore devuelve nil para memory; el router usa su repo in-memory.
func openEventStore(ctx context.Context, cfg config.StorageConfig) (events.Repository, func(), error) {
	noop := func() {}

	switch cfg.Driver {
	case "mongo":
		client, err := mongodb.Connect(ctx, cfg.Mongo.URI)
		if err != nil {
			return nil, noop, err
		}
		repo := mongodb.NewEventsRepo(client.Database(cfg.Mongo.Database))
		if err := repo.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, noop, err
		}
		return repo, func() { _ = client.Disconnect(context.Background()) }, nil

	case "postgres":
		db, err := pg.Open(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, noop, err
		}
		if err := pg.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, noop, err
		}
		return pg.NewEventsRepo(db), func() { _ = db.Close() }, nil
	}

	return nil, noop, nil
}

func openImageStore(ctx context.Context, cfg config.ImagesConfig) (images.Repository, error) {
	if cfg.Driver != "minio" {
		return nil, nil
	}

	client, err := objectstore.NewClient(objectstore.Config{
		Endpoint:  cfg.Minio.Endpoint,
		AccessKey: cfg.Minio.AccessKey,
		SecretKey: cfg.Minio.SecretKey,
		Bucket:    cfg.Minio.Bucket,
		UseSSL:    cfg.Minio.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	bucketCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	repo := objectstore.NewImagesRepo(client, cfg.Minio.Bucket)
	if err := repo.EnsureBucket(bucketCtx); err != nil {
		return nil, err
	}
	return repo, nil
}

// newVerifier devuelve nil en modo dev (sin verifier).
func newVerifier(cfg config.AuthConfig) (auth.AuthVerifier, error) {
	switch cfg.Mode {
	case "odin":
		return odin.NewVerifier(odin.Config{
			BaseURL:      cfg.Odin.BaseURL,
			APIKey:       cfg.Odin.APIKey,
			APIKeyHeader: cfg.Odin.APIKeyHeader,
			Timeout:      cfg.Odin.Timeout,
		})
	case "jwt":
		return jwtauth.NewVerifier(cfg.JWT.Secret, cfg.JWT.Issuer)
	}
	return nil, nil
}
