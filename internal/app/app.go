package app

import (
	"context"
	"fmt"
	"log/slog"

	httpapp "art_academy/internal/app/http"
	"art_academy/internal/config"
	"art_academy/internal/lib/logger/sl"
	"art_academy/internal/lib/validate"
	"art_academy/internal/repository"
	"art_academy/internal/services/auth"
	content "art_academy/internal/services/content_service"
	media "art_academy/internal/services/media_service"
	"art_academy/internal/services/orchestrator"
	settings "art_academy/internal/services/settings_service"
	siteconfig "art_academy/internal/services/siteconfig_service"
	"art_academy/internal/storage/filestorage"
	"art_academy/internal/storage/localstore"
	"art_academy/internal/storage/memstore"
	"art_academy/internal/storage/objectstorage"
	"art_academy/internal/storage/postgresql"
	redisstore "art_academy/internal/storage/redis"
	httprouters "art_academy/internal/transport/http"
)

const (
	driverLocal  = "local"
	driverRedis  = "redis"
	driverMemory = "memory"
	driverS3     = "s3"
)

type App struct {
	log          *slog.Logger
	HTTPServer   *httpapp.Server
	Orchestrator *orchestrator.Orchestrator

	storage *postgresql.Storage
	redis   *redisstore.Client
}

// New builds every component from cfg. Start-up failures panic, as config loading does.
func New(ctx context.Context, log *slog.Logger, cfg *config.Config) *App {
	a, err := build(ctx, log, cfg)
	if err != nil {
		panic(err)
	}

	return a
}

func build(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	const op = "app.New"

	db, err := postgresql.New(ctx, cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if cfg.Database.Migrate {
		if err := db.Migrate(ctx); err != nil {
			db.Stop()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	a := &App{log: log, storage: db}

	kv, err := a.configStore(cfg.ConfigStore, cfg.Redis)
	if err != nil {
		a.Stop()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	objects, uploadsDir, err := objectStore(ctx, cfg.ObjectStorage)
	if err != nil {
		a.Stop()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	repo := repository.NewRepository(db.Pool())
	v := validate.New()

	gallery := content.NewGalleryService(log, repo.Gallery, v)
	courses := content.NewCourseService(log, repo.Courses, v)
	instructors := content.NewInstructorService(log, repo.Instructors, v)
	techniques := content.NewTechniqueService(log, repo.Techniques, v)

	siteConfig := siteconfig.NewSiteConfigService(log, kv, cfg.ConfigStore.Key, cfg.ConfigStore.Driver)

	a.Orchestrator = orchestrator.New(log, siteConfig, orchestrator.Sources{
		Gallery:     gallery,
		Courses:     courses,
		Instructors: instructors,
		Techniques:  techniques,
	}, cfg.Content.FetchTimeout)

	routers := httprouters.NewRouter(log, httprouters.Services{
		Site:        a.Orchestrator,
		ConfigState: siteConfig,
		Gallery:     gallery,
		Courses:     courses,
		Instructors: instructors,
		Techniques:  techniques,
		Media:       media.NewMediaService(log, objects, cfg.ObjectStorage.MaxSize),
		Settings:    settings.NewSettingsService(log, repo.Settings, cfg.Content.SettingsCacheTTL),
		Auth:        auth.New(log, cfg.Auth.AdminPasswordHash, cfg.Auth.TokenSecret, cfg.Auth.TokenTTL),
		Health:      db,
	})

	a.HTTPServer = httpapp.New(log, httpapp.Options{
		Host:          cfg.HTTP.Host,
		Port:          cfg.HTTP.Port,
		TokenSecret:   cfg.Auth.TokenSecret,
		SessionSecret: cfg.Auth.SessionSecret,
		UploadsDir:    uploadsDir,
	}, routers)

	return a, nil
}

func (a *App) configStore(cfg config.ConfigStoreConfig, rc config.RedisConf) (siteconfig.KV, error) {
	switch cfg.Driver {
	case driverLocal, "":
		return localstore.New(cfg.Dir)
	case driverRedis:
		a.redis = redisstore.NewClient(rc.RedisAddr, rc.RedisPassword, rc.RedisDB)
		return a.redis, nil
	case driverMemory:
		return memstore.New(), nil
	default:
		return nil, fmt.Errorf("unknown config_store driver %q", cfg.Driver)
	}
}

// objectStore returns the upload backend and, for the local driver, the
// directory to serve under /uploads.
func objectStore(ctx context.Context, cfg config.ObjectStorageConfig) (media.ObjectStorage, string, error) {
	switch cfg.Driver {
	case driverLocal, "":
		fs, err := filestorage.NewLocalFileStorage(cfg.BaseDir, cfg.BaseURL)
		if err != nil {
			return nil, "", err
		}
		return fs, fs.BaseDir(), nil
	case driverS3:
		s3, err := objectstorage.New(objectstorage.Config{
			Endpoint:  cfg.Endpoint,
			Bucket:    cfg.Bucket,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
			UseSSL:    cfg.UseSSL,
		})
		if err != nil {
			return nil, "", err
		}
		if err := s3.EnsureBucket(ctx); err != nil {
			return nil, "", err
		}
		return s3, "", nil
	default:
		return nil, "", fmt.Errorf("unknown object_storage driver %q", cfg.Driver)
	}
}

// Start loads the site state and begins serving. It blocks until the HTTP
// server stops.
func (a *App) Start(ctx context.Context) {
	if a.redis != nil {
		if err := a.redis.HealthCheck(ctx); err != nil {
			a.log.Warn("redis is not reachable, configuration falls back to defaults", sl.Err(err))
		}
	}

	a.Orchestrator.Start(ctx)
	go a.Orchestrator.Run(ctx)

	a.HTTPServer.BuildRouters()
	a.HTTPServer.MustRun()
}

func (a *App) Stop() {
	if a.HTTPServer != nil {
		if err := a.HTTPServer.Stop(); err != nil {
			a.log.Error("failed to stop http server", sl.Err(err))
		}
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Error("failed to close redis", sl.Err(err))
		}
	}

	if a.storage != nil {
		a.storage.Stop()
	}
}
