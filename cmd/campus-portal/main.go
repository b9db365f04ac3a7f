package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	gomongo "go.mongodb.org/mongo-driver/mongo"

	"github.com/unicampus/campus-portal/internal/api"
	"github.com/unicampus/campus-portal/internal/api/handler"
	"github.com/unicampus/campus-portal/internal/core/ports"
	"github.com/unicampus/campus-portal/internal/core/service"
	"github.com/unicampus/campus-portal/internal/infrastructure/db/filestore"
	"github.com/unicampus/campus-portal/internal/infrastructure/db/memory"
	"github.com/unicampus/campus-portal/internal/infrastructure/db/mongo"
	"github.com/unicampus/campus-portal/internal/infrastructure/db/redis"
	"github.com/unicampus/campus-portal/internal/infrastructure/queue"
	"github.com/unicampus/campus-portal/internal/pkg/config"
	"github.com/unicampus/campus-portal/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "campus-portal",
		Env:     cfg.Env,
	})

	if cfg.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is empty, using an insecure development secret")
		cfg.JWTSecret = "campus-portal-dev-secret"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	var (
		repos ports.Repositories
		users ports.UserRepository
		db    *gomongo.Database
	)
	switch cfg.Storage.Driver {
	case config.StorageMongo:
		backend, err := mongo.Open(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open mongo")
		}
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			if err := backend.Close(closeCtx); err != nil {
				log.Error().Err(err).Msg("mongo disconnect")
			}
		}()
		repos, users, db = backend.Records, backend.Users, backend.DB
	default:
		repos = memory.NewRepositories()
		if cfg.Storage.UsersFile != "" {
			users = filestore.NewUserRepository(cfg.Storage.UsersFile)
		} else {
			users = memory.NewUserRepository()
		}
	}
	log.Info().Str("driver", cfg.Storage.Driver).Msg("storage ready")

	// --- Token revocation ---
	var (
		revoker ports.TokenRevoker
		rdb     *goredis.Client
	)
	if cfg.Redis.Addr != "" {
		client, err := redis.Open(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer client.Close()
		rdb = client
		revoker = redis.NewTokenRevoker(client)
	} else {
		revoker = memory.NewTokenRevoker(cfg.Storage.RevocationCacheSize, cfg.TokenTTL)
	}

	// --- Directory events ---
	hub := queue.NewHub(logger.For("directory"))
	hub.Start(ctx)

	// --- Services ---
	validate := handler.NewValidator()
	store := service.NewStore(repos, validate, logger.For("store"))
	if cfg.Storage.SeedSampleData {
		if err := store.Seed(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to seed sample data")
		}
	}

	cache := service.NewSearchCache(cfg.Search.CacheSize, cfg.Search.CacheTTL)
	search := service.NewSearchService(store, cache, cfg.Search.Limit, logger.For("search"))

	e := api.NewRouter(api.Deps{
		Log:       log,
		JWTSecret: cfg.JWTSecret,
		Validator: validate,
		Store:     store,
		Auth:      service.NewAuthService(users, revoker, hub, cfg.JWTSecret, cfg.TokenTTL, logger.For("auth")),
		Revoker:   revoker,
		Directory: service.NewDirectoryService(users, hub, logger.For("directory")),
		Search:    search,
		Live:      service.NewLiveSearch(search, cfg.Search.Debounce, logger.For("live_search")),
		Dashboard: service.NewDashboardService(store),
		Mongo:     db,
		Redis:     rdb,
		Storage:   cfg.Storage.Driver,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("campus portal listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	shutdown(e.Shutdown, cfg, log)
}

func shutdown(stopServer func(context.Context) error, cfg *config.Config, log zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	log.Info().Dur("timeout", cfg.ShutdownTimeout).Msg("shutting down")
	if err := stopServer(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
