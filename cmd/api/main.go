package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/projethub/projethub/internal/api"
	"github.com/projethub/projethub/internal/core/token"
	"github.com/projethub/projethub/internal/infrastructure/config"
	mongodb "github.com/projethub/projethub/internal/infrastructure/db/mongo"
	redisdb "github.com/projethub/projethub/internal/infrastructure/db/redis"
	"github.com/projethub/projethub/internal/infrastructure/queue"
	"github.com/projethub/projethub/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	db, disconnect, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	ensureIndexes(ctx, db, log)

	dispatcher := queue.NewDispatcher(0, mongodb.NewAuditRepository(db), log)
	dispatcher.Start(ctx)

	tokens := token.NewService(cfg.JWTSecret, cfg.TokenTTL)

	e := api.NewRouter(api.Dependencies{
		DB:          db,
		Redis:       rdb,
		Tokens:      tokens,
		Audit:       dispatcher,
		FrontendURL: cfg.FrontendURL,
		Logger:      log,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	// Wait for a shutdown signal or a listener failure; either way the
	// deferred disconnects still run.
	select {
	case <-ctx.Done():
	case err := <-serverErr:
		log.Error().Err(err).Msg("server stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// ensureIndexes creates the collection indexes at startup. Failures are
// logged but not fatal: the API degrades to unindexed queries rather than
// refusing to start.
func ensureIndexes(ctx context.Context, db *mongo.Database, log zerolog.Logger) {
	repos := map[string]interface {
		EnsureIndexes(context.Context) error
	}{
		"users":   mongodb.NewUserRepository(db),
		"projets": mongodb.NewProjetRepository(db),
		"reviews": mongodb.NewReviewRepository(db),
	}
	for name, repo := range repos {
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Str("collection", name).Msg("index creation failed")
		}
	}
}
