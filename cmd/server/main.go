package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/apikit/internal/config"
	"github.com/maxviazov/apikit/internal/handler"
	"github.com/maxviazov/apikit/internal/logger"
	"github.com/maxviazov/apikit/internal/repository"
	"github.com/maxviazov/apikit/internal/repository/postgres"
	"github.com/maxviazov/apikit/internal/service"
)

func main() {
	// Load application config
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}

	repo, err := repository.New(context.Background(), cfg, &appLogger)
	if err != nil {
		log.Fatalf("❌ Postgres connection failed: %v", err)
	}
	defer repo.Close()

	pool := repo.Pool()
	articleSvc := service.NewArticleService(postgres.NewArticleRepository(pool), postgres.NewTxManager(pool), appLogger)

	if cfg.Logger.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(handler.RequestLogger(appLogger), gin.Recovery())
	handler.Register(engine, postgres.NewPinger(pool), articleSvc)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	appLogger.Info().Str("addr", addr).Msg("🚀 Service started")
	if err := engine.Run(addr); err != nil {
		appLogger.Fatal().Err(err).Msg("server stopped")
	}
}
