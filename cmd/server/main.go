package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"youmatter.app/server/common/id"
	"youmatter.app/server/common/logger"
	"youmatter.app/server/common/otel"
	"youmatter.app/server/core/config"
	"youmatter.app/server/core/db"
	"youmatter.app/server/internal/chat"
	"youmatter.app/server/internal/crisis"
	"youmatter.app/server/internal/genai"
	"youmatter.app/server/internal/http/middleware"
	httprouter "youmatter.app/server/internal/http/router"
	"youmatter.app/server/internal/service"
	"youmatter.app/server/internal/store"
	"youmatter.app/server/internal/youtube"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		// Can't use slog yet — OTel failed before logger setup
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "youmatter starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(1); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	generator := genai.NewClient(cfg.GenAI.APIKey, cfg.GenAI.BaseURL, cfg.GenAI.Model)

	var searcher youtube.Searcher = youtube.NewClient(cfg.YouTube.APIKey, cfg.YouTube.BaseURL, cfg.YouTube.MaxResults)
	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisOpts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
			os.Exit(1)
		}
		redisClient = redis.NewClient(redisOpts)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		searcher = youtube.NewCachedSearcher(searcher, redisClient, time.Duration(cfg.Redis.CacheTTL)*time.Second)
		slog.InfoContext(ctx, "redis connected, video search cache enabled")
	} else {
		slog.InfoContext(ctx, "redis disabled, video search cache off")
	}

	stores := store.NewStores(database.Queries())
	services := service.NewServices(stores, service.NewTxRunner(database), cfg.WorkOS)

	orchestrator := chat.NewOrchestrator(
		crisis.NewDetector(nil, ""),
		generator,
		searcher,
		genai.DefaultRetryPolicy(),
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services, orchestrator, generator, searcher)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func setupRouter(
	cfg config.Config,
	services *service.Services,
	orchestrator *chat.Orchestrator,
	generator *genai.Client,
	searcher youtube.Searcher,
) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	httprouter.SetupRoutes(router, services, orchestrator, generator, searcher, httprouter.RouterConfig{
		SiteURL:      cfg.SiteURL,
		IsProduction: cfg.IsProduction(),
	})

	return router
}

const banner = `
██╗   ██╗ ██████╗ ██╗   ██╗███╗   ███╗ █████╗ ████████╗████████╗███████╗██████╗
╚██╗ ██╔╝██╔═══██╗██║   ██║████╗ ████║██╔══██╗╚══██╔══╝╚══██╔══╝██╔════╝██╔══██╗
 ╚████╔╝ ██║   ██║██║   ██║██╔████╔██║███████║   ██║      ██║   █████╗  ██████╔╝
  ╚██╔╝  ██║   ██║██║   ██║██║╚██╔╝██║██╔══██║   ██║      ██║   ██╔══╝  ██╔══██╗
   ██║   ╚██████╔╝╚██████╔╝██║ ╚═╝ ██║██║  ██║   ██║      ██║   ███████╗██║  ██║
   ╚═╝    ╚═════╝  ╚═════╝ ╚═╝     ╚═╝╚═╝  ╚═╝   ╚═╝      ╚═╝   ╚══════╝╚═╝  ╚═╝
`
