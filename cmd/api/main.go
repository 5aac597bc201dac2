package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	v1 "github.com/manager-glitch/birdco-vendor-hub/cmd/api/router/v1"
	"github.com/manager-glitch/birdco-vendor-hub/internal/config"
	cacheadapter "github.com/manager-glitch/birdco-vendor-hub/internal/infrastructure/cache/adapter"
	"github.com/manager-glitch/birdco-vendor-hub/internal/infrastructure/database"
	"github.com/manager-glitch/birdco-vendor-hub/internal/infrastructure/push"
	queueadapter "github.com/manager-glitch/birdco-vendor-hub/internal/infrastructure/queue/adapter"
	"github.com/manager-glitch/birdco-vendor-hub/internal/infrastructure/realtime"
	"github.com/manager-glitch/birdco-vendor-hub/internal/infrastructure/token"
	"github.com/manager-glitch/birdco-vendor-hub/internal/middleware"
	chatevent "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/chat/application/event"
	contacttask "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/contact/application/task"
	identityadapter "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/persistence/repository/adapter"
	authmw "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/presentation/middleware"
	notificationtask "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/notification/application/task"
	notificationusecase "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/notification/application/usecase"
	notificationadapter "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/notification/persistence/repository/adapter"
)

const workerConcurrency = 10

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("startup failed", "error", err)
		os.Exit(1)
	}

	logger, closeLog := config.SetupLogger(cfg.LogFile, slog.LevelInfo)
	defer closeLog()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	cache, err := cacheadapter.NewRedisCache(cfg.RedisURL)
	if err != nil {
		logger.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	defer cache.Close()

	queueClient, err := queueadapter.NewAsynqClient(cfg.RedisURL)
	if err != nil {
		logger.Error("queue client failed", "error", err)
		os.Exit(1)
	}
	defer queueClient.Close()

	queueServer, err := queueadapter.NewAsynqServer(cfg.RedisURL, workerConcurrency, logger)
	if err != nil {
		logger.Error("queue server failed", "error", err)
		os.Exit(1)
	}

	tokens := token.NewService(cfg.JWTSecret, cfg.AccessTokenTTL)
	users := identityadapter.NewPgUserRepository(pool)
	auth := authmw.NewAuth(tokens, cache, users)

	hub := realtime.NewHub()
	defer hub.Close()

	var sender notificationusecase.PushSender
	if cfg.FCMServerKey != "" {
		sender = push.NewGateway(cfg.FCMEndpoint, cfg.FCMServerKey)
	} else {
		logger.Warn("FCM_SERVER_KEY not set, android push delivery disabled")
	}

	enqueuer := notificationtask.NewEnqueuer(queueClient)
	chatEvents := chatevent.NewFanout(hub, enqueuer, logger)

	dispatch := notificationusecase.NewDispatchPushUseCase(
		notificationadapter.NewPgPushTokenRepository(pool), users, sender)
	notificationtask.NewHandlers(dispatch, logger).Register(queueServer)
	contacttask.NewHandlers(logger).Register(queueServer)

	go func() {
		if err := queueServer.Run(ctx); err != nil {
			logger.Error("queue server stopped", "error", err)
			stop()
		}
	}()

	engine := gin.New()
	engine.Use(gin.Recovery(), middleware.CORS(cfg.AllowedOrigins))

	v1.Register(engine, v1.Deps{
		Pool:             pool,
		Tokens:           tokens,
		Auth:             auth,
		Hub:              hub,
		Queue:            queueClient,
		ChatEvents:       chatEvents,
		DecisionNotifier: enqueuer,
		PushSender:       sender,
		BypassApproval:   cfg.BypassApprovalChecks,
		Logger:           logger,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("api listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
	if err := queueServer.Stop(shutdownCtx); err != nil {
		logger.Error("queue shutdown failed", "error", err)
	}
}
