// Package main wires the HTTP server for the staff directory service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"staff-api/config"
	"staff-api/internal/repository"
	"staff-api/internal/storage/redis"
	"staff-api/internal/transport/http/middleware"
	"staff-api/internal/transport/http/server"
	"staff-api/internal/usecase"
	"staff-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(logger.Options{
		Level:      cfg.Logging.Level,
		File:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	})
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = log.Sync()
	}()

	repo, err := repository.New(ctx, cfg.Storage.Employees, log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	var counter middleware.Counter
	if cfg.RateLimit.RedisAddr != "" {
		client, err := redis.NewUniversalClient(cfg.RateLimit.RedisAddr)
		if err != nil {
			log.Errorw("redis client error", "error", err)
			return
		}
		rc := redis.New(client, cfg.RateLimit.RedisPrefix)
		if err := rc.Ping(ctx); err != nil {
			log.Errorw("redis ping error", "addr", cfg.RateLimit.RedisAddr, "error", err)
			return
		}
		defer func() {
			_ = rc.Close()
		}()
		counter = rc
		log.Infow("rate limit windows in redis", "addr", cfg.RateLimit.RedisAddr)
	}

	uc := usecase.New(log, repository.NewUsers(log), repo, cfg.HTTP.RequestTimeout)
	serv := server.New(log, cfg, uc, counter)

	go func() {
		log.Infow("listening", "addr", cfg.ServerAddr(), "employees_backend", cfg.Storage.Employees)
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
