package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"ms-dashboard/internal/auth"
	"ms-dashboard/internal/config"
	"ms-dashboard/internal/dashboard"
	"ms-dashboard/internal/dashboard/dashboard_api"
	"ms-dashboard/internal/kafka"
	"ms-dashboard/internal/logger"
	"ms-dashboard/internal/pipeline"
	"ms-dashboard/internal/upstream"
)

func connectRedis(ctx context.Context, cfg *config.Config, logger *logger.Logger) *redis.Client {
	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Addr,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal("DATABASE", fmt.Sprintf("Redis connection error: %v", err))
	}
	logger.Info("DATABASE", fmt.Sprintf("✅ Redis connection successful to %s", cfg.Redis.Addr))
	return redisClient
}

func startChangeConsumer(cfg *config.Config, svc *dashboard.Service, logger *logger.Logger) *kafka.Consumer {
	if err := kafka.CreateTopicIfNotExists(cfg.Kafka.Brokers, cfg.Kafka.ChangeTopic); err != nil {
		logger.Warn("KAFKA", fmt.Sprintf("Topic creation might have failed: %v", err))
	}

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.ChangeTopic, cfg.Kafka.GroupID)
	go consumer.Start(func(change kafka.ChangeEvent) {
		logger.LogKafka("CHANGE", cfg.Kafka.ChangeTopic, fmt.Sprintf("Invalidating snapshot after %s", change.Kind))
		svc.InvalidateSnapshot(context.Background())
	})

	logger.Info("KAFKA", fmt.Sprintf("Change consumer started on topic %s", cfg.Kafka.ChangeTopic))
	return consumer
}

func main() {
	logger := logger.NewLogger()
	defer logger.Close()

	logger.Info("APP", "Starting Dashboard Service initialization")

	if err := godotenv.Load(); err != nil {
		logger.Warn("CONFIG", ".env file not found, using environment variables")
	} else {
		logger.Info("CONFIG", "Loaded environment variables from .env file")
	}

	cfg := config.Load()
	ctx := context.Background()

	client := &http.Client{
		Timeout: cfg.Upstream.Timeout,
	}

	logger.Info("APP", "Verifying Redis connection")
	redisClient := connectRedis(ctx, cfg, logger)
	defer redisClient.Close()

	fetcher := upstream.NewFetcher(client, cfg.Upstream.BaseURL, cfg.Upstream.ServiceToken, logger)
	cache := upstream.NewSnapshotCache(redisClient, cfg.Redis.SnapshotTTL)

	var publisher dashboard.ChangePublisher
	if cfg.Kafka.Enabled {
		kafkaProducer := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.ChangeTopic)
		defer kafkaProducer.Close()
		publisher = kafkaProducer
		logger.Info("KAFKA", "Kafka producer initialized successfully")
	} else {
		logger.Warn("KAFKA", "Kafka disabled, change notifications will not be published")
	}

	service := dashboard.NewService(fetcher, cache, publisher, pipeline.SystemClock{}, logger)
	handler := dashboard_api.NewHandler(service, logger)

	var consumer *kafka.Consumer
	if cfg.Kafka.Enabled {
		consumer = startChangeConsumer(cfg, service, logger)
		defer consumer.Close()
	}

	logger.Info("HTTP", "Setting up router and middleware")
	r := chi.NewRouter()

	// --- Public Routes ---
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// --- Protected Routes ---
	r.Group(func(r chi.Router) {
		if cfg.Auth.Enabled {
			r.Use(auth.Middleware(cfg.Auth.OIDCIssuer))
			logger.Info("AUTH", "OIDC middleware applied to dashboard API routes")
		} else {
			logger.Warn("AUTH", "Auth disabled, dashboard API routes are unprotected")
		}

		r.Route("/api", func(r chi.Router) {
			handler.RegisterRoutes(r)
		})
		logger.Info("ROUTER", "Dashboard routes registered under /api/dashboard")
	})

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP", fmt.Sprintf("🚀 Dashboard Service running on %s", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP", fmt.Sprintf("HTTP server error: %v", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	logger.Info("APP", "Service started successfully, waiting for shutdown signal")
	<-stop

	logger.Info("APP", "Shutdown signal received, initiating graceful shutdown")
	ctxShutdown, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("HTTP", fmt.Sprintf("Server Shutdown Failed: %v", err))
	} else {
		logger.Info("HTTP", "✅ Dashboard Service shutdown complete")
	}
}
