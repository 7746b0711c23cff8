package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/doanhtu/image-interpolation/internal/config"
	"github.com/doanhtu/image-interpolation/internal/http/handlers"
	"github.com/doanhtu/image-interpolation/internal/http/routes"
	"github.com/doanhtu/image-interpolation/internal/services/processor"
	"github.com/doanhtu/image-interpolation/internal/services/queue"
	"github.com/doanhtu/image-interpolation/internal/services/storage"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize services
	proc := processor.NewImageProcessor()

	store, err := storage.NewService(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize storage service", zap.Error(err))
	}

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	var jobQueue handlers.JobQueue
	q, err := queue.NewService(cfg.RabbitMQ.URL, proc, store, logger, cfg.Storage.MaxFileSize)
	if err != nil {
		logger.Warn("Failed to initialize queue service, async jobs disabled", zap.Error(err))
	} else {
		defer q.Close()
		jobQueue = q
		for i := 1; i <= cfg.RabbitMQ.Workers; i++ {
			if err := q.StartWorker(workerCtx, i); err != nil {
				logger.Error("Failed to start worker", zap.Int("worker_id", i), zap.Error(err))
			}
		}
	}

	// Initialize handlers
	imageHandler := handlers.NewImageHandler(proc, store, jobQueue, logger, cfg)

	router := routes.NewRouter(imageHandler, logger, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		Handler:      router.SetupRoutes(),
	}

	// Start server
	go func() {
		logger.Info("Starting server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	stopWorkers()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
