package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Noah-Moller/CanvasKit/internal/canvas"
	"github.com/Noah-Moller/CanvasKit/internal/config"
	"github.com/Noah-Moller/CanvasKit/internal/handler"
	"github.com/Noah-Moller/CanvasKit/internal/middleware"
	"github.com/Noah-Moller/CanvasKit/internal/service"
	"github.com/Noah-Moller/CanvasKit/pkg/logging"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot create config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewForEnv(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	client, err := canvas.New(cfg.CanvasDomain, cfg.CanvasAPIToken,
		canvas.WithTimeout(cfg.CanvasRequestTimeout),
		canvas.WithTodoConcurrency(cfg.CanvasTodoConcurrency),
		canvas.WithLogger(logger),
	)
	if err != nil {
		logger.Fatal(ctx, "cannot create canvas client", zap.Error(err))
	}

	canvasService := service.NewCanvasService(client, service.RetryPolicy{
		MaxAttempts:      cfg.RetryMaxAttempts,
		BaseDelay:        cfg.RetryBaseDelay,
		FailureThreshold: cfg.BreakerFailureThreshold,
		ResetTimeout:     cfg.BreakerResetTimeout,
	}, logger)
	canvasHandler := handler.NewCanvasHandler(canvasService)

	r := chi.NewRouter()
	r.Use(middleware.NewLoggingMiddleware(logger))
	r.Use(func(next http.Handler) http.Handler {
		return http.MaxBytesHandler(next, 1<<20) // 1 MB
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	canvasHandler.RegisterRoutes(r)

	port := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info(ctx, "Starting server",
		zap.String("port", port),
		zap.String("canvas", client.BaseURL()),
	)

	srv := &http.Server{
		Addr:              port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal(ctx, "cannot start http server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info(ctx, "Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal(ctx, "server forced to shutdown", zap.Error(err))
	}
	logger.Info(ctx, "Server stopped")
}
