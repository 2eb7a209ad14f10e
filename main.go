package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"triviaapi/config"
	"triviaapi/db"
	"triviaapi/handlers"
	appmiddleware "triviaapi/middleware"
	"triviaapi/services"
	"triviaapi/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func newRouter(h *handlers.Handler, logger *zap.Logger, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(appmiddleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(appmiddleware.RequestLogger(logger))
	r.Use(appmiddleware.Metrics)
	r.Use(appmiddleware.Recoverer(logger))
	r.Use(appmiddleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "PUT", "PATCH", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		ExposedHeaders: []string{appmiddleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.NotFound(utils.NotFound)
	r.MethodNotAllowed(utils.MethodNotAllowed)

	r.Handle("/metrics", appmiddleware.MetricsHandler())
	h.Routes(r)

	return r
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	cfg.Level = lvl
	return cfg.Build()
}

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal("could not initialize logger:", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		logger.Fatal("could not initialize database connection pool", zap.Error(err))
	}
	defer pool.Close()

	seeded, err := db.Migrate(ctx, pool, cfg.SeedDB)
	if err != nil {
		logger.Fatal("could not migrate database", zap.Error(err))
	}
	if seeded {
		logger.Info("database seeded with sample trivia")
	}

	h := handlers.NewHandler(db.NewStore(pool), services.NewQuizPicker(nil), logger)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      newRouter(h, logger, cfg.AllowedOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("trivia api starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("trivia api shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
}
