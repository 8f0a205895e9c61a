// Package server собирает HTTP сервер: маршруты, middleware и graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ivolkov/syncpad/internal/server/handlers"
	"github.com/ivolkov/syncpad/internal/server/middleware"
	"github.com/ivolkov/syncpad/internal/server/storage"
)

// Config конфигурация HTTP сервера
type Config struct {
	Addr            string
	JWTSecret       []byte
	AccessTokenTTL  time.Duration
	AuthRateLimit   int           // запросов на IP в окно для auth эндпоинтов
	AuthRateWindow  time.Duration // окно rate limit
	ShutdownTimeout time.Duration
}

// DefaultConfig возвращает конфигурацию с разумными значениями по умолчанию
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		AccessTokenTTL:  24 * time.Hour,
		AuthRateLimit:   10,
		AuthRateWindow:  time.Minute,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Server представляет HTTP сервер приложения
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
	cfg        Config
}

// New создает сервер с собранным router
func New(
	cfg Config,
	logger *slog.Logger,
	userStorage storage.UserStorage,
	entityStorage storage.EntityStorage,
) *Server {
	jwtConfig := handlers.JWTConfig{
		Secret:         cfg.JWTSecret,
		AccessTokenTTL: cfg.AccessTokenTTL,
	}

	router := NewRouter(cfg, logger, userStorage, entityStorage, jwtConfig)

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
		cfg:    cfg,
	}
}

// NewRouter собирает все маршруты и middleware цепочки.
// Вынесено отдельно, чтобы тесты могли поднять router через httptest.
func NewRouter(
	cfg Config,
	logger *slog.Logger,
	userStorage storage.UserStorage,
	entityStorage storage.EntityStorage,
	jwtConfig handlers.JWTConfig,
) http.Handler {
	authHandler := handlers.NewAuthHandler(logger, userStorage, jwtConfig)
	entityHandler := handlers.NewEntityHandler(logger, entityStorage)
	healthHandler := handlers.NewHealthHandler(logger)

	authMW := middleware.AuthMiddleware(logger, jwtConfig)
	rateLimitMW := middleware.RateLimitMiddleware(cfg.AuthRateLimit, cfg.AuthRateWindow, logger)

	mux := http.NewServeMux()

	// Публичные эндпоинты. Auth закрыт rate limit от перебора паролей.
	mux.Handle("POST /api/v1/auth/register", rateLimitMW(http.HandlerFunc(authHandler.Register)))
	mux.Handle("POST /api/v1/auth/login", rateLimitMW(http.HandlerFunc(authHandler.Login)))
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)

	// Защищенные эндпоинты
	mux.Handle("POST /api/v1/entities/{type}/{id}/push", authMW(http.HandlerFunc(entityHandler.Push)))
	mux.Handle("GET /api/v1/entities/{type}/{id}", authMW(http.HandlerFunc(entityHandler.Get)))

	// Внешняя цепочка: recovery -> logging -> mux
	// Health check не логируем: клиентский connectivity probe ходит туда постоянно
	var handler http.Handler = mux
	handler = middleware.LoggingWithSkip(logger, []string{"/api/v1/health"})(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	return handler
}

// Run запускает сервер и блокируется до отмены контекста,
// после чего выполняет graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	errC := make(chan error, 1)

	go func() {
		s.logger.Info("HTTP server listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errC <- err
		}
	}()

	select {
	case err := <-errC:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
