package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ivolkov/syncpad/internal/server"
	"github.com/ivolkov/syncpad/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", ":8080", "HTTP listen address")
	dbPath := flag.String("db", "syncpad.db", "Path to SQLite database file")
	jwtSecret := flag.String("jwt-secret", "", "JWT signing secret (or SYNCPAD_JWT_SECRET env)")
	tokenTTL := flag.Duration("token-ttl", 24*time.Hour, "Access token lifetime")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	secret := *jwtSecret
	if secret == "" {
		secret = os.Getenv("SYNCPAD_JWT_SECRET")
	}
	if secret == "" {
		logger.Error("JWT secret is required: pass -jwt-secret or set SYNCPAD_JWT_SECRET")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, *dbPath)
	if err != nil {
		logger.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	cfg := server.DefaultConfig()
	cfg.Addr = *addr
	cfg.JWTSecret = []byte(secret)
	cfg.AccessTokenTTL = *tokenTTL

	srv := server.New(cfg, logger, store, store)

	logger.Info("syncpad server starting",
		"version", Version,
		"addr", cfg.Addr,
		"db", *dbPath)

	if err := srv.Run(ctx); err != nil {
		logger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func printVersion() {
	fmt.Printf("Syncpad Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
