package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ivolkov/syncpad/internal/client/api"
	"github.com/ivolkov/syncpad/internal/client/auth"
	"github.com/ivolkov/syncpad/internal/client/cli"
	"github.com/ivolkov/syncpad/internal/client/conflictres"
	"github.com/ivolkov/syncpad/internal/client/deltasync"
	"github.com/ivolkov/syncpad/internal/client/iocli"
	"github.com/ivolkov/syncpad/internal/client/netmon"
	"github.com/ivolkov/syncpad/internal/client/queue"
	"github.com/ivolkov/syncpad/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "syncpad.db", "Path to local database")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	logLevel := slog.LevelWarn
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, *serverURL, *dbPath, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, serverURL, dbPath, command string, args []string) error {
	store, err := boltdb.New(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(serverURL)

	authService := auth.NewService(apiClient, store, logger)

	// Восстанавливаем токен сохраненной сессии; отсутствие сессии не
	// ошибка, команда сама решит, нужна ли ей авторизация
	if session, err := authService.CurrentSession(ctx); err == nil {
		apiClient.SetToken(session.AccessToken)
	}

	conflicts := deltasync.New(apiClient, logger)

	var manager *queue.Manager
	monitor := netmon.New(apiClient, logger, netmon.DefaultConfig(), func() {
		if _, err := manager.ProcessQueue(context.Background()); err != nil {
			logger.Error("background sync failed", "error", err)
		}
	})
	manager = queue.New(store, conflicts, monitor, logger, queue.DefaultConfig())

	// Однократная проверка сети перед выполнением команды;
	// фоновый опрос для короткоживущего CLI процесса не нужен
	monitor.CheckNow(ctx)

	resolver := conflictres.New(conflicts, manager, logger)

	c := cli.New(iocli.NewStdio(), apiClient, authService, manager, conflicts, resolver)

	return c.Run(ctx, command, args)
}

func printVersion() {
	fmt.Printf("Syncpad Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
