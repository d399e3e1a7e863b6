package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"transfer-lab/contract"
	"transfer-lab/domain/event"
	"transfer-lab/infrastructure/gateway"
	"transfer-lab/infrastructure/storage"
	"transfer-lab/internal"
	"transfer-lab/runtime"
	"transfer-lab/runtime/workers"
	"transfer-lab/services"
	"transfer-lab/sink"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Transferd terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages their lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx := context.Background()

	// 2. Storage (BadgerDB for job records, Bluge for history search)
	db, err := badger.Open(buildBadgerOpts(ctx, config, logger))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		// Defer ensures the database lock is released and buffers are flushed before the function returns.
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	// 3. Transfer plumbing
	placer := services.NewFilePlacer(config.TransferRoot, logger)
	repository := storage.NewJobRepository(db, logger, placer.Decorate)
	historyIndex := storage.NewHistoryIndex(blugeWriter, logger)

	httpGateway := gateway.NewHTTPGateway(
		logger,
		&http.Client{Timeout: config.HTTPTimeout},
		gateway.Config{
			Root:         config.TransferRoot,
			Capacity:     config.GatewayCapacity,
			MinFreeBytes: config.MinFreeBytes,
			Enabled:      config.GatewayEnabled,
		},
	)

	events := make(chan event.DomainEvent, config.EventBufferSize)
	completions := make(chan contract.Transferable, config.CompletionBuffer)

	coordinator := runtime.NewCoordinator(
		logger, httpGateway, repository,
		config.ConcurrencyCeiling,
		events, completions,
	)
	if err := coordinator.Init(); err != nil {
		return exitRuntime, fmt.Errorf("coordinator init failed: %w", err)
	}

	// 4. Context & Signals
	// NotifyContext captures OS signals and cancels the context to trigger a shutdown.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Supervision
	fanout := workers.NewStatusFanout(logger, events).Add(
		sink.NewDiskSink(repository, logger),
		sink.NewHistorySink(historyIndex, logger),
	)
	sup := workers.NewSupervisor(logger).Add(
		workers.NewCompletionWorker(logger, completions),
		fanout,
		workers.NewPendingLoaderWorker(logger, repository, coordinator, config.PendingPollPeriod),
	)

	logger.Info("Transferd started", "ceiling", config.ConcurrencyCeiling, "root", config.TransferRoot)

	// Run blocks until the signal context cancels and every worker drains.
	// Queued work survives in Badger; active requests are abandoned to the
	// gateway and reconciled on the next start.
	sup.Run(ctx)

	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

func buildBadgerOpts(ctx context.Context, config internal.Config, logger *slog.Logger) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG).
			WithBypassLockGuard(true)
	} else {
		options = options.WithLoggingLevel(badger.INFO)
	}

	return options
}
