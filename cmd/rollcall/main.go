package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rpggio/rollcall/internal/config"
	"github.com/rpggio/rollcall/internal/domain/activity"
	"github.com/rpggio/rollcall/internal/domain/employee"
	"github.com/rpggio/rollcall/internal/mcp"
	"github.com/rpggio/rollcall/internal/menu"
	"github.com/rpggio/rollcall/internal/metrics"
	"github.com/rpggio/rollcall/internal/sqlite"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Stdout belongs to the menu or to stdio JSON-RPC.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		logger.Error("failed to prepare database path", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	activitySvc := activity.NewService(sqlite.NewActivityRepository(db), logger)
	employeeSvc := employee.NewService(employee.NewStore(), activitySvc, metrics.New(registry), logger)

	ctx := context.Background()
	if cfg.Mode != config.ModeMenu {
		// The menu blocks on stdin, so it keeps the default Ctrl-C behavior.
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()
	}

	switch cfg.Mode {
	case config.ModeMenu:
		err = runMenuMode(ctx, employeeSvc)
	case config.ModeStdio:
		err = runStdioMode(ctx, logger, newMCPServer(employeeSvc, activitySvc, logger))
	case config.ModeHTTP:
		err = runHTTPMode(ctx, logger, newMCPServer(employeeSvc, activitySvc, logger), registry, cfg.Server.Host, cfg.Server.Port)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("exiting", "mode", cfg.Mode, "error", err)
		os.Exit(1)
	}
}

func newMCPServer(employees *employee.Service, activities *activity.Service, logger *slog.Logger) *sdkmcp.Server {
	return mcp.NewServer(mcp.Config{
		Employees: employees,
		Activity:  activities,
		Logger:    logger,
	})
}

func runMenuMode(ctx context.Context, employees *employee.Service) error {
	ctx = activity.WithSession(ctx, activity.NewSessionID())
	return menu.NewConsole(employees, os.Stdin, os.Stdout).Run(ctx)
}

func runStdioMode(ctx context.Context, logger *slog.Logger, server *sdkmcp.Server) error {
	logger.Info("starting stdio transport")
	// Run blocks until stdin closes or ctx is canceled.
	return server.Run(ctx, &sdkmcp.StdioTransport{})
}

func runHTTPMode(ctx context.Context, logger *slog.Logger, server *sdkmcp.Server, gatherer prometheus.Gatherer, host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: mcp.NewHTTPHandler(server, gatherer),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func ensureDBDir(path string) error {
	if path == sqlite.MemoryDSN || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
