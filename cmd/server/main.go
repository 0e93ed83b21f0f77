package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/cloud-ru/unit-economics-go/internal/config"
	"github.com/cloud-ru/unit-economics-go/internal/logger"
	"github.com/cloud-ru/unit-economics-go/internal/platform"
	"github.com/cloud-ru/unit-economics-go/internal/report"
	"github.com/cloud-ru/unit-economics-go/internal/server"
	"github.com/cloud-ru/unit-economics-go/internal/tools"
	"github.com/cloud-ru/unit-economics-go/internal/tracing"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.InitLogger(cfg.LogLevel, cfg.Stage, cfg.OTELServiceName); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.InitTracing(ctx, cfg.OTELServiceName, cfg.OTELEndpoint)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Log.Warn("tracing shutdown", zap.Error(err))
		}
	}()

	var host platform.Host
	if cfg.TelegramEnabled() {
		telegram, err := platform.NewTelegramHost(cfg.TelegramAPIURL, cfg.TelegramBotToken, cfg.TelegramChatID, nil)
		if err != nil {
			return err
		}
		host = telegram
		logger.Log.Info("результаты будут отправляться в Telegram", zap.String("chat_id", cfg.TelegramChatID))
	} else {
		logger.Log.Info("Telegram не настроен, экспорт сохраняется в файлы", zap.String("dir", cfg.ExportDir))
	}

	exporter := platform.NewExporter(host, report.NewComposer(cfg.CalculatorSignature), cfg.ExportDir)
	registry := tools.NewRegistry(cfg, tracing.Tracer, exporter)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           server.NewRouter(registry),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      35 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("сервер запущен", zap.String("addr", srv.Addr), zap.Strings("tools", registry.Names()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Log.Info("остановка сервера")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
