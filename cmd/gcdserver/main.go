package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/InQaaaaGit/gcd_form.git/internal/app"
	"github.com/InQaaaaGit/gcd_form.git/internal/buildinfo"
	"github.com/InQaaaaGit/gcd_form.git/internal/config"
	"github.com/InQaaaaGit/gcd_form.git/internal/server"
)

// Заполняются при сборке: go build -ldflags "-X main.buildVersion=v1.0.0"
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := buildinfo.NewInfo(buildVersion, buildDate, buildCommit)
	info.Print(os.Stdout)

	logger, cleanup := server.InitLogger()
	err := start(logger, info)
	// Fatal завершает процесс без отложенных вызовов, поэтому сброс логгера
	// выполняется до него.
	cleanup()
	if err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

// start загружает конфигурацию и обслуживает запросы до SIGINT/SIGTERM
func start(logger *zap.Logger, info *buildinfo.Info) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting GCD server", append(info.Fields(), zap.String("address", cfg.ServerAddress))...)
	if err := run(ctx, cfg, logger); err != nil {
		return err
	}
	logger.Info("Server stopped")
	return nil
}

// run запускает сервер и блокируется до его остановки или отмены ctx
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	application, err := app.NewApp(cfg, logger)
	if err != nil {
		return errors.Wrap(err, "creating application")
	}

	srv := server.NewHTTPServer(application.GetServer(), cfg, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
