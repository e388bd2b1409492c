package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/admin/jyotish/vedic-client/internal/app"
)

const appName = "vedic_client"

// HTTP-сервис: REST API для отчётов, чата и фоновые задачи
func main() {
	cfg, err := app.NewEnvConfig(app.EnvPrefix)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	service := app.New(appName, cfg)
	if err := service.Run(ctx); err != nil {
		service.Log.Error("service stopped with error", "error", err)
		stop()
		os.Exit(1)
	}
	service.Log.Info("service stopped")
}
