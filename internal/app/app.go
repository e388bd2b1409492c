package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/admin/jyotish/vedic-client/internal/pkg/logger"
)

type App struct {
	Name string
	Cfg  *Config
	Log  *slog.Logger
}

func New(name string, cfg *Config) *App {
	return &App{
		Name: name,
		Cfg:  cfg,
		Log:  logger.New(name, cfg.Log),
	}
}

// Run поднимает HTTP-сервис и фоновые задачи до отмены ctx
func (a *App) Run(ctx context.Context) error {
	a.Log.Info("running vedic client",
		"astro_api", a.Cfg.AstroAPI.BaseURL,
		"language", a.Cfg.InitialLanguage())

	deps, err := a.initDependencies(ctx)
	if err != nil {
		return fmt.Errorf("failed to init dependencies: %w", err)
	}

	return a.runServices(ctx, deps)
}
