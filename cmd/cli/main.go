package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/admin/jyotish/vedic-client/internal/adapters/primary/cli"
	"github.com/admin/jyotish/vedic-client/internal/app"
)

const appName = "vedic_cli"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := app.NewEnvConfig(app.EnvPrefix)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a := app.New(appName, cfg)
	core, err := a.InitCore(ctx)
	if err != nil {
		return err
	}
	defer func() {
		for _, err := range core.Close() {
			a.Log.Error("failed to release resources", "error", err)
		}
	}()

	root := cli.NewRootCommand(cli.Deps{
		Astro:    core.Astro,
		Catalog:  core.Catalog,
		Sessions: core.Sessions,
		Switcher: core.Switcher,
	})
	return root.ExecuteContext(ctx)
}
