package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/you-humble/repair-workshop/internal/app"
	"github.com/you-humble/repair-workshop/platform/logger"
)

func main() {
	ctx, quit := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT, syscall.SIGTERM,
	)
	defer quit()

	cliApp := &cli.App{
		Name:  "repair",
		Usage: "repair workshop service",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API and the low stock consumer",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "apply database migrations and exit",
				Action: migrate,
			},
		},
		DefaultCommand: "serve",
	}

	if err := cliApp.RunContext(ctx, os.Args); err != nil {
		logger.Error(ctx, "❌ Repair workshop error", logger.ErrorF(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func serve(c *cli.Context) error {
	ctx := c.Context

	a, err := app.New(ctx)
	if err != nil {
		logger.Error(ctx,
			"❌ Failed to create an application",
			logger.ErrorF(err),
		)
		return err
	}

	return a.Run(ctx)
}

func migrate(c *cli.Context) error {
	if err := app.Migrate(c.Context); err != nil {
		return err
	}

	logger.Info(c.Context, "✅ Migrations applied")
	return nil
}
