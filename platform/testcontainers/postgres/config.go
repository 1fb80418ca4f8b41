package postgres

import (
	"context"
	"os"

	"github.com/docker/docker/api/types/container"
	"go.uber.org/zap"

	"github.com/you-humble/repair-workshop/platform/logger"
	tc "github.com/you-humble/repair-workshop/platform/testcontainers"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type Config struct {
	ContainerName string
	ImageName     string
	Database      string
	Username      string
	Password      string
	SSLMode       string
	Logger        Logger

	Host string
	Port string
}

func buildConfig(opts ...Option) *Config {
	cfg := &Config{
		ContainerName: "",
		ImageName:     "postgres:17.0-alpine3.20",
		Database:      "repair-db",
		Username:      "repair-service-user",
		Password:      "repair-service-password",
		SSLMode:       "disable",
		Logger:        &logger.NoopLogger{},
	}

	if image := os.Getenv(tc.PostgresImageNameKey); image != "" {
		cfg.ImageName = image
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

func defaultHostConfig() func(hc *container.HostConfig) {
	return func(hc *container.HostConfig) {
		hc.AutoRemove = true
	}
}
