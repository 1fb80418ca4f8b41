package redis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/you-humble/repair-workshop/platform/logger"
	tc "github.com/you-humble/repair-workshop/platform/testcontainers"
)

const redisStartupTimeout = 30 * time.Second

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type Container struct {
	container testcontainers.Container
	client    *goredis.Client
	addr      string
	logger    Logger
}

// NewContainer starts a throwaway redis and returns a connected client.
func NewContainer(ctx context.Context, log Logger) (*Container, error) {
	if log == nil {
		log = &logger.NoopLogger{}
	}

	image := "redis:7.4-alpine"
	if v := os.Getenv(tc.RedisImageNameKey); v != "" {
		image = v
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{tc.RedisPort + "/tcp"},
			WaitingFor:   wait.ForListeningPort(tc.RedisPort + "/tcp").WithStartupTimeout(redisStartupTimeout),
		},
		Started: true,
	})
	if err != nil {
		return nil, errors.Errorf("failed to start redis container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, errors.Errorf("failed to get container host: %v", err)
	}

	port, err := container.MappedPort(ctx, tc.RedisPort+"/tcp")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, errors.Errorf("failed to get mapped port: %v", err)
	}

	addr := fmt.Sprintf("%s:%s", host, port.Port())
	client := goredis.NewClient(&goredis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = container.Terminate(ctx)
		return nil, errors.Errorf("failed to ping redis: %v", err)
	}

	log.Info(ctx, "Redis container started", zap.String("addr", addr))

	return &Container{container: container, client: client, addr: addr, logger: log}, nil
}

func (c *Container) Client() *goredis.Client { return c.client }

func (c *Container) Addr() string { return c.addr }

func (c *Container) Terminate(ctx context.Context) error {
	if err := c.client.Close(); err != nil {
		c.logger.Error(ctx, "failed to close redis client", zap.Error(err))
	}

	if err := c.container.Terminate(ctx); err != nil {
		c.logger.Error(ctx, "failed to terminate redis container", zap.Error(err))
		return err
	}

	return nil
}
