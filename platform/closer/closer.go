package closer

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type namedFunc struct {
	name string
	fn   func(context.Context) error
}

// Closer runs registered shutdown functions in reverse registration order.
type Closer struct {
	mu     sync.Mutex
	once   sync.Once
	done   chan struct{}
	funcs  []namedFunc
	logger Logger
}

var globalCloser = New()

func New() *Closer {
	return &Closer{
		done:   make(chan struct{}),
		logger: noopLogger{},
	}
}

func SetLogger(l Logger) { globalCloser.SetLogger(l) }

func Add(fn func(context.Context) error) { globalCloser.AddNamed("func", fn) }

func AddNamed(name string, fn func(context.Context) error) { globalCloser.AddNamed(name, fn) }

func CloseAll(ctx context.Context) error { return globalCloser.CloseAll(ctx) }

func Done() <-chan struct{} { return globalCloser.done }

func (c *Closer) SetLogger(l Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger = l
}

func (c *Closer) AddNamed(name string, fn func(context.Context) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs = append(c.funcs, namedFunc{name: name, fn: fn})
}

// CloseAll is idempotent; only the first call runs the functions.
func (c *Closer) CloseAll(ctx context.Context) error {
	var result error

	c.once.Do(func() {
		defer close(c.done)

		c.mu.Lock()
		funcs := c.funcs
		c.funcs = nil
		log := c.logger
		c.mu.Unlock()

		if len(funcs) == 0 {
			return
		}

		log.Info(ctx, "🛑 Closing resources...", zap.Int("count", len(funcs)))

		errs := make([]error, 0, len(funcs))
		for i := len(funcs) - 1; i >= 0; i-- {
			f := funcs[i]
			start := time.Now()

			if err := runSafe(ctx, f.fn); err != nil {
				log.Error(ctx, "❌ Failed to close resource",
					zap.String("name", f.name),
					zap.Error(err),
				)
				errs = append(errs, err)
				continue
			}

			log.Info(ctx, "✅ Resource closed",
				zap.String("name", f.name),
				zap.Duration("duration", time.Since(start)),
			)
		}

		result = errors.Join(errs...)
	})

	return result
}

func runSafe(ctx context.Context, fn func(context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New("panic while closing resource")
		}
	}()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(context.Context, string, ...zap.Field)  {}
func (noopLogger) Error(context.Context, string, ...zap.Field) {}
