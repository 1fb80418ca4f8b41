package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"golang.org/x/sync/errgroup"

	"github.com/you-humble/repair-workshop/internal/config"
	"github.com/you-humble/repair-workshop/internal/transport/http/health"
	"github.com/you-humble/repair-workshop/platform/closer"
	"github.com/you-humble/repair-workshop/platform/logger"
	"github.com/you-humble/repair-workshop/platform/tracing"
)

type app struct {
	di     *di
	server *http.Server
}

func New(ctx context.Context) (*app, error) {
	a := &app{}

	if err := a.init(ctx,
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initTracing,
		a.initDI,
		a.initTables,
		a.initTelegramBot,
		a.initServer,
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Migrate applies pending migrations and releases every resource it opened.
func Migrate(ctx context.Context) error {
	a := &app{}
	defer gracefulShutdown()

	return a.init(ctx,
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initDI,
		a.initTables,
	)
}

func (a *app) Run(ctx context.Context) error { return a.run(ctx) }

func (a *app) init(ctx context.Context, inits ...func(context.Context) error) error {
	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	return config.Load()
}

func (a *app) initLogger(_ context.Context) error {
	return logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
	)
}

func (a *app) initCloser(_ context.Context) error {
	closer.SetLogger(logger.L())
	return nil
}

func (a *app) initTracing(ctx context.Context) error {
	shutdown, err := tracing.Init(ctx, config.C().Tracing)
	if err != nil {
		logger.Error(ctx, "failed to init tracing", logger.ErrorF(err))
		return err
	}

	closer.AddNamed("Tracer provider", shutdown)
	return nil
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI()
	return nil
}

func (a *app) initTables(ctx context.Context) error {
	if config.C().Storage.IsMemory() {
		logger.Info(ctx, "in-memory storage selected, migrations skipped")
		return nil
	}

	if err := a.di.Migrator(ctx).Up(); err != nil {
		logger.Error(ctx, "failed to apply migrations", logger.ErrorF(err))
		return err
	}
	return nil
}

func (a *app) initTelegramBot(ctx context.Context) error {
	const startMsg = `👋 *Hi! I am the workshop stock bot.*

I will message you when a spare part runs low.`

	if !config.C().Telegram.Enabled() {
		return nil
	}

	telegramBot := a.di.TelegramBot(ctx)
	tgSvc := a.di.TelegramService(ctx)

	telegramBot.RegisterHandler(
		bot.HandlerTypeMessageText,
		"/start",
		bot.MatchTypeExact,
		func(ctx context.Context, b *bot.Bot, update *models.Update) {
			logger.Info(ctx, "New subscriber",
				logger.String("username", update.Message.From.Username),
				logger.Int64("chat_id", update.Message.Chat.ID),
			)

			_, err := b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID:    update.Message.Chat.ID,
				Text:      startMsg,
				ParseMode: models.ParseModeMarkdownV1,
			})
			if err != nil {
				logger.Error(ctx, "Failed to send start message", logger.ErrorF(err))
			}

			tgSvc.AddChatID(ctx, update.Message.Chat.ID)
		})

	go func() {
		logger.Info(ctx, "🤖 Telegram bot started...")
		telegramBot.Start(ctx)
	}()

	return nil
}

func (a *app) initServer(ctx context.Context) error {
	cfg := config.C()

	r := a.di.Router(ctx)
	r.Use(
		middleware.RequestID,
		middleware.Recoverer,
		middleware.Logger,
	)

	r.Route("/api/v1", func(r chi.Router) {
		a.di.Handler(ctx).Routes(r)
	})

	if cfg.Storage.IsMemory() {
		r.Get("/health", health.Handler())
	} else {
		r.Get("/health", health.Handler(a.di.DBPool(ctx)))
	}

	a.server = &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           r,
		ReadHeaderTimeout: cfg.Server.ReadTimeout(),
	}
	return nil
}

func (a *app) run(ctx context.Context) error {
	defer gracefulShutdown()

	eg, egCtx := errgroup.WithContext(ctx)

	if config.C().Kafka.Enabled() {
		eg.Go(func() error {
			logger.Info(egCtx,
				"🚀 low stock consumer running",
				logger.Strings("kafka_brokers", config.C().Kafka.Brokers()),
			)
			err := a.di.LowStockConsumer(egCtx).RunLowStockConsume(egCtx)
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}

			return nil
		})
	}

	eg.Go(func() error {
		logger.Info(egCtx,
			"🚀 repair workshop server listening",
			logger.String("address", config.C().Server.Address()),
			logger.String("storage", config.C().Storage.Driver()),
		)
		err := a.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	eg.Go(func() error {
		<-egCtx.Done()

		//nolint:contextcheck
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.C().Server.ShutdownTimeout())
		defer cancel()

		return a.server.Shutdown(shutdownCtx)
	})

	if err := eg.Wait(); err != nil {
		return err
	}
	return nil
}

//nolint:contextcheck
func gracefulShutdown() {
	timeout := 10 * time.Second
	if cfg := config.C(); cfg != nil {
		timeout = cfg.Server.ShutdownTimeout()
	}

	ctx, cancel := context.WithTimeout(
		context.Background(), // do not inherit cancellation from ctx
		timeout,
	)
	defer cancel()

	err := closer.CloseAll(ctx)
	if err != nil {
		logger.Error(ctx, "❌ Error during server shutdown", logger.ErrorF(err))
		logger.Error(ctx, "❌😵‍💫 Server stopped")
		return
	}
	logger.Info(ctx, "✅ Server stopped")
}
