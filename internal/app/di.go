package app

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	tgclient "github.com/you-humble/repair-workshop/internal/client/http/telegram"
	"github.com/you-humble/repair-workshop/internal/config"
	"github.com/you-humble/repair-workshop/internal/converter"
	"github.com/you-humble/repair-workshop/internal/repository/cache"
	catalogrepo "github.com/you-humble/repair-workshop/internal/repository/catalog"
	"github.com/you-humble/repair-workshop/internal/repository/memory"
	partrepo "github.com/you-humble/repair-workshop/internal/repository/part"
	repairrepo "github.com/you-humble/repair-workshop/internal/repository/repair"
	settingsrepo "github.com/you-humble/repair-workshop/internal/repository/settings"
	catalogsvc "github.com/you-humble/repair-workshop/internal/service/catalog"
	stockconsumer "github.com/you-humble/repair-workshop/internal/service/consumer/stock"
	"github.com/you-humble/repair-workshop/internal/service/ledger"
	partsvc "github.com/you-humble/repair-workshop/internal/service/part"
	repproducer "github.com/you-humble/repair-workshop/internal/service/producer/repair"
	stockproducer "github.com/you-humble/repair-workshop/internal/service/producer/stock"
	repairsvc "github.com/you-humble/repair-workshop/internal/service/repair"
	settingssvc "github.com/you-humble/repair-workshop/internal/service/settings"
	tgservice "github.com/you-humble/repair-workshop/internal/service/telegram"
	thttp "github.com/you-humble/repair-workshop/internal/transport/http/v1"
	"github.com/you-humble/repair-workshop/platform/closer"
	"github.com/you-humble/repair-workshop/platform/db/migrator"
	"github.com/you-humble/repair-workshop/platform/kafka"
	"github.com/you-humble/repair-workshop/platform/kafka/consumer"
	"github.com/you-humble/repair-workshop/platform/kafka/middleware"
	"github.com/you-humble/repair-workshop/platform/kafka/producer"
	"github.com/you-humble/repair-workshop/platform/logger"
)

type KafkaConverter interface {
	repproducer.Converter
	stockproducer.Converter
	stockconsumer.Converter
}

type LowStockConsumer interface {
	RunLowStockConsume(ctx context.Context) error
}

type TelegramService interface {
	stockconsumer.Notifier
	ledger.LowStockSender
	AddChatID(ctx context.Context, chatID int64)
}

type PartRepository interface {
	partsvc.PartRepository
	ledger.PartRepository
}

type CatalogRepository interface {
	catalogsvc.CatalogRepository
	memory.CatalogNames
}

type LedgerService interface {
	repairsvc.Ledger
	partsvc.Ledger
}

type APIHandler interface {
	Routes(r chi.Router)
}

type di struct {
	dbPool   *pgxpool.Pool
	migrator *migrator.Migrator

	partRepository     PartRepository
	repairRepository   repairsvc.RepairRepository
	catalogRepository  CatalogRepository
	settingsRepository settingssvc.SettingsRepository

	redisClient  *redis.Client
	summaryCache repairsvc.SummaryCache

	conv KafkaConverter

	syncProducer         sarama.SyncProducer
	repairEventsProducer kafka.Producer
	lowStockProducer     kafka.Producer
	repairEventSender    repairsvc.EventSender
	lowStockSender       ledger.LowStockSender

	consumerGroup       sarama.ConsumerGroup
	lowStockTopicReader kafka.Consumer
	lowStockConsumer    LowStockConsumer

	telegramBot     *bot.Bot
	telegramService TelegramService

	ledgerService   LedgerService
	repairService   thttp.RepairService
	partService     thttp.PartService
	catalogService  thttp.CatalogService
	settingsService thttp.SettingsService

	handler APIHandler
	router  *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) DBPool(ctx context.Context) *pgxpool.Pool {
	if d.dbPool == nil {
		pool, err := pgxpool.New(ctx, config.C().Postgres.DSN())
		if err != nil {
			panic(fmt.Sprintf("failed to create pg pool: %v\n", err))
		}

		closer.AddNamed("PGX Pool",
			func(ctx context.Context) error {
				pool.Close()
				return nil
			})

		if err := pool.Ping(ctx); err != nil {
			panic(fmt.Sprintf("failed to ping db: %v\n", err))
		}

		d.dbPool = pool
	}

	return d.dbPool
}

func (d *di) Migrator(ctx context.Context) *migrator.Migrator {
	if d.migrator == nil {
		d.migrator = migrator.NewMigrator(
			stdlib.OpenDBFromPool(d.DBPool(ctx)),
			config.C().Postgres.MigrationDirectory(),
		)

		closer.AddNamed("Migrator",
			func(ctx context.Context) error {
				return d.migrator.Close()
			})
	}

	return d.migrator
}

func (d *di) CatalogRepository(ctx context.Context) CatalogRepository {
	if d.catalogRepository == nil {
		if config.C().Storage.IsMemory() {
			d.catalogRepository = memory.NewCatalogRepository()
		} else {
			d.catalogRepository = catalogrepo.NewCatalogRepository(d.DBPool(ctx))
		}
	}

	return d.catalogRepository
}

func (d *di) PartRepository(ctx context.Context) PartRepository {
	if d.partRepository == nil {
		if config.C().Storage.IsMemory() {
			d.partRepository = memory.NewPartRepository()
		} else {
			d.partRepository = partrepo.NewPartRepository(d.DBPool(ctx))
		}
	}

	return d.partRepository
}

func (d *di) RepairRepository(ctx context.Context) repairsvc.RepairRepository {
	if d.repairRepository == nil {
		if config.C().Storage.IsMemory() {
			d.repairRepository = memory.NewRepairRepository(d.CatalogRepository(ctx))
		} else {
			d.repairRepository = repairrepo.NewRepairRepository(d.DBPool(ctx))
		}
	}

	return d.repairRepository
}

func (d *di) SettingsRepository(ctx context.Context) settingssvc.SettingsRepository {
	if d.settingsRepository == nil {
		if config.C().Storage.IsMemory() {
			d.settingsRepository = memory.NewSettingsRepository()
		} else {
			d.settingsRepository = settingsrepo.NewSettingsRepository(d.DBPool(ctx))
		}
	}

	return d.settingsRepository
}

func (d *di) RedisClient(ctx context.Context) *redis.Client {
	if d.redisClient == nil {
		cfg := config.C().Redis

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Address(),
			Password: cfg.Password(),
			DB:       cfg.DB(),
		})
		if err := client.Ping(ctx).Err(); err != nil {
			panic(fmt.Sprintf("failed to ping redis: %v\n", err))
		}

		closer.AddNamed("Redis client", func(ctx context.Context) error {
			return client.Close()
		})

		d.redisClient = client
	}

	return d.redisClient
}

func (d *di) SummaryCache(ctx context.Context) repairsvc.SummaryCache {
	if d.summaryCache == nil {
		if config.C().Redis.Enabled() {
			d.summaryCache = cache.NewSummaryCache(d.RedisClient(ctx), config.C().Redis.SummaryTTL())
		} else {
			d.summaryCache = cache.NewNoopCache()
		}
	}

	return d.summaryCache
}

func (d *di) KafkaConverter(_ context.Context) KafkaConverter {
	if d.conv == nil {
		d.conv = converter.NewKafkaConverter()
	}

	return d.conv
}

func (d *di) SyncProducer(_ context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.ProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) RepairEventsProducer(ctx context.Context) kafka.Producer {
	if d.repairEventsProducer == nil {
		d.repairEventsProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.RepairEventsTopic(),
			logger.L(),
		)
	}

	return d.repairEventsProducer
}

func (d *di) LowStockProducer(ctx context.Context) kafka.Producer {
	if d.lowStockProducer == nil {
		d.lowStockProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.LowStockTopic(),
			logger.L(),
		)
	}

	return d.lowStockProducer
}

// RepairEventSender is nil when Kafka is disabled; the repair service then skips publishing.
func (d *di) RepairEventSender(ctx context.Context) repairsvc.EventSender {
	if d.repairEventSender == nil && config.C().Kafka.Enabled() {
		d.repairEventSender = repproducer.NewRepairProducer(
			d.RepairEventsProducer(ctx),
			d.KafkaConverter(ctx),
		)
	}

	return d.repairEventSender
}

// LowStockSender publishes alerts to Kafka, or hands them straight to the notifier without it.
func (d *di) LowStockSender(ctx context.Context) ledger.LowStockSender {
	if d.lowStockSender == nil {
		if config.C().Kafka.Enabled() {
			d.lowStockSender = stockproducer.NewLowStockProducer(
				d.LowStockProducer(ctx),
				d.KafkaConverter(ctx),
			)
		} else {
			d.lowStockSender = d.TelegramService(ctx)
		}
	}

	return d.lowStockSender
}

func (d *di) ConsumerGroup(_ context.Context) sarama.ConsumerGroup {
	if d.consumerGroup == nil {
		cfg := config.C()

		consumerGroup, err := sarama.NewConsumerGroup(
			cfg.Kafka.Brokers(),
			cfg.Kafka.LowStockConsumerGroupID(),
			cfg.Kafka.ConsumerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create consumer group: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka consumer group", func(ctx context.Context) error {
			return consumerGroup.Close()
		})

		d.consumerGroup = consumerGroup
	}

	return d.consumerGroup
}

func (d *di) LowStockTopicReader(ctx context.Context) kafka.Consumer {
	if d.lowStockTopicReader == nil {
		d.lowStockTopicReader = consumer.NewConsumer(
			d.ConsumerGroup(ctx),
			[]string{
				config.C().Kafka.LowStockTopic(),
			},
			logger.L(),
			middleware.Recovery(logger.L()),
			middleware.Logging(logger.L()),
		)
	}

	return d.lowStockTopicReader
}

func (d *di) LowStockConsumer(ctx context.Context) LowStockConsumer {
	if d.lowStockConsumer == nil {
		d.lowStockConsumer = stockconsumer.NewLowStockConsumer(
			d.LowStockTopicReader(ctx),
			d.KafkaConverter(ctx),
			d.TelegramService(ctx),
		)
	}

	return d.lowStockConsumer
}

func (d *di) TelegramBot(_ context.Context) *bot.Bot {
	if d.telegramBot == nil {
		b, err := bot.New(config.C().Telegram.BotToken())
		if err != nil {
			panic(fmt.Sprintf("failed to create telegram bot: %s\n", err.Error()))
		}

		closer.AddNamed("Telegram bot", func(ctx context.Context) error {
			_, err := b.Close(ctx)
			return err
		})

		d.telegramBot = b
	}

	return d.telegramBot
}

// TelegramService only logs alerts while Telegram is disabled.
func (d *di) TelegramService(ctx context.Context) TelegramService {
	if d.telegramService == nil {
		cfg := config.C().Telegram

		if cfg.Enabled() {
			d.telegramService = tgservice.NewTgService(
				tgclient.NewClient(d.TelegramBot(ctx)),
				cfg.ChatIDs()...,
			)
		} else {
			d.telegramService = tgservice.NewTgService(nil)
		}
	}

	return d.telegramService
}

func (d *di) LedgerService(ctx context.Context) LedgerService {
	if d.ledgerService == nil {
		d.ledgerService = ledger.NewLedgerService(
			d.PartRepository(ctx),
			d.LowStockSender(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.ledgerService
}

func (d *di) RepairService(ctx context.Context) thttp.RepairService {
	if d.repairService == nil {
		d.repairService = repairsvc.NewRepairService(
			d.RepairRepository(ctx),
			d.LedgerService(ctx),
			d.CatalogRepository(ctx),
			d.RepairEventSender(ctx),
			d.SummaryCache(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.repairService
}

func (d *di) PartService(ctx context.Context) thttp.PartService {
	if d.partService == nil {
		d.partService = partsvc.NewPartService(
			d.PartRepository(ctx),
			d.LedgerService(ctx),
			d.CatalogRepository(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.partService
}

func (d *di) CatalogService(ctx context.Context) thttp.CatalogService {
	if d.catalogService == nil {
		d.catalogService = catalogsvc.NewCatalogService(
			d.CatalogRepository(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.catalogService
}

func (d *di) SettingsService(ctx context.Context) thttp.SettingsService {
	if d.settingsService == nil {
		d.settingsService = settingssvc.NewSettingsService(
			d.SettingsRepository(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.settingsService
}

func (d *di) Handler(ctx context.Context) APIHandler {
	if d.handler == nil {
		d.handler = thttp.NewHandler(
			d.RepairService(ctx),
			d.PartService(ctx),
			d.CatalogService(ctx),
			d.SettingsService(ctx),
		)
	}

	return d.handler
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
