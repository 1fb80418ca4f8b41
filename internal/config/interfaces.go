package config

import (
	"time"

	"github.com/IBM/sarama"
)

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBReadTimeout() time.Duration
	DBWriteTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Database interface {
	MigrationDirectory() string
	DSN() string
}

type Storage interface {
	Driver() string
	IsMemory() bool
}

type Kafka interface {
	Enabled() bool
	Brokers() []string
	RepairEventsTopic() string
	LowStockTopic() string
	LowStockConsumerGroupID() string
	ConsumerConfig() *sarama.Config
	ProducerConfig() *sarama.Config
}

type Redis interface {
	Enabled() bool
	Address() string
	Password() string
	DB() int
	SummaryTTL() time.Duration
}

type Telegram interface {
	Enabled() bool
	BotToken() string
	ChatIDs() []int64
}

type Tracing interface {
	Enabled() bool
	Endpoint() string
	Insecure() bool
	ServiceName() string
	ServiceVersion() string
	SampleRatio() float64
}
