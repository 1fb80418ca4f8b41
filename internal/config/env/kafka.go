package envconfig

import (
	"github.com/IBM/sarama"
	"github.com/caarlos0/env/v11"
)

type kafkaEnv struct {
	Enabled                 bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers                 []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	RepairEventsTopicName   string   `env:"REPAIR_EVENTS_TOPIC_NAME" envDefault:"repair.events"`
	LowStockTopicName       string   `env:"LOW_STOCK_TOPIC_NAME" envDefault:"inventory.low_stock"`
	LowStockConsumerGroupID string   `env:"LOW_STOCK_CONSUMER_GROUP_ID" envDefault:"repair-workshop-low-stock"`
}

type kafka struct {
	raw kafkaEnv
}

func NewKafkaConfig() (*kafka, error) {
	var raw kafkaEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &kafka{raw: raw}, nil
}

func (cfg *kafka) Enabled() bool                   { return cfg.raw.Enabled }
func (cfg *kafka) Brokers() []string               { return cfg.raw.Brokers }
func (cfg *kafka) RepairEventsTopic() string       { return cfg.raw.RepairEventsTopicName }
func (cfg *kafka) LowStockTopic() string           { return cfg.raw.LowStockTopicName }
func (cfg *kafka) LowStockConsumerGroupID() string { return cfg.raw.LowStockConsumerGroupID }

func (cfg *kafka) ConsumerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	return config
}

func (cfg *kafka) ProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	return config
}
