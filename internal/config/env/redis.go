package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type redisEnv struct {
	Enabled    bool          `env:"REDIS_ENABLED" envDefault:"false"`
	Address    string        `env:"REDIS_ADDRESS" envDefault:"localhost:6379"`
	Password   string        `env:"REDIS_PASSWORD"`
	DB         int           `env:"REDIS_DB" envDefault:"0"`
	SummaryTTL time.Duration `env:"REDIS_SUMMARY_TTL" envDefault:"1m"`
}

type redisCfg struct {
	raw redisEnv
}

func NewRedisConfig() (*redisCfg, error) {
	var raw redisEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &redisCfg{raw: raw}, nil
}

func (cfg *redisCfg) Enabled() bool             { return cfg.raw.Enabled }
func (cfg *redisCfg) Address() string           { return cfg.raw.Address }
func (cfg *redisCfg) Password() string          { return cfg.raw.Password }
func (cfg *redisCfg) DB() int                   { return cfg.raw.DB }
func (cfg *redisCfg) SummaryTTL() time.Duration { return cfg.raw.SummaryTTL }
