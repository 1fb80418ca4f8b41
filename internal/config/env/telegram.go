package envconfig

import (
	"github.com/caarlos0/env/v11"
	"github.com/samber/lo"
)

type telegramEnv struct {
	Enabled  bool   `env:"TELEGRAM_ENABLED" envDefault:"false"`
	BotToken string `env:"TELEGRAM_BOT_TOKEN"`
	// Comma separated; low stock alerts go to every chat.
	ChatIDs []int64 `env:"TELEGRAM_CHAT_IDS" envSeparator:","`
}

type telegram struct {
	raw telegramEnv
}

func NewTelegramConfig() (*telegram, error) {
	var raw telegramEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	raw.ChatIDs = lo.Uniq(lo.Compact(raw.ChatIDs))

	return &telegram{raw: raw}, nil
}

// Enabled needs a token; without chats the bot still starts and only logs.
func (cfg *telegram) Enabled() bool { return cfg.raw.Enabled && cfg.raw.BotToken != "" }

func (cfg *telegram) BotToken() string { return cfg.raw.BotToken }
func (cfg *telegram) ChatIDs() []int64 { return cfg.raw.ChatIDs }
