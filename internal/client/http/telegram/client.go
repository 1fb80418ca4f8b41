package tgclient

import (
	"context"
	"unicode/utf8"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Telegram rejects longer message texts.
const maxMessageRunes = 4096

type client struct {
	bot *bot.Bot
}

func NewClient(b *bot.Bot) *client {
	return &client{bot: b}
}

// SendMessage posts text as Markdown, cut to the Telegram limit.
func (c *client) SendMessage(ctx context.Context, chatID int64, text string) error {
	_, err := c.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      truncate(text),
		ParseMode: models.ParseModeMarkdownV1,
	})

	return err
}

func truncate(text string) string {
	if utf8.RuneCountInString(text) <= maxMessageRunes {
		return text
	}

	return string([]rune(text)[:maxMessageRunes-1]) + "…"
}
