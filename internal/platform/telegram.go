package platform

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/cloud-ru/unit-economics-go/internal/report"
)

const telegramHostName = "telegram"

// TelegramHost отправляет результаты в чат через Telegram Bot API
type TelegramHost struct {
	bot    *bot.Bot
	chatID string
}

// NewTelegramHost создает клиента бота. Пустой apiURL означает api.telegram.org.
func NewTelegramHost(apiURL, token, chatID string, client *http.Client) (*TelegramHost, error) {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	opts := []bot.Option{
		bot.WithSkipGetMe(),
		bot.WithHTTPClient(client.Timeout, client),
	}
	if apiURL != "" {
		opts = append(opts, bot.WithServerURL(strings.TrimRight(apiURL, "/")))
	}

	b, err := bot.New(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("telegram: create bot: %w", err)
	}
	return &TelegramHost{bot: b, chatID: chatID}, nil
}

func (h *TelegramHost) Name() string {
	return telegramHostName
}

// SendData отправляет текст сообщения в чат
func (h *TelegramHost) SendData(ctx context.Context, payload report.Payload) error {
	_, err := h.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    h.chatID,
		Text:      payload.Message,
		ParseMode: models.ParseModeMarkdownV1,
	})
	if err != nil {
		return fmt.Errorf("telegram: send message: %w", err)
	}
	return nil
}
