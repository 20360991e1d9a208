package channels

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"finance-alerts/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var ErrSendFailed = errors.New("telegram message was not delivered")

const messageHeader = "*Финансовые уведомления*"

// MessageSender delivers one text message to a chat. A nil error means it went
// through; failures caused by the chat itself wrap services.ErrRecipientRejected.
type MessageSender interface {
	Send(ctx context.Context, chatID string, text string) error
}

// TelegramChannel sends every queued alert to the user's chat as a single Markdown message
type TelegramChannel struct {
	sender MessageSender
}

func NewTelegramChannel(sender MessageSender) *TelegramChannel {
	return &TelegramChannel{sender: sender}
}

func (c *TelegramChannel) Name() string {
	return models.ChannelTelegram
}

func (c *TelegramChannel) Enabled(settings *models.NotificationSettings) bool {
	return settings != nil && settings.TelegramConfigured()
}

func (c *TelegramChannel) Deliver(ctx context.Context, settings *models.NotificationSettings, alerts []models.TitledAlert) error {
	if len(alerts) == 0 {
		return nil
	}
	if err := c.sender.Send(ctx, settings.TelegramChatID, RenderMessage(alerts)); err != nil {
		return fmt.Errorf("%w: %w", ErrSendFailed, err)
	}
	return nil
}

// RenderMessage builds the Markdown body: a header, then one block per alert
// with a severity marker, the bold title, the message and the recommendation
func RenderMessage(alerts []models.TitledAlert) string {
	var b strings.Builder
	b.WriteString(messageHeader)

	for _, alert := range alerts {
		b.WriteString("\n\n")
		b.WriteString(severityMarker(alert.Severity))
		b.WriteString(" *")
		b.WriteString(escape(alert.Title))
		b.WriteString("*\n")
		b.WriteString(escape(alert.Message))
		if alert.Recommendation != "" {
			b.WriteString("\n_")
			b.WriteString(escape(alert.Recommendation))
			b.WriteString("_")
		}
	}
	return b.String()
}

func severityMarker(severity models.Severity) string {
	switch severity {
	case models.SeverityHigh:
		return "🚨"
	case models.SeverityMedium:
		return "⚠️"
	default:
		return "ℹ️"
	}
}

func escape(text string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, text)
}
