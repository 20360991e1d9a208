package channels

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"finance-alerts/internal/config"
	"finance-alerts/internal/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

// BotClient is the part of *tgbotapi.BotAPI the sender uses
type BotClient interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// BotSender implements MessageSender on the Bot API. Sends are throttled by a
// shared limiter so a large run stays under Telegram's global flood limit.
type BotSender struct {
	client      BotClient
	limiter     *rate.Limiter
	sendTimeout time.Duration
	logger      *slog.Logger
}

func NewBotSender(client BotClient, limiter *rate.Limiter, sendTimeout time.Duration, logger *slog.Logger) *BotSender {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &BotSender{
		client:      client,
		limiter:     limiter,
		sendTimeout: sendTimeout,
		logger:      logger,
	}
}

// NewBotSenderFromConfig connects to the Bot API with the configured token
func NewBotSenderFromConfig(cfg config.TelegramConfig, logger *slog.Logger) (*BotSender, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to telegram bot api: %w", err)
	}
	bot.Debug = cfg.Debug

	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}

	return NewBotSender(bot, rate.NewLimiter(limit, burst), cfg.SendTimeout, logger), nil
}

// Send posts text to the chat in Markdown mode. A malformed chat id and Bot API
// 400/403 answers (chat not found, bot blocked or kicked) wrap
// services.ErrRecipientRejected; limiter timeouts, 429, 5xx and network errors do not.
func (s *BotSender) Send(ctx context.Context, chatID string, text string) error {
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		s.logger.Warn("invalid telegram chat id",
			slog.String("chat_id", chatID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%w: invalid chat id %q", services.ErrRecipientRejected, chatID)
	}

	if s.sendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.sendTimeout)
		defer cancel()
	}
	if err := s.limiter.Wait(ctx); err != nil {
		s.logger.Warn("telegram send throttled past deadline",
			slog.Int64("chat_id", id),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to wait for send slot: %w", err)
	}

	msg := tgbotapi.NewMessage(id, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := s.client.Send(msg); err != nil {
		s.logger.Error("failed to send telegram message",
			slog.Int64("chat_id", id),
			slog.String("error", err.Error()),
		)
		if code, ok := apiErrorCode(err); ok && recipientScoped(code) {
			return fmt.Errorf("%w: %w", services.ErrRecipientRejected, err)
		}
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	return nil
}

func apiErrorCode(err error) (int, bool) {
	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code, true
	}
	var apiErrValue tgbotapi.Error
	if errors.As(err, &apiErrValue) {
		return apiErrValue.Code, true
	}
	return 0, false
}

func recipientScoped(code int) bool {
	return code == http.StatusBadRequest || code == http.StatusForbidden
}
