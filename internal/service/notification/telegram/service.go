package telegram

import (
	"context"
	"net/http"
	"time"

	tele "gopkg.in/telebot.v3"

	"pricesentinel/internal/service/monitor"
	"pricesentinel/internal/service/notification"
)

var (
	_ notification.Service = (*Service)(nil)
	_ monitor.Notifier     = (*Service)(nil)
)

type Config struct {
	BotToken string
	ChatID   int64
	// ThreadID scopes messages to a forum sub-thread; zero means the group
	// itself.
	ThreadID int
	Timeout  time.Duration
}

// Service sends deviation alerts to a Telegram group via the Bot API.
// It implements both notification.Service and monitor.Notifier.
type Service struct {
	bot      *tele.Bot
	chatID   int64
	threadID int
}

func NewService(cfg Config) (*Service, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	// Offline keeps construction network-free; the token is only exercised
	// on the first send.
	bot, err := tele.NewBot(tele.Settings{
		Token:   cfg.BotToken,
		Client:  &http.Client{Timeout: cfg.Timeout},
		Offline: true,
	})
	if err != nil {
		return nil, err
	}
	return &Service{
		bot:      bot,
		chatID:   cfg.ChatID,
		threadID: cfg.ThreadID,
	}, nil
}

func (s *Service) Send(ctx context.Context, text string) error {
	_, err := s.bot.Send(tele.ChatID(s.chatID), text, &tele.SendOptions{
		ParseMode:             tele.ModeMarkdownV2,
		ThreadID:              s.threadID,
		DisableWebPagePreview: true,
	})
	return err
}

func (s *Service) Notify(ctx context.Context, signal monitor.Signal) error {
	return s.Send(ctx, FormatSignal(signal))
}
