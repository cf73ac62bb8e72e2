package ioc

import (
	"time"

	"github.com/spf13/viper"

	"pricesentinel/internal/service/monitor"
	"pricesentinel/internal/service/notification/telegram"
)

// InitTelegramNotifier returns nil when no bot token is configured; the
// monitor then falls back to its console notifier.
func InitTelegramNotifier(timeout time.Duration) monitor.Notifier {
	type Config struct {
		BotToken        string `mapstructure:"bot_token"`
		GroupChatID     int64  `mapstructure:"group_chat_id"`
		MessageThreadID int    `mapstructure:"message_thread_id"`
	}

	var cfg Config
	if err := viper.UnmarshalKey("telegram", &cfg); err != nil {
		panic(err)
	}
	if cfg.BotToken == "" {
		return nil
	}

	svc, err := telegram.NewService(telegram.Config{
		BotToken: cfg.BotToken,
		ChatID:   cfg.GroupChatID,
		ThreadID: cfg.MessageThreadID,
		Timeout:  timeout,
	})
	if err != nil {
		panic(err)
	}
	return svc
}
