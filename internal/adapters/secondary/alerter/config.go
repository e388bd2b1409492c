package alerter

import "time"

type Config struct {
	BotToken        string `envconfig:"BOT_TOKEN"`
	ChatID          int64  `envconfig:"CHAT_ID"`
	MessageThreadID *int64 `envconfig:"MESSAGE_THREAD_ID"`
	BaseURL         string `envconfig:"BASE_URL" default:"https://api.telegram.org"`
	TimeoutSec      int    `envconfig:"TIMEOUT_SEC" default:"10"`
}

func (c *Config) Timeout() time.Duration {
	if c.TimeoutSec <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSec) * time.Second
}

// Enabled алерты отправляются только при заданных токене и чате
func (c *Config) Enabled() bool {
	return c != nil && c.BotToken != "" && c.ChatID != 0
}
