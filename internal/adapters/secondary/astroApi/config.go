package astroApi

import "time"

type Config struct {
	BaseURL    string `envconfig:"BASE_URL" default:"http://localhost:8000"`
	Prefix     string `envconfig:"PREFIX" default:"/api"`
	ApiKey     string `envconfig:"API_KEY"`
	SkipSSL    string `envconfig:"SKIP_SSL"` // Railway требует строки вместо bool
	TimeoutSec int    `envconfig:"TIMEOUT" default:"30"`
}

func (c *Config) ShouldSkipSSL() bool {
	return c.SkipSSL == "true" || c.SkipSSL == "1" || c.SkipSSL == "True"
}

func (c *Config) Timeout() time.Duration {
	if c.TimeoutSec <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSec) * time.Second
}
