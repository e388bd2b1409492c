package app

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	server "github.com/admin/jyotish/vedic-client/internal/adapters/primary/http"
	alerterAdapter "github.com/admin/jyotish/vedic-client/internal/adapters/secondary/alerter"
	astroApi "github.com/admin/jyotish/vedic-client/internal/adapters/secondary/astroApi"
	kafkaAdapter "github.com/admin/jyotish/vedic-client/internal/adapters/secondary/kafka"
	"github.com/admin/jyotish/vedic-client/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/admin/jyotish/vedic-client/internal/adapters/secondary/storage/redis"
	"github.com/admin/jyotish/vedic-client/internal/adapters/secondary/storage/s3"
	"github.com/admin/jyotish/vedic-client/internal/domain"
	"github.com/admin/jyotish/vedic-client/internal/pkg/logger"
)

// EnvPrefix префикс переменных окружения (JYOTISH_ASTRO_API_BASE_URL, ...)
const EnvPrefix = "JYOTISH"

type Config struct {
	Log      *logger.Config         `envconfig:"LOG"`
	Server   *server.Config         `envconfig:"APISERVER"`
	AstroAPI *astroApi.Config       `envconfig:"ASTRO_API"`
	UI       *UIConfig              `envconfig:"UI"`
	Cache    *CacheConfig           `envconfig:"CACHE"`
	Jobs     *JobsConfig            `envconfig:"JOBS"`
	Postgres *pg.Config             `envconfig:"POSTGRES"`
	Redis    *redisAdapter.Config   `envconfig:"REDIS"`
	S3       *s3.Config             `envconfig:"S3"`
	Kafka    *kafkaAdapter.Config   `envconfig:"KAFKA"`
	Alerter  *alerterAdapter.Config `envconfig:"ALERTER"`
}

// UIConfig настройки интерфейса
type UIConfig struct {
	Language string `envconfig:"LANGUAGE" default:"en"` // en | hi
}

// CacheConfig настройки кэша ответов сервиса расчётов
type CacheConfig struct {
	LRUSize      int           `envconfig:"LRU_SIZE" default:"512"` // используется без Redis
	CitiesTTL    time.Duration `envconfig:"CITIES_TTL" default:"24h"`
	ChartTTL     time.Duration `envconfig:"CHART_TTL" default:"24h"`
	HoroscopeTTL time.Duration `envconfig:"HOROSCOPE_TTL" default:"25h"`

	// открытые сессии чата в памяти процесса
	ChatSessions   int           `envconfig:"CHAT_SESSIONS" default:"1024"`
	ChatSessionTTL time.Duration `envconfig:"CHAT_SESSION_TTL" default:"12h"`
}

// JobsConfig настройки фоновых задач
type JobsConfig struct {
	Enabled                bool          `envconfig:"ENABLED" default:"true"`
	CatalogRefreshInterval time.Duration `envconfig:"CATALOG_REFRESH_INTERVAL" default:"6h"`
	HoroscopePrefetchHour  int           `envconfig:"HOROSCOPE_PREFETCH_HOUR" default:"0"`
	Timezone               string        `envconfig:"TIMEZONE" default:"UTC"`
}

// Location часовой пояс для расписания предзагрузки гороскопов
func (c *JobsConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid jobs timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// InitialLanguage язык интерфейса при старте
func (c *Config) InitialLanguage() domain.Language {
	if c.UI == nil {
		return domain.LanguageEnglish
	}
	return domain.ParseLanguage(c.UI.Language)
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load("deployments/local/.env")

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if h := cfg.Jobs.HoroscopePrefetchHour; h < 0 || h > 23 {
		return nil, fmt.Errorf("horoscope prefetch hour must be within 0..23, got %d", h)
	}

	return cfg, nil
}
