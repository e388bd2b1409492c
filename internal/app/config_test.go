package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admin/jyotish/vedic-client/internal/domain"
)

func TestNewEnvConfigDefaults(t *testing.T) {
	cfg, err := NewEnvConfig("JYOTISH_TEST_DEFAULTS")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "http://localhost:8000", cfg.AstroAPI.BaseURL)
	assert.Equal(t, 512, cfg.Cache.LRUSize)
	assert.Equal(t, 25*time.Hour, cfg.Cache.HoroscopeTTL)
	assert.Equal(t, 1024, cfg.Cache.ChatSessions)
	assert.Equal(t, 12*time.Hour, cfg.Cache.ChatSessionTTL)
	assert.True(t, cfg.Jobs.Enabled)
	assert.Equal(t, domain.LanguageEnglish, cfg.InitialLanguage())

	// необязательные адаптеры выключены без своих переменных
	assert.False(t, cfg.Postgres.Enabled())
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.S3.Enabled())
	assert.False(t, cfg.Kafka.Enabled())
	assert.False(t, cfg.Alerter.Enabled())
}

func TestNewEnvConfigOverrides(t *testing.T) {
	t.Setenv("JYOTISH_TEST_UI_LANGUAGE", "hi")
	t.Setenv("JYOTISH_TEST_REDIS_HOST", "cache.local")
	t.Setenv("JYOTISH_TEST_KAFKA_BROKERS", "b1:9092, b2:9092")
	t.Setenv("JYOTISH_TEST_JOBS_CATALOG_REFRESH_INTERVAL", "30m")

	cfg, err := NewEnvConfig("JYOTISH_TEST")
	require.NoError(t, err)

	assert.Equal(t, domain.LanguageHindi, cfg.InitialLanguage())
	assert.True(t, cfg.Redis.Enabled())
	assert.True(t, cfg.Kafka.Enabled())
	assert.Equal(t, []string{"b1:9092", "b2:9092"}, cfg.Kafka.GetBrokers())
	assert.Equal(t, 30*time.Minute, cfg.Jobs.CatalogRefreshInterval)
}

func TestNewEnvConfigRejectsPrefetchHour(t *testing.T) {
	t.Setenv("JYOTISH_BAD_JOBS_HOROSCOPE_PREFETCH_HOUR", "24")

	_, err := NewEnvConfig("JYOTISH_BAD")
	assert.Error(t, err)
}

func TestJobsLocation(t *testing.T) {
	loc, err := (&JobsConfig{}).Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	_, err = (&JobsConfig{Timezone: "Mars/Olympus"}).Location()
	assert.Error(t, err)
}
