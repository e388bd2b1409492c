package pg

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDSN(t *testing.T) {
	cfg := &Config{
		Host:             "db",
		Port:             "5433",
		Username:         "vedic",
		Password:         "p@ss",
		Database:         "jyotish",
		SSLMode:          "disable",
		StatementTimeout: 15 * time.Second,
	}

	parsed, err := pgx.ParseConfig(cfg.dsn())
	require.NoError(t, err)
	assert.Equal(t, "db", parsed.Host)
	assert.Equal(t, uint16(5433), parsed.Port)
	assert.Equal(t, "vedic", parsed.User)
	assert.Equal(t, "p@ss", parsed.Password)
	assert.Equal(t, "jyotish", parsed.Database)
	assert.Equal(t, "15000", parsed.RuntimeParams["statement_timeout"])
}

func TestConfigEnabled(t *testing.T) {
	var nilCfg *Config
	assert.False(t, nilCfg.Enabled())
	assert.False(t, (&Config{Host: "db"}).Enabled())
	assert.True(t, (&Config{Database: "jyotish"}).Enabled())
}
