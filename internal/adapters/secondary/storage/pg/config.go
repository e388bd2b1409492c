package pg

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

// Config Postgres для стенограмм чата и архива PDF
type Config struct {
	Host             string        `envconfig:"HOST" default:"localhost"`
	Port             string        `envconfig:"PORT" default:"5432"`
	Username         string        `envconfig:"USERNAME"`
	Password         string        `envconfig:"PASSWORD"`
	Database         string        `envconfig:"DATABASE"`
	SSLMode          string        `envconfig:"SSL_MODE" default:"disable"`
	StatementTimeout time.Duration `envconfig:"STATEMENT_TIMEOUT" default:"30s"`
	MaxOpenConns     int           `envconfig:"MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns     int           `envconfig:"MAX_IDLE_CONNS" default:"2"`
	ConnMaxLifetime  time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"5m"`
	ConnectTimeout   time.Duration `envconfig:"CONNECT_TIMEOUT" default:"5s"`
}

// Enabled Postgres подключается только при заданном имени базы
func (c *Config) Enabled() bool {
	return c != nil && c.Database != ""
}

// dsn строка подключения; statement_timeout передаётся параметром сессии
func (c *Config) dsn() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.Username, c.Password),
		Host:   net.JoinHostPort(c.Host, c.Port),
		Path:   "/" + c.Database,
	}
	q := url.Values{}
	q.Set("sslmode", c.SSLMode)
	if c.StatementTimeout > 0 {
		q.Set("statement_timeout", strconv.FormatInt(c.StatementTimeout.Milliseconds(), 10))
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// NewConnection открывает пул через драйвер pgx и проверяет соединение
func (c *Config) NewConnection() (*sqlx.DB, error) {
	connConfig, err := pgx.ParseConfig(c.dsn())
	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}

	db := sqlx.NewDb(stdlib.OpenDB(*connConfig), "pgx")
	db.SetMaxOpenConns(c.MaxOpenConns)
	db.SetMaxIdleConns(c.MaxIdleConns)
	db.SetConnMaxLifetime(c.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), c.ConnectTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres %s: %w", net.JoinHostPort(c.Host, c.Port), err)
	}
	return db, nil
}
