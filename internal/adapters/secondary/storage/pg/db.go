package pg

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/admin/jyotish/vedic-client/internal/ports/persistence"
)

// DB соединение с Postgres для репозиториев стенограмм и архива PDF
type DB struct {
	executor
	Db *sqlx.DB
}

var (
	_ persistence.Persistence = (*DB)(nil)
	_ persistence.TxManager   = (*DB)(nil)
)

func NewDB(db *sqlx.DB) *DB {
	return &DB{executor: executor{ext: db}, Db: db}
}

func (d *DB) BeginTx(ctx context.Context) (persistence.Transaction, error) {
	tx, err := d.Db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	return &Tx{executor: executor{ext: tx}, tx: tx}, nil
}

// WithTransaction выполняет fn в транзакции: commit при успехе, rollback при ошибке или панике
func (d *DB) WithTransaction(ctx context.Context, fn func(context.Context, persistence.Transaction) error) error {
	tx, err := d.BeginTx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return fmt.Errorf("rollback after %v: %w", err, rollbackErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Ping проверка для /ready
func (d *DB) Ping(ctx context.Context) error {
	return d.Db.PingContext(ctx)
}

func (d *DB) Close() error {
	return d.Db.Close()
}
