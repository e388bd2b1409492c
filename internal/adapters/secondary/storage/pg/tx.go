package pg

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/admin/jyotish/vedic-client/internal/ports/persistence"
)

// executor общая реализация Persistence поверх соединения или транзакции
type executor struct {
	ext sqlx.ExtContext
}

func (e executor) Get(ctx context.Context, dest any, query string, args ...any) error {
	return sqlx.GetContext(ctx, e.ext, dest, query, args...)
}

func (e executor) Select(ctx context.Context, dest any, query string, args ...any) error {
	return sqlx.SelectContext(ctx, e.ext, dest, query, args...)
}

func (e executor) Exec(ctx context.Context, query string, args ...any) error {
	_, err := e.ext.ExecContext(ctx, query, args...)
	return err
}

// ExecWithResult возвращает количество затронутых строк
func (e executor) ExecWithResult(ctx context.Context, query string, args ...any) (int64, error) {
	result, err := e.ext.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Tx транзакция, открытая через DB.BeginTx
type Tx struct {
	executor
	tx *sqlx.Tx
}

var _ persistence.Transaction = (*Tx)(nil)

func (t *Tx) Commit() error {
	return t.tx.Commit()
}

func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}
