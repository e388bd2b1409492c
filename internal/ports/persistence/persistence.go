package persistence

import "context"

// Persistence операции с БД; реализуется и соединением, и транзакцией
type Persistence interface {
	Get(ctx context.Context, dest any, query string, args ...any) error
	Select(ctx context.Context, dest any, query string, args ...any) error
	Exec(ctx context.Context, query string, args ...any) error
	ExecWithResult(ctx context.Context, query string, args ...any) (int64, error)
}

// Transaction транзакция БД
type Transaction interface {
	Persistence
	Commit() error
	Rollback() error
}

// TxManager открывает транзакции
type TxManager interface {
	BeginTx(ctx context.Context) (Transaction, error)
	WithTransaction(ctx context.Context, fn func(context.Context, Transaction) error) error
}
