package transaction

import (
	"context"
	"database/sql"
	"fmt"
)

// Manager ejecuta funciones dentro de una transacción SQL.
// La transacción viaja en el context; los repositorios la recuperan
// con Executor. Commit al retornar nil, rollback ante cualquier error.
type Manager struct {
	db *sql.DB
}

// NewManager crea un nuevo manager de transacciones
func NewManager(db *sql.DB) *Manager {
	return &Manager{db: db}
}

type txKey struct{}

// Executor es el subconjunto de database/sql que usan los repositorios,
// satisfecho tanto por *sql.DB como por *sql.Tx
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Do ejecuta fn dentro de una transacción. Si ya hay una transacción en
// el context se reutiliza (las operaciones anidadas comparten el scope).
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}

// FromContext recupera la transacción activa del context, si existe
func FromContext(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sql.Tx)
	return tx, ok
}
