package port

import "context"

// TransactionManager ejecuta fn dentro de un único scope transaccional:
// commit al retornar nil, rollback completo ante cualquier error. Las
// operaciones de lectura no lo necesitan.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
