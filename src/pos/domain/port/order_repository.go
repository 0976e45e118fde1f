package port

import (
	"context"

	"pos/src/pos/domain/entity"
	"pos/src/shared/domain/criteria"

	"github.com/google/uuid"
)

// OrderRepository define la persistencia del aggregate Order.
// Las operaciones respetan la transacción activa del context cuando
// existe (ver TransactionManager).
type OrderRepository interface {
	// Insert persiste una orden nueva y asigna su ID
	Insert(ctx context.Context, order *entity.Order) error

	// UpdateHeader persiste los campos de cabecera de la orden
	UpdateHeader(ctx context.Context, order *entity.Order) error

	// FindByUUID carga una orden con sus líneas.
	// Retorna entity.ErrOrderNotFound si no existe.
	FindByUUID(ctx context.Context, orderUUID uuid.UUID) (*entity.Order, error)

	// FindByID carga una orden con sus líneas por su ID interno
	FindByID(ctx context.Context, orderID int64) (*entity.Order, error)

	// FindEmptyDraftByPOS busca un borrador sin líneas reutilizable para
	// la terminal. Retorna nil, nil cuando no hay ninguno.
	FindEmptyDraftByPOS(ctx context.Context, posID int64) (*entity.Order, error)

	// Delete elimina una orden en borrador con sus líneas
	Delete(ctx context.Context, orderID int64) error

	// Search lista órdenes según el criteria recibido
	Search(ctx context.Context, crit criteria.Criteria) ([]*entity.Order, error)

	// Count cuenta las órdenes que matchean los filtros del criteria
	Count(ctx context.Context, crit criteria.Criteria) (int, error)

	// InsertLine persiste una línea nueva y asigna su ID
	InsertLine(ctx context.Context, line *entity.OrderLine) error

	// UpdateLine persiste los cambios de una línea
	UpdateLine(ctx context.Context, line *entity.OrderLine) error

	// DeleteLine elimina una línea
	DeleteLine(ctx context.Context, lineID int64) error

	// FindLineByUUID carga una línea.
	// Retorna entity.ErrOrderLineNotFound si no existe.
	FindLineByUUID(ctx context.Context, lineUUID uuid.UUID) (*entity.OrderLine, error)

	// FindLines carga todas las líneas de una orden ordenadas por línea
	FindLines(ctx context.Context, orderID int64) ([]entity.OrderLine, error)

	// ListLines retorna una página de líneas y el total
	ListLines(ctx context.Context, orderID int64, limit, offset int) ([]entity.OrderLine, int, error)
}
