package port

import (
	"context"

	"pos/src/pos/domain/entity"

	"github.com/google/uuid"
)

// POSRepository da acceso a la configuración de terminales de venta
type POSRepository interface {
	// FindByID retorna entity.ErrPointOfSaleNotFound si no existe
	FindByID(ctx context.Context, posID int64) (*entity.PointOfSale, error)
	FindByUUID(ctx context.Context, posUUID uuid.UUID) (*entity.PointOfSale, error)

	// List retorna las terminales visibles para un vendedor (las
	// compartidas más las asignadas a él) y el total
	List(ctx context.Context, salesRepID int64, limit, offset int) ([]entity.PointOfSale, int, error)
}
