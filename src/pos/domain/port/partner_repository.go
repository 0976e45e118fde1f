package port

import (
	"context"

	"pos/src/pos/domain/entity"

	"github.com/google/uuid"
)

// PartnerRepository da acceso a business partners con sus ubicaciones
type PartnerRepository interface {
	// FindByID retorna entity.ErrBusinessPartnerNotFound si no existe
	FindByID(ctx context.Context, partnerID int64) (*entity.BusinessPartner, error)
	FindByUUID(ctx context.Context, partnerUUID uuid.UUID) (*entity.BusinessPartner, error)
}
