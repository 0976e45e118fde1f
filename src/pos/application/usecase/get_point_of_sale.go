package usecase

import (
	"context"

	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"
)

// GetPointOfSaleUseCase carga la configuración de una terminal
type GetPointOfSaleUseCase struct {
	posRepo port.POSRepository
}

// NewGetPointOfSaleUseCase crea una nueva instancia del caso de uso
func NewGetPointOfSaleUseCase(posRepo port.POSRepository) *GetPointOfSaleUseCase {
	return &GetPointOfSaleUseCase{posRepo: posRepo}
}

// Execute retorna la terminal identificada por su UUID
func (uc *GetPointOfSaleUseCase) Execute(ctx context.Context, posUUID string) (*entity.PointOfSale, error) {
	posRef, ok := parseOptionalUUID(posUUID)
	if !ok {
		return nil, entity.ErrPointOfSaleNotFound
	}
	return uc.posRepo.FindByUUID(ctx, posRef)
}
