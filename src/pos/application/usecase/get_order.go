package usecase

import (
	"context"

	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"
)

// GetOrderUseCase carga una orden con sus líneas
type GetOrderUseCase struct {
	orderRepo port.OrderRepository
}

// NewGetOrderUseCase crea una nueva instancia del caso de uso
func NewGetOrderUseCase(orderRepo port.OrderRepository) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: orderRepo}
}

// Execute retorna la orden identificada por su UUID
func (uc *GetOrderUseCase) Execute(ctx context.Context, orderUUID string) (*entity.Order, error) {
	orderRef, ok := parseOptionalUUID(orderUUID)
	if !ok {
		return nil, entity.ErrOrderNotFound
	}
	return uc.orderRepo.FindByUUID(ctx, orderRef)
}
