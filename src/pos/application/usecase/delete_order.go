package usecase

import (
	"context"
	"log"

	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"
)

// DeleteOrderUseCase elimina una orden en borrador con todas sus líneas
type DeleteOrderUseCase struct {
	orderRepo port.OrderRepository
	txManager port.TransactionManager
}

// NewDeleteOrderUseCase crea una nueva instancia del caso de uso
func NewDeleteOrderUseCase(orderRepo port.OrderRepository, txManager port.TransactionManager) *DeleteOrderUseCase {
	return &DeleteOrderUseCase{
		orderRepo: orderRepo,
		txManager: txManager,
	}
}

// Execute elimina la orden identificada por su UUID. Sólo las órdenes
// en borrador sin procesar pueden eliminarse.
func (uc *DeleteOrderUseCase) Execute(ctx context.Context, orderUUID string) error {
	orderRef, ok := parseOptionalUUID(orderUUID)
	if !ok {
		return entity.ErrOrderNotFound
	}

	return uc.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := uc.orderRepo.FindByUUID(ctx, orderRef)
		if err != nil {
			return err
		}
		if err := order.EnsureMutable(); err != nil {
			return err
		}
		if err := uc.orderRepo.Delete(ctx, order.ID); err != nil {
			return err
		}
		log.Printf("🗑 Orden %s eliminada", order.DocumentNo)
		return nil
	})
}
