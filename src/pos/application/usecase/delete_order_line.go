package usecase

import (
	"context"
	"log"

	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"
)

// DeleteOrderLineUseCase elimina una línea de una orden en borrador y
// recalcula los totales de la cabecera
type DeleteOrderLineUseCase struct {
	orderRepo port.OrderRepository
	catalog   port.CatalogRepository
	txManager port.TransactionManager
}

// NewDeleteOrderLineUseCase crea una nueva instancia del caso de uso
func NewDeleteOrderLineUseCase(
	orderRepo port.OrderRepository,
	catalog port.CatalogRepository,
	txManager port.TransactionManager,
) *DeleteOrderLineUseCase {
	return &DeleteOrderLineUseCase{
		orderRepo: orderRepo,
		catalog:   catalog,
		txManager: txManager,
	}
}

// Execute elimina la línea identificada por su UUID
func (uc *DeleteOrderLineUseCase) Execute(ctx context.Context, lineUUID string) error {
	lineRef, ok := parseOptionalUUID(lineUUID)
	if !ok {
		return entity.ErrOrderLineNotFound
	}

	return uc.txManager.Do(ctx, func(ctx context.Context) error {
		line, err := uc.orderRepo.FindLineByUUID(ctx, lineRef)
		if err != nil {
			return err
		}
		if line.Processed {
			return entity.ErrOrderLineProcessed
		}
		order, err := uc.orderRepo.FindByID(ctx, line.OrderID)
		if err != nil {
			return err
		}
		if err := order.EnsureMutable(); err != nil {
			return err
		}

		if err := uc.orderRepo.DeleteLine(ctx, line.ID); err != nil {
			return err
		}

		remaining := order.Lines[:0]
		for i := range order.Lines {
			if order.Lines[i].ID != line.ID {
				remaining = append(remaining, order.Lines[i])
			}
		}
		order.Lines = remaining

		priceList, err := uc.catalog.FindPriceListByID(ctx, order.PriceListID)
		if err != nil {
			return err
		}
		order.RecomputeTotals(priceList.IsTaxIncluded, priceList.PricePrecision)
		if err := uc.orderRepo.UpdateHeader(ctx, order); err != nil {
			return err
		}
		log.Printf("🗑 Línea %d eliminada de la orden %s", line.LineNo, order.DocumentNo)
		return nil
	})
}
