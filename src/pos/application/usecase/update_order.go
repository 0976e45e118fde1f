package usecase

import (
	"context"

	"pos/src/pos/application/request"
	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"
)

// UpdateOrderUseCase modifica la cabecera de una orden en borrador:
// terminal, tipo de documento, descripción y, sobre todo, el cliente.
// Un cambio de cliente dispara la cascada de reprecio completa.
type UpdateOrderUseCase struct {
	orderRepo     port.OrderRepository
	posRepo       port.POSRepository
	catalog       port.CatalogRepository
	assignPartner *AssignBusinessPartnerUseCase
	txManager     port.TransactionManager
}

// NewUpdateOrderUseCase crea una nueva instancia del caso de uso
func NewUpdateOrderUseCase(
	orderRepo port.OrderRepository,
	posRepo port.POSRepository,
	catalog port.CatalogRepository,
	assignPartner *AssignBusinessPartnerUseCase,
	txManager port.TransactionManager,
) *UpdateOrderUseCase {
	return &UpdateOrderUseCase{
		orderRepo:     orderRepo,
		posRepo:       posRepo,
		catalog:       catalog,
		assignPartner: assignPartner,
		txManager:     txManager,
	}
}

// Execute aplica los cambios del request sobre la orden. Los campos
// vacíos del request se ignoran; sólo las órdenes en borrador sin
// procesar son modificables.
func (uc *UpdateOrderUseCase) Execute(ctx context.Context, orderUUID string, req request.UpdateOrderRequest, actingUserID int64) (*entity.Order, error) {
	orderRef, ok := parseOptionalUUID(orderUUID)
	if !ok {
		return nil, entity.ErrOrderNotFound
	}

	var result *entity.Order
	err := uc.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := uc.orderRepo.FindByUUID(ctx, orderRef)
		if err != nil {
			return err
		}
		if err := order.EnsureMutable(); err != nil {
			return err
		}

		if posRef, ok := parseOptionalUUID(req.PosUUID); ok {
			pos, err := uc.posRepo.FindByUUID(ctx, posRef)
			if err != nil {
				return err
			}
			order.POSID = pos.ID
		}
		if docTypeRef, ok := parseOptionalUUID(req.DocumentTypeUUID); ok {
			docType, err := uc.catalog.FindDocumentTypeByUUID(ctx, docTypeRef)
			if err != nil {
				return err
			}
			// Cambiar el tipo de documento renumera la orden con la
			// secuencia del tipo nuevo
			if docType.ID != order.DocumentTypeID {
				documentNo, err := uc.catalog.NextDocumentNo(ctx, docType.ID)
				if err != nil {
					return err
				}
				order.DocumentTypeID = docType.ID
				order.DocumentNo = documentNo
			}
		}
		if req.Description != "" {
			order.Description = req.Description
		}

		if err := uc.orderRepo.UpdateHeader(ctx, order); err != nil {
			return err
		}

		// El cambio de cliente reprecía todas las líneas
		if _, ok := parseOptionalUUID(req.CustomerUUID); ok {
			pos, err := uc.posRepo.FindByID(ctx, order.POSID)
			if err != nil {
				return err
			}
			if err := uc.assignPartner.Apply(ctx, order, pos, req.CustomerUUID, actingUserID); err != nil {
				return err
			}
		}
		result = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
