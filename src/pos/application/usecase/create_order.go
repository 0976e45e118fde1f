package usecase

import (
	"context"
	"log"
	"time"

	"pos/src/pos/application/request"
	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"
)

// CreateOrderUseCase abre una sesión de venta: reutiliza el borrador
// vacío de la terminal si existe uno, o crea una orden nueva con los
// valores por defecto del punto de venta. En ambos casos corre la
// cascada de asignación de cliente sobre el resultado.
type CreateOrderUseCase struct {
	orderRepo     port.OrderRepository
	posRepo       port.POSRepository
	catalog       port.CatalogRepository
	assignPartner *AssignBusinessPartnerUseCase
	txManager     port.TransactionManager
}

// NewCreateOrderUseCase crea una nueva instancia del caso de uso
func NewCreateOrderUseCase(
	orderRepo port.OrderRepository,
	posRepo port.POSRepository,
	catalog port.CatalogRepository,
	assignPartner *AssignBusinessPartnerUseCase,
	txManager port.TransactionManager,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo:     orderRepo,
		posRepo:       posRepo,
		catalog:       catalog,
		assignPartner: assignPartner,
		txManager:     txManager,
	}
}

// Execute resuelve la sesión de venta para la terminal del request.
// actingUserID es el vendedor que opera la terminal (0 si no se conoce).
func (uc *CreateOrderUseCase) Execute(ctx context.Context, req request.CreateOrderRequest, actingUserID int64) (*entity.Order, error) {
	posRef, ok := parseOptionalUUID(req.PosUUID)
	if !ok {
		return nil, entity.ErrPointOfSaleRequired
	}

	var result *entity.Order
	err := uc.txManager.Do(ctx, func(ctx context.Context) error {
		pos, err := uc.posRepo.FindByUUID(ctx, posRef)
		if err != nil {
			return err
		}

		order, err := uc.resolveDraft(ctx, pos, req.DocumentTypeUUID)
		if err != nil {
			return err
		}

		if err := uc.assignPartner.Apply(ctx, order, pos, req.CustomerUUID, actingUserID); err != nil {
			return err
		}
		result = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// resolveDraft retorna el borrador vacío reutilizable de la terminal o
// crea una orden nueva. En ambos casos se aplican los valores por
// defecto de la terminal y el tipo de documento resuelto; el borrador
// reciclado además refresca sus fechas al día de hoy y conserva su
// número de documento mientras el tipo no cambie.
func (uc *CreateOrderUseCase) resolveDraft(ctx context.Context, pos *entity.PointOfSale, docTypeUUID string) (*entity.Order, error) {
	now := time.Now()

	docType, err := uc.resolveDocumentType(ctx, pos, docTypeUUID)
	if err != nil {
		return nil, err
	}

	priceListID := pos.PriceListID
	if priceListID == 0 {
		priceList, err := uc.catalog.FindDefaultPriceList(ctx, pos.OrgID)
		if err != nil {
			return nil, err
		}
		priceListID = priceList.ID
	}

	existing, err := uc.orderRepo.FindEmptyDraftByPOS(ctx, pos.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		log.Printf("♻️ Reutilizando borrador %s de la terminal %s", existing.DocumentNo, pos.Name)
		existing.RefreshDates(now)
		applyTerminalDefaults(existing, pos, priceListID)
		// Cambiar el tipo de documento renumera la orden con la
		// secuencia del tipo nuevo
		if docType.ID != existing.DocumentTypeID {
			documentNo, err := uc.catalog.NextDocumentNo(ctx, docType.ID)
			if err != nil {
				return nil, err
			}
			existing.DocumentTypeID = docType.ID
			existing.DocumentNo = documentNo
		}
		if err := uc.orderRepo.UpdateHeader(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	order := entity.NewDraftOrder(pos.ID, now)
	applyTerminalDefaults(order, pos, priceListID)
	order.DocumentTypeID = docType.ID

	documentNo, err := uc.catalog.NextDocumentNo(ctx, docType.ID)
	if err != nil {
		return nil, err
	}
	order.DocumentNo = documentNo

	if err := uc.orderRepo.Insert(ctx, order); err != nil {
		return nil, err
	}
	log.Printf("🧾 Orden %s creada para la terminal %s", order.DocumentNo, pos.Name)
	return order, nil
}

// applyTerminalDefaults estampa la configuración de la terminal en la
// orden (organización, depósito, lista de precios y reglas)
func applyTerminalDefaults(order *entity.Order, pos *entity.PointOfSale, priceListID int64) {
	order.OrgID = pos.OrgID
	order.WarehouseID = pos.WarehouseID
	order.PriceListID = priceListID
	order.SalesRepID = pos.SalesRepID
	order.DeliveryRule = pos.DeliveryRule
	order.InvoiceRule = pos.InvoiceRule
}

// resolveDocumentType elige el tipo de documento de la orden nueva:
// el pedido explícitamente, si no el configurado en la terminal, y como
// último recurso el tipo genérico de punto de venta.
func (uc *CreateOrderUseCase) resolveDocumentType(ctx context.Context, pos *entity.PointOfSale, docTypeUUID string) (*entity.DocumentType, error) {
	if docTypeRef, ok := parseOptionalUUID(docTypeUUID); ok {
		return uc.catalog.FindDocumentTypeByUUID(ctx, docTypeRef)
	}
	if pos.DocumentTypeID > 0 {
		docType, err := uc.catalog.FindDocumentTypeByID(ctx, pos.DocumentTypeID)
		if err != nil {
			return nil, err
		}
		return docType, nil
	}
	return uc.catalog.FindPOSDocumentType(ctx)
}
