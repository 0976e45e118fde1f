package usecase

import (
	"context"
	"log"
	"time"

	"pos/src/pos/application/request"
	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"
	"pos/src/pos/domain/pricing"

	"github.com/shopspring/decimal"
)

// AddOrderLineUseCase agrega un producto o cargo a una orden en
// borrador. Si la orden ya tiene una línea con la misma identidad la
// fusiona en vez de crear una línea duplicada.
type AddOrderLineUseCase struct {
	orderRepo port.OrderRepository
	catalog   port.CatalogRepository
	resolver  *pricing.Resolver
	txManager port.TransactionManager
}

// NewAddOrderLineUseCase crea una nueva instancia del caso de uso
func NewAddOrderLineUseCase(
	orderRepo port.OrderRepository,
	catalog port.CatalogRepository,
	resolver *pricing.Resolver,
	txManager port.TransactionManager,
) *AddOrderLineUseCase {
	return &AddOrderLineUseCase{
		orderRepo: orderRepo,
		catalog:   catalog,
		resolver:  resolver,
		txManager: txManager,
	}
}

// Execute agrega (o fusiona) la línea descripta por el request en la
// orden identificada por su UUID.
func (uc *AddOrderLineUseCase) Execute(ctx context.Context, orderUUID string, req request.CreateOrderLineRequest) (*entity.OrderLine, error) {
	orderRef, ok := parseOptionalUUID(orderUUID)
	if !ok {
		return nil, entity.ErrOrderRequired
	}

	var result *entity.OrderLine
	err := uc.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := uc.orderRepo.FindByUUID(ctx, orderRef)
		if err != nil {
			return err
		}
		if err := order.EnsureMutable(); err != nil {
			return err
		}

		productID, chargeID, warehouseID, err := uc.resolveReferences(ctx, req)
		if err != nil {
			return err
		}

		priceList, err := uc.catalog.FindPriceListByID(ctx, order.PriceListID)
		if err != nil {
			return err
		}

		if existing := order.FindLine(productID, chargeID); existing != nil {
			result, err = uc.mergeLine(ctx, order, existing, priceList, req.Quantity)
		} else {
			result, err = uc.createLine(ctx, order, priceList, productID, chargeID, warehouseID, req.Quantity)
		}
		if err != nil {
			return err
		}

		order.RecomputeTotals(priceList.IsTaxIncluded, priceList.PricePrecision)
		return uc.orderRepo.UpdateHeader(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// resolveReferences traduce los UUID del request a identificadores
// internos. El cargo tiene prioridad cuando llegan producto y cargo.
func (uc *AddOrderLineUseCase) resolveReferences(ctx context.Context, req request.CreateOrderLineRequest) (productID, chargeID, warehouseID int64, err error) {
	if chargeRef, ok := parseOptionalUUID(req.ChargeUUID); ok {
		charge, err := uc.catalog.FindChargeByUUID(ctx, chargeRef)
		if err != nil {
			return 0, 0, 0, err
		}
		chargeID = charge.ID
	} else if productRef, ok := parseOptionalUUID(req.ProductUUID); ok {
		product, err := uc.catalog.FindProductByUUID(ctx, productRef)
		if err != nil {
			return 0, 0, 0, err
		}
		productID = product.ID
	} else {
		return 0, 0, 0, entity.ErrProductOrChargeRequired
	}

	if warehouseRef, ok := parseOptionalUUID(req.WarehouseUUID); ok {
		warehouse, err := uc.catalog.FindWarehouseByUUID(ctx, warehouseRef)
		if err != nil {
			return 0, 0, 0, err
		}
		warehouseID = warehouse.ID
	}
	return productID, chargeID, warehouseID, nil
}

// mergeLine actualiza la línea existente: una cantidad explícita
// reemplaza la actual; sin cantidad se suma una unidad. El precio
// ingresado se conserva; sólo se refrescan los límites lista/mínimo
// para productos.
func (uc *AddOrderLineUseCase) mergeLine(ctx context.Context, order *entity.Order, line *entity.OrderLine, priceList *entity.PriceList, qty decimal.Decimal) (*entity.OrderLine, error) {
	if line.Processed {
		return nil, entity.ErrOrderLineProcessed
	}
	if qty.IsZero() {
		qty = line.QtyEntered.Add(decimal.NewFromInt(1))
	}
	line.SetQuantity(qty)

	if line.ProductID > 0 {
		product, err := uc.catalog.FindProductByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		productPricing, err := uc.resolver.Resolve(ctx, product, priceList, order.BusinessPartnerID, 0, order.DateOrdered)
		if err != nil {
			return nil, err
		}
		line.RefreshPriceBounds(productPricing)
	}
	line.ComputeNetAmount(priceList.PricePrecision)
	if err := uc.orderRepo.UpdateLine(ctx, line); err != nil {
		return nil, err
	}
	log.Printf("➕ Cantidad fusionada en la línea %d de la orden %s", line.LineNo, order.DocumentNo)
	return line, nil
}

// createLine arma y persiste una línea nueva con el precio resuelto
// para la fecha de la orden. Las líneas de cargo nacen sin precio.
func (uc *AddOrderLineUseCase) createLine(ctx context.Context, order *entity.Order, priceList *entity.PriceList, productID, chargeID, warehouseID int64, qty decimal.Decimal) (*entity.OrderLine, error) {
	line, err := entity.NewOrderLine(order, productID, chargeID, warehouseID, time.Now())
	if err != nil {
		return nil, err
	}
	if qty.IsZero() {
		qty = decimal.NewFromInt(1)
	}
	line.SetQuantity(qty)

	if productID > 0 {
		product, err := uc.catalog.FindProductByID(ctx, productID)
		if err != nil {
			return nil, err
		}
		productPricing, err := uc.resolver.Resolve(ctx, product, priceList, order.BusinessPartnerID, 0, order.DateOrdered)
		if err != nil {
			return nil, err
		}
		if !productPricing.HasPrices {
			return nil, entity.ErrProductPriceNotFound
		}
		line.ApplyPricing(productPricing)
		if productPricing.Tax != nil {
			line.SetTax(productPricing.Tax.ID, productPricing.Tax.Rate)
		}
	}
	line.ComputeNetAmount(priceList.PricePrecision)

	if err := uc.orderRepo.InsertLine(ctx, line); err != nil {
		return nil, err
	}
	order.Lines = append(order.Lines, *line)
	log.Printf("🛒 Línea %d agregada a la orden %s", line.LineNo, order.DocumentNo)
	return line, nil
}
