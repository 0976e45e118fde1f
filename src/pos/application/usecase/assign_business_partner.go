package usecase

import (
	"context"
	"log"

	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"
	"pos/src/pos/domain/pricing"
)

// AssignBusinessPartnerUseCase ejecuta la cascada de reprecio: asigna
// (o reasigna) el cliente de una orden en borrador y revalida todas
// sus líneas contra la lista de precios vigente. Es el único camino de
// asignación de cliente, tanto al crear la orden como al modificarla.
type AssignBusinessPartnerUseCase struct {
	orderRepo   port.OrderRepository
	posRepo     port.POSRepository
	partnerRepo port.PartnerRepository
	catalog     port.CatalogRepository
	resolver    *pricing.Resolver
	txManager   port.TransactionManager
}

// NewAssignBusinessPartnerUseCase crea una nueva instancia del caso de uso
func NewAssignBusinessPartnerUseCase(
	orderRepo port.OrderRepository,
	posRepo port.POSRepository,
	partnerRepo port.PartnerRepository,
	catalog port.CatalogRepository,
	resolver *pricing.Resolver,
	txManager port.TransactionManager,
) *AssignBusinessPartnerUseCase {
	return &AssignBusinessPartnerUseCase{
		orderRepo:   orderRepo,
		posRepo:     posRepo,
		partnerRepo: partnerRepo,
		catalog:     catalog,
		resolver:    resolver,
		txManager:   txManager,
	}
}

// Execute asigna el cliente a la orden identificada por su UUID dentro
// de una transacción propia. actingUserID es el vendedor que opera la
// terminal (0 si no se conoce).
func (uc *AssignBusinessPartnerUseCase) Execute(ctx context.Context, orderUUID string, customerUUID string, actingUserID int64) (*entity.Order, error) {
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
		pos, err := uc.posRepo.FindByID(ctx, order.POSID)
		if err != nil {
			return err
		}
		if err := uc.Apply(ctx, order, pos, customerUUID, actingUserID); err != nil {
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

// Apply corre la cascada sobre una orden ya cargada, dentro de la
// transacción activa del caller. No-op si la orden está completada o
// anulada.
func (uc *AssignBusinessPartnerUseCase) Apply(ctx context.Context, order *entity.Order, pos *entity.PointOfSale, customerUUID string, actingUserID int64) error {
	if order.IsCompleted() || order.IsVoided() {
		return nil
	}

	// Resolución del partner efectivo: referencia explícita, o el
	// cliente de mostrador de la terminal (modo partner por defecto)
	var partner *entity.BusinessPartner
	isDefaultPartner := false
	if customerRef, ok := parseOptionalUUID(customerUUID); ok {
		found, err := uc.partnerRepo.FindByUUID(ctx, customerRef)
		if err != nil {
			return err
		}
		partner = found
	} else {
		found, err := uc.partnerRepo.FindByID(ctx, pos.CashPartnerID)
		if err != nil {
			return err
		}
		partner = found
		isDefaultPartner = true
	}
	log.Printf("🔁 Repreciando orden %s con partner %s", order.UUID, partner.Name)

	// Paso 1: partner y ubicaciones sobre la cabecera. Cuando el
	// partner tiene varias ubicaciones del mismo tipo gana la última.
	order.BusinessPartnerID = partner.ID
	if locationID := partner.BillLocation(); locationID > 0 {
		order.BillLocationID = locationID
	}
	if locationID := partner.ShipLocation(); locationID > 0 {
		order.ShipLocationID = locationID
	}

	// Paso 2: regla de pago contado para el cliente de mostrador
	if isDefaultPartner && order.PaymentRule == "" {
		order.PaymentRule = entity.PaymentRuleCash
	}

	// Paso 3: vendedor. Terminal compartida -> usuario que opera;
	// si no, el vendedor del partner; si no, el de la terminal.
	if pos.IsShared && actingUserID > 0 {
		order.SalesRepID = actingUserID
	} else if partner.SalesRepID > 0 {
		order.SalesRepID = partner.SalesRepID
	} else if pos.SalesRepID > 0 {
		order.SalesRepID = pos.SalesRepID
	}

	// Paso 4: persistir cabecera antes de tocar líneas
	if err := uc.orderRepo.UpdateHeader(ctx, order); err != nil {
		return err
	}

	if len(order.Lines) == 0 {
		return nil
	}

	// Paso 5: versión de lista vigente, restringida a los productos de
	// las líneas actuales
	pricedProducts, err := uc.loadPricedProducts(ctx, order)
	if err != nil {
		return err
	}

	priceList, err := uc.catalog.FindPriceListByID(ctx, order.PriceListID)
	if err != nil {
		return err
	}

	// Paso 6: repreciar o eliminar cada línea. Una línea sobrevive sólo
	// si su producto tiene precio completo en la versión vigente; las
	// demás (incluidas las de cargo) se eliminan para no dejar precios
	// huérfanos.
	survivors := order.Lines[:0]
	for i := range order.Lines {
		line := order.Lines[i]
		if !pricedProducts[line.ProductID] {
			if err := uc.orderRepo.DeleteLine(ctx, line.ID); err != nil {
				return err
			}
			continue
		}
		product, err := uc.catalog.FindProductByID(ctx, line.ProductID)
		if err != nil {
			return err
		}
		productPricing, err := uc.resolver.Resolve(ctx, product, priceList, order.BusinessPartnerID, 0, order.DateOrdered)
		if err != nil {
			return err
		}
		line.StampPartner(order)
		line.ApplyPricing(productPricing)
		if productPricing.Tax != nil {
			line.SetTax(productPricing.Tax.ID, productPricing.Tax.Rate)
		}
		line.ComputeNetAmount(priceList.PricePrecision)
		if err := uc.orderRepo.UpdateLine(ctx, &line); err != nil {
			return err
		}
		survivors = append(survivors, line)
	}
	order.Lines = survivors

	// Paso 7: totales de cabecera consistentes con las líneas finales
	order.RecomputeTotals(priceList.IsTaxIncluded, priceList.PricePrecision)
	return uc.orderRepo.UpdateHeader(ctx, order)
}

// loadPricedProducts retorna el conjunto de productos de la orden con
// precio completo en la versión de lista vigente a la fecha de la
// orden. Sin versión vigente no hay precios válidos: todas las líneas
// deben eliminarse.
func (uc *AssignBusinessPartnerUseCase) loadPricedProducts(ctx context.Context, order *entity.Order) (map[int64]bool, error) {
	priced := make(map[int64]bool)
	version, err := uc.catalog.FindPriceListVersion(ctx, order.PriceListID, order.DateOrdered)
	if err != nil {
		return nil, err
	}
	if version == nil {
		return priced, nil
	}
	records, err := uc.catalog.FindProductPricesForOrder(ctx, version.ID, order.ID)
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		if record.IsUsable() {
			priced[record.ProductID] = true
		}
	}
	return priced, nil
}
