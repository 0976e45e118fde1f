package usecase

import (
	"context"

	"pos/src/pos/application/request"
	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"

	"github.com/shopspring/decimal"
)

// UpdateOrderLineUseCase modifica cantidad, precio o descuento de una
// línea existente de una orden en borrador
type UpdateOrderLineUseCase struct {
	orderRepo port.OrderRepository
	catalog   port.CatalogRepository
	txManager port.TransactionManager
}

// NewUpdateOrderLineUseCase crea una nueva instancia del caso de uso
func NewUpdateOrderLineUseCase(
	orderRepo port.OrderRepository,
	catalog port.CatalogRepository,
	txManager port.TransactionManager,
) *UpdateOrderLineUseCase {
	return &UpdateOrderLineUseCase{
		orderRepo: orderRepo,
		catalog:   catalog,
		txManager: txManager,
	}
}

// Execute aplica el request sobre la línea identificada por su UUID.
// Al menos un campo debe venir informado. Si llegan precio y descuento
// a la vez el descuento gana: el precio final se deriva del precio de
// lista menos el porcentaje.
func (uc *UpdateOrderLineUseCase) Execute(ctx context.Context, lineUUID string, req request.UpdateOrderLineRequest) (*entity.OrderLine, error) {
	lineRef, ok := parseOptionalUUID(lineUUID)
	if !ok {
		return nil, entity.ErrOrderLineNotFound
	}
	if req.Quantity.IsZero() && req.Price.IsZero() && req.DiscountRate.IsZero() {
		return nil, entity.ErrNothingToUpdate
	}

	var result *entity.OrderLine
	err := uc.txManager.Do(ctx, func(ctx context.Context) error {
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
		priceList, err := uc.catalog.FindPriceListByID(ctx, order.PriceListID)
		if err != nil {
			return err
		}

		if !req.Quantity.IsZero() {
			if req.IsAddQuantity {
				line.SetQuantity(line.QtyEntered.Add(req.Quantity))
			} else {
				line.SetQuantity(req.Quantity)
			}
		}

		priceChanged := false
		switch {
		case !req.DiscountRate.IsZero():
			// precio derivado del precio de lista menos el porcentaje
			discounted := line.PriceList.
				Mul(decimal.NewFromInt(100).Sub(req.DiscountRate)).
				Div(decimal.NewFromInt(100)).
				Round(priceList.PricePrecision)
			line.SetPrice(discounted)
			line.DiscountRate = req.DiscountRate
			priceChanged = true
		case !req.Price.IsZero():
			line.SetPrice(req.Price)
			line.DiscountRate = computeDiscountRate(line.PriceList, req.Price, priceList.PricePrecision)
			priceChanged = true
		}

		// Un cambio de precio vuelve a estampar el impuesto vigente de
		// la categoría del producto
		if priceChanged && line.ProductID > 0 {
			if err := uc.restampTax(ctx, line); err != nil {
				return err
			}
		}

		line.ComputeNetAmount(priceList.PricePrecision)
		if err := uc.orderRepo.UpdateLine(ctx, line); err != nil {
			return err
		}

		// Sincronizar la línea modificada dentro del aggregate antes de
		// recalcular totales
		for i := range order.Lines {
			if order.Lines[i].ID == line.ID {
				order.Lines[i] = *line
				break
			}
		}
		order.RecomputeTotals(priceList.IsTaxIncluded, priceList.PricePrecision)
		if err := uc.orderRepo.UpdateHeader(ctx, order); err != nil {
			return err
		}
		result = line
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// restampTax vuelve a resolver el impuesto de venta de la categoría
// del producto de la línea
func (uc *UpdateOrderLineUseCase) restampTax(ctx context.Context, line *entity.OrderLine) error {
	product, err := uc.catalog.FindProductByID(ctx, line.ProductID)
	if err != nil {
		return err
	}
	taxes, err := uc.catalog.FindTaxesByCategory(ctx, product.TaxCategoryID)
	if err != nil {
		return err
	}
	for i := range taxes {
		if taxes[i].AppliesToSales() {
			line.SetTax(taxes[i].ID, taxes[i].Rate)
			return nil
		}
	}
	return nil
}

// computeDiscountRate deriva el porcentaje de descuento implícito en un
// precio explícito respecto del precio de lista. Sin precio de lista el
// descuento es cero.
func computeDiscountRate(priceListAmount, price decimal.Decimal, precision int32) decimal.Decimal {
	if !priceListAmount.IsPositive() {
		return decimal.Zero
	}
	return priceListAmount.Sub(price).
		Mul(decimal.NewFromInt(100)).
		Div(priceListAmount).
		Round(precision)
}
