package pricing

import (
	"context"
	"time"

	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"

	"github.com/shopspring/decimal"
)

// Resolver calcula el precio aplicable de un producto para una lista
// de precios, un partner y una fecha. Es de sólo lectura: puede
// invocarse especulativamente para mostrar precios sin tocar órdenes.
type Resolver struct {
	catalog port.CatalogRepository
	partner port.PartnerRepository
}

// NewResolver crea un nuevo resolver de precios
func NewResolver(catalog port.CatalogRepository, partner port.PartnerRepository) *Resolver {
	return &Resolver{
		catalog: catalog,
		partner: partner,
	}
}

// Resolve computa el ProductPricing del producto contra la lista de
// precios a la fecha dada. warehouseID == 0 omite existencias;
// partnerID == 0 omite reglas por partner.
func (r *Resolver) Resolve(
	ctx context.Context,
	product *entity.Product,
	priceList *entity.PriceList,
	partnerID int64,
	warehouseID int64,
	validFrom time.Time,
) (*entity.ProductPricing, error) {
	result := &entity.ProductPricing{
		Product:       product,
		PriceList:     decimal.Zero,
		PriceStd:      decimal.Zero,
		PriceLimit:    decimal.Zero,
		IsTaxIncluded: priceList.IsTaxIncluded,
		Precision:     priceList.PricePrecision,
		PriceListName: priceList.Name,
		ValidFrom:     validFrom,
	}

	// Precios lista/estándar/límite desde la versión vigente
	version, err := r.catalog.FindPriceListVersion(ctx, priceList.ID, validFrom)
	if err != nil {
		return nil, err
	}
	if version != nil {
		record, err := r.catalog.FindProductPrice(ctx, version.ID, product.ID)
		if err != nil {
			return nil, err
		}
		// Los tres precios deben ser positivos; un precio parcial no se
		// publica
		if record != nil && record.IsUsable() {
			result.PriceList = record.PriceList
			result.PriceStd = record.PriceStd
			result.PriceLimit = record.PriceLimit
			result.HasPrices = true
		}
	}

	// Descuento plano del partner sobre el precio estándar
	if result.HasPrices && partnerID > 0 {
		if err := r.applyPartnerDiscount(ctx, result, partnerID); err != nil {
			return nil, err
		}
	}

	// Primer impuesto de la categoría del producto aplicable a ventas;
	// la ausencia de impuesto no es un error
	taxes, err := r.catalog.FindTaxesByCategory(ctx, product.TaxCategoryID)
	if err != nil {
		return nil, err
	}
	for i := range taxes {
		if taxes[i].AppliesToSales() {
			tax := taxes[i]
			result.Tax = &tax
			break
		}
	}

	// Moneda de la lista de precios
	currency, err := r.catalog.FindCurrency(ctx, priceList.CurrencyID)
	if err != nil {
		return nil, err
	}
	result.Currency = currency

	// Existencias agregadas del depósito, sólo cuando se pide
	if warehouseID > 0 {
		records, err := r.catalog.FindStorage(ctx, product.ID, warehouseID)
		if err != nil {
			return nil, err
		}
		summary := entity.SummarizeStorage(records, warehouseID)
		result.Storage = &summary
	}

	return result, nil
}

// applyPartnerDiscount aplica el descuento plano del partner al precio
// estándar, redondeado a la precisión de la lista
func (r *Resolver) applyPartnerDiscount(ctx context.Context, result *entity.ProductPricing, partnerID int64) error {
	partner, err := r.partner.FindByID(ctx, partnerID)
	if err != nil {
		// El partner puede no existir en consultas especulativas
		if err == entity.ErrBusinessPartnerNotFound {
			return nil
		}
		return err
	}
	if partner.FlatDiscount.IsPositive() {
		discount := result.PriceStd.
			Mul(partner.FlatDiscount).
			Div(decimal.NewFromInt(100))
		result.PriceStd = result.PriceStd.Sub(discount).Round(result.Precision)
	}
	return nil
}
