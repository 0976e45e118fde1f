package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StorageSummary agrega las existencias de un producto en un depósito,
// sumadas sobre todos sus locators
type StorageSummary struct {
	QtyOnHand    decimal.Decimal `json:"qty_on_hand"`
	QtyReserved  decimal.Decimal `json:"qty_reserved"`
	QtyOrdered   decimal.Decimal `json:"qty_ordered"`
	QtyAvailable decimal.Decimal `json:"qty_available"`
}

// SummarizeStorage suma las existencias de un depósito. Disponible =
// en mano - reservado, acumulado por locator.
func SummarizeStorage(records []Storage, warehouseID int64) StorageSummary {
	summary := StorageSummary{
		QtyOnHand:    decimal.Zero,
		QtyReserved:  decimal.Zero,
		QtyOrdered:   decimal.Zero,
		QtyAvailable: decimal.Zero,
	}
	for _, record := range records {
		if record.WarehouseID != warehouseID {
			continue
		}
		summary.QtyOnHand = summary.QtyOnHand.Add(record.QtyOnHand)
		summary.QtyReserved = summary.QtyReserved.Add(record.QtyReserved)
		summary.QtyOrdered = summary.QtyOrdered.Add(record.QtyOrdered)
		summary.QtyAvailable = summary.QtyAvailable.Add(record.QtyOnHand.Sub(record.QtyReserved))
	}
	return summary
}

// ProductPricing es el resultado calculado de resolver el precio de un
// producto para una lista, partner y fecha. No se persiste.
type ProductPricing struct {
	Product       *Product        `json:"product"`
	PriceList     decimal.Decimal `json:"price_list"`
	PriceStd      decimal.Decimal `json:"price_std"`
	PriceLimit    decimal.Decimal `json:"price_limit"`
	HasPrices     bool            `json:"has_prices"`
	Currency      *Currency       `json:"currency,omitempty"`
	IsTaxIncluded bool            `json:"is_tax_included"`
	Tax           *Tax            `json:"tax,omitempty"`
	Precision     int32           `json:"precision"`
	PriceListName string          `json:"price_list_name"`
	ValidFrom     time.Time       `json:"valid_from"`
	// Storage sólo se completa cuando la consulta indica depósito
	Storage *StorageSummary `json:"storage,omitempty"`
}

// TaxRate retorna la tasa del impuesto resuelto, o cero si no hay
func (p *ProductPricing) TaxRate() decimal.Decimal {
	if p.Tax == nil {
		return decimal.Zero
	}
	return p.Tax.Rate
}
