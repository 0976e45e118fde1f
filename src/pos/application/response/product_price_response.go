package response

import (
	"time"

	"pos/src/pos/domain/entity"

	"github.com/shopspring/decimal"
)

// ProductPriceResponse es la vista del precio resuelto de un producto
type ProductPriceResponse struct {
	ProductUUID   string          `json:"product_uuid"`
	ProductValue  string          `json:"product_value"`
	ProductName   string          `json:"product_name"`
	PriceList     decimal.Decimal `json:"price_list"`
	PriceStd      decimal.Decimal `json:"price_std"`
	PriceLimit    decimal.Decimal `json:"price_limit"`
	Currency      string          `json:"currency,omitempty"`
	IsTaxIncluded bool            `json:"is_tax_included"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	TaxName       string          `json:"tax_name,omitempty"`
	Precision     int32           `json:"precision"`
	PriceListName string          `json:"price_list_name"`
	ValidFrom     time.Time       `json:"valid_from"`

	// Existencias agregadas, sólo cuando la consulta indicó depósito
	QtyOnHand    *decimal.Decimal `json:"qty_on_hand,omitempty"`
	QtyReserved  *decimal.Decimal `json:"qty_reserved,omitempty"`
	QtyOrdered   *decimal.Decimal `json:"qty_ordered,omitempty"`
	QtyAvailable *decimal.Decimal `json:"qty_available,omitempty"`
}

// NewProductPriceResponse convierte el value object a su vista
func NewProductPriceResponse(pricing *entity.ProductPricing) ProductPriceResponse {
	resp := ProductPriceResponse{
		ProductUUID:   pricing.Product.UUID.String(),
		ProductValue:  pricing.Product.Value,
		ProductName:   pricing.Product.Name,
		PriceList:     pricing.PriceList,
		PriceStd:      pricing.PriceStd,
		PriceLimit:    pricing.PriceLimit,
		IsTaxIncluded: pricing.IsTaxIncluded,
		TaxRate:       pricing.TaxRate(),
		Precision:     pricing.Precision,
		PriceListName: pricing.PriceListName,
		ValidFrom:     pricing.ValidFrom,
	}
	if pricing.Currency != nil {
		resp.Currency = pricing.Currency.ISOCode
	}
	if pricing.Tax != nil {
		resp.TaxName = pricing.Tax.Name
	}
	if pricing.Storage != nil {
		resp.QtyOnHand = &pricing.Storage.QtyOnHand
		resp.QtyReserved = &pricing.Storage.QtyReserved
		resp.QtyOrdered = &pricing.Storage.QtyOrdered
		resp.QtyAvailable = &pricing.Storage.QtyAvailable
	}
	return resp
}

// ListProductPricesResponse es una página de precios con su token
type ListProductPricesResponse struct {
	RecordCount   int                    `json:"record_count"`
	ProductPrices []ProductPriceResponse `json:"product_prices"`
	NextPageToken string                 `json:"next_page_token,omitempty"`
}
