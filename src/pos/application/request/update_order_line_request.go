package request

import "github.com/shopspring/decimal"

// UpdateOrderLineRequest modifica cantidad, precio o descuento de una
// línea. Al menos uno debe venir distinto de cero. Si llegan precio y
// descuento a la vez, el descuento gana: el precio se recalcula como
// precio de lista * (1 - descuento/100).
type UpdateOrderLineRequest struct {
	Quantity      decimal.Decimal `json:"quantity,omitempty"`
	Price         decimal.Decimal `json:"price,omitempty"`
	DiscountRate  decimal.Decimal `json:"discount_rate,omitempty"`
	IsAddQuantity bool            `json:"is_add_quantity,omitempty"`
}
