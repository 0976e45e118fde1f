package request

import "github.com/shopspring/decimal"

// CreateOrderLineRequest agrega una línea a una orden en borrador.
// Exactamente uno de ProductUUID/ChargeUUID debe venir informado.
// Quantity en cero significa "una unidad" (o +1 si la línea ya existe).
type CreateOrderLineRequest struct {
	ProductUUID   string          `json:"product_uuid,omitempty"`
	ChargeUUID    string          `json:"charge_uuid,omitempty"`
	WarehouseUUID string          `json:"warehouse_uuid,omitempty"`
	Quantity      decimal.Decimal `json:"quantity,omitempty"`
}
