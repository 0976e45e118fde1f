package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderLine representa una línea dentro de una orden. Referencia
// exactamente uno de {producto, cargo}, nunca ambos ni ninguno.
type OrderLine struct {
	ID                int64           `json:"id"`
	UUID              uuid.UUID       `json:"uuid"`
	OrderID           int64           `json:"order_id"`
	LineNo            int             `json:"line_no"`
	ProductID         int64           `json:"product_id,omitempty"`
	ChargeID          int64           `json:"charge_id,omitempty"`
	WarehouseID       int64           `json:"warehouse_id,omitempty"`
	Description       string          `json:"description"`
	QtyEntered        decimal.Decimal `json:"qty_entered"`
	QtyOrdered        decimal.Decimal `json:"qty_ordered"`
	PriceEntered      decimal.Decimal `json:"price_entered"`
	PriceActual       decimal.Decimal `json:"price_actual"`
	PriceList         decimal.Decimal `json:"price_list"`
	PriceLimit        decimal.Decimal `json:"price_limit"`
	DiscountRate      decimal.Decimal `json:"discount_rate"`
	TaxID             int64           `json:"tax_id,omitempty"`
	TaxRate           decimal.Decimal `json:"tax_rate"`
	LineNetAmount     decimal.Decimal `json:"line_net_amount"`
	BusinessPartnerID int64           `json:"business_partner_id"`
	BPLocationID      int64           `json:"bp_location_id"`
	Processed         bool            `json:"processed"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// NewOrderLine crea una línea nueva para la orden dada. Valida la
// exclusión mutua producto/cargo; el cargo tiene prioridad si llegan
// ambos identificadores.
func NewOrderLine(order *Order, productID, chargeID, warehouseID int64, now time.Time) (*OrderLine, error) {
	if productID <= 0 && chargeID <= 0 {
		return nil, ErrProductOrChargeRequired
	}
	line := &OrderLine{
		UUID:              uuid.New(),
		OrderID:           order.ID,
		LineNo:            order.NextLineNo(),
		WarehouseID:       warehouseID,
		BusinessPartnerID: order.BusinessPartnerID,
		BPLocationID:      order.BillLocationID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if chargeID > 0 {
		line.ChargeID = chargeID
	} else {
		line.ProductID = productID
	}
	if line.WarehouseID == 0 {
		line.WarehouseID = order.WarehouseID
	}
	return line, nil
}

// SetQuantity fija la cantidad pedida y la ingresada
func (l *OrderLine) SetQuantity(qty decimal.Decimal) {
	l.QtyEntered = qty
	l.QtyOrdered = qty
}

// ApplyPricing estampa los precios resueltos en la línea: el precio
// estándar pasa a ser el precio ingresado/actual y se copian los
// límites lista/mínimo vigentes
func (l *OrderLine) ApplyPricing(pricing *ProductPricing) {
	l.PriceEntered = pricing.PriceStd
	l.PriceActual = pricing.PriceStd
	l.PriceList = pricing.PriceList
	l.PriceLimit = pricing.PriceLimit
}

// SetPrice fija un precio explícito conservando los límites vigentes
func (l *OrderLine) SetPrice(price decimal.Decimal) {
	l.PriceEntered = price
	l.PriceActual = price
}

// RefreshPriceBounds actualiza sólo los límites lista/mínimo sin tocar
// el precio ingresado (se usa al fusionar cantidades sobre una línea
// existente)
func (l *OrderLine) RefreshPriceBounds(pricing *ProductPricing) {
	l.PriceList = pricing.PriceList
	l.PriceLimit = pricing.PriceLimit
}

// SetTax estampa el impuesto resuelto
func (l *OrderLine) SetTax(taxID int64, rate decimal.Decimal) {
	l.TaxID = taxID
	l.TaxRate = rate
}

// StampPartner copia el partner y la ubicación de la orden dueña.
// Se invoca en cada reprecio para que la línea nunca quede apuntando a
// un partner viejo.
func (l *OrderLine) StampPartner(order *Order) {
	l.BusinessPartnerID = order.BusinessPartnerID
	l.BPLocationID = order.BillLocationID
}

// ComputeNetAmount recalcula el neto de la línea con la precisión de la
// lista de precios
func (l *OrderLine) ComputeNetAmount(precision int32) {
	l.LineNetAmount = l.PriceActual.Mul(l.QtyOrdered).Round(precision)
}
