package response

import (
	"pos/src/pos/domain/entity"

	"github.com/shopspring/decimal"
)

// OrderLineResponse es la vista de una línea de orden
type OrderLineResponse struct {
	UUID          string          `json:"uuid"`
	LineNo        int             `json:"line_no"`
	ProductID     int64           `json:"product_id,omitempty"`
	ChargeID      int64           `json:"charge_id,omitempty"`
	WarehouseID   int64           `json:"warehouse_id,omitempty"`
	Description   string          `json:"description,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	PriceList     decimal.Decimal `json:"price_list"`
	PriceLimit    decimal.Decimal `json:"price_limit"`
	DiscountRate  decimal.Decimal `json:"discount_rate"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	LineNetAmount decimal.Decimal `json:"line_net_amount"`
}

// NewOrderLineResponse convierte la entidad a su vista
func NewOrderLineResponse(line *entity.OrderLine) OrderLineResponse {
	return OrderLineResponse{
		UUID:          line.UUID.String(),
		LineNo:        line.LineNo,
		ProductID:     line.ProductID,
		ChargeID:      line.ChargeID,
		WarehouseID:   line.WarehouseID,
		Description:   line.Description,
		Quantity:      line.QtyOrdered,
		Price:         line.PriceActual,
		PriceList:     line.PriceList,
		PriceLimit:    line.PriceLimit,
		DiscountRate:  line.DiscountRate,
		TaxRate:       line.TaxRate,
		LineNetAmount: line.LineNetAmount,
	}
}

// ListOrderLinesResponse es una página de líneas con su token de
// paginación
type ListOrderLinesResponse struct {
	RecordCount   int                 `json:"record_count"`
	OrderLines    []OrderLineResponse `json:"order_lines"`
	NextPageToken string              `json:"next_page_token,omitempty"`
}
