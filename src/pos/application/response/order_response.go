package response

import (
	"time"

	"pos/src/pos/domain/entity"

	"github.com/shopspring/decimal"
)

// OrderResponse es la vista de una orden para los clientes
type OrderResponse struct {
	UUID              string          `json:"uuid"`
	DocumentNo        string          `json:"document_no"`
	Status            string          `json:"status"`
	PosID             int64           `json:"pos_id"`
	BusinessPartnerID int64           `json:"business_partner_id"`
	PriceListID       int64           `json:"price_list_id"`
	WarehouseID       int64           `json:"warehouse_id"`
	DocumentTypeID    int64           `json:"document_type_id"`
	SalesRepID        int64           `json:"sales_rep_id"`
	PaymentRule       string          `json:"payment_rule,omitempty"`
	Description       string          `json:"description,omitempty"`
	DateOrdered       time.Time       `json:"date_ordered"`
	TotalLines        decimal.Decimal `json:"total_lines"`
	GrandTotal        decimal.Decimal `json:"grand_total"`
	LineCount         int             `json:"line_count"`
}

// NewOrderResponse convierte la entidad a su vista
func NewOrderResponse(order *entity.Order) OrderResponse {
	return OrderResponse{
		UUID:              order.UUID.String(),
		DocumentNo:        order.DocumentNo,
		Status:            string(order.Status),
		PosID:             order.POSID,
		BusinessPartnerID: order.BusinessPartnerID,
		PriceListID:       order.PriceListID,
		WarehouseID:       order.WarehouseID,
		DocumentTypeID:    order.DocumentTypeID,
		SalesRepID:        order.SalesRepID,
		PaymentRule:       order.PaymentRule,
		Description:       order.Description,
		DateOrdered:       order.DateOrdered,
		TotalLines:        order.TotalLines,
		GrandTotal:        order.GrandTotal,
		LineCount:         len(order.Lines),
	}
}

// ListOrdersResponse es una página de órdenes con su token de
// paginación
type ListOrdersResponse struct {
	RecordCount   int             `json:"record_count"`
	Orders        []OrderResponse `json:"orders"`
	NextPageToken string          `json:"next_page_token,omitempty"`
}
