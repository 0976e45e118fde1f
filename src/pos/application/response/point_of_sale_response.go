package response

import "pos/src/pos/domain/entity"

// PointOfSaleResponse es la vista de una terminal para los clientes
type PointOfSaleResponse struct {
	UUID           string `json:"uuid"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	WarehouseID    int64  `json:"warehouse_id,omitempty"`
	PriceListID    int64  `json:"price_list_id,omitempty"`
	DocumentTypeID int64  `json:"document_type_id,omitempty"`
	SalesRepID     int64  `json:"sales_rep_id,omitempty"`
	IsShared       bool   `json:"is_shared"`
	IsModifyPrice  bool   `json:"is_modify_price"`
}

// NewPointOfSaleResponse convierte la entidad a su vista
func NewPointOfSaleResponse(pos *entity.PointOfSale) PointOfSaleResponse {
	return PointOfSaleResponse{
		UUID:           pos.UUID.String(),
		Name:           pos.Name,
		Description:    pos.Description,
		WarehouseID:    pos.WarehouseID,
		PriceListID:    pos.PriceListID,
		DocumentTypeID: pos.DocumentTypeID,
		SalesRepID:     pos.SalesRepID,
		IsShared:       pos.IsShared,
		IsModifyPrice:  pos.IsModifyPrice,
	}
}

// ListPointOfSalesResponse es una página de terminales con su token
type ListPointOfSalesResponse struct {
	RecordCount   int                   `json:"record_count"`
	PointOfSales  []PointOfSaleResponse `json:"point_of_sales"`
	NextPageToken string                `json:"next_page_token,omitempty"`
}
