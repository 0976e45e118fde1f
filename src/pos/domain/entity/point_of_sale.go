package entity

import "github.com/google/uuid"

// PointOfSale representa la configuración de una terminal de venta.
// Aporta los valores por defecto que se aplican a cada orden nueva:
// organización, depósito, lista de precios, tipo de documento, reglas
// de entrega/facturación y el cliente de mostrador.
type PointOfSale struct {
	ID             int64     `json:"id"`
	UUID           uuid.UUID `json:"uuid"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	OrgID          int64     `json:"org_id"`
	WarehouseID    int64     `json:"warehouse_id,omitempty"`
	PriceListID    int64     `json:"price_list_id,omitempty"`
	DocumentTypeID int64     `json:"document_type_id,omitempty"`
	// CashPartnerID es el cliente de mostrador para ventas sin cliente
	// identificado (modo partner por defecto)
	CashPartnerID int64  `json:"cash_partner_id"`
	SalesRepID    int64  `json:"sales_rep_id"`
	IsShared      bool   `json:"is_shared"`
	IsModifyPrice bool   `json:"is_modify_price"`
	DeliveryRule  string `json:"delivery_rule,omitempty"`
	InvoiceRule   string `json:"invoice_rule,omitempty"`
}
