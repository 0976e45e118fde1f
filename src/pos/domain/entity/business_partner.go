package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PartnerLocation representa una dirección de un business partner
type PartnerLocation struct {
	ID       int64 `json:"id"`
	IsBillTo bool  `json:"is_bill_to"`
	IsShipTo bool  `json:"is_ship_to"`
}

// BusinessPartner representa un cliente del punto de venta
type BusinessPartner struct {
	ID         int64     `json:"id"`
	UUID       uuid.UUID `json:"uuid"`
	Value      string    `json:"value"`
	Name       string    `json:"name"`
	SalesRepID int64     `json:"sales_rep_id,omitempty"`
	// FlatDiscount es el descuento plano del partner aplicado sobre el
	// precio estándar al resolver precios
	FlatDiscount decimal.Decimal   `json:"flat_discount"`
	Locations    []PartnerLocation `json:"locations,omitempty"`
}

// BillLocation retorna la última ubicación de facturación del partner
// (la última coincidencia gana cuando hay varias del mismo tipo)
func (bp *BusinessPartner) BillLocation() int64 {
	var locationID int64
	for _, location := range bp.Locations {
		if location.IsBillTo {
			locationID = location.ID
		}
	}
	return locationID
}

// ShipLocation retorna la última ubicación de entrega del partner
func (bp *BusinessPartner) ShipLocation() int64 {
	var locationID int64
	for _, location := range bp.Locations {
		if location.IsShipTo {
			locationID = location.ID
		}
	}
	return locationID
}
