package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Registros de catálogo y precios. Son de sólo lectura para este
// motor: el mantenimiento del catálogo vive en otro sistema.

// Product representa un producto vendible
type Product struct {
	ID            int64     `json:"id"`
	UUID          uuid.UUID `json:"uuid"`
	Value         string    `json:"value"`
	Name          string    `json:"name"`
	UPC           string    `json:"upc,omitempty"`
	SKU           string    `json:"sku,omitempty"`
	TaxCategoryID int64     `json:"tax_category_id"`
	IsStocked     bool      `json:"is_stocked"`
}

// Charge representa un cargo no asociado a producto (envío, servicio)
type Charge struct {
	ID     int64           `json:"id"`
	UUID   uuid.UUID       `json:"uuid"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// PriceList representa una lista de precios
type PriceList struct {
	ID             int64     `json:"id"`
	UUID           uuid.UUID `json:"uuid"`
	Name           string    `json:"name"`
	CurrencyID     int64     `json:"currency_id"`
	IsTaxIncluded  bool      `json:"is_tax_included"`
	PricePrecision int32     `json:"price_precision"`
}

// PriceListVersion es un snapshot temporal de precios de una lista,
// seleccionado por "inicio de validez <= fecha"
type PriceListVersion struct {
	ID          int64     `json:"id"`
	PriceListID int64     `json:"price_list_id"`
	Name        string    `json:"name"`
	ValidFrom   time.Time `json:"valid_from"`
}

// ProductPriceRecord es el precio de un producto dentro de una versión
// de lista de precios
type ProductPriceRecord struct {
	PriceListVersionID int64           `json:"price_list_version_id"`
	ProductID          int64           `json:"product_id"`
	PriceList          decimal.Decimal `json:"price_list"`
	PriceStd           decimal.Decimal `json:"price_std"`
	PriceLimit         decimal.Decimal `json:"price_limit"`
}

// IsUsable indica si los tres precios están presentes y son
// estrictamente positivos; los precios parciales no se publican
func (p ProductPriceRecord) IsUsable() bool {
	return p.PriceList.IsPositive() && p.PriceStd.IsPositive() && p.PriceLimit.IsPositive()
}

// Tipos de transacción a los que aplica un impuesto
const (
	TaxTransactionBoth     = "B"
	TaxTransactionSales    = "S"
	TaxTransactionPurchase = "P"
)

// Tax representa una tasa de impuesto por categoría
type Tax struct {
	ID              int64           `json:"id"`
	UUID            uuid.UUID       `json:"uuid"`
	Name            string          `json:"name"`
	TaxCategoryID   int64           `json:"tax_category_id"`
	Rate            decimal.Decimal `json:"rate"`
	IsSalesTax      bool            `json:"is_sales_tax"`
	TransactionType string          `json:"transaction_type"`
}

// AppliesToSales indica si el impuesto aplica a transacciones de venta
func (t Tax) AppliesToSales() bool {
	return t.IsSalesTax ||
		t.TransactionType == TaxTransactionBoth ||
		t.TransactionType == TaxTransactionSales
}

// Currency representa una moneda
type Currency struct {
	ID      int64     `json:"id"`
	UUID    uuid.UUID `json:"uuid"`
	ISOCode string    `json:"iso_code"`
	Symbol  string    `json:"symbol,omitempty"`
}

// Warehouse representa un depósito
type Warehouse struct {
	ID   int64     `json:"id"`
	UUID uuid.UUID `json:"uuid"`
	Name string    `json:"name"`
}

// Storage representa existencias de un producto en un locator de un
// depósito
type Storage struct {
	WarehouseID int64           `json:"warehouse_id"`
	LocatorID   int64           `json:"locator_id"`
	ProductID   int64           `json:"product_id"`
	QtyOnHand   decimal.Decimal `json:"qty_on_hand"`
	QtyReserved decimal.Decimal `json:"qty_reserved"`
	QtyOrdered  decimal.Decimal `json:"qty_ordered"`
}

// DocumentType representa un tipo de documento de venta
type DocumentType struct {
	ID      int64     `json:"id"`
	UUID    uuid.UUID `json:"uuid"`
	Name    string    `json:"name"`
	SubType string    `json:"sub_type,omitempty"`
}

// DocSubTypePOS identifica el tipo de documento genérico de punto de
// venta usado como último recurso al crear órdenes
const DocSubTypePOS = "WR"
