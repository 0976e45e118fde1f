package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus representa el estado del ciclo de vida de una orden
type OrderStatus string

const (
	OrderStatusDrafted   OrderStatus = "DRAFTED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusVoided    OrderStatus = "VOIDED"
)

// Reglas de pago / entrega / facturación copiadas de la configuración
// del punto de venta o del partner
const (
	PaymentRuleCash = "CASH"
)

// Order representa una orden de venta en borrador (Aggregate Root).
// Sólo las órdenes en estado DRAFTED son mutables por este motor.
type Order struct {
	ID                int64           `json:"id"`
	UUID              uuid.UUID       `json:"uuid"`
	DocumentNo        string          `json:"document_no"`
	Status            OrderStatus     `json:"status"`
	Processed         bool            `json:"processed"`
	OrgID             int64           `json:"org_id"`
	POSID             int64           `json:"pos_id"`
	BusinessPartnerID int64           `json:"business_partner_id"`
	BillLocationID    int64           `json:"bill_location_id"`
	ShipLocationID    int64           `json:"ship_location_id"`
	PriceListID       int64           `json:"price_list_id"`
	WarehouseID       int64           `json:"warehouse_id"`
	DocumentTypeID    int64           `json:"document_type_id"`
	SalesRepID        int64           `json:"sales_rep_id"`
	PaymentRule       string          `json:"payment_rule"`
	DeliveryRule      string          `json:"delivery_rule"`
	InvoiceRule       string          `json:"invoice_rule"`
	Description       string          `json:"description"`
	DateOrdered       time.Time       `json:"date_ordered"`
	DateAcct          time.Time       `json:"date_acct"`
	DatePromised      time.Time       `json:"date_promised"`
	TotalLines        decimal.Decimal `json:"total_lines"`
	GrandTotal        decimal.Decimal `json:"grand_total"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	Lines             []OrderLine     `json:"lines"`
}

// NewDraftOrder crea una orden nueva en estado DRAFTED para un punto de venta
func NewDraftOrder(posID int64, now time.Time) *Order {
	day := Day(now)
	return &Order{
		UUID:         uuid.New(),
		Status:       OrderStatusDrafted,
		POSID:        posID,
		DateOrdered:  day,
		DateAcct:     day,
		DatePromised: day,
		TotalLines:   decimal.Zero,
		GrandTotal:   decimal.Zero,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Day trunca un instante a precisión de día (fecha contable de la orden)
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsDrafted indica si la orden sigue en borrador
func (o *Order) IsDrafted() bool {
	return o.Status == OrderStatusDrafted
}

// IsCompleted indica si la orden fue completada
func (o *Order) IsCompleted() bool {
	return o.Status == OrderStatusCompleted
}

// IsVoided indica si la orden fue anulada
func (o *Order) IsVoided() bool {
	return o.Status == OrderStatusVoided
}

// EnsureMutable valida que la orden siga abierta a cambios: sin
// procesar y todavía en borrador
func (o *Order) EnsureMutable() error {
	if o.Processed {
		return ErrOrderProcessed
	}
	if !o.IsDrafted() {
		return ErrOrderNotDrafted
	}
	return nil
}

// RefreshDates actualiza las fechas de la orden al día de hoy.
// Se usa al reutilizar un borrador vacío de una sesión anterior.
func (o *Order) RefreshDates(now time.Time) {
	day := Day(now)
	o.DateOrdered = day
	o.DateAcct = day
	o.DatePromised = day
}

// FindLine busca una línea existente por identidad de producto o cargo.
// La coincidencia por producto tiene prioridad sobre la de cargo.
func (o *Order) FindLine(productID, chargeID int64) *OrderLine {
	if productID > 0 {
		for i := range o.Lines {
			if o.Lines[i].ProductID == productID {
				return &o.Lines[i]
			}
		}
	}
	if chargeID > 0 {
		for i := range o.Lines {
			if o.Lines[i].ChargeID == chargeID {
				return &o.Lines[i]
			}
		}
	}
	return nil
}

// NextLineNo retorna el siguiente número de línea (10, 20, 30, ...)
func (o *Order) NextLineNo() int {
	max := 0
	for i := range o.Lines {
		if o.Lines[i].LineNo > max {
			max = o.Lines[i].LineNo
		}
	}
	return max + 10
}

// RecomputeTotals recalcula los totales a partir de las líneas.
// Si la lista de precios no incluye impuestos, el gran total suma el
// impuesto de cada línea sobre su neto.
func (o *Order) RecomputeTotals(taxIncluded bool, precision int32) {
	totalLines := decimal.Zero
	taxAmount := decimal.Zero
	for i := range o.Lines {
		totalLines = totalLines.Add(o.Lines[i].LineNetAmount)
		if !taxIncluded {
			lineTax := o.Lines[i].LineNetAmount.
				Mul(o.Lines[i].TaxRate).
				Div(decimal.NewFromInt(100)).
				Round(precision)
			taxAmount = taxAmount.Add(lineTax)
		}
	}
	o.TotalLines = totalLines.Round(precision)
	o.GrandTotal = o.TotalLines.Add(taxAmount)
}
