package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDraftOrder_TruncatesDatesToDay(t *testing.T) {
	now := time.Date(2026, 3, 15, 18, 42, 7, 123, time.UTC)

	order := NewDraftOrder(9, now)

	expected := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, expected, order.DateOrdered)
	assert.Equal(t, expected, order.DateAcct)
	assert.Equal(t, expected, order.DatePromised)
	assert.Equal(t, OrderStatusDrafted, order.Status)
	assert.True(t, order.IsDrafted())
}

func TestRefreshDates(t *testing.T) {
	order := NewDraftOrder(9, time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC))

	order.RefreshDates(time.Date(2026, 2, 20, 23, 59, 0, 0, time.UTC))

	expected := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, expected, order.DateOrdered)
	assert.Equal(t, expected, order.DateAcct)
	assert.Equal(t, expected, order.DatePromised)
}

func TestFindLine_ProductMatchWinsOverCharge(t *testing.T) {
	order := &Order{Lines: []OrderLine{
		{LineNo: 10, ChargeID: 7},
		{LineNo: 20, ProductID: 3},
	}}

	// Con ambos identificadores presentes, la coincidencia por producto
	// tiene prioridad
	line := order.FindLine(3, 7)
	require.NotNil(t, line)
	assert.Equal(t, 20, line.LineNo)

	line = order.FindLine(0, 7)
	require.NotNil(t, line)
	assert.Equal(t, 10, line.LineNo)

	assert.Nil(t, order.FindLine(99, 0))
	assert.Nil(t, order.FindLine(0, 0))
}

func TestNextLineNo(t *testing.T) {
	order := &Order{}
	assert.Equal(t, 10, order.NextLineNo())

	order.Lines = []OrderLine{{LineNo: 10}, {LineNo: 30}, {LineNo: 20}}
	assert.Equal(t, 40, order.NextLineNo())
}

func TestRecomputeTotals_TaxNotIncluded(t *testing.T) {
	order := &Order{Lines: []OrderLine{
		{LineNetAmount: decimal.RequireFromString("180"), TaxRate: decimal.RequireFromString("10")},
		{LineNetAmount: decimal.RequireFromString("20.50"), TaxRate: decimal.RequireFromString("21")},
	}}

	order.RecomputeTotals(false, 2)

	assert.True(t, decimal.RequireFromString("200.50").Equal(order.TotalLines))
	// 180*10% = 18, 20.50*21% = 4.305 → 4.31
	assert.True(t, decimal.RequireFromString("222.81").Equal(order.GrandTotal))
}

func TestRecomputeTotals_TaxIncluded(t *testing.T) {
	order := &Order{Lines: []OrderLine{
		{LineNetAmount: decimal.RequireFromString("100"), TaxRate: decimal.RequireFromString("10")},
	}}

	order.RecomputeTotals(true, 2)

	assert.True(t, decimal.RequireFromString("100").Equal(order.TotalLines))
	assert.True(t, decimal.RequireFromString("100").Equal(order.GrandTotal))
}

func TestRecomputeTotals_NoLines(t *testing.T) {
	order := &Order{TotalLines: decimal.RequireFromString("50"), GrandTotal: decimal.RequireFromString("55")}

	order.RecomputeTotals(false, 2)

	assert.True(t, order.TotalLines.IsZero())
	assert.True(t, order.GrandTotal.IsZero())
}

func TestEnsureMutable(t *testing.T) {
	order := NewDraftOrder(9, time.Now())
	assert.NoError(t, order.EnsureMutable())

	order.Status = OrderStatusCompleted
	assert.ErrorIs(t, order.EnsureMutable(), ErrOrderNotDrafted)

	order.Status = OrderStatusDrafted
	order.Processed = true
	assert.ErrorIs(t, order.EnsureMutable(), ErrOrderProcessed)
}

func TestNewOrderLine_RequiresProductOrCharge(t *testing.T) {
	order := &Order{ID: 1}

	_, err := NewOrderLine(order, 0, 0, 0, time.Now())
	assert.ErrorIs(t, err, ErrProductOrChargeRequired)
}

func TestNewOrderLine_ChargeWinsOverProduct(t *testing.T) {
	order := &Order{ID: 1, WarehouseID: 40}

	line, err := NewOrderLine(order, 3, 7, 0, time.Now())
	require.NoError(t, err)

	assert.Equal(t, int64(7), line.ChargeID)
	assert.Zero(t, line.ProductID)
}

func TestNewOrderLine_WarehouseFallsBackToOrder(t *testing.T) {
	order := &Order{ID: 1, WarehouseID: 40, BusinessPartnerID: 51, BillLocationID: 301}

	line, err := NewOrderLine(order, 3, 0, 0, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(40), line.WarehouseID)
	assert.Equal(t, int64(51), line.BusinessPartnerID)
	assert.Equal(t, int64(301), line.BPLocationID)

	line, err = NewOrderLine(order, 3, 0, 41, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(41), line.WarehouseID)
}

func TestOrderLine_ComputeNetAmount(t *testing.T) {
	line := &OrderLine{
		PriceActual: decimal.RequireFromString("33.333"),
		QtyOrdered:  decimal.RequireFromString("3"),
	}

	line.ComputeNetAmount(2)

	assert.True(t, decimal.RequireFromString("100").Equal(line.LineNetAmount))
}

func TestBusinessPartner_LastLocationWins(t *testing.T) {
	partner := &BusinessPartner{Locations: []PartnerLocation{
		{ID: 301, IsBillTo: true, IsShipTo: true},
		{ID: 302, IsBillTo: true},
		{ID: 303, IsShipTo: true},
	}}

	assert.Equal(t, int64(302), partner.BillLocation())
	assert.Equal(t, int64(303), partner.ShipLocation())
}

func TestBusinessPartner_NoLocations(t *testing.T) {
	partner := &BusinessPartner{}

	assert.Zero(t, partner.BillLocation())
	assert.Zero(t, partner.ShipLocation())
}
