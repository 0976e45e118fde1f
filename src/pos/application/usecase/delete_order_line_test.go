package usecase

import (
	"context"
	"testing"

	"pos/src/pos/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteOrderLine_RemovesAndRecomputesTotals(t *testing.T) {
	f := newFixture()
	lineA := f.productLine(10, f.productA, "1", "90")
	lineA.TaxRate = decimal.NewFromInt(10)
	lineB := f.productLine(20, f.productB, "2", "18")
	lineB.TaxRate = decimal.NewFromInt(10)
	order := f.draftOrder(lineA, lineB)

	uc := NewDeleteOrderLineUseCase(f.orderRepo, f.catalog, f.tx)
	require.NoError(t, uc.Execute(context.Background(), lineA.UUID.String()))

	lines, _ := f.orderRepo.FindLines(context.Background(), order.ID)
	require.Len(t, lines, 1)
	assert.Equal(t, f.productB.ID, lines[0].ProductID)

	stored, err := f.orderRepo.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.True(t, stored.TotalLines.Equal(decimal.RequireFromString("36")))
	assert.True(t, stored.GrandTotal.Equal(decimal.RequireFromString("39.6")))
}

func TestDeleteOrderLine_UnknownLine(t *testing.T) {
	f := newFixture()

	uc := NewDeleteOrderLineUseCase(f.orderRepo, f.catalog, f.tx)
	err := uc.Execute(context.Background(), "3b241101-e2bb-4255-8caf-4136c566a962")
	assert.ErrorIs(t, err, entity.ErrOrderLineNotFound)
}

func TestDeleteOrder_RemovesDraftWithLines(t *testing.T) {
	f := newFixture()
	order := f.draftOrder(f.productLine(10, f.productA, "1", "90"))

	uc := NewDeleteOrderUseCase(f.orderRepo, f.tx)
	require.NoError(t, uc.Execute(context.Background(), order.UUID.String()))

	_, err := f.orderRepo.FindByID(context.Background(), order.ID)
	assert.ErrorIs(t, err, entity.ErrOrderNotFound)
	assert.Empty(t, f.orderRepo.lines)
}

func TestDeleteOrder_CompletedOrderRejected(t *testing.T) {
	f := newFixture()
	order := f.draftOrder()
	order.Status = entity.OrderStatusCompleted
	require.NoError(t, f.orderRepo.UpdateHeader(context.Background(), order))

	uc := NewDeleteOrderUseCase(f.orderRepo, f.tx)
	err := uc.Execute(context.Background(), order.UUID.String())
	assert.ErrorIs(t, err, entity.ErrOrderNotDrafted)
}
