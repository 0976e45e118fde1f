package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOrders_FirstPage(t *testing.T) {
	f := newFixture()
	for i := 0; i < 120; i++ {
		f.draftOrder()
	}
	uc := NewListOrdersUseCase(f.orderRepo, f.posRepo, f.partnerRepo)

	result, err := uc.Execute(context.Background(), ListOrdersQuery{
		PosUUID:   f.pos.UUID.String(),
		SessionID: "sess",
	})
	require.NoError(t, err)

	assert.Equal(t, 120, result.RecordCount)
	assert.Len(t, result.Orders, 50)
	assert.Equal(t, "sess-1", result.NextPageToken)
}

func TestListOrders_CumulativeWindowGrowsWithPage(t *testing.T) {
	f := newFixture()
	for i := 0; i < 120; i++ {
		f.draftOrder()
	}
	uc := NewListOrdersUseCase(f.orderRepo, f.posRepo, f.partnerRepo)

	// El límite crece con la página: en la página 2 la ventana es de
	// 100 registros desde el offset 50
	result, err := uc.Execute(context.Background(), ListOrdersQuery{
		PosUUID:   f.pos.UUID.String(),
		SessionID: "sess",
		PageToken: "sess-2",
	})
	require.NoError(t, err)

	assert.Len(t, result.Orders, 70)
	assert.Equal(t, "sess-3", result.NextPageToken)
}

func TestListOrders_LastPageHasNoToken(t *testing.T) {
	f := newFixture()
	for i := 0; i < 30; i++ {
		f.draftOrder()
	}
	uc := NewListOrdersUseCase(f.orderRepo, f.posRepo, f.partnerRepo)

	result, err := uc.Execute(context.Background(), ListOrdersQuery{
		PosUUID:   f.pos.UUID.String(),
		SessionID: "sess",
	})
	require.NoError(t, err)

	assert.Len(t, result.Orders, 30)
	assert.Empty(t, result.NextPageToken)
}

func TestListOrders_ForeignTokenMeansFirstPage(t *testing.T) {
	f := newFixture()
	for i := 0; i < 60; i++ {
		f.draftOrder()
	}
	uc := NewListOrdersUseCase(f.orderRepo, f.posRepo, f.partnerRepo)

	result, err := uc.Execute(context.Background(), ListOrdersQuery{
		PosUUID:   f.pos.UUID.String(),
		SessionID: "sess",
		PageToken: "otra-sesion-2",
	})
	require.NoError(t, err)

	assert.Len(t, result.Orders, 50)
	assert.Equal(t, "sess-1", result.NextPageToken)
}

func TestListOrders_FilterByPartner(t *testing.T) {
	f := newFixture()
	mine := f.draftOrder()
	mine.BusinessPartnerID = f.partner.ID
	require.NoError(t, f.orderRepo.UpdateHeader(context.Background(), mine))
	f.draftOrder()

	uc := NewListOrdersUseCase(f.orderRepo, f.posRepo, f.partnerRepo)
	result, err := uc.Execute(context.Background(), ListOrdersQuery{
		PosUUID:             f.pos.UUID.String(),
		BusinessPartnerUUID: f.partner.UUID.String(),
		SessionID:           "sess",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.RecordCount)
	require.Len(t, result.Orders, 1)
	assert.Equal(t, mine.UUID, result.Orders[0].UUID)
}
