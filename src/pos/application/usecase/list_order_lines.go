package usecase

import (
	"context"

	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"
	"pos/src/shared/domain/pagination"
)

// ListOrderLinesResult es el resultado paginado del listado de líneas
type ListOrderLinesResult struct {
	Lines         []entity.OrderLine
	RecordCount   int
	NextPageToken string
}

// ListOrderLinesUseCase lista las líneas de una orden con paginación
// por token de sesión
type ListOrderLinesUseCase struct {
	orderRepo port.OrderRepository
}

// NewListOrderLinesUseCase crea una nueva instancia del caso de uso
func NewListOrderLinesUseCase(orderRepo port.OrderRepository) *ListOrderLinesUseCase {
	return &ListOrderLinesUseCase{orderRepo: orderRepo}
}

// Execute retorna la página pedida de líneas de la orden
func (uc *ListOrderLinesUseCase) Execute(ctx context.Context, orderUUID, sessionID, pageToken string) (*ListOrderLinesResult, error) {
	orderRef, ok := parseOptionalUUID(orderUUID)
	if !ok {
		return nil, entity.ErrOrderRequired
	}
	order, err := uc.orderRepo.FindByUUID(ctx, orderRef)
	if err != nil {
		return nil, err
	}

	page := pagination.DecodeToken(sessionID, pageToken)
	lines, count, err := uc.orderRepo.ListLines(ctx, order.ID, pagination.Limit(page), pagination.Offset(page))
	if err != nil {
		return nil, err
	}

	return &ListOrderLinesResult{
		Lines:         lines,
		RecordCount:   count,
		NextPageToken: pagination.NextToken(sessionID, page, count),
	}, nil
}
