package usecase

import (
	"context"

	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"
	"pos/src/shared/domain/pagination"
)

// ListPointOfSalesResult es el resultado paginado del listado de
// terminales
type ListPointOfSalesResult struct {
	PointOfSales  []entity.PointOfSale
	RecordCount   int
	NextPageToken string
}

// ListPointOfSalesUseCase lista las terminales visibles para un
// vendedor: las compartidas más las asignadas a él
type ListPointOfSalesUseCase struct {
	posRepo port.POSRepository
}

// NewListPointOfSalesUseCase crea una nueva instancia del caso de uso
func NewListPointOfSalesUseCase(posRepo port.POSRepository) *ListPointOfSalesUseCase {
	return &ListPointOfSalesUseCase{posRepo: posRepo}
}

// Execute retorna la página pedida de terminales para el vendedor
func (uc *ListPointOfSalesUseCase) Execute(ctx context.Context, salesRepID int64, sessionID, pageToken string) (*ListPointOfSalesResult, error) {
	page := pagination.DecodeToken(sessionID, pageToken)
	terminals, count, err := uc.posRepo.List(ctx, salesRepID, pagination.Limit(page), pagination.Offset(page))
	if err != nil {
		return nil, err
	}
	return &ListPointOfSalesResult{
		PointOfSales:  terminals,
		RecordCount:   count,
		NextPageToken: pagination.NextToken(sessionID, page, count),
	}, nil
}
