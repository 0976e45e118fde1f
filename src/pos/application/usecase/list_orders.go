package usecase

import (
	"context"
	"time"

	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"
	"pos/src/shared/domain/criteria"
	"pos/src/shared/domain/pagination"
)

// ListOrdersQuery reúne los filtros de listado de órdenes de una
// terminal. Los campos vacíos no filtran.
type ListOrdersQuery struct {
	PosUUID             string
	DocumentNo          string
	BusinessPartnerUUID string
	SalesRepID          int64
	OnlyProcessed       bool
	OnlyUnprocessed     bool
	GrandTotalFrom      string
	GrandTotalTo        string
	DateOrderedFrom     time.Time
	DateOrderedTo       time.Time
	SessionID           string
	PageToken           string
}

// ListOrdersResult es el resultado paginado del listado
type ListOrdersResult struct {
	Orders        []*entity.Order
	RecordCount   int
	NextPageToken string
}

// ListOrdersUseCase lista las órdenes de una terminal con filtros
// opcionales y paginación por token de sesión
type ListOrdersUseCase struct {
	orderRepo   port.OrderRepository
	posRepo     port.POSRepository
	partnerRepo port.PartnerRepository
}

// NewListOrdersUseCase crea una nueva instancia del caso de uso
func NewListOrdersUseCase(orderRepo port.OrderRepository, posRepo port.POSRepository, partnerRepo port.PartnerRepository) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		orderRepo:   orderRepo,
		posRepo:     posRepo,
		partnerRepo: partnerRepo,
	}
}

// Execute arma el criteria a partir de la query y retorna la página
// pedida junto con el total y el token de la página siguiente
func (uc *ListOrdersUseCase) Execute(ctx context.Context, query ListOrdersQuery) (*ListOrdersResult, error) {
	posRef, ok := parseOptionalUUID(query.PosUUID)
	if !ok {
		return nil, entity.ErrPointOfSaleRequired
	}
	pos, err := uc.posRepo.FindByUUID(ctx, posRef)
	if err != nil {
		return nil, err
	}

	builder := criteria.NewCriteriaBuilder().
		Where("pos_id", criteria.OpEqual, pos.ID)

	if query.DocumentNo != "" {
		builder.Where("document_no", criteria.OpLike, "%"+query.DocumentNo+"%")
	}
	if partnerRef, ok := parseOptionalUUID(query.BusinessPartnerUUID); ok {
		partner, err := uc.partnerRepo.FindByUUID(ctx, partnerRef)
		if err != nil {
			return nil, err
		}
		builder.Where("business_partner_id", criteria.OpEqual, partner.ID)
	}
	if query.SalesRepID > 0 {
		builder.Where("sales_rep_id", criteria.OpEqual, query.SalesRepID)
	}
	if query.OnlyProcessed {
		builder.Where("processed", criteria.OpEqual, true)
	} else if query.OnlyUnprocessed {
		builder.Where("processed", criteria.OpEqual, false)
	}
	if query.GrandTotalFrom != "" {
		builder.Where("grand_total", criteria.OpGreaterThanOrEqual, query.GrandTotalFrom)
	}
	if query.GrandTotalTo != "" {
		builder.Where("grand_total", criteria.OpLessThanOrEqual, query.GrandTotalTo)
	}
	if !query.DateOrderedFrom.IsZero() {
		builder.Where("date_ordered", criteria.OpGreaterThanOrEqual, entity.Day(query.DateOrderedFrom))
	}
	if !query.DateOrderedTo.IsZero() {
		builder.Where("date_ordered", criteria.OpLessThanOrEqual, entity.Day(query.DateOrderedTo))
	}

	page := pagination.DecodeToken(query.SessionID, query.PageToken)
	builder.OrderBy("date_ordered", criteria.DESC).
		Paginate(pagination.Limit(page), pagination.Offset(page))

	crit := builder.Build()
	orders, err := uc.orderRepo.Search(ctx, crit)
	if err != nil {
		return nil, err
	}
	count, err := uc.orderRepo.Count(ctx, crit)
	if err != nil {
		return nil, err
	}

	return &ListOrdersResult{
		Orders:        orders,
		RecordCount:   count,
		NextPageToken: pagination.NextToken(query.SessionID, page, count),
	}, nil
}
