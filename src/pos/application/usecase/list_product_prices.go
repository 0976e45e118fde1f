package usecase

import (
	"context"
	"time"

	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"
	"pos/src/pos/domain/pricing"
	"pos/src/shared/domain/pagination"
)

// ListProductPricesQuery reúne los parámetros del browse de la lista de
// precios de una terminal
type ListProductPricesQuery struct {
	PosUUID       string
	PriceListUUID string
	PartnerUUID   string
	WarehouseUUID string
	SearchValue   string
	ValidFrom     time.Time
	SessionID     string
	PageToken     string
}

// ListProductPricesResult es el resultado paginado del browse
type ListProductPricesResult struct {
	Prices        []*entity.ProductPricing
	RecordCount   int
	NextPageToken string
}

// ListProductPricesUseCase pagina el catálogo con precio vigente de una
// terminal. Publica sólo productos con los tres precios completos.
type ListProductPricesUseCase struct {
	catalog     port.CatalogRepository
	posRepo     port.POSRepository
	partnerRepo port.PartnerRepository
	resolver    *pricing.Resolver
}

// NewListProductPricesUseCase crea una nueva instancia del caso de uso
func NewListProductPricesUseCase(
	catalog port.CatalogRepository,
	posRepo port.POSRepository,
	partnerRepo port.PartnerRepository,
	resolver *pricing.Resolver,
) *ListProductPricesUseCase {
	return &ListProductPricesUseCase{
		catalog:     catalog,
		posRepo:     posRepo,
		partnerRepo: partnerRepo,
		resolver:    resolver,
	}
}

// Execute retorna la página pedida de precios vigentes
func (uc *ListProductPricesUseCase) Execute(ctx context.Context, query ListProductPricesQuery) (*ListProductPricesResult, error) {
	posRef, ok := parseOptionalUUID(query.PosUUID)
	if !ok {
		return nil, entity.ErrPointOfSaleRequired
	}
	pos, err := uc.posRepo.FindByUUID(ctx, posRef)
	if err != nil {
		return nil, err
	}

	var priceList *entity.PriceList
	if priceListRef, ok := parseOptionalUUID(query.PriceListUUID); ok {
		priceList, err = uc.catalog.FindPriceListByUUID(ctx, priceListRef)
	} else {
		priceList, err = uc.catalog.FindPriceListByID(ctx, pos.PriceListID)
	}
	if err != nil {
		return nil, err
	}

	var partnerID int64
	if partnerRef, ok := parseOptionalUUID(query.PartnerUUID); ok {
		partner, err := uc.partnerRepo.FindByUUID(ctx, partnerRef)
		if err != nil {
			return nil, err
		}
		partnerID = partner.ID
	}

	warehouseID := pos.WarehouseID
	if warehouseRef, ok := parseOptionalUUID(query.WarehouseUUID); ok {
		warehouse, err := uc.catalog.FindWarehouseByUUID(ctx, warehouseRef)
		if err != nil {
			return nil, err
		}
		warehouseID = warehouse.ID
	}

	validFrom := query.ValidFrom
	if validFrom.IsZero() {
		validFrom = time.Now()
	}
	validFrom = entity.Day(validFrom)

	page := pagination.DecodeToken(query.SessionID, query.PageToken)
	products, count, err := uc.catalog.ListPricedProducts(ctx, priceList.ID, validFrom, query.SearchValue, pagination.Limit(page), pagination.Offset(page))
	if err != nil {
		return nil, err
	}

	prices := make([]*entity.ProductPricing, 0, len(products))
	for i := range products {
		productPricing, err := uc.resolver.Resolve(ctx, &products[i], priceList, partnerID, warehouseID, validFrom)
		if err != nil {
			return nil, err
		}
		prices = append(prices, productPricing)
	}

	return &ListProductPricesResult{
		Prices:        prices,
		RecordCount:   count,
		NextPageToken: pagination.NextToken(query.SessionID, page, count),
	}, nil
}
