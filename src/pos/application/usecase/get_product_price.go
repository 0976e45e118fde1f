package usecase

import (
	"context"
	"errors"
	"time"

	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"
	"pos/src/pos/domain/pricing"
)

// GetProductPriceQuery identifica el producto y el contexto de precio
// de la consulta. SearchValue prueba código, UPC, SKU y nombre en ese
// orden; los demás identificadores son alternativas exactas.
type GetProductPriceQuery struct {
	SearchValue   string
	UPC           string
	Value         string
	Name          string
	PosUUID       string
	PriceListUUID string
	PartnerUUID   string
	WarehouseUUID string
	ValidFrom     time.Time
}

// GetProductPriceUseCase resuelve el precio vigente de un producto para
// una terminal. Es de sólo lectura: nunca abre transacción. La
// resolución del producto por término de búsqueda pasa por el cache.
type GetProductPriceUseCase struct {
	catalog     port.CatalogRepository
	posRepo     port.POSRepository
	partnerRepo port.PartnerRepository
	cache       port.ProductCache
	resolver    *pricing.Resolver
}

// NewGetProductPriceUseCase crea una nueva instancia del caso de uso
func NewGetProductPriceUseCase(
	catalog port.CatalogRepository,
	posRepo port.POSRepository,
	partnerRepo port.PartnerRepository,
	cache port.ProductCache,
	resolver *pricing.Resolver,
) *GetProductPriceUseCase {
	return &GetProductPriceUseCase{
		catalog:     catalog,
		posRepo:     posRepo,
		partnerRepo: partnerRepo,
		cache:       cache,
		resolver:    resolver,
	}
}

// Execute resuelve producto, lista de precios, partner y depósito desde
// la query y computa el ProductPricing vigente
func (uc *GetProductPriceUseCase) Execute(ctx context.Context, query GetProductPriceQuery) (*entity.ProductPricing, error) {
	product, err := uc.resolveProduct(ctx, query)
	if err != nil {
		return nil, err
	}

	pos, priceList, err := uc.resolvePriceList(ctx, query)
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

	warehouseID := int64(0)
	if warehouseRef, ok := parseOptionalUUID(query.WarehouseUUID); ok {
		warehouse, err := uc.catalog.FindWarehouseByUUID(ctx, warehouseRef)
		if err != nil {
			return nil, err
		}
		warehouseID = warehouse.ID
	} else if pos != nil {
		warehouseID = pos.WarehouseID
	}

	validFrom := query.ValidFrom
	if validFrom.IsZero() {
		validFrom = time.Now()
	}

	return uc.resolver.Resolve(ctx, product, priceList, partnerID, warehouseID, entity.Day(validFrom))
}

// PurgeCache invalida la memoización de productos. Se expone para que
// los cambios de catálogo hechos por fuera del servicio no sigan
// sirviendo productos viejos.
func (uc *GetProductPriceUseCase) PurgeCache() {
	uc.cache.Purge()
}

// resolveProduct ubica el producto por alguno de los identificadores de
// la query. Las búsquedas por término pasan por el cache acotado; los
// errores de catálogo nunca se cachean.
func (uc *GetProductPriceUseCase) resolveProduct(ctx context.Context, query GetProductPriceQuery) (*entity.Product, error) {
	type lookup struct {
		key  string
		find func(context.Context, string) (*entity.Product, error)
	}
	lookups := []lookup{
		{query.SearchValue, uc.catalog.FindProductBySearch},
		{query.UPC, uc.catalog.FindProductByUPC},
		{query.Value, uc.catalog.FindProductByCode},
		{query.Name, uc.catalog.FindProductByName},
	}
	tried := false
	for _, l := range lookups {
		if l.key == "" {
			continue
		}
		tried = true
		if product, ok := uc.cache.Get(l.key); ok {
			return product, nil
		}
		product, err := l.find(ctx, l.key)
		if err != nil {
			if errors.Is(err, entity.ErrProductNotFound) {
				continue
			}
			return nil, err
		}
		uc.cache.Put(l.key, product)
		return product, nil
	}
	if !tried {
		return nil, entity.ErrSearchCriteriaRequired
	}
	return nil, entity.ErrProductNotFound
}

// resolvePriceList elige la lista de precios de la consulta: la pedida
// explícitamente, la de la terminal, o la default de la organización
func (uc *GetProductPriceUseCase) resolvePriceList(ctx context.Context, query GetProductPriceQuery) (*entity.PointOfSale, *entity.PriceList, error) {
	var pos *entity.PointOfSale
	if posRef, ok := parseOptionalUUID(query.PosUUID); ok {
		found, err := uc.posRepo.FindByUUID(ctx, posRef)
		if err != nil {
			return nil, nil, err
		}
		pos = found
	}

	if priceListRef, ok := parseOptionalUUID(query.PriceListUUID); ok {
		priceList, err := uc.catalog.FindPriceListByUUID(ctx, priceListRef)
		if err != nil {
			return nil, nil, err
		}
		return pos, priceList, nil
	}
	if pos != nil && pos.PriceListID > 0 {
		priceList, err := uc.catalog.FindPriceListByID(ctx, pos.PriceListID)
		if err != nil {
			return nil, nil, err
		}
		return pos, priceList, nil
	}

	orgID := int64(0)
	if pos != nil {
		orgID = pos.OrgID
	}
	priceList, err := uc.catalog.FindDefaultPriceList(ctx, orgID)
	if err != nil {
		return nil, nil, err
	}
	return pos, priceList, nil
}
