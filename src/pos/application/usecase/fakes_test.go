package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"pos/src/pos/domain/entity"
	"pos/src/shared/domain/criteria"

	"github.com/google/uuid"
)

// Fakes en memoria de los puertos, compartidos por los tests de los
// casos de uso.

type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fakeOrderRepo struct {
	orders map[int64]*entity.Order
	lines  map[int64]*entity.OrderLine
	nextID int64

	deletedLines  []int64
	deletedOrders []int64
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: make(map[int64]*entity.Order),
		lines:  make(map[int64]*entity.OrderLine),
	}
}

func (r *fakeOrderRepo) nextSequence() int64 {
	r.nextID++
	return r.nextID
}

func (r *fakeOrderRepo) seed(order *entity.Order) *entity.Order {
	if order.ID == 0 {
		order.ID = r.nextSequence()
	}
	stored := *order
	stored.Lines = nil
	r.orders[order.ID] = &stored
	for i := range order.Lines {
		line := order.Lines[i]
		if line.ID == 0 {
			line.ID = r.nextSequence()
		}
		line.OrderID = order.ID
		r.lines[line.ID] = &line
	}
	return order
}

func (r *fakeOrderRepo) Insert(ctx context.Context, order *entity.Order) error {
	order.ID = r.nextSequence()
	stored := *order
	stored.Lines = nil
	r.orders[order.ID] = &stored
	return nil
}

func (r *fakeOrderRepo) UpdateHeader(ctx context.Context, order *entity.Order) error {
	if _, ok := r.orders[order.ID]; !ok {
		return entity.ErrOrderNotFound
	}
	stored := *order
	stored.Lines = nil
	r.orders[order.ID] = &stored
	return nil
}

func (r *fakeOrderRepo) load(order *entity.Order) *entity.Order {
	result := *order
	lines, _ := r.FindLines(context.Background(), order.ID)
	result.Lines = lines
	return &result
}

func (r *fakeOrderRepo) FindByUUID(ctx context.Context, orderUUID uuid.UUID) (*entity.Order, error) {
	for _, order := range r.orders {
		if order.UUID == orderUUID {
			return r.load(order), nil
		}
	}
	return nil, entity.ErrOrderNotFound
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, orderID int64) (*entity.Order, error) {
	order, ok := r.orders[orderID]
	if !ok {
		return nil, entity.ErrOrderNotFound
	}
	return r.load(order), nil
}

func (r *fakeOrderRepo) FindEmptyDraftByPOS(ctx context.Context, posID int64) (*entity.Order, error) {
	for _, order := range r.orders {
		if order.POSID != posID || order.Status != entity.OrderStatusDrafted || order.Processed {
			continue
		}
		lines, _ := r.FindLines(ctx, order.ID)
		if len(lines) == 0 {
			return r.load(order), nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) Delete(ctx context.Context, orderID int64) error {
	if _, ok := r.orders[orderID]; !ok {
		return entity.ErrOrderNotFound
	}
	for id, line := range r.lines {
		if line.OrderID == orderID {
			delete(r.lines, id)
		}
	}
	delete(r.orders, orderID)
	r.deletedOrders = append(r.deletedOrders, orderID)
	return nil
}

func (r *fakeOrderRepo) Search(ctx context.Context, crit criteria.Criteria) ([]*entity.Order, error) {
	matches := r.match(crit)
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	offset := 0
	if crit.Offset != nil {
		offset = *crit.Offset
	}
	if offset > len(matches) {
		offset = len(matches)
	}
	matches = matches[offset:]
	if crit.Limit != nil && *crit.Limit < len(matches) {
		matches = matches[:*crit.Limit]
	}
	return matches, nil
}

func (r *fakeOrderRepo) Count(ctx context.Context, crit criteria.Criteria) (int, error) {
	return len(r.match(crit)), nil
}

// match sólo entiende los filtros de igualdad que usan los tests
func (r *fakeOrderRepo) match(crit criteria.Criteria) []*entity.Order {
	var matches []*entity.Order
	for _, order := range r.orders {
		ok := true
		for _, filter := range crit.Filters.Items {
			if filter.Operator != criteria.OpEqual {
				continue
			}
			switch filter.Field {
			case "pos_id":
				if order.POSID != filter.Value.(int64) {
					ok = false
				}
			case "business_partner_id":
				if order.BusinessPartnerID != filter.Value.(int64) {
					ok = false
				}
			case "processed":
				if order.Processed != filter.Value.(bool) {
					ok = false
				}
			}
		}
		if ok {
			matches = append(matches, r.load(order))
		}
	}
	return matches
}

func (r *fakeOrderRepo) InsertLine(ctx context.Context, line *entity.OrderLine) error {
	line.ID = r.nextSequence()
	stored := *line
	r.lines[line.ID] = &stored
	return nil
}

func (r *fakeOrderRepo) UpdateLine(ctx context.Context, line *entity.OrderLine) error {
	if _, ok := r.lines[line.ID]; !ok {
		return entity.ErrOrderLineNotFound
	}
	stored := *line
	r.lines[line.ID] = &stored
	return nil
}

func (r *fakeOrderRepo) DeleteLine(ctx context.Context, lineID int64) error {
	if _, ok := r.lines[lineID]; !ok {
		return entity.ErrOrderLineNotFound
	}
	delete(r.lines, lineID)
	r.deletedLines = append(r.deletedLines, lineID)
	return nil
}

func (r *fakeOrderRepo) FindLineByUUID(ctx context.Context, lineUUID uuid.UUID) (*entity.OrderLine, error) {
	for _, line := range r.lines {
		if line.UUID == lineUUID {
			result := *line
			return &result, nil
		}
	}
	return nil, entity.ErrOrderLineNotFound
}

func (r *fakeOrderRepo) FindLines(ctx context.Context, orderID int64) ([]entity.OrderLine, error) {
	var lines []entity.OrderLine
	for _, line := range r.lines {
		if line.OrderID == orderID {
			lines = append(lines, *line)
		}
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].LineNo < lines[j].LineNo })
	return lines, nil
}

func (r *fakeOrderRepo) ListLines(ctx context.Context, orderID int64, limit, offset int) ([]entity.OrderLine, int, error) {
	lines, _ := r.FindLines(ctx, orderID)
	count := len(lines)
	if offset > count {
		offset = count
	}
	lines = lines[offset:]
	if limit < len(lines) {
		lines = lines[:limit]
	}
	return lines, count, nil
}

type fakePOSRepo struct {
	terminals map[int64]*entity.PointOfSale
}

func newFakePOSRepo(terminals ...*entity.PointOfSale) *fakePOSRepo {
	repo := &fakePOSRepo{terminals: make(map[int64]*entity.PointOfSale)}
	for _, pos := range terminals {
		repo.terminals[pos.ID] = pos
	}
	return repo
}

func (r *fakePOSRepo) FindByID(ctx context.Context, posID int64) (*entity.PointOfSale, error) {
	pos, ok := r.terminals[posID]
	if !ok {
		return nil, entity.ErrPointOfSaleNotFound
	}
	return pos, nil
}

func (r *fakePOSRepo) FindByUUID(ctx context.Context, posUUID uuid.UUID) (*entity.PointOfSale, error) {
	for _, pos := range r.terminals {
		if pos.UUID == posUUID {
			return pos, nil
		}
	}
	return nil, entity.ErrPointOfSaleNotFound
}

func (r *fakePOSRepo) List(ctx context.Context, salesRepID int64, limit, offset int) ([]entity.PointOfSale, int, error) {
	var terminals []entity.PointOfSale
	for _, pos := range r.terminals {
		if pos.IsShared || pos.SalesRepID == salesRepID {
			terminals = append(terminals, *pos)
		}
	}
	sort.Slice(terminals, func(i, j int) bool { return terminals[i].ID < terminals[j].ID })
	count := len(terminals)
	if offset > count {
		offset = count
	}
	terminals = terminals[offset:]
	if limit < len(terminals) {
		terminals = terminals[:limit]
	}
	return terminals, count, nil
}

type fakePartnerRepo struct {
	partners map[int64]*entity.BusinessPartner
}

func newFakePartnerRepo(partners ...*entity.BusinessPartner) *fakePartnerRepo {
	repo := &fakePartnerRepo{partners: make(map[int64]*entity.BusinessPartner)}
	for _, partner := range partners {
		repo.partners[partner.ID] = partner
	}
	return repo
}

func (r *fakePartnerRepo) FindByID(ctx context.Context, partnerID int64) (*entity.BusinessPartner, error) {
	partner, ok := r.partners[partnerID]
	if !ok {
		return nil, entity.ErrBusinessPartnerNotFound
	}
	return partner, nil
}

func (r *fakePartnerRepo) FindByUUID(ctx context.Context, partnerUUID uuid.UUID) (*entity.BusinessPartner, error) {
	for _, partner := range r.partners {
		if partner.UUID == partnerUUID {
			return partner, nil
		}
	}
	return nil, entity.ErrBusinessPartnerNotFound
}

type priceKey struct {
	versionID int64
	productID int64
}

type fakeCatalogRepo struct {
	products   map[int64]*entity.Product
	charges    map[int64]*entity.Charge
	priceLists map[int64]*entity.PriceList
	versions   []entity.PriceListVersion
	prices     map[priceKey]entity.ProductPriceRecord
	taxes      map[int64][]entity.Tax
	currencies map[int64]*entity.Currency
	storage    []entity.Storage
	warehouses map[int64]*entity.Warehouse
	docTypes   map[int64]*entity.DocumentType
	nextDocNo  int64

	orderLinesOf func(orderID int64) []entity.OrderLine
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		products:   make(map[int64]*entity.Product),
		charges:    make(map[int64]*entity.Charge),
		priceLists: make(map[int64]*entity.PriceList),
		prices:     make(map[priceKey]entity.ProductPriceRecord),
		taxes:      make(map[int64][]entity.Tax),
		currencies: make(map[int64]*entity.Currency),
		warehouses: make(map[int64]*entity.Warehouse),
		docTypes:   make(map[int64]*entity.DocumentType),
		nextDocNo:  1000,
	}
}

func (r *fakeCatalogRepo) FindProductByID(ctx context.Context, productID int64) (*entity.Product, error) {
	product, ok := r.products[productID]
	if !ok {
		return nil, entity.ErrProductNotFound
	}
	return product, nil
}

func (r *fakeCatalogRepo) FindProductByUUID(ctx context.Context, productUUID uuid.UUID) (*entity.Product, error) {
	for _, product := range r.products {
		if product.UUID == productUUID {
			return product, nil
		}
	}
	return nil, entity.ErrProductNotFound
}

func (r *fakeCatalogRepo) FindProductBySearch(ctx context.Context, searchValue string) (*entity.Product, error) {
	for _, product := range r.products {
		if product.Value == searchValue || product.Name == searchValue ||
			product.UPC == searchValue || product.SKU == searchValue {
			return product, nil
		}
	}
	return nil, entity.ErrProductNotFound
}

func (r *fakeCatalogRepo) FindProductByUPC(ctx context.Context, upc string) (*entity.Product, error) {
	for _, product := range r.products {
		if product.UPC == upc {
			return product, nil
		}
	}
	return nil, entity.ErrProductNotFound
}

func (r *fakeCatalogRepo) FindProductByCode(ctx context.Context, code string) (*entity.Product, error) {
	for _, product := range r.products {
		if product.Value == code {
			return product, nil
		}
	}
	return nil, entity.ErrProductNotFound
}

func (r *fakeCatalogRepo) FindProductByName(ctx context.Context, name string) (*entity.Product, error) {
	for _, product := range r.products {
		if product.Name == name {
			return product, nil
		}
	}
	return nil, entity.ErrProductNotFound
}

func (r *fakeCatalogRepo) FindChargeByUUID(ctx context.Context, chargeUUID uuid.UUID) (*entity.Charge, error) {
	for _, charge := range r.charges {
		if charge.UUID == chargeUUID {
			return charge, nil
		}
	}
	return nil, entity.ErrChargeNotFound
}

func (r *fakeCatalogRepo) FindPriceListByID(ctx context.Context, priceListID int64) (*entity.PriceList, error) {
	priceList, ok := r.priceLists[priceListID]
	if !ok {
		return nil, entity.ErrPriceListNotFound
	}
	return priceList, nil
}

func (r *fakeCatalogRepo) FindPriceListByUUID(ctx context.Context, priceListUUID uuid.UUID) (*entity.PriceList, error) {
	for _, priceList := range r.priceLists {
		if priceList.UUID == priceListUUID {
			return priceList, nil
		}
	}
	return nil, entity.ErrPriceListNotFound
}

func (r *fakeCatalogRepo) FindDefaultPriceList(ctx context.Context, orgID int64) (*entity.PriceList, error) {
	for _, priceList := range r.priceLists {
		return priceList, nil
	}
	return nil, entity.ErrPriceListNotFound
}

func (r *fakeCatalogRepo) FindPriceListVersion(ctx context.Context, priceListID int64, validFrom time.Time) (*entity.PriceListVersion, error) {
	var best *entity.PriceListVersion
	for i := range r.versions {
		version := r.versions[i]
		if version.PriceListID != priceListID || version.ValidFrom.After(validFrom) {
			continue
		}
		if best == nil || version.ValidFrom.After(best.ValidFrom) {
			best = &r.versions[i]
		}
	}
	return best, nil
}

func (r *fakeCatalogRepo) FindProductPrice(ctx context.Context, versionID, productID int64) (*entity.ProductPriceRecord, error) {
	record, ok := r.prices[priceKey{versionID, productID}]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (r *fakeCatalogRepo) FindProductPricesForOrder(ctx context.Context, versionID, orderID int64) ([]entity.ProductPriceRecord, error) {
	if r.orderLinesOf == nil {
		return nil, nil
	}
	seen := make(map[int64]bool)
	var records []entity.ProductPriceRecord
	for _, line := range r.orderLinesOf(orderID) {
		if line.ProductID == 0 || seen[line.ProductID] {
			continue
		}
		seen[line.ProductID] = true
		if record, ok := r.prices[priceKey{versionID, line.ProductID}]; ok {
			records = append(records, record)
		}
	}
	return records, nil
}

func (r *fakeCatalogRepo) ListPricedProducts(ctx context.Context, priceListID int64, validFrom time.Time, searchValue string, limit, offset int) ([]entity.Product, int, error) {
	version, err := r.FindPriceListVersion(ctx, priceListID, validFrom)
	if err != nil || version == nil {
		return nil, 0, err
	}
	var products []entity.Product
	for key, record := range r.prices {
		if key.versionID != version.ID || !record.IsUsable() {
			continue
		}
		if product, ok := r.products[key.productID]; ok {
			products = append(products, *product)
		}
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	count := len(products)
	if offset > count {
		offset = count
	}
	products = products[offset:]
	if limit < len(products) {
		products = products[:limit]
	}
	return products, count, nil
}

func (r *fakeCatalogRepo) FindTaxesByCategory(ctx context.Context, taxCategoryID int64) ([]entity.Tax, error) {
	return r.taxes[taxCategoryID], nil
}

func (r *fakeCatalogRepo) FindCurrency(ctx context.Context, currencyID int64) (*entity.Currency, error) {
	currency, ok := r.currencies[currencyID]
	if !ok {
		return nil, fmt.Errorf("currency %d not found", currencyID)
	}
	return currency, nil
}

func (r *fakeCatalogRepo) FindStorage(ctx context.Context, productID, warehouseID int64) ([]entity.Storage, error) {
	var records []entity.Storage
	for _, record := range r.storage {
		if record.ProductID == productID && record.WarehouseID == warehouseID {
			records = append(records, record)
		}
	}
	return records, nil
}

func (r *fakeCatalogRepo) FindWarehouseByUUID(ctx context.Context, warehouseUUID uuid.UUID) (*entity.Warehouse, error) {
	for _, warehouse := range r.warehouses {
		if warehouse.UUID == warehouseUUID {
			return warehouse, nil
		}
	}
	return nil, fmt.Errorf("warehouse not found")
}

func (r *fakeCatalogRepo) FindDocumentTypeByID(ctx context.Context, docTypeID int64) (*entity.DocumentType, error) {
	docType, ok := r.docTypes[docTypeID]
	if !ok {
		return nil, entity.ErrDocumentTypeNotFound
	}
	return docType, nil
}

func (r *fakeCatalogRepo) FindDocumentTypeByUUID(ctx context.Context, docTypeUUID uuid.UUID) (*entity.DocumentType, error) {
	for _, docType := range r.docTypes {
		if docType.UUID == docTypeUUID {
			return docType, nil
		}
	}
	return nil, entity.ErrDocumentTypeNotFound
}

func (r *fakeCatalogRepo) FindPOSDocumentType(ctx context.Context) (*entity.DocumentType, error) {
	for _, docType := range r.docTypes {
		if docType.SubType == entity.DocSubTypePOS {
			return docType, nil
		}
	}
	return nil, entity.ErrDocumentTypeNotFound
}

func (r *fakeCatalogRepo) NextDocumentNo(ctx context.Context, docTypeID int64) (string, error) {
	if _, ok := r.docTypes[docTypeID]; !ok {
		return "", entity.ErrDocumentTypeNotFound
	}
	r.nextDocNo++
	return fmt.Sprintf("POS-%d", r.nextDocNo), nil
}

type fakeProductCache struct {
	entries map[string]*entity.Product
	hits    int
}

func newFakeProductCache() *fakeProductCache {
	return &fakeProductCache{entries: make(map[string]*entity.Product)}
}

func (c *fakeProductCache) Get(key string) (*entity.Product, bool) {
	product, ok := c.entries[key]
	if ok {
		c.hits++
	}
	return product, ok
}

func (c *fakeProductCache) Put(key string, product *entity.Product) {
	c.entries[key] = product
}

func (c *fakeProductCache) Purge() {
	c.entries = make(map[string]*entity.Product)
}
