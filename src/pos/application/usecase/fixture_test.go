package usecase

import (
	"context"
	"time"

	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// fixture arma un mundo de prueba consistente: una terminal con su
// cliente de mostrador, un cliente identificado con descuento, una
// lista de precios con versión vigente y tres productos (dos con precio
// completo, uno sin precio).
type fixture struct {
	orderRepo   *fakeOrderRepo
	posRepo     *fakePOSRepo
	partnerRepo *fakePartnerRepo
	catalog     *fakeCatalogRepo
	tx          *fakeTxManager
	resolver    *pricing.Resolver

	pos         *entity.PointOfSale
	cashPartner *entity.BusinessPartner
	partner     *entity.BusinessPartner
	priceList   *entity.PriceList
	productA    *entity.Product
	productB    *entity.Product
	unpriced    *entity.Product
	charge      *entity.Charge
}

func newFixture() *fixture {
	f := &fixture{
		orderRepo: newFakeOrderRepo(),
		catalog:   newFakeCatalogRepo(),
		tx:        &fakeTxManager{},
	}

	f.pos = &entity.PointOfSale{
		ID:             9,
		UUID:           uuid.New(),
		Name:           "Caja 1",
		OrgID:          1,
		WarehouseID:    40,
		PriceListID:    10,
		DocumentTypeID: 70,
		CashPartnerID:  50,
		SalesRepID:     5,
	}
	f.posRepo = newFakePOSRepo(f.pos)

	f.cashPartner = &entity.BusinessPartner{
		ID:   50,
		UUID: uuid.New(),
		Name: "Consumidor Final",
	}
	f.partner = &entity.BusinessPartner{
		ID:           51,
		UUID:         uuid.New(),
		Name:         "Cliente Mayorista",
		SalesRepID:   7,
		FlatDiscount: decimal.Zero,
		Locations: []entity.PartnerLocation{
			{ID: 301, IsBillTo: true},
			{ID: 302, IsShipTo: true},
		},
	}
	f.partnerRepo = newFakePartnerRepo(f.cashPartner, f.partner)

	f.priceList = &entity.PriceList{
		ID:             10,
		UUID:           uuid.New(),
		Name:           "Lista Mostrador",
		CurrencyID:     1,
		PricePrecision: 2,
	}
	f.catalog.priceLists[10] = f.priceList
	f.catalog.currencies[1] = &entity.Currency{ID: 1, UUID: uuid.New(), ISOCode: "USD"}
	f.catalog.versions = []entity.PriceListVersion{
		{ID: 100, PriceListID: 10, Name: "Vigente", ValidFrom: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	f.productA = &entity.Product{ID: 1, UUID: uuid.New(), Value: "CAFE", Name: "Café molido", UPC: "779000001", TaxCategoryID: 5}
	f.productB = &entity.Product{ID: 2, UUID: uuid.New(), Value: "PAN", Name: "Pan lactal", TaxCategoryID: 5}
	f.unpriced = &entity.Product{ID: 3, UUID: uuid.New(), Value: "RARO", Name: "Sin precio", TaxCategoryID: 5}
	f.catalog.products[1] = f.productA
	f.catalog.products[2] = f.productB
	f.catalog.products[3] = f.unpriced

	f.setPrice(100, 1, "100", "90", "50")
	f.setPrice(100, 2, "20", "18", "10")

	f.catalog.taxes[5] = []entity.Tax{
		{ID: 700, Name: "IVA", TaxCategoryID: 5, Rate: decimal.NewFromInt(10), TransactionType: entity.TaxTransactionSales},
	}

	f.charge = &entity.Charge{ID: 600, UUID: uuid.New(), Name: "Envío"}
	f.catalog.charges[600] = f.charge

	f.catalog.docTypes[70] = &entity.DocumentType{ID: 70, UUID: uuid.New(), Name: "Orden POS", SubType: entity.DocSubTypePOS}

	f.catalog.orderLinesOf = func(orderID int64) []entity.OrderLine {
		lines, _ := f.orderRepo.FindLines(context.Background(), orderID)
		return lines
	}

	f.resolver = pricing.NewResolver(f.catalog, f.partnerRepo)
	return f
}

func (f *fixture) setPrice(versionID, productID int64, list, std, limit string) {
	f.catalog.prices[priceKey{versionID, productID}] = entity.ProductPriceRecord{
		PriceListVersionID: versionID,
		ProductID:          productID,
		PriceList:          decimal.RequireFromString(list),
		PriceStd:           decimal.RequireFromString(std),
		PriceLimit:         decimal.RequireFromString(limit),
	}
}

// draftOrder siembra una orden en borrador con las líneas dadas
func (f *fixture) draftOrder(lines ...entity.OrderLine) *entity.Order {
	order := entity.NewDraftOrder(f.pos.ID, time.Now())
	order.OrgID = f.pos.OrgID
	order.WarehouseID = f.pos.WarehouseID
	order.PriceListID = f.pos.PriceListID
	order.DocumentTypeID = f.pos.DocumentTypeID
	order.DocumentNo = "POS-999"
	order.Lines = lines
	return f.orderRepo.seed(order)
}

// productLine arma una línea de producto ya preciada para sembrar
func (f *fixture) productLine(lineNo int, product *entity.Product, qty, price string) entity.OrderLine {
	qtyDec := decimal.RequireFromString(qty)
	priceDec := decimal.RequireFromString(price)
	return entity.OrderLine{
		UUID:          uuid.New(),
		LineNo:        lineNo,
		ProductID:     product.ID,
		WarehouseID:   f.pos.WarehouseID,
		QtyEntered:    qtyDec,
		QtyOrdered:    qtyDec,
		PriceEntered:  priceDec,
		PriceActual:   priceDec,
		LineNetAmount: priceDec.Mul(qtyDec),
	}
}

// chargeLine arma una línea de cargo para sembrar
func (f *fixture) chargeLine(lineNo int, amount string) entity.OrderLine {
	amountDec := decimal.RequireFromString(amount)
	return entity.OrderLine{
		UUID:          uuid.New(),
		LineNo:        lineNo,
		ChargeID:      f.charge.ID,
		QtyEntered:    decimal.NewFromInt(1),
		QtyOrdered:    decimal.NewFromInt(1),
		PriceEntered:  amountDec,
		PriceActual:   amountDec,
		LineNetAmount: amountDec,
	}
}

func (f *fixture) newAssignPartnerUC() *AssignBusinessPartnerUseCase {
	return NewAssignBusinessPartnerUseCase(f.orderRepo, f.posRepo, f.partnerRepo, f.catalog, f.resolver, f.tx)
}

func (f *fixture) newCreateOrderUC() *CreateOrderUseCase {
	return NewCreateOrderUseCase(f.orderRepo, f.posRepo, f.catalog, f.newAssignPartnerUC(), f.tx)
}

func (f *fixture) newAddOrderLineUC() *AddOrderLineUseCase {
	return NewAddOrderLineUseCase(f.orderRepo, f.catalog, f.resolver, f.tx)
}

func (f *fixture) newUpdateOrderLineUC() *UpdateOrderLineUseCase {
	return NewUpdateOrderLineUseCase(f.orderRepo, f.catalog, f.tx)
}
