package port

import (
	"context"
	"time"

	"pos/src/pos/domain/entity"

	"github.com/google/uuid"
)

// CatalogRepository da acceso de sólo lectura a catálogo, precios,
// impuestos, monedas y existencias, más la numeración de documentos.
type CatalogRepository interface {
	// FindProductByID retorna entity.ErrProductNotFound si no existe
	FindProductByID(ctx context.Context, productID int64) (*entity.Product, error)
	FindProductByUUID(ctx context.Context, productUUID uuid.UUID) (*entity.Product, error)

	// FindProductBySearch busca por código, nombre, UPC o SKU exactos
	FindProductBySearch(ctx context.Context, searchValue string) (*entity.Product, error)
	FindProductByUPC(ctx context.Context, upc string) (*entity.Product, error)
	FindProductByCode(ctx context.Context, code string) (*entity.Product, error)
	// FindProductByName busca por nombre con coincidencia parcial
	FindProductByName(ctx context.Context, name string) (*entity.Product, error)

	FindChargeByUUID(ctx context.Context, chargeUUID uuid.UUID) (*entity.Charge, error)

	FindPriceListByID(ctx context.Context, priceListID int64) (*entity.PriceList, error)
	FindPriceListByUUID(ctx context.Context, priceListUUID uuid.UUID) (*entity.PriceList, error)
	// FindDefaultPriceList retorna la lista configurada en algún punto
	// de venta de la organización
	FindDefaultPriceList(ctx context.Context, orgID int64) (*entity.PriceList, error)

	// FindPriceListVersion retorna la versión vigente de la lista a la
	// fecha dada (inicio de validez <= fecha, la más reciente).
	// Retorna nil, nil cuando la lista no tiene versión vigente.
	FindPriceListVersion(ctx context.Context, priceListID int64, validFrom time.Time) (*entity.PriceListVersion, error)

	// FindProductPrice retorna nil, nil cuando el producto no está en la
	// versión
	FindProductPrice(ctx context.Context, versionID, productID int64) (*entity.ProductPriceRecord, error)

	// FindProductPricesForOrder retorna los precios de la versión
	// restringidos a los productos presentes en las líneas de la orden
	// (lookup filtrado por existencia, no un scan del catálogo)
	FindProductPricesForOrder(ctx context.Context, versionID, orderID int64) ([]entity.ProductPriceRecord, error)

	// ListPricedProducts pagina los productos que tienen precio completo
	// (lista/estándar/límite positivos) en la versión vigente de la
	// lista, con filtro opcional de búsqueda
	ListPricedProducts(ctx context.Context, priceListID int64, validFrom time.Time, searchValue string, limit, offset int) ([]entity.Product, int, error)

	FindTaxesByCategory(ctx context.Context, taxCategoryID int64) ([]entity.Tax, error)

	FindCurrency(ctx context.Context, currencyID int64) (*entity.Currency, error)

	// FindStorage retorna las existencias del producto en el depósito,
	// un registro por locator
	FindStorage(ctx context.Context, productID, warehouseID int64) ([]entity.Storage, error)

	FindWarehouseByUUID(ctx context.Context, warehouseUUID uuid.UUID) (*entity.Warehouse, error)

	FindDocumentTypeByID(ctx context.Context, docTypeID int64) (*entity.DocumentType, error)
	FindDocumentTypeByUUID(ctx context.Context, docTypeUUID uuid.UUID) (*entity.DocumentType, error)
	// FindPOSDocumentType retorna el tipo de documento genérico de punto
	// de venta usado como último recurso
	FindPOSDocumentType(ctx context.Context) (*entity.DocumentType, error)

	// NextDocumentNo consume y retorna el siguiente número de la
	// secuencia del tipo de documento
	NextDocumentNo(ctx context.Context, docTypeID int64) (string, error)
}
