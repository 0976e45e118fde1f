package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"pos/src/pos/domain/entity"
	"pos/src/shared/infrastructure/transaction"

	"github.com/google/uuid"
)

// CatalogPostgresRepository implementa CatalogRepository usando
// PostgreSQL. Todas las consultas son de sólo lectura salvo la
// secuencia de numeración de documentos.
type CatalogPostgresRepository struct {
	db *sql.DB
}

// NewCatalogPostgresRepository crea una nueva instancia del repositorio
func NewCatalogPostgresRepository(db *sql.DB) *CatalogPostgresRepository {
	return &CatalogPostgresRepository{
		db: db,
	}
}

func (r *CatalogPostgresRepository) executor(ctx context.Context) transaction.Executor {
	if tx, ok := transaction.FromContext(ctx); ok {
		return tx
	}
	return r.db
}

const productColumns = `id, uuid, value, name, upc, sku, tax_category_id, is_stocked`

// FindProductByID busca un producto por su ID interno
func (r *CatalogPostgresRepository) FindProductByID(ctx context.Context, productID int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.findProduct(ctx, query, productID)
}

// FindProductByUUID busca un producto por su referencia externa
func (r *CatalogPostgresRepository) FindProductByUUID(ctx context.Context, productUUID uuid.UUID) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE uuid = $1`
	return r.findProduct(ctx, query, productUUID)
}

// FindProductBySearch busca por código, nombre, UPC o SKU exactos
func (r *CatalogPostgresRepository) FindProductBySearch(ctx context.Context, searchValue string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE value = $1 OR name = $1 OR upc = $1 OR sku = $1
		LIMIT 1
	`
	return r.findProduct(ctx, query, searchValue)
}

// FindProductByUPC busca un producto por su código de barras
func (r *CatalogPostgresRepository) FindProductByUPC(ctx context.Context, upc string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE upc = $1 LIMIT 1`
	return r.findProduct(ctx, query, upc)
}

// FindProductByCode busca un producto por su código
func (r *CatalogPostgresRepository) FindProductByCode(ctx context.Context, code string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE value = $1 LIMIT 1`
	return r.findProduct(ctx, query, code)
}

// FindProductByName busca un producto por nombre con coincidencia parcial
func (r *CatalogPostgresRepository) FindProductByName(ctx context.Context, name string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE UPPER(name) LIKE UPPER($1)
		ORDER BY name
		LIMIT 1
	`
	return r.findProduct(ctx, query, "%"+name+"%")
}

func (r *CatalogPostgresRepository) findProduct(ctx context.Context, query string, arg interface{}) (*entity.Product, error) {
	product := &entity.Product{}
	err := r.executor(ctx).QueryRowContext(ctx, query, arg).Scan(
		&product.ID,
		&product.UUID,
		&product.Value,
		&product.Name,
		&product.UPC,
		&product.SKU,
		&product.TaxCategoryID,
		&product.IsStocked,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding product: %w", err)
	}
	return product, nil
}

// FindChargeByUUID busca un cargo por su referencia externa
func (r *CatalogPostgresRepository) FindChargeByUUID(ctx context.Context, chargeUUID uuid.UUID) (*entity.Charge, error) {
	query := `SELECT id, uuid, name, amount FROM charges WHERE uuid = $1`

	charge := &entity.Charge{}
	err := r.executor(ctx).QueryRowContext(ctx, query, chargeUUID).Scan(
		&charge.ID,
		&charge.UUID,
		&charge.Name,
		&charge.Amount,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrChargeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding charge: %w", err)
	}
	return charge, nil
}

const priceListColumns = `id, uuid, name, currency_id, is_tax_included, price_precision`

// FindPriceListByID busca una lista de precios por su ID interno
func (r *CatalogPostgresRepository) FindPriceListByID(ctx context.Context, priceListID int64) (*entity.PriceList, error) {
	query := `SELECT ` + priceListColumns + ` FROM price_lists WHERE id = $1`
	return r.findPriceList(ctx, query, priceListID)
}

// FindPriceListByUUID busca una lista de precios por su referencia externa
func (r *CatalogPostgresRepository) FindPriceListByUUID(ctx context.Context, priceListUUID uuid.UUID) (*entity.PriceList, error) {
	query := `SELECT ` + priceListColumns + ` FROM price_lists WHERE uuid = $1`
	return r.findPriceList(ctx, query, priceListUUID)
}

// FindDefaultPriceList retorna la lista configurada en algún punto de
// venta de la organización
func (r *CatalogPostgresRepository) FindDefaultPriceList(ctx context.Context, orgID int64) (*entity.PriceList, error) {
	query := `
		SELECT pl.id, pl.uuid, pl.name, pl.currency_id, pl.is_tax_included, pl.price_precision
		FROM price_lists pl
		JOIN pos_terminals p ON p.price_list_id = pl.id
		WHERE p.org_id = $1
		ORDER BY pl.id
		LIMIT 1
	`
	return r.findPriceList(ctx, query, orgID)
}

func (r *CatalogPostgresRepository) findPriceList(ctx context.Context, query string, arg interface{}) (*entity.PriceList, error) {
	priceList := &entity.PriceList{}
	err := r.executor(ctx).QueryRowContext(ctx, query, arg).Scan(
		&priceList.ID,
		&priceList.UUID,
		&priceList.Name,
		&priceList.CurrencyID,
		&priceList.IsTaxIncluded,
		&priceList.PricePrecision,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrPriceListNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding price list: %w", err)
	}
	return priceList, nil
}

// FindPriceListVersion retorna la versión vigente de la lista a la
// fecha dada. Retorna nil, nil cuando la lista no tiene versión vigente.
func (r *CatalogPostgresRepository) FindPriceListVersion(ctx context.Context, priceListID int64, validFrom time.Time) (*entity.PriceListVersion, error) {
	query := `
		SELECT id, price_list_id, name, valid_from
		FROM price_list_versions
		WHERE price_list_id = $1 AND valid_from <= $2
		ORDER BY valid_from DESC
		LIMIT 1
	`

	version := &entity.PriceListVersion{}
	err := r.executor(ctx).QueryRowContext(ctx, query, priceListID, validFrom).Scan(
		&version.ID,
		&version.PriceListID,
		&version.Name,
		&version.ValidFrom,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding price list version: %w", err)
	}
	return version, nil
}

// FindProductPrice retorna nil, nil cuando el producto no está en la versión
func (r *CatalogPostgresRepository) FindProductPrice(ctx context.Context, versionID, productID int64) (*entity.ProductPriceRecord, error) {
	query := `
		SELECT price_list_version_id, product_id, price_list, price_std, price_limit
		FROM product_prices
		WHERE price_list_version_id = $1 AND product_id = $2
	`

	record := &entity.ProductPriceRecord{}
	err := r.executor(ctx).QueryRowContext(ctx, query, versionID, productID).Scan(
		&record.PriceListVersionID,
		&record.ProductID,
		&record.PriceList,
		&record.PriceStd,
		&record.PriceLimit,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding product price: %w", err)
	}
	return record, nil
}

// FindProductPricesForOrder retorna los precios de la versión
// restringidos a los productos presentes en las líneas de la orden
func (r *CatalogPostgresRepository) FindProductPricesForOrder(ctx context.Context, versionID, orderID int64) ([]entity.ProductPriceRecord, error) {
	query := `
		SELECT pp.price_list_version_id, pp.product_id, pp.price_list, pp.price_std, pp.price_limit
		FROM product_prices pp
		WHERE pp.price_list_version_id = $1
		  AND EXISTS (
			SELECT 1 FROM order_lines l
			WHERE l.order_id = $2 AND l.product_id = pp.product_id
		  )
	`

	rows, err := r.executor(ctx).QueryContext(ctx, query, versionID, orderID)
	if err != nil {
		return nil, fmt.Errorf("error finding order product prices: %w", err)
	}
	defer rows.Close()

	var records []entity.ProductPriceRecord
	for rows.Next() {
		var record entity.ProductPriceRecord
		err := rows.Scan(
			&record.PriceListVersionID,
			&record.ProductID,
			&record.PriceList,
			&record.PriceStd,
			&record.PriceLimit,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning product price: %w", err)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product prices: %w", err)
	}
	return records, nil
}

// ListPricedProducts pagina los productos con precio completo en la
// versión vigente de la lista, con filtro opcional de búsqueda
func (r *CatalogPostgresRepository) ListPricedProducts(ctx context.Context, priceListID int64, validFrom time.Time, searchValue string, limit, offset int) ([]entity.Product, int, error) {
	version, err := r.FindPriceListVersion(ctx, priceListID, validFrom)
	if err != nil {
		return nil, 0, err
	}
	if version == nil {
		return nil, 0, nil
	}

	// Sólo productos con los tres precios estrictamente positivos
	baseWhere := `
		FROM products p
		JOIN product_prices pp ON pp.product_id = p.id
		WHERE pp.price_list_version_id = $1
		  AND pp.price_list > 0 AND pp.price_std > 0 AND pp.price_limit > 0
		  AND ($2 = '' OR UPPER(p.value) LIKE UPPER($2) OR UPPER(p.name) LIKE UPPER($2)
			OR p.upc = $3 OR p.sku = $3)
	`
	pattern := searchValue
	if pattern != "" {
		pattern = "%" + pattern + "%"
	}

	var count int
	countQuery := `SELECT COUNT(*)` + baseWhere
	err = r.executor(ctx).QueryRowContext(ctx, countQuery, version.ID, pattern, searchValue).Scan(&count)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting priced products: %w", err)
	}

	query := `
		SELECT p.id, p.uuid, p.value, p.name, p.upc, p.sku, p.tax_category_id, p.is_stocked
	` + baseWhere + `
		ORDER BY p.name
		LIMIT $4 OFFSET $5
	`
	rows, err := r.executor(ctx).QueryContext(ctx, query, version.ID, pattern, searchValue, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing priced products: %w", err)
	}
	defer rows.Close()

	var products []entity.Product
	for rows.Next() {
		var product entity.Product
		err := rows.Scan(
			&product.ID,
			&product.UUID,
			&product.Value,
			&product.Name,
			&product.UPC,
			&product.SKU,
			&product.TaxCategoryID,
			&product.IsStocked,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning product: %w", err)
		}
		products = append(products, product)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating products: %w", err)
	}
	return products, count, nil
}

// FindTaxesByCategory retorna los impuestos de una categoría ordenados
// por ID (el primero aplicable a ventas es el que se usa)
func (r *CatalogPostgresRepository) FindTaxesByCategory(ctx context.Context, taxCategoryID int64) ([]entity.Tax, error) {
	query := `
		SELECT id, uuid, name, tax_category_id, rate, is_sales_tax, transaction_type
		FROM taxes
		WHERE tax_category_id = $1
		ORDER BY id
	`

	rows, err := r.executor(ctx).QueryContext(ctx, query, taxCategoryID)
	if err != nil {
		return nil, fmt.Errorf("error finding taxes: %w", err)
	}
	defer rows.Close()

	var taxes []entity.Tax
	for rows.Next() {
		var tax entity.Tax
		err := rows.Scan(
			&tax.ID,
			&tax.UUID,
			&tax.Name,
			&tax.TaxCategoryID,
			&tax.Rate,
			&tax.IsSalesTax,
			&tax.TransactionType,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning tax: %w", err)
		}
		taxes = append(taxes, tax)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating taxes: %w", err)
	}
	return taxes, nil
}

// FindCurrency busca una moneda por su ID interno
func (r *CatalogPostgresRepository) FindCurrency(ctx context.Context, currencyID int64) (*entity.Currency, error) {
	query := `SELECT id, uuid, iso_code, symbol FROM currencies WHERE id = $1`

	currency := &entity.Currency{}
	err := r.executor(ctx).QueryRowContext(ctx, query, currencyID).Scan(
		&currency.ID,
		&currency.UUID,
		&currency.ISOCode,
		&currency.Symbol,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("currency %d not found", currencyID)
	}
	if err != nil {
		return nil, fmt.Errorf("error finding currency: %w", err)
	}
	return currency, nil
}

// FindStorage retorna las existencias del producto en el depósito, un
// registro por locator
func (r *CatalogPostgresRepository) FindStorage(ctx context.Context, productID, warehouseID int64) ([]entity.Storage, error) {
	query := `
		SELECT warehouse_id, locator_id, product_id, qty_on_hand, qty_reserved, qty_ordered
		FROM storage
		WHERE product_id = $1 AND warehouse_id = $2
	`

	rows, err := r.executor(ctx).QueryContext(ctx, query, productID, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("error finding storage: %w", err)
	}
	defer rows.Close()

	var records []entity.Storage
	for rows.Next() {
		var record entity.Storage
		err := rows.Scan(
			&record.WarehouseID,
			&record.LocatorID,
			&record.ProductID,
			&record.QtyOnHand,
			&record.QtyReserved,
			&record.QtyOrdered,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning storage: %w", err)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating storage: %w", err)
	}
	return records, nil
}

// FindWarehouseByUUID busca un depósito por su referencia externa
func (r *CatalogPostgresRepository) FindWarehouseByUUID(ctx context.Context, warehouseUUID uuid.UUID) (*entity.Warehouse, error) {
	query := `SELECT id, uuid, name FROM warehouses WHERE uuid = $1`

	warehouse := &entity.Warehouse{}
	err := r.executor(ctx).QueryRowContext(ctx, query, warehouseUUID).Scan(
		&warehouse.ID,
		&warehouse.UUID,
		&warehouse.Name,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("warehouse not found")
	}
	if err != nil {
		return nil, fmt.Errorf("error finding warehouse: %w", err)
	}
	return warehouse, nil
}

// FindDocumentTypeByID busca un tipo de documento por su ID interno
func (r *CatalogPostgresRepository) FindDocumentTypeByID(ctx context.Context, docTypeID int64) (*entity.DocumentType, error) {
	query := `SELECT id, uuid, name, sub_type FROM document_types WHERE id = $1`
	return r.findDocumentType(ctx, query, docTypeID)
}

// FindDocumentTypeByUUID busca un tipo de documento por su referencia externa
func (r *CatalogPostgresRepository) FindDocumentTypeByUUID(ctx context.Context, docTypeUUID uuid.UUID) (*entity.DocumentType, error) {
	query := `SELECT id, uuid, name, sub_type FROM document_types WHERE uuid = $1`
	return r.findDocumentType(ctx, query, docTypeUUID)
}

// FindPOSDocumentType retorna el tipo de documento genérico de punto de
// venta usado como último recurso
func (r *CatalogPostgresRepository) FindPOSDocumentType(ctx context.Context) (*entity.DocumentType, error) {
	query := `SELECT id, uuid, name, sub_type FROM document_types WHERE sub_type = $1 ORDER BY id LIMIT 1`
	return r.findDocumentType(ctx, query, entity.DocSubTypePOS)
}

func (r *CatalogPostgresRepository) findDocumentType(ctx context.Context, query string, arg interface{}) (*entity.DocumentType, error) {
	docType := &entity.DocumentType{}
	err := r.executor(ctx).QueryRowContext(ctx, query, arg).Scan(
		&docType.ID,
		&docType.UUID,
		&docType.Name,
		&docType.SubType,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrDocumentTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding document type: %w", err)
	}
	return docType, nil
}

// NextDocumentNo consume y retorna el siguiente número de la secuencia
// del tipo de documento. La fila se bloquea con el UPDATE para que dos
// órdenes concurrentes nunca compartan número.
func (r *CatalogPostgresRepository) NextDocumentNo(ctx context.Context, docTypeID int64) (string, error) {
	query := `
		UPDATE document_sequences
		SET current_next = current_next + increment
		WHERE document_type_id = $1
		RETURNING prefix, current_next - increment
	`

	var prefix string
	var number int64
	err := r.executor(ctx).QueryRowContext(ctx, query, docTypeID).Scan(&prefix, &number)
	if err == sql.ErrNoRows {
		return "", entity.ErrDocumentTypeNotFound
	}
	if err != nil {
		return "", fmt.Errorf("error advancing document sequence: %w", err)
	}
	return fmt.Sprintf("%s%d", prefix, number), nil
}
