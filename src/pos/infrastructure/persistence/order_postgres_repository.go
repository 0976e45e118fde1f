package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"pos/src/pos/domain/entity"
	domainCriteria "pos/src/shared/domain/criteria"
	sqlCriteria "pos/src/shared/infrastructure/criteria"
	"pos/src/shared/infrastructure/transaction"

	"github.com/google/uuid"
)

// OrderPostgresRepository implementa OrderRepository usando PostgreSQL
type OrderPostgresRepository struct {
	db        *sql.DB
	converter *sqlCriteria.SQLCriteriaConverter
}

// NewOrderPostgresRepository crea una nueva instancia del repositorio
func NewOrderPostgresRepository(db *sql.DB) *OrderPostgresRepository {
	return &OrderPostgresRepository{
		db:        db,
		converter: sqlCriteria.NewSQLCriteriaConverter(),
	}
}

// executor retorna la transacción activa del context o el pool
func (r *OrderPostgresRepository) executor(ctx context.Context) transaction.Executor {
	if tx, ok := transaction.FromContext(ctx); ok {
		return tx
	}
	return r.db
}

const orderColumns = `
	id, uuid, document_no, status, processed, org_id, pos_id,
	business_partner_id, bill_location_id, ship_location_id,
	price_list_id, warehouse_id, document_type_id, sales_rep_id,
	payment_rule, delivery_rule, invoice_rule, description,
	date_ordered, date_acct, date_promised, total_lines, grand_total,
	created_at, updated_at
`

const orderLineColumns = `
	id, uuid, order_id, line_no, product_id, charge_id, warehouse_id,
	description, qty_entered, qty_ordered, price_entered, price_actual,
	price_list, price_limit, discount_rate, tax_id, tax_rate,
	line_net_amount, business_partner_id, bp_location_id, processed,
	created_at, updated_at
`

// Insert persiste una orden nueva y asigna su ID
func (r *OrderPostgresRepository) Insert(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (
			uuid, document_no, status, processed, org_id, pos_id,
			business_partner_id, bill_location_id, ship_location_id,
			price_list_id, warehouse_id, document_type_id, sales_rep_id,
			payment_rule, delivery_rule, invoice_rule, description,
			date_ordered, date_acct, date_promised, total_lines, grand_total,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24
		)
		RETURNING id
	`

	err := r.executor(ctx).QueryRowContext(ctx, query,
		order.UUID,
		order.DocumentNo,
		order.Status,
		order.Processed,
		order.OrgID,
		order.POSID,
		order.BusinessPartnerID,
		order.BillLocationID,
		order.ShipLocationID,
		order.PriceListID,
		order.WarehouseID,
		order.DocumentTypeID,
		order.SalesRepID,
		order.PaymentRule,
		order.DeliveryRule,
		order.InvoiceRule,
		order.Description,
		order.DateOrdered,
		order.DateAcct,
		order.DatePromised,
		order.TotalLines,
		order.GrandTotal,
		order.CreatedAt,
		order.UpdatedAt,
	).Scan(&order.ID)

	if err != nil {
		return fmt.Errorf("error saving order: %w", err)
	}
	return nil
}

// UpdateHeader persiste los campos de cabecera de la orden
func (r *OrderPostgresRepository) UpdateHeader(ctx context.Context, order *entity.Order) error {
	query := `
		UPDATE orders SET
			document_no = $1, status = $2, processed = $3, pos_id = $4,
			business_partner_id = $5, bill_location_id = $6,
			ship_location_id = $7, price_list_id = $8, warehouse_id = $9,
			document_type_id = $10, sales_rep_id = $11, payment_rule = $12,
			delivery_rule = $13, invoice_rule = $14, description = $15,
			date_ordered = $16, date_acct = $17, date_promised = $18,
			total_lines = $19, grand_total = $20, updated_at = NOW()
		WHERE id = $21
	`

	result, err := r.executor(ctx).ExecContext(ctx, query,
		order.DocumentNo,
		order.Status,
		order.Processed,
		order.POSID,
		order.BusinessPartnerID,
		order.BillLocationID,
		order.ShipLocationID,
		order.PriceListID,
		order.WarehouseID,
		order.DocumentTypeID,
		order.SalesRepID,
		order.PaymentRule,
		order.DeliveryRule,
		order.InvoiceRule,
		order.Description,
		order.DateOrdered,
		order.DateAcct,
		order.DatePromised,
		order.TotalLines,
		order.GrandTotal,
		order.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating order: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return entity.ErrOrderNotFound
	}
	return nil
}

// FindByUUID carga una orden con sus líneas por su referencia externa
func (r *OrderPostgresRepository) FindByUUID(ctx context.Context, orderUUID uuid.UUID) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE uuid = $1`
	return r.findOne(ctx, query, orderUUID)
}

// FindByID carga una orden con sus líneas por su ID interno
func (r *OrderPostgresRepository) FindByID(ctx context.Context, orderID int64) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	return r.findOne(ctx, query, orderID)
}

// FindEmptyDraftByPOS busca un borrador sin líneas reutilizable para la
// terminal. Retorna nil, nil cuando no hay ninguno.
func (r *OrderPostgresRepository) FindEmptyDraftByPOS(ctx context.Context, posID int64) (*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders o
		WHERE pos_id = $1
		  AND status = 'DRAFTED'
		  AND processed = FALSE
		  AND NOT EXISTS (SELECT 1 FROM order_lines l WHERE l.order_id = o.id)
		ORDER BY created_at DESC
		LIMIT 1
	`

	order := &entity.Order{}
	err := r.scanOrder(r.executor(ctx).QueryRowContext(ctx, query, posID), order)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding reusable draft: %w", err)
	}
	return order, nil
}

// Delete elimina una orden con sus líneas
func (r *OrderPostgresRepository) Delete(ctx context.Context, orderID int64) error {
	executor := r.executor(ctx)
	if _, err := executor.ExecContext(ctx, `DELETE FROM order_lines WHERE order_id = $1`, orderID); err != nil {
		return fmt.Errorf("error deleting order lines: %w", err)
	}

	result, err := executor.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("error deleting order: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return entity.ErrOrderNotFound
	}
	return nil
}

// Search lista órdenes según el criteria recibido, sin sus líneas
func (r *OrderPostgresRepository) Search(ctx context.Context, crit domainCriteria.Criteria) ([]*entity.Order, error) {
	baseQuery := `SELECT ` + orderColumns + ` FROM orders`
	query, params := r.converter.ToSelectSQL(baseQuery, crit)

	rows, err := r.executor(ctx).QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("error listing orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		order := &entity.Order{}
		if err := r.scanOrder(rows, order); err != nil {
			return nil, fmt.Errorf("error scanning order: %w", err)
		}
		orders = append(orders, order)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}
	return orders, nil
}

// Count cuenta las órdenes que matchean los filtros del criteria
func (r *OrderPostgresRepository) Count(ctx context.Context, crit domainCriteria.Criteria) (int, error) {
	query, params := r.converter.ToCountSQL(`SELECT COUNT(*) FROM orders`, crit)

	var count int
	if err := r.executor(ctx).QueryRowContext(ctx, query, params...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting orders: %w", err)
	}
	return count, nil
}

// InsertLine persiste una línea nueva y asigna su ID
func (r *OrderPostgresRepository) InsertLine(ctx context.Context, line *entity.OrderLine) error {
	query := `
		INSERT INTO order_lines (
			uuid, order_id, line_no, product_id, charge_id, warehouse_id,
			description, qty_entered, qty_ordered, price_entered,
			price_actual, price_list, price_limit, discount_rate, tax_id,
			tax_rate, line_net_amount, business_partner_id, bp_location_id,
			processed, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22
		)
		RETURNING id
	`

	err := r.executor(ctx).QueryRowContext(ctx, query,
		line.UUID,
		line.OrderID,
		line.LineNo,
		line.ProductID,
		line.ChargeID,
		line.WarehouseID,
		line.Description,
		line.QtyEntered,
		line.QtyOrdered,
		line.PriceEntered,
		line.PriceActual,
		line.PriceList,
		line.PriceLimit,
		line.DiscountRate,
		line.TaxID,
		line.TaxRate,
		line.LineNetAmount,
		line.BusinessPartnerID,
		line.BPLocationID,
		line.Processed,
		line.CreatedAt,
		line.UpdatedAt,
	).Scan(&line.ID)

	if err != nil {
		return fmt.Errorf("error saving order line: %w", err)
	}
	return nil
}

// UpdateLine persiste los cambios de una línea
func (r *OrderPostgresRepository) UpdateLine(ctx context.Context, line *entity.OrderLine) error {
	query := `
		UPDATE order_lines SET
			qty_entered = $1, qty_ordered = $2, price_entered = $3,
			price_actual = $4, price_list = $5, price_limit = $6,
			discount_rate = $7, tax_id = $8, tax_rate = $9,
			line_net_amount = $10, business_partner_id = $11,
			bp_location_id = $12, description = $13, updated_at = NOW()
		WHERE id = $14
	`

	result, err := r.executor(ctx).ExecContext(ctx, query,
		line.QtyEntered,
		line.QtyOrdered,
		line.PriceEntered,
		line.PriceActual,
		line.PriceList,
		line.PriceLimit,
		line.DiscountRate,
		line.TaxID,
		line.TaxRate,
		line.LineNetAmount,
		line.BusinessPartnerID,
		line.BPLocationID,
		line.Description,
		line.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating order line: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return entity.ErrOrderLineNotFound
	}
	return nil
}

// DeleteLine elimina una línea
func (r *OrderPostgresRepository) DeleteLine(ctx context.Context, lineID int64) error {
	result, err := r.executor(ctx).ExecContext(ctx, `DELETE FROM order_lines WHERE id = $1`, lineID)
	if err != nil {
		return fmt.Errorf("error deleting order line: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return entity.ErrOrderLineNotFound
	}
	return nil
}

// FindLineByUUID carga una línea por su referencia externa
func (r *OrderPostgresRepository) FindLineByUUID(ctx context.Context, lineUUID uuid.UUID) (*entity.OrderLine, error) {
	query := `SELECT ` + orderLineColumns + ` FROM order_lines WHERE uuid = $1`

	line := &entity.OrderLine{}
	err := r.scanLine(r.executor(ctx).QueryRowContext(ctx, query, lineUUID), line)
	if err == sql.ErrNoRows {
		return nil, entity.ErrOrderLineNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding order line: %w", err)
	}
	return line, nil
}

// FindLines carga todas las líneas de una orden ordenadas por línea
func (r *OrderPostgresRepository) FindLines(ctx context.Context, orderID int64) ([]entity.OrderLine, error) {
	query := `SELECT ` + orderLineColumns + ` FROM order_lines WHERE order_id = $1 ORDER BY line_no`

	rows, err := r.executor(ctx).QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("error finding order lines: %w", err)
	}
	defer rows.Close()

	var lines []entity.OrderLine
	for rows.Next() {
		var line entity.OrderLine
		if err := r.scanLine(rows, &line); err != nil {
			return nil, fmt.Errorf("error scanning order line: %w", err)
		}
		lines = append(lines, line)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order lines: %w", err)
	}
	return lines, nil
}

// ListLines retorna una página de líneas y el total
func (r *OrderPostgresRepository) ListLines(ctx context.Context, orderID int64, limit, offset int) ([]entity.OrderLine, int, error) {
	var count int
	countQuery := `SELECT COUNT(*) FROM order_lines WHERE order_id = $1`
	if err := r.executor(ctx).QueryRowContext(ctx, countQuery, orderID).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("error counting order lines: %w", err)
	}

	query := `
		SELECT ` + orderLineColumns + `
		FROM order_lines
		WHERE order_id = $1
		ORDER BY line_no
		LIMIT $2 OFFSET $3
	`
	rows, err := r.executor(ctx).QueryContext(ctx, query, orderID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing order lines: %w", err)
	}
	defer rows.Close()

	var lines []entity.OrderLine
	for rows.Next() {
		var line entity.OrderLine
		if err := r.scanLine(rows, &line); err != nil {
			return nil, 0, fmt.Errorf("error scanning order line: %w", err)
		}
		lines = append(lines, line)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating order lines: %w", err)
	}
	return lines, count, nil
}

// findOne carga la orden (aggregate root) y sus líneas
func (r *OrderPostgresRepository) findOne(ctx context.Context, query string, arg interface{}) (*entity.Order, error) {
	order := &entity.Order{}
	err := r.scanOrder(r.executor(ctx).QueryRowContext(ctx, query, arg), order)
	if err == sql.ErrNoRows {
		return nil, entity.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding order: %w", err)
	}

	lines, err := r.FindLines(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Lines = lines
	return order, nil
}

// scanner es el subconjunto común de *sql.Row y *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func (r *OrderPostgresRepository) scanOrder(row scanner, order *entity.Order) error {
	return row.Scan(
		&order.ID,
		&order.UUID,
		&order.DocumentNo,
		&order.Status,
		&order.Processed,
		&order.OrgID,
		&order.POSID,
		&order.BusinessPartnerID,
		&order.BillLocationID,
		&order.ShipLocationID,
		&order.PriceListID,
		&order.WarehouseID,
		&order.DocumentTypeID,
		&order.SalesRepID,
		&order.PaymentRule,
		&order.DeliveryRule,
		&order.InvoiceRule,
		&order.Description,
		&order.DateOrdered,
		&order.DateAcct,
		&order.DatePromised,
		&order.TotalLines,
		&order.GrandTotal,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
}

func (r *OrderPostgresRepository) scanLine(row scanner, line *entity.OrderLine) error {
	return row.Scan(
		&line.ID,
		&line.UUID,
		&line.OrderID,
		&line.LineNo,
		&line.ProductID,
		&line.ChargeID,
		&line.WarehouseID,
		&line.Description,
		&line.QtyEntered,
		&line.QtyOrdered,
		&line.PriceEntered,
		&line.PriceActual,
		&line.PriceList,
		&line.PriceLimit,
		&line.DiscountRate,
		&line.TaxID,
		&line.TaxRate,
		&line.LineNetAmount,
		&line.BusinessPartnerID,
		&line.BPLocationID,
		&line.Processed,
		&line.CreatedAt,
		&line.UpdatedAt,
	)
}
