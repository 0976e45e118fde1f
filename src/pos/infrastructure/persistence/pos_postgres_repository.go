package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"pos/src/pos/domain/entity"
	"pos/src/shared/infrastructure/transaction"

	"github.com/google/uuid"
)

// POSPostgresRepository implementa POSRepository usando PostgreSQL
type POSPostgresRepository struct {
	db *sql.DB
}

// NewPOSPostgresRepository crea una nueva instancia del repositorio
func NewPOSPostgresRepository(db *sql.DB) *POSPostgresRepository {
	return &POSPostgresRepository{
		db: db,
	}
}

func (r *POSPostgresRepository) executor(ctx context.Context) transaction.Executor {
	if tx, ok := transaction.FromContext(ctx); ok {
		return tx
	}
	return r.db
}

const posColumns = `
	id, uuid, name, description, org_id, warehouse_id, price_list_id,
	document_type_id, cash_partner_id, sales_rep_id, is_shared,
	is_modify_price, delivery_rule, invoice_rule
`

// FindByID busca una terminal por su ID interno
func (r *POSPostgresRepository) FindByID(ctx context.Context, posID int64) (*entity.PointOfSale, error) {
	query := `SELECT ` + posColumns + ` FROM pos_terminals WHERE id = $1`
	return r.findOne(ctx, query, posID)
}

// FindByUUID busca una terminal por su referencia externa
func (r *POSPostgresRepository) FindByUUID(ctx context.Context, posUUID uuid.UUID) (*entity.PointOfSale, error) {
	query := `SELECT ` + posColumns + ` FROM pos_terminals WHERE uuid = $1`
	return r.findOne(ctx, query, posUUID)
}

func (r *POSPostgresRepository) findOne(ctx context.Context, query string, arg interface{}) (*entity.PointOfSale, error) {
	pos := &entity.PointOfSale{}
	err := r.scanPOS(r.executor(ctx).QueryRowContext(ctx, query, arg), pos)
	if err == sql.ErrNoRows {
		return nil, entity.ErrPointOfSaleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding pos terminal: %w", err)
	}
	return pos, nil
}

// List retorna las terminales visibles para un vendedor (las
// compartidas más las asignadas a él) y el total
func (r *POSPostgresRepository) List(ctx context.Context, salesRepID int64, limit, offset int) ([]entity.PointOfSale, int, error) {
	var count int
	countQuery := `
		SELECT COUNT(*)
		FROM pos_terminals
		WHERE is_shared = TRUE OR sales_rep_id = $1
	`
	if err := r.executor(ctx).QueryRowContext(ctx, countQuery, salesRepID).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("error counting pos terminals: %w", err)
	}

	query := `
		SELECT ` + posColumns + `
		FROM pos_terminals
		WHERE is_shared = TRUE OR sales_rep_id = $1
		ORDER BY name
		LIMIT $2 OFFSET $3
	`
	rows, err := r.executor(ctx).QueryContext(ctx, query, salesRepID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing pos terminals: %w", err)
	}
	defer rows.Close()

	var terminals []entity.PointOfSale
	for rows.Next() {
		var pos entity.PointOfSale
		if err := r.scanPOS(rows, &pos); err != nil {
			return nil, 0, fmt.Errorf("error scanning pos terminal: %w", err)
		}
		terminals = append(terminals, pos)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating pos terminals: %w", err)
	}
	return terminals, count, nil
}

func (r *POSPostgresRepository) scanPOS(row scanner, pos *entity.PointOfSale) error {
	return row.Scan(
		&pos.ID,
		&pos.UUID,
		&pos.Name,
		&pos.Description,
		&pos.OrgID,
		&pos.WarehouseID,
		&pos.PriceListID,
		&pos.DocumentTypeID,
		&pos.CashPartnerID,
		&pos.SalesRepID,
		&pos.IsShared,
		&pos.IsModifyPrice,
		&pos.DeliveryRule,
		&pos.InvoiceRule,
	)
}
