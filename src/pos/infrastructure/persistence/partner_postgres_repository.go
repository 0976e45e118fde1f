package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"pos/src/pos/domain/entity"
	"pos/src/shared/infrastructure/transaction"

	"github.com/google/uuid"
)

// PartnerPostgresRepository implementa PartnerRepository usando PostgreSQL
type PartnerPostgresRepository struct {
	db *sql.DB
}

// NewPartnerPostgresRepository crea una nueva instancia del repositorio
func NewPartnerPostgresRepository(db *sql.DB) *PartnerPostgresRepository {
	return &PartnerPostgresRepository{
		db: db,
	}
}

func (r *PartnerPostgresRepository) executor(ctx context.Context) transaction.Executor {
	if tx, ok := transaction.FromContext(ctx); ok {
		return tx
	}
	return r.db
}

// FindByID busca un partner con sus ubicaciones por su ID interno
func (r *PartnerPostgresRepository) FindByID(ctx context.Context, partnerID int64) (*entity.BusinessPartner, error) {
	query := `
		SELECT id, uuid, value, name, sales_rep_id, flat_discount
		FROM business_partners
		WHERE id = $1
	`
	return r.findOne(ctx, query, partnerID)
}

// FindByUUID busca un partner con sus ubicaciones por su referencia externa
func (r *PartnerPostgresRepository) FindByUUID(ctx context.Context, partnerUUID uuid.UUID) (*entity.BusinessPartner, error) {
	query := `
		SELECT id, uuid, value, name, sales_rep_id, flat_discount
		FROM business_partners
		WHERE uuid = $1
	`
	return r.findOne(ctx, query, partnerUUID)
}

func (r *PartnerPostgresRepository) findOne(ctx context.Context, query string, arg interface{}) (*entity.BusinessPartner, error) {
	partner := &entity.BusinessPartner{}
	err := r.executor(ctx).QueryRowContext(ctx, query, arg).Scan(
		&partner.ID,
		&partner.UUID,
		&partner.Value,
		&partner.Name,
		&partner.SalesRepID,
		&partner.FlatDiscount,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrBusinessPartnerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding business partner: %w", err)
	}

	// Ubicaciones ordenadas por ID: la última coincidencia de cada tipo
	// es la que gana en la entidad
	queryLocations := `
		SELECT id, is_bill_to, is_ship_to
		FROM partner_locations
		WHERE business_partner_id = $1
		ORDER BY id
	`
	rows, err := r.executor(ctx).QueryContext(ctx, queryLocations, partner.ID)
	if err != nil {
		return nil, fmt.Errorf("error finding partner locations: %w", err)
	}
	defer rows.Close()

	var locations []entity.PartnerLocation
	for rows.Next() {
		var location entity.PartnerLocation
		if err := rows.Scan(&location.ID, &location.IsBillTo, &location.IsShipTo); err != nil {
			return nil, fmt.Errorf("error scanning partner location: %w", err)
		}
		locations = append(locations, location)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating partner locations: %w", err)
	}

	partner.Locations = locations
	return partner, nil
}
