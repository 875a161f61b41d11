package postgres

import (
	"context"
	"database/sql"
	"time"

	"fleethire-backend/internal/domain"
	"fleethire-backend/internal/repository"
)

type vehicleTypeRepository struct {
	db *sql.DB
}

func NewVehicleTypeRepository(db *sql.DB) repository.VehicleTypeRepository {
	return &vehicleTypeRepository{db: db}
}

const vehicleTypeColumns = `id, name, description, daily_rate_cents,
	tier_1_14_cents, tier_15_29_cents, tier_30_178_cents, tier_179_363_cents, tier_364_plus_cents,
	active, created_on, updated_on`

func (r *vehicleTypeRepository) Create(ctx context.Context, vt *domain.VehicleType) error {
	tiers := vt.PricingTiers
	if tiers == nil {
		tiers = &domain.PricingTiers{}
	}
	query := `INSERT INTO vehicle_types (name, description, daily_rate_cents,
	            tier_1_14_cents, tier_15_29_cents, tier_30_178_cents, tier_179_363_cents, tier_364_plus_cents,
	            active, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		vt.Name, vt.Description, vt.DailyRateCents,
		tiers.Tier1To14Cents, tiers.Tier15To29Cents, tiers.Tier30To178Cents, tiers.Tier179To363Cents, tiers.Tier364PlusCents,
		vt.Active, time.Now(), time.Now()).Scan(&vt.ID)
}

func (r *vehicleTypeRepository) GetByID(ctx context.Context, id int32) (*domain.VehicleType, error) {
	query := `SELECT ` + vehicleTypeColumns + ` FROM vehicle_types WHERE id = $1`
	return scanVehicleType(r.db.QueryRowContext(ctx, query, id))
}

func (r *vehicleTypeRepository) Update(ctx context.Context, vt *domain.VehicleType) error {
	tiers := vt.PricingTiers
	if tiers == nil {
		tiers = &domain.PricingTiers{}
	}
	query := `UPDATE vehicle_types SET name=$1, description=$2, daily_rate_cents=$3,
	            tier_1_14_cents=$4, tier_15_29_cents=$5, tier_30_178_cents=$6, tier_179_363_cents=$7, tier_364_plus_cents=$8,
	            active=$9, updated_on=$10 WHERE id=$11`
	_, err := r.db.ExecContext(ctx, query,
		vt.Name, vt.Description, vt.DailyRateCents,
		tiers.Tier1To14Cents, tiers.Tier15To29Cents, tiers.Tier30To178Cents, tiers.Tier179To363Cents, tiers.Tier364PlusCents,
		vt.Active, time.Now(), vt.ID)
	return err
}

func (r *vehicleTypeRepository) Deactivate(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `UPDATE vehicle_types SET active=false, updated_on=$1 WHERE id=$2`, time.Now(), id)
	return err
}

func (r *vehicleTypeRepository) ListActive(ctx context.Context) ([]domain.VehicleType, error) {
	query := `SELECT ` + vehicleTypeColumns + ` FROM vehicle_types WHERE active = true ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []domain.VehicleType
	for rows.Next() {
		vt, err := scanVehicleType(rows)
		if err != nil {
			return nil, err
		}
		types = append(types, *vt)
	}
	return types, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanVehicleType(row rowScanner) (*domain.VehicleType, error) {
	vt := &domain.VehicleType{}
	var tiers domain.PricingTiers
	err := row.Scan(&vt.ID, &vt.Name, &vt.Description, &vt.DailyRateCents,
		&tiers.Tier1To14Cents, &tiers.Tier15To29Cents, &tiers.Tier30To178Cents, &tiers.Tier179To363Cents, &tiers.Tier364PlusCents,
		&vt.Active, &vt.CreatedOn, &vt.UpdatedOn)
	if err != nil {
		return nil, err
	}
	// All-zero tiers mean no table was priced; the flat rate applies.
	if tiers != (domain.PricingTiers{}) {
		vt.PricingTiers = &tiers
	}
	return vt, nil
}
