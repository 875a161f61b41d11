package postgres

import (
	"context"
	"database/sql"
	"time"

	"fleethire-backend/internal/domain"
	"fleethire-backend/internal/repository"
)

type locationRepository struct {
	db *sql.DB
}

func NewLocationRepository(db *sql.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) Create(ctx context.Context, loc *domain.Location) error {
	query := `INSERT INTO locations (name, address, transport_fee_cents, active, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		loc.Name, loc.Address, loc.TransportFeeCents, loc.Active, time.Now(), time.Now()).Scan(&loc.ID)
}

func (r *locationRepository) GetByID(ctx context.Context, id int32) (*domain.Location, error) {
	loc := &domain.Location{}
	query := `SELECT id, name, address, transport_fee_cents, active, created_on, updated_on FROM locations WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&loc.ID, &loc.Name, &loc.Address, &loc.TransportFeeCents, &loc.Active, &loc.CreatedOn, &loc.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return loc, nil
}

func (r *locationRepository) Update(ctx context.Context, loc *domain.Location) error {
	query := `UPDATE locations SET name=$1, address=$2, transport_fee_cents=$3, active=$4, updated_on=$5 WHERE id=$6`
	_, err := r.db.ExecContext(ctx, query,
		loc.Name, loc.Address, loc.TransportFeeCents, loc.Active, time.Now(), loc.ID)
	return err
}

func (r *locationRepository) Deactivate(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `UPDATE locations SET active=false, updated_on=$1 WHERE id=$2`, time.Now(), id)
	return err
}

func (r *locationRepository) ListActive(ctx context.Context) ([]domain.Location, error) {
	query := `SELECT id, name, address, transport_fee_cents, active, created_on, updated_on FROM locations WHERE active = true ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []domain.Location
	for rows.Next() {
		var loc domain.Location
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.Address, &loc.TransportFeeCents, &loc.Active, &loc.CreatedOn, &loc.UpdatedOn); err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}
	return locations, rows.Err()
}
