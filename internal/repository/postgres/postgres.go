package postgres

import (
	"database/sql"

	"fleethire-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.VehicleTypeRepository
	repository.LocationRepository
	repository.PricingRuleRepository
	repository.QuoteRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		VehicleTypeRepository: NewVehicleTypeRepository(db),
		LocationRepository:    NewLocationRepository(db),
		PricingRuleRepository: NewPricingRuleRepository(db),
		QuoteRepository:       NewQuoteRepository(db),
	}
}
