package service

import (
	"context"
	"errors"

	"fleethire-backend/internal/domain"
	"fleethire-backend/internal/quoting"
	"fleethire-backend/internal/repository"
)

type catalogService struct {
	vehicleRepo  repository.VehicleTypeRepository
	locationRepo repository.LocationRepository
	ruleRepo     repository.PricingRuleRepository
}

func NewCatalogService(
	vehicleRepo repository.VehicleTypeRepository,
	locationRepo repository.LocationRepository,
	ruleRepo repository.PricingRuleRepository,
) CatalogService {
	return &catalogService{
		vehicleRepo:  vehicleRepo,
		locationRepo: locationRepo,
		ruleRepo:     ruleRepo,
	}
}

// GetCatalog loads the three active catalogs the quoting engine prices
// against. Fetched once per draft session.
func (s *catalogService) GetCatalog(ctx context.Context) (*quoting.Catalog, error) {
	vehicles, err := s.vehicleRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	locations, err := s.locationRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	rules, err := s.ruleRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return &quoting.Catalog{
		VehicleTypes: vehicles,
		Locations:    locations,
		PricingRules: rules,
	}, nil
}

func (s *catalogService) CreateVehicleType(ctx context.Context, vt *domain.VehicleType) error {
	if vt.Name == "" {
		return errors.New("vehicle type name is required")
	}
	if vt.DailyRateCents < 0 {
		return errors.New("daily rate must not be negative")
	}
	return s.vehicleRepo.Create(ctx, vt)
}

func (s *catalogService) UpdateVehicleType(ctx context.Context, vt *domain.VehicleType) error {
	if vt.Name == "" {
		return errors.New("vehicle type name is required")
	}
	if _, err := s.vehicleRepo.GetByID(ctx, vt.ID); err != nil {
		return err
	}
	return s.vehicleRepo.Update(ctx, vt)
}

func (s *catalogService) DeactivateVehicleType(ctx context.Context, id int32) error {
	return s.vehicleRepo.Deactivate(ctx, id)
}

func (s *catalogService) CreateLocation(ctx context.Context, loc *domain.Location) error {
	if loc.Name == "" {
		return errors.New("location name is required")
	}
	if loc.TransportFeeCents < 0 {
		return errors.New("transport fee must not be negative")
	}
	return s.locationRepo.Create(ctx, loc)
}

func (s *catalogService) UpdateLocation(ctx context.Context, loc *domain.Location) error {
	if loc.Name == "" {
		return errors.New("location name is required")
	}
	if _, err := s.locationRepo.GetByID(ctx, loc.ID); err != nil {
		return err
	}
	return s.locationRepo.Update(ctx, loc)
}

func (s *catalogService) DeactivateLocation(ctx context.Context, id int32) error {
	return s.locationRepo.Deactivate(ctx, id)
}

func (s *catalogService) CreatePricingRule(ctx context.Context, rule *domain.PricingRule) error {
	if err := validatePricingRule(rule); err != nil {
		return err
	}
	return s.ruleRepo.Create(ctx, rule)
}

func (s *catalogService) UpdatePricingRule(ctx context.Context, rule *domain.PricingRule) error {
	if err := validatePricingRule(rule); err != nil {
		return err
	}
	if _, err := s.ruleRepo.GetByID(ctx, rule.ID); err != nil {
		return err
	}
	return s.ruleRepo.Update(ctx, rule)
}

func (s *catalogService) DeactivatePricingRule(ctx context.Context, id int32) error {
	return s.ruleRepo.Deactivate(ctx, id)
}

func validatePricingRule(rule *domain.PricingRule) error {
	if rule.Name == "" {
		return errors.New("pricing rule name is required")
	}
	switch rule.Type {
	case domain.PricingRuleTypeInsurance, domain.PricingRuleTypeKmAllowance,
		domain.PricingRuleTypeAdditionalService, domain.PricingRuleTypeLocationSurcharge:
	default:
		return errors.New("unknown pricing rule type")
	}
	if rule.OneTimeFeeCents < 0 {
		return errors.New("one-time fee must not be negative")
	}
	return nil
}
