package postgres

import (
	"context"
	"database/sql"
	"time"

	"fleethire-backend/internal/domain"
	"fleethire-backend/internal/repository"
)

type pricingRuleRepository struct {
	db *sql.DB
}

func NewPricingRuleRepository(db *sql.DB) repository.PricingRuleRepository {
	return &pricingRuleRepository{db: db}
}

func (r *pricingRuleRepository) Create(ctx context.Context, rule *domain.PricingRule) error {
	query := `INSERT INTO pricing_rules (name, type, daily_rate_adjustment_cents, one_time_fee_cents, active, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		rule.Name, rule.Type, rule.DailyRateAdjustmentCents, rule.OneTimeFeeCents, rule.Active, time.Now(), time.Now()).Scan(&rule.ID)
}

func (r *pricingRuleRepository) GetByID(ctx context.Context, id int32) (*domain.PricingRule, error) {
	rule := &domain.PricingRule{}
	query := `SELECT id, name, type, daily_rate_adjustment_cents, one_time_fee_cents, active, created_on, updated_on FROM pricing_rules WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rule.ID, &rule.Name, &rule.Type, &rule.DailyRateAdjustmentCents, &rule.OneTimeFeeCents, &rule.Active, &rule.CreatedOn, &rule.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return rule, nil
}

func (r *pricingRuleRepository) Update(ctx context.Context, rule *domain.PricingRule) error {
	query := `UPDATE pricing_rules SET name=$1, type=$2, daily_rate_adjustment_cents=$3, one_time_fee_cents=$4, active=$5, updated_on=$6 WHERE id=$7`
	_, err := r.db.ExecContext(ctx, query,
		rule.Name, rule.Type, rule.DailyRateAdjustmentCents, rule.OneTimeFeeCents, rule.Active, time.Now(), rule.ID)
	return err
}

func (r *pricingRuleRepository) Deactivate(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `UPDATE pricing_rules SET active=false, updated_on=$1 WHERE id=$2`, time.Now(), id)
	return err
}

func (r *pricingRuleRepository) ListActive(ctx context.Context) ([]domain.PricingRule, error) {
	query := `SELECT id, name, type, daily_rate_adjustment_cents, one_time_fee_cents, active, created_on, updated_on FROM pricing_rules WHERE active = true ORDER BY type, name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []domain.PricingRule
	for rows.Next() {
		var rule domain.PricingRule
		if err := rows.Scan(&rule.ID, &rule.Name, &rule.Type, &rule.DailyRateAdjustmentCents, &rule.OneTimeFeeCents, &rule.Active, &rule.CreatedOn, &rule.UpdatedOn); err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}
