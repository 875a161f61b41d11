package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"fleethire-backend/internal/domain"
	"fleethire-backend/internal/repository"
)

type quoteRepository struct {
	db *sql.DB
}

func NewQuoteRepository(db *sql.DB) repository.QuoteRepository {
	return &quoteRepository{db: db}
}

const quoteColumns = `id, quote_number, customer_name, customer_email,
	pickup_date, dropoff_date, pickup_time, dropoff_time, hire_duration_days,
	vehicle_category, pickup_location, dropoff_location,
	insurance_rule_id, km_option_name, requirement_rule_ids, line_items,
	subtotal_cents, tax_cents, total_cents, valid_until, status, reminder_sent,
	notes, how_heard, created_on, updated_on`

func (r *quoteRepository) Create(ctx context.Context, q *domain.Quote) error {
	items, err := json.Marshal(q.LineItems)
	if err != nil {
		return fmt.Errorf("failed to encode line items: %w", err)
	}
	ruleIDs, err := json.Marshal(q.RequirementRuleIDs)
	if err != nil {
		return fmt.Errorf("failed to encode requirement rule ids: %w", err)
	}

	query := `INSERT INTO quotes (quote_number, customer_name, customer_email,
	            pickup_date, dropoff_date, pickup_time, dropoff_time, hire_duration_days,
	            vehicle_category, pickup_location, dropoff_location,
	            insurance_rule_id, km_option_name, requirement_rule_ids, line_items,
	            subtotal_cents, tax_cents, total_cents, valid_until, status, reminder_sent,
	            notes, how_heard, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
	          RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		q.QuoteNumber, q.CustomerName, q.CustomerEmail,
		q.PickupDate, q.DropoffDate, q.PickupTime, q.DropoffTime, q.HireDurationDays,
		q.VehicleCategory, q.PickupLocation, q.DropoffLocation,
		q.InsuranceRuleID, q.KmOptionName, ruleIDs, items,
		q.SubtotalCents, q.TaxCents, q.TotalCents, q.ValidUntil, q.Status, q.ReminderSent,
		q.Notes, q.HowHeard, time.Now(), time.Now()).Scan(&q.ID)
}

func (r *quoteRepository) GetByID(ctx context.Context, id int32) (*domain.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE id = $1`
	return scanQuote(r.db.QueryRowContext(ctx, query, id))
}

func (r *quoteRepository) GetByNumber(ctx context.Context, number string) (*domain.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE quote_number = $1`
	return scanQuote(r.db.QueryRowContext(ctx, query, number))
}

func (r *quoteRepository) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Quote, int32, error) {
	offset := (page - 1) * pageSize
	baseQuery := `SELECT ` + quoteColumns + ` FROM quotes`

	args := []interface{}{}
	argIdx := 1
	if status != "" {
		baseQuery += fmt.Sprintf(" WHERE status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + baseQuery + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	baseQuery += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, baseQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var quotes []domain.Quote
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, 0, err
		}
		quotes = append(quotes, *q)
	}
	return quotes, count, rows.Err()
}

func (r *quoteRepository) UpdateStatus(ctx context.Context, id int32, status domain.QuoteStatus) error {
	_, err := r.db.ExecContext(ctx, `UPDATE quotes SET status=$1, updated_on=$2 WHERE id=$3`, status, time.Now(), id)
	return err
}

func (r *quoteRepository) ExpireOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE quotes SET status=$1, updated_on=$2 WHERE status=$3 AND valid_until < $2`,
		domain.QuoteStatusExpired, asOf, domain.QuoteStatusSent)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *quoteRepository) ListExpiringSoon(ctx context.Context, asOf time.Time, withinDays int) ([]domain.Quote, error) {
	cutoff := asOf.AddDate(0, 0, withinDays)
	query := `SELECT ` + quoteColumns + ` FROM quotes
	          WHERE status = $1 AND reminder_sent = false AND valid_until >= $2 AND valid_until <= $3
	          ORDER BY valid_until`
	rows, err := r.db.QueryContext(ctx, query, domain.QuoteStatusSent, asOf, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotes []domain.Quote
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, *q)
	}
	return quotes, rows.Err()
}

func (r *quoteRepository) MarkReminderSent(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `UPDATE quotes SET reminder_sent=true, updated_on=$1 WHERE id=$2`, time.Now(), id)
	return err
}

func scanQuote(row rowScanner) (*domain.Quote, error) {
	q := &domain.Quote{}
	var ruleIDs, items []byte
	err := row.Scan(&q.ID, &q.QuoteNumber, &q.CustomerName, &q.CustomerEmail,
		&q.PickupDate, &q.DropoffDate, &q.PickupTime, &q.DropoffTime, &q.HireDurationDays,
		&q.VehicleCategory, &q.PickupLocation, &q.DropoffLocation,
		&q.InsuranceRuleID, &q.KmOptionName, &ruleIDs, &items,
		&q.SubtotalCents, &q.TaxCents, &q.TotalCents, &q.ValidUntil, &q.Status, &q.ReminderSent,
		&q.Notes, &q.HowHeard, &q.CreatedOn, &q.UpdatedOn)
	if err != nil {
		return nil, err
	}
	if len(ruleIDs) > 0 {
		if err := json.Unmarshal(ruleIDs, &q.RequirementRuleIDs); err != nil {
			return nil, fmt.Errorf("failed to decode requirement rule ids: %w", err)
		}
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &q.LineItems); err != nil {
			return nil, fmt.Errorf("failed to decode line items: %w", err)
		}
	}
	return q, nil
}
