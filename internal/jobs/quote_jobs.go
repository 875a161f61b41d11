package jobs

import (
	"context"
	"time"

	"fleethire-backend/internal/logger"
)

// ExpireQuotes marks SENT quotes past their valid_until date as EXPIRED.
func (jr *JobRunner) ExpireQuotes() {
	jr.runWithRecovery("ExpireQuotes", func() {
		ctx := context.Background()

		count, err := jr.quoteRepo.ExpireOverdue(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to expire quotes", "error", err)
			return
		}
		logger.Info("Expired overdue quotes", "count", count)
	})
}

// SendExpiryReminders emails customers whose quote expires within the
// configured lead window. Each quote is reminded at most once.
func (jr *JobRunner) SendExpiryReminders() {
	jr.runWithRecovery("SendExpiryReminders", func() {
		ctx := context.Background()

		quotes, err := jr.quoteRepo.ListExpiringSoon(ctx, time.Now(), jr.config.Quoting.ReminderLeadDays)
		if err != nil {
			logger.Error("Failed to list expiring quotes", "error", err)
			return
		}

		sent := 0
		for i := range quotes {
			q := &quotes[i]
			if q.CustomerEmail == "" {
				continue
			}
			if err := jr.emailSvc.SendExpiryReminder(ctx, q); err != nil {
				logger.Error("Failed to send expiry reminder", "quote_number", q.QuoteNumber, "error", err)
				continue
			}
			if err := jr.quoteRepo.MarkReminderSent(ctx, q.ID); err != nil {
				logger.Error("Failed to mark reminder sent", "quote_number", q.QuoteNumber, "error", err)
				continue
			}
			sent++
		}
		logger.Info("Sent quote expiry reminders", "count", sent)
	})
}
