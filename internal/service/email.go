package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"fleethire-backend/internal/domain"
	"fleethire-backend/internal/logger"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendQuote(ctx context.Context, q *domain.Quote) error {
	subject := fmt.Sprintf("Your hire quote %s", q.QuoteNumber)

	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\nThank you for your enquiry. Your quote is below.\n\n", q.CustomerName)
	fmt.Fprintf(&b, "Quote number: %s\n", q.QuoteNumber)
	if q.PickupDate != "" {
		fmt.Fprintf(&b, "Pickup:  %s %s (%s)\n", q.PickupDate, q.PickupTime, q.PickupLocation)
		fmt.Fprintf(&b, "Dropoff: %s %s (%s)\n", q.DropoffDate, q.DropoffTime, q.DropoffLocation)
		fmt.Fprintf(&b, "Duration: %d day(s)\n", q.HireDurationDays)
	}
	b.WriteString("\n")
	for _, it := range q.LineItems {
		fmt.Fprintf(&b, "  %-40s %3d x %10s = %10s\n", it.Description, it.Quantity, formatCents(it.UnitPriceCents), formatCents(it.TotalCents))
	}
	fmt.Fprintf(&b, "\nSubtotal: %s\n", formatCents(q.SubtotalCents))
	fmt.Fprintf(&b, "Tax:      %s\n", formatCents(q.TaxCents))
	fmt.Fprintf(&b, "Total:    %s\n", formatCents(q.TotalCents))
	fmt.Fprintf(&b, "\nThis quote is valid until %s.\n", q.ValidUntil.Format("2 January 2006"))

	return s.send(q.CustomerEmail, q.CustomerName, subject, b.String())
}

func (s *emailService) SendExpiryReminder(ctx context.Context, q *domain.Quote) error {
	subject := fmt.Sprintf("Your quote %s expires soon", q.QuoteNumber)
	body := fmt.Sprintf(
		"Hello %s,\n\nA reminder that your hire quote %s for %s expires on %s.\n\nTotal: %s\n\nReply to this email to confirm your booking.\n",
		q.CustomerName, q.QuoteNumber, q.VehicleCategory,
		q.ValidUntil.Format("2 January 2006"), formatCents(q.TotalCents))
	return s.send(q.CustomerEmail, q.CustomerName, subject, body)
}

func (s *emailService) send(toEmail, toName, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	logger.ExternalServiceCall("sendgrid", "send", "to", toEmail, "subject", subject)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "send", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", "send", err)
		return err
	}
	logger.ExternalServiceResult("sendgrid", "send", nil)
	return nil
}

func formatCents(cents int32) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
