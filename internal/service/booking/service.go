// Package booking validates and records estimate-form submissions and
// dispatches the notification emails.
package booking

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/bunniesplumbing/chat-gateway/internal/model/booking"
)

var (
	nonDigits  = regexp.MustCompile(`\D`)
	emailShape = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Store persists accepted booking requests.
type Store interface {
	SaveBooking(ctx context.Context, req *booking.Request) error
}

// Mailer sends the admin notification and customer confirmation. Both are
// best effort; a failed send never fails the booking.
type Mailer interface {
	SendBookingEmails(ctx context.Context, req *booking.Request) error
}

// Service handles booking submissions.
type Service struct {
	store  Store
	mailer Mailer
	logger *zap.Logger
}

// NewService creates the booking service. mailer may be nil when SMTP is
// not configured; bookings are then only persisted.
func NewService(store Store, mailer Mailer, logger *zap.Logger) *Service {
	return &Service{store: store, mailer: mailer, logger: logger}
}

// Validate checks the submitted fields and returns every problem found.
func Validate(req *booking.Request) []string {
	var errs []string
	if len(strings.TrimSpace(req.Name)) < 2 {
		errs = append(errs, "Name is required (minimum 2 characters)")
	}
	if len(nonDigits.ReplaceAllString(req.Phone, "")) < 10 {
		errs = append(errs, "Valid phone number is required")
	}
	if strings.TrimSpace(req.Service) == "" {
		errs = append(errs, "Service selection is required")
	}
	if req.Email != "" && !emailShape.MatchString(req.Email) {
		errs = append(errs, "Invalid email address")
	}
	return errs
}

// Submit persists the request and dispatches notification emails.
func (s *Service) Submit(ctx context.Context, req *booking.Request) error {
	if errs := Validate(req); len(errs) > 0 {
		return fmt.Errorf("invalid booking: %s", strings.Join(errs, ", "))
	}

	if err := s.store.SaveBooking(ctx, req); err != nil {
		return fmt.Errorf("save booking: %w", err)
	}

	if s.mailer != nil {
		if err := s.mailer.SendBookingEmails(ctx, req); err != nil {
			s.logger.Warn("booking emails failed",
				zap.Int64("booking_id", req.ID), zap.Error(err))
		}
	}

	s.logger.Info("booking recorded",
		zap.Int64("booking_id", req.ID),
		zap.String("service", req.Service))
	return nil
}

// ServiceLabel resolves a form value to its display name.
func ServiceLabel(value string) string {
	if label, ok := booking.ServiceLabels[value]; ok {
		return label
	}
	if value == "" {
		return "Not specified"
	}
	return strings.ToUpper(value[:1]) + value[1:]
}

// TimeSlotLabel resolves a preferred-time value to its display name.
func TimeSlotLabel(value string) string {
	if label, ok := booking.TimeSlotLabels[value]; ok {
		return label
	}
	return "Not specified"
}
