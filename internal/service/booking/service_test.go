package booking

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	bookingmodel "github.com/bunniesplumbing/chat-gateway/internal/model/booking"
)

func validRequest() *bookingmodel.Request {
	return &bookingmodel.Request{
		Name:    "Jamie Doe",
		Phone:   "(408) 555-0123",
		Email:   "jamie@example.com",
		Service: "trenchless",
	}
}

func TestValidateAccepts(t *testing.T) {
	if errs := Validate(validRequest()); len(errs) != 0 {
		t.Fatalf("unexpected validation errors: %v", errs)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*bookingmodel.Request)
		want   string
	}{
		{"short name", func(r *bookingmodel.Request) { r.Name = "J" }, "Name is required"},
		{"short phone", func(r *bookingmodel.Request) { r.Phone = "555-01" }, "phone number"},
		{"letters-only phone", func(r *bookingmodel.Request) { r.Phone = "call me maybe" }, "phone number"},
		{"missing service", func(r *bookingmodel.Request) { r.Service = " " }, "Service selection"},
		{"bad email", func(r *bookingmodel.Request) { r.Email = "not-an-email" }, "Invalid email"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)
			errs := Validate(req)
			if len(errs) == 0 {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(strings.Join(errs, ", "), tc.want) {
				t.Fatalf("errors %v do not mention %q", errs, tc.want)
			}
		})
	}
}

func TestValidateEmailOptional(t *testing.T) {
	req := validRequest()
	req.Email = ""
	if errs := Validate(req); len(errs) != 0 {
		t.Fatalf("empty email must be accepted: %v", errs)
	}
}

type recordingStore struct {
	saved *bookingmodel.Request
}

func (s *recordingStore) SaveBooking(_ context.Context, req *bookingmodel.Request) error {
	req.ID = 7
	s.saved = req
	return nil
}

type failingMailer struct{ calls int }

func (m *failingMailer) SendBookingEmails(context.Context, *bookingmodel.Request) error {
	m.calls++
	return context.DeadlineExceeded
}

func TestSubmitPersistsDespiteMailFailure(t *testing.T) {
	store := &recordingStore{}
	mailer := &failingMailer{}
	svc := NewService(store, mailer, zap.NewNop())

	if err := svc.Submit(context.Background(), validRequest()); err != nil {
		t.Fatalf("mail failure must not fail the booking: %v", err)
	}
	if store.saved == nil {
		t.Fatal("booking was not persisted")
	}
	if mailer.calls != 1 {
		t.Fatalf("mailer called %d times, want 1", mailer.calls)
	}
}

func TestSubmitWithoutMailer(t *testing.T) {
	store := &recordingStore{}
	svc := NewService(store, nil, zap.NewNop())

	if err := svc.Submit(context.Background(), validRequest()); err != nil {
		t.Fatalf("submit without mailer: %v", err)
	}
}

func TestServiceLabelFallback(t *testing.T) {
	if got := ServiceLabel("trenchless"); got != "Trenchless Sewer Replacement" {
		t.Fatalf("got %q", got)
	}
	if got := ServiceLabel("custom"); got != "Custom" {
		t.Fatalf("unknown services should be capitalized, got %q", got)
	}
	if got := TimeSlotLabel(""); got != "Not specified" {
		t.Fatalf("got %q", got)
	}
}
