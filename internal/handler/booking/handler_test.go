package booking

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	bookingservice "github.com/bunniesplumbing/chat-gateway/internal/service/booking"
	"github.com/bunniesplumbing/chat-gateway/internal/store"
)

func setup(t *testing.T) http.Handler {
	t.Helper()
	db, err := store.New(filepath.Join(t.TempDir(), "bookings.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	svc := bookingservice.NewService(db, nil, zap.NewNop())
	h := New(svc, zap.NewNop())

	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func submit(t *testing.T, h http.Handler, form url.Values) (*httptest.ResponseRecorder, response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	var decoded response
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	return resp, decoded
}

func TestBookingAccepted(t *testing.T) {
	h := setup(t)

	resp, decoded := submit(t, h, url.Values{
		"name":    {"Jamie Doe"},
		"phone":   {"4085550123"},
		"service": {"drain"},
		"time":    {"morning"},
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", resp.Code, resp.Body.String())
	}
	if !decoded.Success {
		t.Fatalf("expected success, got %+v", decoded)
	}
}

func TestBookingValidationErrorsJoined(t *testing.T) {
	h := setup(t)

	resp, decoded := submit(t, h, url.Values{
		"name":  {"J"},
		"phone": {"123"},
	})

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	for _, want := range []string{"Name is required", "phone number", "Service selection"} {
		if !strings.Contains(decoded.Message, want) {
			t.Fatalf("message %q does not mention %q", decoded.Message, want)
		}
	}
}
