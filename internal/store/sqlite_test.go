package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bunniesplumbing/chat-gateway/internal/model/booking"
)

func TestSaveAndListBookings(t *testing.T) {
	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	req := &booking.Request{
		Name:    "Jamie Doe",
		Phone:   "4085550123",
		Service: "water-heater",
	}
	if err := db.SaveBooking(ctx, req); err != nil {
		t.Fatalf("save: %v", err)
	}
	if req.ID == 0 {
		t.Fatal("ID not assigned")
	}
	if req.CreatedAt.IsZero() {
		t.Fatal("CreatedAt not assigned")
	}

	got, err := db.RecentBookings(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Jamie Doe" || got[0].Service != "water-heater" {
		t.Fatalf("unexpected rows: %+v", got)
	}
}
