// Package store persists booking requests and the published-post tracker.
// Conversations are deliberately never stored; the client owns
// conversation continuity.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/bunniesplumbing/chat-gateway/internal/model/booking"
)

const schema = `
CREATE TABLE IF NOT EXISTS bookings (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    phone TEXT NOT NULL,
    email TEXT,
    service TEXT NOT NULL,
    preferred_date TEXT,
    preferred_time TEXT,
    message TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);`

// Database wraps the sqlite connection.
type Database struct {
	db *sql.DB
}

// New opens (or creates) the sqlite database and applies the schema.
func New(dbPath string) (*Database, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	for _, stmt := range []string{schema, postsSchema} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
	}

	return &Database{db: db}, nil
}

// SaveBooking inserts the request and fills in its ID and creation time.
func (d *Database) SaveBooking(ctx context.Context, req *booking.Request) error {
	query := `
        INSERT INTO bookings (name, phone, email, service, preferred_date, preferred_time, message)
        VALUES (?, ?, ?, ?, ?, ?, ?)
        RETURNING id, created_at`

	return d.db.QueryRowContext(ctx, query,
		req.Name, req.Phone, req.Email, req.Service, req.Date, req.TimeSlot, req.Message,
	).Scan(&req.ID, &req.CreatedAt)
}

// RecentBookings returns the newest requests, newest first.
func (d *Database) RecentBookings(ctx context.Context, limit int) ([]booking.Request, error) {
	rows, err := d.db.QueryContext(ctx, `
        SELECT id, name, phone, email, service, preferred_date, preferred_time, message, created_at
        FROM bookings ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	var out []booking.Request
	for rows.Next() {
		var b booking.Request
		if err := rows.Scan(&b.ID, &b.Name, &b.Phone, &b.Email, &b.Service,
			&b.Date, &b.TimeSlot, &b.Message, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Close releases the database handle.
func (d *Database) Close() error {
	return d.db.Close()
}
