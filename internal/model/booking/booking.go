// Package booking holds the booking-request model for the estimate form.
package booking

import "time"

// Request is one submitted booking/estimate form.
type Request struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Service   string    `json:"service"`
	Date      string    `json:"date,omitempty"`
	TimeSlot  string    `json:"time,omitempty"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ServiceLabels maps form values to display names.
var ServiceLabels = map[string]string{
	"trenchless":   "Trenchless Sewer Replacement",
	"sewer":        "Sewer Line Services",
	"water-main":   "Water Main Line Services",
	"drain":        "Drain Cleaning & Hydro Jetting",
	"crawl-space":  "Crawl Space Plumbing",
	"gas":          "Gas Line Services",
	"water-heater": "Water Heater Services",
	"general":      "General Plumbing",
	"emergency":    "24/7 Emergency Plumbing",
	"other":        "Other",
}

// TimeSlotLabels maps preferred-time values to display names.
var TimeSlotLabels = map[string]string{
	"morning":   "Morning (8am - 12pm)",
	"afternoon": "Afternoon (12pm - 5pm)",
	"evening":   "Evening (5pm - 9pm)",
	"asap":      "ASAP / Emergency",
}
