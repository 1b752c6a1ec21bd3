package domain

import "time"

// Well-known booking statuses. Status is kept as a plain string because the
// status update endpoint accepts arbitrary values.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
)

type Booking struct {
	ID        int64     `json:"id"`
	Customer  string    `json:"customer"`
	Service   string    `json:"service"`
	Date      string    `json:"date"`
	Status    string    `json:"status"`
	Amount    int64     `json:"amount"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
