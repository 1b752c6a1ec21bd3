package booking

import "spotless/internal/domain"

// CreateBookingRequest deliberately ignores any caller-supplied status; new
// bookings always start out pending. Amount tolerates strings and garbage,
// coercing to zero rather than rejecting the request.
type CreateBookingRequest struct {
	Customer string        `json:"customer" binding:"required"`
	Service  string        `json:"service" binding:"required"`
	Date     string        `json:"date"`
	Status   string        `json:"status"`
	Amount   domain.Amount `json:"amount"`
	Notes    string        `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
