package messaging

import (
	"time"

	"spotless/internal/domain"
)

type SendSMSRequest struct {
	Phone   string `json:"phone" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type SMSResult struct {
	Reference string `json:"reference"`
	Cost      string `json:"cost"`
	Provider  string `json:"provider"`
}

type MpesaRequest struct {
	Phone     string        `json:"phone" binding:"required"`
	Amount    domain.Amount `json:"amount"`
	Reference string        `json:"reference"`
}

// MpesaTransaction mirrors the shape of an STK-push acknowledgement. All of
// it is fabricated locally; no network call happens.
type MpesaTransaction struct {
	ID        string    `json:"id"`
	Receipt   string    `json:"receipt"`
	Phone     string    `json:"phone"`
	Amount    int64     `json:"amount"`
	Reference string    `json:"reference"`
	Balance   int64     `json:"balance"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
