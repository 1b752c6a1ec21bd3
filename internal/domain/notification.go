package domain

import "time"

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationBooking NotificationType = "booking"
	NotificationPayment NotificationType = "payment"
)

type Notification struct {
	ID        int64            `json:"id"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	Recipient string           `json:"recipient,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
	Read      bool             `json:"read"`
}
