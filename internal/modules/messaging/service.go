package messaging

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	smsCost          = "KES 1.00"
	smsProvider      = "Spotless SMS Gateway"
	defaultReference = "Spotless Cleaning Services"
)

// Service simulates the SMS and M-Pesa integrations. Phone format is the
// only input this system genuinely validates.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// ValidPhone accepts Kenyan numbers: +254..., 254... or 07...
func ValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	return strings.HasPrefix(phone, "+254") ||
		strings.HasPrefix(phone, "254") ||
		strings.HasPrefix(phone, "07")
}

func (s *Service) SendSMS(req SendSMSRequest) (*SMSResult, error) {
	if !ValidPhone(req.Phone) {
		return nil, ErrInvalidPhone
	}

	ref := "SMS-" + strings.ToUpper(uuid.NewString()[:8])
	return &SMSResult{
		Reference: ref,
		Cost:      smsCost,
		Provider:  smsProvider,
	}, nil
}

func (s *Service) MpesaPayment(req MpesaRequest) (*MpesaTransaction, string, error) {
	if !ValidPhone(req.Phone) {
		return nil, "", ErrInvalidPhone
	}

	reference := req.Reference
	if reference == "" {
		reference = defaultReference
	}

	now := time.Now()
	tx := &MpesaTransaction{
		ID:        fmt.Sprintf("MPESA%d", now.Unix()),
		Receipt:   strings.ToUpper(uuid.NewString()[:10]),
		Phone:     req.Phone,
		Amount:    req.Amount.Int64(),
		Reference: reference,
		Balance:   int64(rand.Intn(9000) + 1000),
		Status:    "pending",
		Timestamp: now,
	}

	instruction := fmt.Sprintf(
		"Enter your M-Pesa PIN on %s to complete payment of KES %d",
		req.Phone, tx.Amount,
	)
	return tx, instruction, nil
}
