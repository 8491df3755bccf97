package events

import (
	"encoding/json"
	"fmt"
)

const (
	RKBookingCreated   = "booking.created"
	RKBookingConfirmed = "booking.confirmed"
	RKBookingCompleted = "booking.completed"
	RKBookingCancelled = "booking.cancelled"

	RKPaymentPaid   = "payment.paid"
	RKPaymentFailed = "payment.failed"
)

// BookingCreated carries enough for a human notification.
type BookingCreated struct {
	BookingID  string `json:"booking_id"`
	CustomerID string `json:"customer_id"`
	ProviderID string `json:"provider_id"`
	SkillID    string `json:"skill_id"`
	Total      int64  `json:"total"`
	Method     string `json:"method"`
}

type BookingSimple struct {
	BookingID   string `json:"booking_id"`
	CancelledBy string `json:"cancelled_by,omitempty"`
}

type PaymentPaid struct {
	BookingID string `json:"booking_id"`
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
}

type PaymentFailed struct {
	BookingID string `json:"booking_id"`
	OrderID   string `json:"order_id"`
	Reason    string `json:"reason,omitempty"`
}

func Unmarshal[T any](b []byte) (T, error) {
	var t T
	if err := json.Unmarshal(b, &t); err != nil {
		var zero T
		return zero, fmt.Errorf("decode payload: %w", err)
	}
	return t, nil
}
