package domain

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingInProgress BookingStatus = "in-progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

type PaymentMethod string

const (
	PayOnline PaymentMethod = "online"
	PayCOD    PaymentMethod = "cod"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

type BookingDetails struct {
	Date         string
	Time         string
	Address      string
	Phone        string
	Requirements string
}

type Pricing struct {
	ServicePrice   int64
	Commission     int64
	PlatformFee    int64
	ProviderAmount int64
	TotalAmount    int64
}

type Payment struct {
	Method    PaymentMethod
	Status    PaymentStatus `gorm:"index"`
	OrderID   string        `gorm:"index"`
	PaymentID string
	Signature string
	PaidAt    *time.Time
}

type Timeline struct {
	BookedAt    time.Time
	ConfirmedAt *time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time
}

type Rating struct {
	CustomerRating int
	CustomerReview string
	ProviderRating int
	ProviderReview string
}

type Cancellation struct {
	Reason       string
	CancelledBy  string // customer|provider
	RefundAmount int64
	RefundStatus string
}

type Booking struct {
	ID         string `gorm:"primaryKey"`
	SkillID    string `gorm:"index"`
	ProviderID string `gorm:"index:idx_bookings_provider_created"`
	CustomerID string `gorm:"index:idx_bookings_customer_created"`
	// Client-supplied token that makes checkout replays return the
	// original record instead of a second one.
	IdempotencyKey *string `gorm:"uniqueIndex"`

	Details      BookingDetails `gorm:"embedded;embeddedPrefix:details_"`
	Pricing      Pricing        `gorm:"embedded;embeddedPrefix:pricing_"`
	Payment      Payment        `gorm:"embedded;embeddedPrefix:payment_"`
	Status       BookingStatus  `gorm:"index"`
	Timeline     Timeline       `gorm:"embedded;embeddedPrefix:timeline_"`
	Rating       Rating         `gorm:"embedded;embeddedPrefix:rating_"`
	Cancellation Cancellation   `gorm:"embedded;embeddedPrefix:cancel_"`

	CreatedAt time.Time `gorm:"index:idx_bookings_provider_created;index:idx_bookings_customer_created"`
	UpdatedAt time.Time
}

// Terminal reports whether no further status transition is allowed.
func (b *Booking) Terminal() bool {
	return b.Status == BookingCompleted || b.Status == BookingCancelled
}
