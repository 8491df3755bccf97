package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nasir9967/skillbazaar/internal/domain"
)

type BookingRepo struct{ db *gorm.DB }

func NewBookingRepo(db *gorm.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

func (r *BookingRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Booking{})
}

// Create inserts the booking. A replay carrying an already-used
// idempotency key returns the original record instead of a second row.
func (r *BookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Timeline.BookedAt.IsZero() {
		b.Timeline.BookedAt = time.Now().UTC()
	}
	err := r.db.WithContext(ctx).Create(b).Error
	if err == nil {
		return b, nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) && b.IdempotencyKey != nil {
		var existing domain.Booking
		if ferr := r.db.WithContext(ctx).
			First(&existing, "idempotency_key = ?", *b.IdempotencyKey).Error; ferr == nil {
			return &existing, nil
		}
	}
	return nil, translate(err)
}

func (r *BookingRepo) ByID(ctx context.Context, id string) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

// ConfirmPayment locates the pending booking by gateway order id and
// customer identity, then applies the payment fields and the status
// transition in one transaction. Only a pending booking matches: a
// callback replayed after a cancel, or against an already-confirmed
// booking, gets ErrNotFound instead of rewriting the row.
func (r *BookingRepo) ConfirmPayment(ctx context.Context, orderID, customerID, paymentID, signature string, now time.Time) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("payment_order_id = ? AND customer_id = ? AND status = ?",
				orderID, customerID, domain.BookingPending).
			First(&b).Error; err != nil {
			return translate(err)
		}
		b.Payment.PaymentID = paymentID
		b.Payment.Signature = signature
		b.Payment.Status = domain.PaymentCompleted
		b.Payment.PaidAt = &now
		b.Status = domain.BookingConfirmed
		b.Timeline.ConfirmedAt = &now
		return tx.Save(&b).Error
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepo) ListByCustomer(ctx context.Context, customerID string) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *BookingRepo) ListByProvider(ctx context.Context, providerID string) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *BookingRepo) Save(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Save(b).Error
}
