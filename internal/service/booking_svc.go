package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nasir9967/skillbazaar/internal/domain"
	"github.com/nasir9967/skillbazaar/internal/gateway"
	"github.com/nasir9967/skillbazaar/internal/repository"
)

type bookingStore interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	ByID(ctx context.Context, id string) (*domain.Booking, error)
	ConfirmPayment(ctx context.Context, orderID, customerID, paymentID, signature string, now time.Time) (*domain.Booking, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Booking, error)
	ListByProvider(ctx context.Context, providerID string) ([]domain.Booking, error)
	Save(ctx context.Context, b *domain.Booking) error
}

type listingStore interface {
	ByID(ctx context.Context, id string) (*domain.Skill, error)
	ByIDs(ctx context.Context, ids []string) (map[string]domain.Skill, error)
}

type partyStore interface {
	ByIDs(ctx context.Context, ids []string) (map[string]domain.User, error)
}

type signatureVerifier interface {
	Verify(orderID, paymentID, signature string) bool
}

type eventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

type BookingSvc struct {
	bookings bookingStore
	skills   listingStore
	users    partyStore
	orders   gateway.OrderCreator
	verifier signatureVerifier
	pub      eventPublisher
}

func NewBookingSvc(bookings bookingStore, skills listingStore, users partyStore, orders gateway.OrderCreator, verifier signatureVerifier, pub eventPublisher) *BookingSvc {
	return &BookingSvc{bookings: bookings, skills: skills, users: users, orders: orders, verifier: verifier, pub: pub}
}

type BookingInput struct {
	SkillID        string
	Date           string
	Time           string
	Address        string
	Phone          string
	Requirements   string
	IdempotencyKey string
}

func (in BookingInput) validate() error {
	if in.SkillID == "" {
		return fmt.Errorf("%w: service id is required", ErrValidation)
	}
	if in.Date == "" || in.Time == "" || in.Address == "" || in.Phone == "" {
		return fmt.Errorf("%w: date, time, address and phone are required", ErrValidation)
	}
	return nil
}

func (s *BookingSvc) newBooking(skill *domain.Skill, customerID string, in BookingInput, method domain.PaymentMethod) *domain.Booking {
	b := &domain.Booking{
		SkillID:    skill.ID,
		ProviderID: skill.BusinessID,
		CustomerID: customerID,
		Details: domain.BookingDetails{
			Date:         in.Date,
			Time:         in.Time,
			Address:      in.Address,
			Phone:        in.Phone,
			Requirements: in.Requirements,
		},
		// Amounts always come from the persisted listing price, never
		// from the request body.
		Pricing: ComputePricing(skill.Price),
		Payment: domain.Payment{Method: method, Status: domain.PaymentPending},
		Status:  domain.BookingPending,
	}
	if in.IdempotencyKey != "" {
		key := in.IdempotencyKey
		b.IdempotencyKey = &key
	}
	return b
}

// CreateCOD books with settlement deferred to service completion.
func (s *BookingSvc) CreateCOD(ctx context.Context, customerID string, in BookingInput) (*domain.Booking, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	skill, err := s.skills.ByID(ctx, in.SkillID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	b, err := s.bookings.Create(ctx, s.newBooking(skill, customerID, in, domain.PayCOD))
	if err != nil {
		return nil, err
	}
	_ = s.pub.PublishJSON(ctx, "booking.created", map[string]any{
		"booking_id": b.ID, "customer_id": b.CustomerID, "provider_id": b.ProviderID,
		"skill_id": b.SkillID, "total": b.Pricing.TotalAmount, "method": string(b.Payment.Method),
	})
	return b, nil
}

// OrderHandle is returned to the client for gateway-side collection.
type OrderHandle struct {
	OrderID   string `json:"orderId"`
	Amount    int64  `json:"amount"` // paise
	Currency  string `json:"currency"`
	BookingID string `json:"bookingId"`
}

// CreateOnline reserves the amount with the gateway, then writes the
// booking carrying the order id. No compensation runs if the second
// half fails; orphaned orders are reconciled operationally.
func (s *BookingSvc) CreateOnline(ctx context.Context, customerID string, in BookingInput) (*OrderHandle, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	skill, err := s.skills.ByID(ctx, in.SkillID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	pricing := ComputePricing(skill.Price)

	receipt := fmt.Sprintf("booking_%d", time.Now().UnixMilli())
	order, err := s.orders.CreateOrder(ctx, pricing.TotalAmount*100, receipt, map[string]any{
		"skill_id":    skill.ID,
		"customer_id": customerID,
		"provider_id": skill.BusinessID,
	})
	if err != nil {
		return nil, err
	}

	b := s.newBooking(skill, customerID, in, domain.PayOnline)
	b.Payment.OrderID = order.ID
	b, err = s.bookings.Create(ctx, b)
	if err != nil {
		return nil, err
	}
	_ = s.pub.PublishJSON(ctx, "booking.created", map[string]any{
		"booking_id": b.ID, "customer_id": b.CustomerID, "provider_id": b.ProviderID,
		"skill_id": b.SkillID, "total": b.Pricing.TotalAmount, "method": string(b.Payment.Method),
	})
	return &OrderHandle{OrderID: order.ID, Amount: order.Amount, Currency: order.Currency, BookingID: b.ID}, nil
}

// VerifyPayment checks the callback signature, then confirms the
// matching pending booking for this customer. A mismatched signature
// writes nothing.
func (s *BookingSvc) VerifyPayment(ctx context.Context, customerID, orderID, paymentID, signature string) (*domain.Booking, error) {
	if !s.verifier.Verify(orderID, paymentID, signature) {
		return nil, ErrVerificationFailed
	}
	b, err := s.bookings.ConfirmPayment(ctx, orderID, customerID, paymentID, signature, time.Now().UTC())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	_ = s.pub.PublishJSON(ctx, "payment.paid", map[string]any{
		"booking_id": b.ID, "order_id": orderID, "payment_id": paymentID,
		"amount": b.Pricing.TotalAmount, "currency": "INR",
	})
	_ = s.pub.PublishJSON(ctx, "booking.confirmed", map[string]any{"booking_id": b.ID})
	return b, nil
}

type PartyInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type SkillInfo struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Price    int64  `json:"price"`
}

type BookingView struct {
	Booking     domain.Booking `json:"booking"`
	CounterPart PartyInfo      `json:"counterpart"`
	Service     SkillInfo      `json:"service"`
}

// List returns the caller's bookings, newest first, with the
// counter-party's and the listing's public fields joined in.
func (s *BookingSvc) List(ctx context.Context, userID, perspective string) ([]BookingView, error) {
	var (
		bookings []domain.Booking
		err      error
	)
	asProvider := perspective == "provider"
	if asProvider {
		bookings, err = s.bookings.ListByProvider(ctx, userID)
	} else {
		bookings, err = s.bookings.ListByCustomer(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	userIDs := make([]string, 0, len(bookings))
	skillIDs := make([]string, 0, len(bookings))
	for _, b := range bookings {
		if asProvider {
			userIDs = append(userIDs, b.CustomerID)
		} else {
			userIDs = append(userIDs, b.ProviderID)
		}
		skillIDs = append(skillIDs, b.SkillID)
	}
	users, err := s.users.ByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	skills, err := s.skills.ByIDs(ctx, skillIDs)
	if err != nil {
		return nil, err
	}

	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		counterID := b.ProviderID
		if asProvider {
			counterID = b.CustomerID
		}
		v := BookingView{Booking: b}
		if u, ok := users[counterID]; ok {
			v.CounterPart = PartyInfo{Name: u.Name, Email: u.Email, Phone: u.Phone}
		}
		if sk, ok := skills[b.SkillID]; ok {
			v.Service = SkillInfo{Title: sk.Title, Category: sk.Category, Price: sk.Price}
		}
		views = append(views, v)
	}
	return views, nil
}

// UpdateStatus drives the lifecycle:
// pending -> confirmed -> in-progress -> completed, with cancelled
// reachable from any non-terminal state.
func (s *BookingSvc) UpdateStatus(ctx context.Context, actorID, bookingID, action, reason string) (*domain.Booking, error) {
	b, err := s.bookings.ByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	now := time.Now().UTC()

	switch action {
	case "confirm":
		if actorID != b.ProviderID {
			return nil, ErrForbidden
		}
		if b.Status != domain.BookingPending {
			return nil, ErrInvalidTransition
		}
		// Online bookings confirm through payment verification only.
		if b.Payment.Method == domain.PayOnline && b.Payment.Status != domain.PaymentCompleted {
			return nil, ErrInvalidTransition
		}
		b.Status = domain.BookingConfirmed
		b.Timeline.ConfirmedAt = &now
	case "start":
		if actorID != b.ProviderID {
			return nil, ErrForbidden
		}
		if b.Status != domain.BookingConfirmed {
			return nil, ErrInvalidTransition
		}
		b.Status = domain.BookingInProgress
		b.Timeline.StartedAt = &now
	case "complete":
		if actorID != b.ProviderID {
			return nil, ErrForbidden
		}
		if b.Status != domain.BookingInProgress {
			return nil, ErrInvalidTransition
		}
		b.Status = domain.BookingCompleted
		b.Timeline.CompletedAt = &now
		// Cash settles on completion.
		if b.Payment.Method == domain.PayCOD {
			b.Payment.Status = domain.PaymentCompleted
			b.Payment.PaidAt = &now
		}
	case "cancel":
		if actorID != b.CustomerID && actorID != b.ProviderID {
			return nil, ErrForbidden
		}
		if b.Terminal() {
			return nil, ErrInvalidTransition
		}
		b.Status = domain.BookingCancelled
		b.Timeline.CancelledAt = &now
		by := "customer"
		if actorID == b.ProviderID {
			by = "provider"
		}
		b.Cancellation = domain.Cancellation{Reason: reason, CancelledBy: by}
		if b.Payment.Status == domain.PaymentCompleted {
			// Refund itself is a manual operational step.
			b.Cancellation.RefundAmount = b.Pricing.TotalAmount
			b.Cancellation.RefundStatus = "pending"
		}
	default:
		return nil, fmt.Errorf("%w: unknown action %q", ErrValidation, action)
	}

	if err := s.bookings.Save(ctx, b); err != nil {
		return nil, err
	}
	switch b.Status {
	case domain.BookingConfirmed:
		_ = s.pub.PublishJSON(ctx, "booking.confirmed", map[string]any{"booking_id": b.ID})
	case domain.BookingCompleted:
		_ = s.pub.PublishJSON(ctx, "booking.completed", map[string]any{"booking_id": b.ID})
	case domain.BookingCancelled:
		_ = s.pub.PublishJSON(ctx, "booking.cancelled", map[string]any{"booking_id": b.ID, "cancelled_by": b.Cancellation.CancelledBy})
	}
	return b, nil
}

// Review records a post-completion rating for whichever side the actor
// is on.
func (s *BookingSvc) Review(ctx context.Context, actorID, bookingID string, rating int, review string) (*domain.Booking, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	b, err := s.bookings.ByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.Status != domain.BookingCompleted {
		return nil, ErrInvalidTransition
	}
	switch actorID {
	case b.CustomerID:
		b.Rating.CustomerRating = rating
		b.Rating.CustomerReview = review
	case b.ProviderID:
		b.Rating.ProviderRating = rating
		b.Rating.ProviderReview = review
	default:
		return nil, ErrForbidden
	}
	if err := s.bookings.Save(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}
