package service_test

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nasir9967/skillbazaar/internal/domain"
	"github.com/nasir9967/skillbazaar/internal/gateway"
	"github.com/nasir9967/skillbazaar/internal/repository"
)

type fakeUsers struct {
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[string]*domain.User{}, byEmail: map[string]*domain.User{}}
}

func (f *fakeUsers) Create(_ context.Context, u *domain.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return repository.ErrDuplicate
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	cp := *u
	f.byID[u.ID] = &cp
	f.byEmail[u.Email] = &cp
	return nil
}

func (f *fakeUsers) ByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) ByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) ByIDs(_ context.Context, ids []string) (map[string]domain.User, error) {
	out := map[string]domain.User{}
	for _, id := range ids {
		if u, ok := f.byID[id]; ok {
			out[id] = *u
		}
	}
	return out, nil
}

type fakeTokens struct{}

func (fakeTokens) CreateAccessToken(sub, role, email string) (string, error) {
	return "token-for-" + sub, nil
}

type fakeSkills struct {
	skills map[string]*domain.Skill
	order  []string
}

func newFakeSkills() *fakeSkills {
	return &fakeSkills{skills: map[string]*domain.Skill{}}
}

func (f *fakeSkills) Create(_ context.Context, s *domain.Skill) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	s.CreatedAt = time.Now().Add(time.Duration(len(f.order)) * time.Second)
	cp := *s
	f.skills[s.ID] = &cp
	f.order = append(f.order, s.ID)
	return nil
}

func (f *fakeSkills) ByID(_ context.Context, id string) (*domain.Skill, error) {
	s, ok := f.skills[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSkills) ByIDs(_ context.Context, ids []string) (map[string]domain.Skill, error) {
	out := map[string]domain.Skill{}
	for _, id := range ids {
		if s, ok := f.skills[id]; ok {
			out[id] = *s
		}
	}
	return out, nil
}

func (f *fakeSkills) Latest(_ context.Context, limit int) ([]domain.Skill, error) {
	var out []domain.Skill
	for i := len(f.order) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, *f.skills[f.order[i]])
	}
	return out, nil
}

func (f *fakeSkills) ByBusiness(_ context.Context, businessID string) ([]domain.Skill, error) {
	var out []domain.Skill
	for i := len(f.order) - 1; i >= 0; i-- {
		s := f.skills[f.order[i]]
		if s.BusinessID == businessID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSkills) UpdateOwned(_ context.Context, id, businessID string, s *domain.Skill) (bool, error) {
	existing, ok := f.skills[id]
	if !ok || existing.BusinessID != businessID {
		return false, nil
	}
	existing.Title = s.Title
	existing.Description = s.Description
	existing.Price = s.Price
	existing.Category = s.Category
	existing.Location = s.Location
	existing.Tags = s.Tags
	existing.Active = s.Active
	return true, nil
}

func (f *fakeSkills) DeleteOwned(_ context.Context, id, businessID string) (bool, error) {
	existing, ok := f.skills[id]
	if !ok || existing.BusinessID != businessID {
		return false, nil
	}
	delete(f.skills, id)
	for i, oid := range f.order {
		if oid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return true, nil
}

type noopCache struct{}

func (noopCache) GetLatest(context.Context) ([]domain.Skill, bool) { return nil, false }
func (noopCache) SetLatest(context.Context, []domain.Skill) error  { return nil }
func (noopCache) Invalidate(context.Context) error                 { return nil }

type fakeBookings struct {
	bookings map[string]*domain.Booking
	order    []string
}

func newFakeBookings() *fakeBookings {
	return &fakeBookings{bookings: map[string]*domain.Booking{}}
}

func (f *fakeBookings) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if b.IdempotencyKey != nil {
		for _, ex := range f.bookings {
			if ex.IdempotencyKey != nil && *ex.IdempotencyKey == *b.IdempotencyKey {
				cp := *ex
				return &cp, nil
			}
		}
	}
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Timeline.BookedAt.IsZero() {
		b.Timeline.BookedAt = time.Now().UTC()
	}
	b.CreatedAt = time.Now().Add(time.Duration(len(f.order)) * time.Second)
	cp := *b
	f.bookings[b.ID] = &cp
	f.order = append(f.order, b.ID)
	out := *b
	return &out, nil
}

func (f *fakeBookings) ByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBookings) ConfirmPayment(_ context.Context, orderID, customerID, paymentID, signature string, now time.Time) (*domain.Booking, error) {
	for _, b := range f.bookings {
		if b.Payment.OrderID == orderID && b.CustomerID == customerID && b.Status == domain.BookingPending {
			b.Payment.PaymentID = paymentID
			b.Payment.Signature = signature
			b.Payment.Status = domain.PaymentCompleted
			b.Payment.PaidAt = &now
			b.Status = domain.BookingConfirmed
			b.Timeline.ConfirmedAt = &now
			cp := *b
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeBookings) ListByCustomer(_ context.Context, customerID string) ([]domain.Booking, error) {
	var out []domain.Booking
	for i := len(f.order) - 1; i >= 0; i-- {
		b := f.bookings[f.order[i]]
		if b.CustomerID == customerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookings) ListByProvider(_ context.Context, providerID string) ([]domain.Booking, error) {
	var out []domain.Booking
	for i := len(f.order) - 1; i >= 0; i-- {
		b := f.bookings[f.order[i]]
		if b.ProviderID == providerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookings) Save(_ context.Context, b *domain.Booking) error {
	if _, ok := f.bookings[b.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}

type fakeOrders struct {
	orders int
	fail   bool
	last   *gateway.Order
}

func (f *fakeOrders) CreateOrder(_ context.Context, amountPaise int64, receipt string, notes map[string]any) (*gateway.Order, error) {
	if f.fail {
		return nil, fmt.Errorf("gateway unavailable")
	}
	f.orders++
	f.last = &gateway.Order{ID: fmt.Sprintf("order_%d", f.orders), Amount: amountPaise, Currency: "INR"}
	return f.last, nil
}

type capturedEvent struct {
	Key     string
	Payload any
}

type fakePublisher struct {
	events []capturedEvent
}

func (f *fakePublisher) PublishJSON(_ context.Context, key string, v any) error {
	f.events = append(f.events, capturedEvent{Key: key, Payload: v})
	return nil
}

func (f *fakePublisher) keys() []string {
	out := make([]string, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.Key)
	}
	return out
}
