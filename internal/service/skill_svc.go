package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/nasir9967/skillbazaar/internal/domain"
	"github.com/nasir9967/skillbazaar/internal/repository"
)

type skillStore interface {
	Create(ctx context.Context, s *domain.Skill) error
	ByID(ctx context.Context, id string) (*domain.Skill, error)
	Latest(ctx context.Context, limit int) ([]domain.Skill, error)
	ByBusiness(ctx context.Context, businessID string) ([]domain.Skill, error)
	UpdateOwned(ctx context.Context, id, businessID string, s *domain.Skill) (bool, error)
	DeleteOwned(ctx context.Context, id, businessID string) (bool, error)
}

type listingCache interface {
	GetLatest(ctx context.Context) ([]domain.Skill, bool)
	SetLatest(ctx context.Context, skills []domain.Skill) error
	Invalidate(ctx context.Context) error
}

type ownerLookup interface {
	ByID(ctx context.Context, id string) (*domain.User, error)
}

type SkillSvc struct {
	skills skillStore
	owners ownerLookup
	cache  listingCache
}

func NewSkillSvc(skills skillStore, owners ownerLookup, cache listingCache) *SkillSvc {
	return &SkillSvc{skills: skills, owners: owners, cache: cache}
}

type SkillInput struct {
	Title       string
	Description string
	Price       int64
	Category    string
	Location    string
	Tags        []string
	Active      *bool
}

func (in SkillInput) validate() error {
	if in.Title == "" || in.Description == "" || in.Category == "" || in.Location == "" {
		return fmt.Errorf("%w: title, description, category and location are required", ErrValidation)
	}
	if in.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	return nil
}

// Create persists a listing tagged with the creator's identity taken
// from the user record, not the request body. Role enforcement happens
// at the route.
func (s *SkillSvc) Create(ctx context.Context, businessID string, in SkillInput) (*domain.Skill, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	owner, err := s.owners.ByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	sk := &domain.Skill{
		Title:         in.Title,
		Description:   in.Description,
		Price:         in.Price,
		Category:      in.Category,
		Location:      in.Location,
		Tags:          in.Tags,
		BusinessID:    owner.ID,
		BusinessName:  owner.Name,
		BusinessEmail: owner.Email,
		Active:        true,
	}
	if err := s.skills.Create(ctx, sk); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return sk, nil
}

func (s *SkillSvc) Latest(ctx context.Context, limit int) ([]domain.Skill, error) {
	if cached, ok := s.cache.GetLatest(ctx); ok {
		return cached, nil
	}
	skills, err := s.skills.Latest(ctx, limit)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetLatest(ctx, skills); err != nil {
		log.Printf("[skill] cache set: %v", err)
	}
	return skills, nil
}

func (s *SkillSvc) Mine(ctx context.Context, businessID string) ([]domain.Skill, error) {
	return s.skills.ByBusiness(ctx, businessID)
}

// Update mutates a listing only when the actor owns it.
func (s *SkillSvc) Update(ctx context.Context, id, businessID string, in SkillInput) (*domain.Skill, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	existing, err := s.skills.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if existing.BusinessID != businessID {
		return nil, ErrForbidden
	}
	upd := &domain.Skill{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Location:    in.Location,
		Tags:        in.Tags,
		Active:      existing.Active,
	}
	if in.Active != nil {
		upd.Active = *in.Active
	}
	ok, err := s.skills.UpdateOwned(ctx, id, businessID, upd)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	s.invalidate(ctx)
	return s.skills.ByID(ctx, id)
}

func (s *SkillSvc) Delete(ctx context.Context, id, businessID string) error {
	existing, err := s.skills.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if existing.BusinessID != businessID {
		return ErrForbidden
	}
	ok, err := s.skills.DeleteOwned(ctx, id, businessID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	s.invalidate(ctx)
	return nil
}

func (s *SkillSvc) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("[skill] cache invalidate: %v", err)
	}
}
