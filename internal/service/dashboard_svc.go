package service

import (
	"context"

	"github.com/nasir9967/skillbazaar/internal/domain"
	"github.com/nasir9967/skillbazaar/internal/repository"
)

type dashboardStore interface {
	ByBusiness(ctx context.Context, businessID string) ([]domain.Skill, error)
	Latest(ctx context.Context, limit int) ([]domain.Skill, error)
	CountAll(ctx context.Context) (int64, error)
	AvgPriceByBusiness(ctx context.Context, businessID string) (int64, error)
	TopCategories(ctx context.Context, limit int) ([]repository.CategoryCount, error)
}

type DashboardSvc struct {
	skills dashboardStore
}

func NewDashboardSvc(skills dashboardStore) *DashboardSvc {
	return &DashboardSvc{skills: skills}
}

type BusinessDashboard struct {
	Role         string         `json:"role"`
	TotalSkills  int            `json:"totalSkills"`
	AvgPrice     int64          `json:"avgPrice"`
	RecentSkills []domain.Skill `json:"recentSkills"`
}

type CustomerDashboard struct {
	Role              string                     `json:"role"`
	TotalServices     int64                      `json:"totalServices"`
	FeaturedSkills    []domain.Skill             `json:"featuredSkills"`
	PopularCategories []repository.CategoryCount `json:"popularCategories"`
}

func (s *DashboardSvc) ForBusiness(ctx context.Context, businessID string) (*BusinessDashboard, error) {
	mine, err := s.skills.ByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	avg, err := s.skills.AvgPriceByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	recent := mine
	if len(recent) > 5 {
		recent = recent[:5]
	}
	return &BusinessDashboard{
		Role:         string(domain.RoleBusiness),
		TotalSkills:  len(mine),
		AvgPrice:     avg,
		RecentSkills: recent,
	}, nil
}

func (s *DashboardSvc) ForCustomer(ctx context.Context) (*CustomerDashboard, error) {
	total, err := s.skills.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	featured, err := s.skills.Latest(ctx, 6)
	if err != nil {
		return nil, err
	}
	cats, err := s.skills.TopCategories(ctx, 5)
	if err != nil {
		return nil, err
	}
	return &CustomerDashboard{
		Role:              string(domain.RoleCustomer),
		TotalServices:     total,
		FeaturedSkills:    featured,
		PopularCategories: cats,
	}, nil
}
