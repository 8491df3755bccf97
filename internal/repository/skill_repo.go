package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nasir9967/skillbazaar/internal/domain"
)

type SkillRepo struct{ db *gorm.DB }

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db: db}
}

func (r *SkillRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Skill{})
}

func (r *SkillRepo) Create(ctx context.Context, s *domain.Skill) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return translate(r.db.WithContext(ctx).Create(s).Error)
}

func (r *SkillRepo) ByID(ctx context.Context, id string) (*domain.Skill, error) {
	var s domain.Skill
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *SkillRepo) ByIDs(ctx context.Context, ids []string) (map[string]domain.Skill, error) {
	out := make(map[string]domain.Skill, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var skills []domain.Skill
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&skills).Error; err != nil {
		return nil, err
	}
	for _, s := range skills {
		out[s.ID] = s
	}
	return out, nil
}

// Latest returns the newest listings, capped.
func (r *SkillRepo) Latest(ctx context.Context, limit int) ([]domain.Skill, error) {
	if limit <= 0 || limit > 50 {
		limit = 50
	}
	var out []domain.Skill
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *SkillRepo) ByBusiness(ctx context.Context, businessID string) ([]domain.Skill, error) {
	var out []domain.Skill
	err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// UpdateOwned applies the mutation only when businessID owns the row;
// the flag reports whether anything matched.
func (r *SkillRepo) UpdateOwned(ctx context.Context, id, businessID string, s *domain.Skill) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Skill{}).
		Where("id = ? AND business_id = ?", id, businessID).
		Updates(map[string]any{
			"title":       s.Title,
			"description": s.Description,
			"price":       s.Price,
			"category":    s.Category,
			"location":    s.Location,
			"tags":        s.Tags,
			"active":      s.Active,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *SkillRepo) DeleteOwned(ctx context.Context, id, businessID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", id, businessID).
		Delete(&domain.Skill{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *SkillRepo) CountAll(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Skill{}).Count(&n).Error
	return n, err
}

func (r *SkillRepo) AvgPriceByBusiness(ctx context.Context, businessID string) (int64, error) {
	var avg *float64
	err := r.db.WithContext(ctx).
		Model(&domain.Skill{}).
		Where("business_id = ?", businessID).
		Select("AVG(price)").
		Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return int64(*avg + 0.5), nil
}

type CategoryCount struct {
	Category string
	Count    int64
}

func (r *SkillRepo) TopCategories(ctx context.Context, limit int) ([]CategoryCount, error) {
	var out []CategoryCount
	err := r.db.WithContext(ctx).
		Model(&domain.Skill{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("count DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}
