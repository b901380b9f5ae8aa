package repository

import (
	"context"

	"golang-news-aggregator/internal/entity"

	"gorm.io/gorm"
)

// NewsOutletRepository defines the outlet operations the pipeline needs.
type NewsOutletRepository interface {
	GetOrCreate(ctx context.Context, name, url string) (*entity.NewsOutlet, error)
}

// NewNewsOutletRepository creates a new GORM-based outlet repository.
func NewNewsOutletRepository(db *gorm.DB) NewsOutletRepository {
	return &newsOutletRepository{db: db}
}

type newsOutletRepository struct {
	db *gorm.DB
}

// GetOrCreate returns the outlet with the given name, creating it with the
// supplied URL if it does not exist yet. Outlet identity is the name.
func (r *newsOutletRepository) GetOrCreate(ctx context.Context, name, url string) (*entity.NewsOutlet, error) {
	var outlet entity.NewsOutlet
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		Attrs(entity.NewsOutlet{URL: url}).
		FirstOrCreate(&outlet).Error
	if err != nil {
		return nil, err
	}
	return &outlet, nil
}
