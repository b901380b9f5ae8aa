package repository

import (
	"context"

	"golang-news-aggregator/internal/entity"

	"gorm.io/gorm"
)

// NewsOutletRepository defines CRUD operations for news outlets.
type NewsOutletRepository interface {
	Create(ctx context.Context, outlet *entity.NewsOutlet) error
	FindAll(ctx context.Context) ([]entity.NewsOutlet, error)
	FindByID(ctx context.Context, id uint) (*entity.NewsOutlet, error)
	Update(ctx context.Context, outlet *entity.NewsOutlet) error
	Delete(ctx context.Context, id uint) error
}

// NewNewsOutletRepository creates a new GORM-based outlet repository.
func NewNewsOutletRepository(db *gorm.DB) NewsOutletRepository {
	return &newsOutletRepository{db: db}
}

type newsOutletRepository struct {
	db *gorm.DB
}

func (r *newsOutletRepository) Create(ctx context.Context, outlet *entity.NewsOutlet) error {
	return r.db.WithContext(ctx).Create(outlet).Error
}

func (r *newsOutletRepository) FindAll(ctx context.Context) ([]entity.NewsOutlet, error) {
	var outlets []entity.NewsOutlet
	if err := r.db.WithContext(ctx).Order("id").Find(&outlets).Error; err != nil {
		return nil, err
	}
	return outlets, nil
}

func (r *newsOutletRepository) FindByID(ctx context.Context, id uint) (*entity.NewsOutlet, error) {
	var outlet entity.NewsOutlet
	if err := r.db.WithContext(ctx).First(&outlet, id).Error; err != nil {
		return nil, err
	}
	return &outlet, nil
}

func (r *newsOutletRepository) Update(ctx context.Context, outlet *entity.NewsOutlet) error {
	return r.db.WithContext(ctx).Save(outlet).Error
}

func (r *newsOutletRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.NewsOutlet{}, id).Error
}
