package repository

import (
	"context"

	"golang-news-aggregator/internal/entity"

	"gorm.io/gorm"
)

// ScrapingLogRepository exposes crawl session records, read-only: logs are
// written by the ingestion pipeline, never through the API.
type ScrapingLogRepository interface {
	FindAll(ctx context.Context) ([]entity.ScrapingLog, error)
	FindByID(ctx context.Context, id uint) (*entity.ScrapingLog, error)
}

// NewScrapingLogRepository creates a new GORM-based scraping log repository.
func NewScrapingLogRepository(db *gorm.DB) ScrapingLogRepository {
	return &scrapingLogRepository{db: db}
}

type scrapingLogRepository struct {
	db *gorm.DB
}

func (r *scrapingLogRepository) FindAll(ctx context.Context) ([]entity.ScrapingLog, error) {
	var logs []entity.ScrapingLog
	if err := r.db.WithContext(ctx).Preload("Outlet").Order("last_scraped DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *scrapingLogRepository) FindByID(ctx context.Context, id uint) (*entity.ScrapingLog, error) {
	var log entity.ScrapingLog
	if err := r.db.WithContext(ctx).Preload("Outlet").First(&log, id).Error; err != nil {
		return nil, err
	}
	return &log, nil
}
