package repository

import (
	"context"
	"errors"

	"golang-news-aggregator/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ScrapingLogRepository records crawl sessions, one row per outlet.
type ScrapingLogRepository interface {
	// FindByOutlet returns the log entry for the outlet, or nil when the
	// outlet has never been crawled.
	FindByOutlet(ctx context.Context, outletID uint) (*entity.ScrapingLog, error)
	Upsert(ctx context.Context, log *entity.ScrapingLog) error
}

// NewScrapingLogRepository creates a new GORM-based scraping log repository.
func NewScrapingLogRepository(db *gorm.DB) ScrapingLogRepository {
	return &scrapingLogRepository{db: db}
}

type scrapingLogRepository struct {
	db *gorm.DB
}

func (r *scrapingLogRepository) FindByOutlet(ctx context.Context, outletID uint) (*entity.ScrapingLog, error) {
	var log entity.ScrapingLog
	err := r.db.WithContext(ctx).Where("outlet_id = ?", outletID).First(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// Upsert overwrites the outlet's log row with the window just covered.
func (r *scrapingLogRepository) Upsert(ctx context.Context, log *entity.ScrapingLog) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "outlet_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"start_date", "end_date", "last_scraped", "categories", "stats",
		}),
	}).Create(log).Error
}
