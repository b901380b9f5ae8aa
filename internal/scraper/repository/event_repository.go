package repository

import (
	"context"
	"fmt"

	"golang-news-aggregator/internal/entity"
	"golang-news-aggregator/internal/scraper/dto"

	"gorm.io/gorm"
)

// EventRepository persists the fact graph produced by projection.
type EventRepository interface {
	// CreateFactGraph creates one event for the article plus, per fact,
	// the ArticleFact, its mirroring EventFact and the EventFactSource
	// link carrying the contribution weight. All rows are written in one
	// transaction so a crash never leaves a partially linked graph.
	CreateFactGraph(ctx context.Context, article *entity.Article, eventTitle string, facts []dto.Fact, weight float64) (*entity.Event, error)
}

// NewEventRepository creates a new GORM-based event repository.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

type eventRepository struct {
	db *gorm.DB
}

func (r *eventRepository) CreateFactGraph(ctx context.Context, article *entity.Article, eventTitle string, facts []dto.Fact, weight float64) (*entity.Event, error) {
	event := &entity.Event{
		Title:     eventTitle,
		CreatedAt: article.PublishedTime,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(event).Error; err != nil {
			return fmt.Errorf("failed to create event: %w", err)
		}

		for _, fact := range facts {
			articleFact := entity.ArticleFact{
				ArticleID:      article.ID,
				Content:        fact.Content,
				Newsworthiness: fact.Newsworthiness,
			}
			if err := tx.Create(&articleFact).Error; err != nil {
				return fmt.Errorf("failed to create article fact: %w", err)
			}

			eventFact := entity.EventFact{
				EventID:        event.ID,
				Content:        fact.Content,
				Newsworthiness: fact.Newsworthiness,
			}
			if err := tx.Create(&eventFact).Error; err != nil {
				return fmt.Errorf("failed to create event fact: %w", err)
			}

			source := entity.EventFactSource{
				EventFactID:        eventFact.ID,
				ArticleFactID:      articleFact.ID,
				ContributionWeight: weight,
			}
			if err := tx.Create(&source).Error; err != nil {
				return fmt.Errorf("failed to create event fact source: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}
