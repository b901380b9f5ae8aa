package repository

import (
	"context"

	"golang-news-aggregator/internal/entity"

	"gorm.io/gorm"
)

// EventRepository defines CRUD operations for events, their facts and the
// evidence links between event facts and article facts.
type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	FindAll(ctx context.Context) ([]entity.Event, error)
	// FindByID loads the full nested graph: facts, their sources, and
	// each source's article fact.
	FindByID(ctx context.Context, id uint) (*entity.Event, error)
	Update(ctx context.Context, event *entity.Event) error
	Delete(ctx context.Context, id uint) error

	CreateFact(ctx context.Context, fact *entity.EventFact) error
	FindFactByID(ctx context.Context, id uint) (*entity.EventFact, error)
	UpdateFact(ctx context.Context, fact *entity.EventFact) error
	DeleteFact(ctx context.Context, id uint) error

	CreateSource(ctx context.Context, source *entity.EventFactSource) error
	FindSourceByID(ctx context.Context, id uint) (*entity.EventFactSource, error)
	UpdateSource(ctx context.Context, source *entity.EventFactSource) error
	DeleteSource(ctx context.Context, id uint) error
}

// NewEventRepository creates a new GORM-based event repository.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

type eventRepository struct {
	db *gorm.DB
}

func (r *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) FindAll(ctx context.Context) ([]entity.Event, error) {
	var events []entity.Event
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) FindByID(ctx context.Context, id uint) (*entity.Event, error) {
	var event entity.Event
	err := r.db.WithContext(ctx).
		Preload("Facts").
		Preload("Facts.Sources").
		Preload("Facts.Sources.ArticleFact").
		First(&event, id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) Update(ctx context.Context, event *entity.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *eventRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_fact_id IN (?)",
			tx.Model(&entity.EventFact{}).Select("id").Where("event_id = ?", id),
		).Delete(&entity.EventFactSource{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&entity.EventFact{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Event{}, id).Error
	})
}

func (r *eventRepository) CreateFact(ctx context.Context, fact *entity.EventFact) error {
	return r.db.WithContext(ctx).Create(fact).Error
}

func (r *eventRepository) FindFactByID(ctx context.Context, id uint) (*entity.EventFact, error) {
	var fact entity.EventFact
	if err := r.db.WithContext(ctx).Preload("Sources").First(&fact, id).Error; err != nil {
		return nil, err
	}
	return &fact, nil
}

func (r *eventRepository) UpdateFact(ctx context.Context, fact *entity.EventFact) error {
	return r.db.WithContext(ctx).Save(fact).Error
}

func (r *eventRepository) DeleteFact(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_fact_id = ?", id).Delete(&entity.EventFactSource{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.EventFact{}, id).Error
	})
}

func (r *eventRepository) CreateSource(ctx context.Context, source *entity.EventFactSource) error {
	return r.db.WithContext(ctx).Create(source).Error
}

func (r *eventRepository) FindSourceByID(ctx context.Context, id uint) (*entity.EventFactSource, error) {
	var source entity.EventFactSource
	if err := r.db.WithContext(ctx).Preload("ArticleFact").First(&source, id).Error; err != nil {
		return nil, err
	}
	return &source, nil
}

func (r *eventRepository) UpdateSource(ctx context.Context, source *entity.EventFactSource) error {
	return r.db.WithContext(ctx).Save(source).Error
}

func (r *eventRepository) DeleteSource(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.EventFactSource{}, id).Error
}
