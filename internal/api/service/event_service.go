package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang-news-aggregator/internal/api/dto"
	"golang-news-aggregator/internal/api/repository"
	"golang-news-aggregator/internal/entity"
	"golang-news-aggregator/pkg/common"
	"golang-news-aggregator/pkg/logger"
	"golang-news-aggregator/pkg/redis"
)

// EventService defines the interface for managing events, event facts and
// evidence links. Event detail responses carry the whole nested fact
// graph and are expensive to assemble, so they are cached in Redis.
type EventService interface {
	Create(ctx context.Context, req *dto.EventRequest) (*entity.Event, error)
	GetAll(ctx context.Context) ([]entity.Event, error)
	GetByID(ctx context.Context, id uint) (*entity.Event, error)
	Update(ctx context.Context, id uint, req *dto.EventRequest) (*entity.Event, error)
	Delete(ctx context.Context, id uint) error

	CreateFact(ctx context.Context, req *dto.EventFactRequest) (*entity.EventFact, error)
	GetFactByID(ctx context.Context, id uint) (*entity.EventFact, error)
	UpdateFact(ctx context.Context, id uint, req *dto.EventFactRequest) (*entity.EventFact, error)
	DeleteFact(ctx context.Context, id uint) error

	CreateSource(ctx context.Context, req *dto.EventFactSourceRequest) (*entity.EventFactSource, error)
	GetSourceByID(ctx context.Context, id uint) (*entity.EventFactSource, error)
	UpdateSource(ctx context.Context, id uint, req *dto.EventFactSourceRequest) (*entity.EventFactSource, error)
	DeleteSource(ctx context.Context, id uint) error
}

// NewEventService creates a new event service. redisClient may be nil to
// disable caching.
func NewEventService(repo repository.EventRepository, redisClient *redis.Client, cacheTTL time.Duration, logger *logger.Logger) EventService {
	return &eventService{
		repo:        repo,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
		logger:      logger,
	}
}

type eventService struct {
	repo        repository.EventRepository
	redisClient *redis.Client
	cacheTTL    time.Duration
	logger      *logger.Logger
}

func (s *eventService) Create(ctx context.Context, req *dto.EventRequest) (*entity.Event, error) {
	event := &entity.Event{Title: req.Title}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) GetAll(ctx context.Context) ([]entity.Event, error) {
	return s.repo.FindAll(ctx)
}

func (s *eventService) GetByID(ctx context.Context, id uint) (*entity.Event, error) {
	if cached := s.cacheGet(ctx, id); cached != nil {
		return cached, nil
	}

	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, event)
	return event, nil
}

func (s *eventService) Update(ctx context.Context, id uint, req *dto.EventRequest) (*entity.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	event.Title = req.Title
	if err := s.repo.Update(ctx, event); err != nil {
		return nil, err
	}
	s.cacheInvalidate(ctx, id)
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cacheInvalidate(ctx, id)
	return nil
}

func (s *eventService) CreateFact(ctx context.Context, req *dto.EventFactRequest) (*entity.EventFact, error) {
	fact := &entity.EventFact{
		EventID:        req.EventID,
		Content:        req.Content,
		Newsworthiness: req.Newsworthiness,
	}
	if err := s.repo.CreateFact(ctx, fact); err != nil {
		return nil, err
	}
	s.cacheInvalidate(ctx, req.EventID)
	return fact, nil
}

func (s *eventService) GetFactByID(ctx context.Context, id uint) (*entity.EventFact, error) {
	return s.repo.FindFactByID(ctx, id)
}

func (s *eventService) UpdateFact(ctx context.Context, id uint, req *dto.EventFactRequest) (*entity.EventFact, error) {
	fact, err := s.repo.FindFactByID(ctx, id)
	if err != nil {
		return nil, err
	}
	fact.EventID = req.EventID
	fact.Content = req.Content
	fact.Newsworthiness = req.Newsworthiness
	if err := s.repo.UpdateFact(ctx, fact); err != nil {
		return nil, err
	}
	s.cacheInvalidate(ctx, fact.EventID)
	return fact, nil
}

func (s *eventService) DeleteFact(ctx context.Context, id uint) error {
	fact, err := s.repo.FindFactByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteFact(ctx, id); err != nil {
		return err
	}
	s.cacheInvalidate(ctx, fact.EventID)
	return nil
}

func (s *eventService) CreateSource(ctx context.Context, req *dto.EventFactSourceRequest) (*entity.EventFactSource, error) {
	weight := req.ContributionWeight
	if weight == 0 {
		weight = 1.0
	}
	source := &entity.EventFactSource{
		EventFactID:        req.EventFactID,
		ArticleFactID:      req.ArticleFactID,
		ContributionWeight: weight,
	}
	if err := s.repo.CreateSource(ctx, source); err != nil {
		return nil, err
	}
	return source, nil
}

func (s *eventService) GetSourceByID(ctx context.Context, id uint) (*entity.EventFactSource, error) {
	return s.repo.FindSourceByID(ctx, id)
}

func (s *eventService) UpdateSource(ctx context.Context, id uint, req *dto.EventFactSourceRequest) (*entity.EventFactSource, error) {
	source, err := s.repo.FindSourceByID(ctx, id)
	if err != nil {
		return nil, err
	}
	source.EventFactID = req.EventFactID
	source.ArticleFactID = req.ArticleFactID
	source.ContributionWeight = req.ContributionWeight
	if err := s.repo.UpdateSource(ctx, source); err != nil {
		return nil, err
	}
	return source, nil
}

func (s *eventService) DeleteSource(ctx context.Context, id uint) error {
	return s.repo.DeleteSource(ctx, id)
}

func (s *eventService) cacheKey(id uint) string {
	return fmt.Sprintf("%s:%d", common.RedisKeyEventDetail, id)
}

func (s *eventService) cacheGet(ctx context.Context, id uint) *entity.Event {
	if s.redisClient == nil {
		return nil
	}
	data, err := s.redisClient.Get(ctx, s.cacheKey(id)).Bytes()
	if err != nil {
		return nil
	}
	var event entity.Event
	if err := json.Unmarshal(data, &event); err != nil {
		s.logger.Warn("Failed to decode cached event", logger.ErrorField(err))
		return nil
	}
	return &event
}

func (s *eventService) cacheSet(ctx context.Context, event *entity.Event) {
	if s.redisClient == nil {
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	if err := s.redisClient.Set(ctx, s.cacheKey(event.ID), data, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("Failed to cache event", logger.ErrorField(err))
	}
}

func (s *eventService) cacheInvalidate(ctx context.Context, id uint) {
	if s.redisClient == nil {
		return
	}
	if err := s.redisClient.Del(ctx, s.cacheKey(id)).Err(); err != nil {
		s.logger.Warn("Failed to invalidate event cache", logger.ErrorField(err))
	}
}
