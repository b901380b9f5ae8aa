package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"golang-news-aggregator/internal/entity"
	"golang-news-aggregator/internal/scraper/facts"
	"golang-news-aggregator/pkg/logger"

	"gorm.io/gorm"
)

// SeedService populates the database with demo data for frontend and API
// development: outlets, authors, events and articles with fully linked
// fact graphs carrying randomized contribution weights.
type SeedService interface {
	Seed(ctx context.Context) error
}

// NewSeedService creates a new seed service.
func NewSeedService(db *gorm.DB, log *logger.Logger) SeedService {
	return &seedService{db: db, logger: log}
}

type seedService struct {
	db     *gorm.DB
	logger *logger.Logger
}

// Seed wipes existing content and repopulates it. Destructive; meant for
// development databases only.
func (s *seedService) Seed(ctx context.Context) error {
	s.logger.Info("Clearing existing data")

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tables := []interface{}{
			&entity.EventFactSource{},
			&entity.EventFact{},
			&entity.ArticleFact{},
			&entity.Event{},
			&entity.Article{},
			&entity.AuthorOutletAssociation{},
			&entity.ScrapingLog{},
			&entity.Author{},
			&entity.NewsOutlet{},
		}
		for _, table := range tables {
			if err := tx.Where("1 = 1").Delete(table).Error; err != nil {
				return fmt.Errorf("failed to clear table: %w", err)
			}
		}

		outlets := make([]*entity.NewsOutlet, 0, 5)
		for i := 0; i < 5; i++ {
			outlet := &entity.NewsOutlet{
				Name: fmt.Sprintf("News Outlet %d", i+1),
				URL:  fmt.Sprintf("https://newsoutlet%d.com", i+1),
			}
			if err := tx.Create(outlet).Error; err != nil {
				return err
			}
			outlets = append(outlets, outlet)
		}

		authors := make([]*entity.Author, 0, 10)
		for i := 0; i < 10; i++ {
			author := &entity.Author{
				Name: fmt.Sprintf("Author %d", i+1),
				Bio:  fmt.Sprintf("Bio for Author %d", i+1),
			}
			if err := tx.Create(author).Error; err != nil {
				return err
			}
			authors = append(authors, author)
		}

		for i := 0; i < 5; i++ {
			if err := s.seedEvent(tx, i, outlets, authors); err != nil {
				return err
			}
		}

		s.logger.Info("Seeded demo data",
			logger.IntField("outlets", len(outlets)),
			logger.IntField("authors", len(authors)),
			logger.IntField("events", 5),
		)
		return nil
	})
}

func (s *seedService) seedEvent(tx *gorm.DB, index int, outlets []*entity.NewsOutlet, authors []*entity.Author) error {
	event := &entity.Event{
		Title:     fmt.Sprintf("Dummy Event %d", index+1),
		CreatedAt: time.Now().UTC(),
	}
	if err := tx.Create(event).Error; err != nil {
		return err
	}

	outlet := outlets[rand.Intn(len(outlets))]
	author := authors[rand.Intn(len(authors))]

	article := &entity.Article{
		Site:          outlet.Name,
		Category:      "demo",
		URL:           fmt.Sprintf("%s/articles/dummy-event-%d", outlet.URL, index+1),
		Title:         event.Title,
		PublishedTime: time.Now().UTC(),
		ModifiedTime:  time.Now().UTC(),
		AuthorID:      &author.ID,
		ArticleText:   fmt.Sprintf("Reporting on dummy event %d.", index+1),
	}
	if err := tx.Create(article).Error; err != nil {
		return err
	}

	factCount := 3 + rand.Intn(4)
	for j := 0; j < factCount; j++ {
		content := fmt.Sprintf("Fact %d about dummy event %d.", j+1, index+1)
		score := facts.Score(content)

		articleFact := &entity.ArticleFact{
			ArticleID:      article.ID,
			Content:        content,
			Newsworthiness: score,
		}
		if err := tx.Create(articleFact).Error; err != nil {
			return err
		}

		eventFact := &entity.EventFact{
			EventID:        event.ID,
			Content:        content,
			Newsworthiness: score,
		}
		if err := tx.Create(eventFact).Error; err != nil {
			return err
		}

		// Randomized weights exercise the non-default contribution path.
		source := &entity.EventFactSource{
			EventFactID:        eventFact.ID,
			ArticleFactID:      articleFact.ID,
			ContributionWeight: 0.5 + rand.Float64()*0.5,
		}
		if err := tx.Create(source).Error; err != nil {
			return err
		}
	}
	return nil
}
