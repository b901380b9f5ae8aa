package facts

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang-news-aggregator/internal/entity"
	"golang-news-aggregator/internal/scraper/dto"
	"golang-news-aggregator/internal/scraper/repository"
	"golang-news-aggregator/pkg/logger"
)

// DefaultContributionWeight is the weight an ingestion-created source link
// carries; bulk generators may pass other values.
const DefaultContributionWeight = 1.0

// Projector maps article body text into the Article/Event fact graph.
type Projector interface {
	Project(ctx context.Context, article *entity.Article) error
}

// NewProjector creates a projector. aiRepo may be nil, in which case the
// naive paragraph splitter is used instead of AI-assisted extraction.
func NewProjector(log *logger.Logger, eventRepo repository.EventRepository, aiRepo repository.AIRepository) Projector {
	return &projector{
		logger:    log,
		eventRepo: eventRepo,
		aiRepo:    aiRepo,
	}
}

type projector struct {
	logger    *logger.Logger
	eventRepo repository.EventRepository
	aiRepo    repository.AIRepository
}

// Project extracts facts from the article text and persists the graph:
// one event per article (first-seen policy, no cross-article clustering),
// and per fact an ArticleFact, an EventFact with the same content and
// score, and an EventFactSource with the default weight.
func (p *projector) Project(ctx context.Context, article *entity.Article) error {
	extracted, err := p.extract(ctx, article.ArticleText)
	if err != nil {
		return fmt.Errorf("failed to extract facts for %s: %w", article.URL, err)
	}
	if len(extracted) == 0 {
		p.logger.Warn("No facts extracted from article", logger.StringField("url", article.URL))
		return nil
	}

	event, err := p.eventRepo.CreateFactGraph(ctx, article, article.Title, extracted, DefaultContributionWeight)
	if err != nil {
		return fmt.Errorf("failed to persist fact graph for %s: %w", article.URL, err)
	}

	p.logger.Info("Projected article into fact graph",
		logger.StringField("url", article.URL),
		logger.IntField("event_id", int(event.ID)),
		logger.IntField("facts", len(extracted)),
	)
	return nil
}

func (p *projector) extract(ctx context.Context, text string) ([]dto.Fact, error) {
	if p.aiRepo == nil {
		return Split(text), nil
	}

	statements, err := p.aiRepo.ExtractFacts(ctx, text)
	if err != nil {
		return nil, err
	}

	facts := make([]dto.Fact, 0, len(statements))
	for _, s := range statements {
		if strings.TrimSpace(s) == "" {
			continue
		}
		facts = append(facts, dto.Fact{Content: s, Newsworthiness: Score(s)})
	}
	return facts, nil
}

// Split is the naive extraction mode: every non-blank newline-separated
// segment of the body text is one fact.
func Split(text string) []dto.Fact {
	var facts []dto.Fact
	for _, segment := range strings.Split(text, "\n") {
		if strings.TrimSpace(segment) == "" {
			continue
		}
		facts = append(facts, dto.Fact{Content: segment, Newsworthiness: Score(segment)})
	}
	return facts
}

// Score is the placeholder newsworthiness heuristic: rune count divided by
// 100, on the theory that longer statements carry more detail. Replace
// with a calibrated model before trusting the numbers.
func Score(statement string) float64 {
	return float64(utf8.RuneCountInString(statement)) / 100
}
