package facts

import (
	"context"
	"errors"
	"testing"

	"golang-news-aggregator/internal/entity"
	"golang-news-aggregator/internal/scraper/dto"
	"golang-news-aggregator/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("error", "console")
	require.NoError(t, err)
	return log
}

type fakeEventRepo struct {
	article *entity.Article
	title   string
	facts   []dto.Fact
	weight  float64
	calls   int
	err     error
}

func (f *fakeEventRepo) CreateFactGraph(ctx context.Context, article *entity.Article, eventTitle string, facts []dto.Fact, weight float64) (*entity.Event, error) {
	f.article = article
	f.title = eventTitle
	f.facts = facts
	f.weight = weight
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &entity.Event{ID: 7, Title: eventTitle}, nil
}

type fakeAIRepo struct {
	statements []string
	err        error
}

func (f *fakeAIRepo) ExtractFacts(ctx context.Context, text string) ([]string, error) {
	return f.statements, f.err
}

func TestSplit(t *testing.T) {
	text := "Paris is the capital.\n\nBerlin is the capital of Germany."
	facts := Split(text)

	require.Len(t, facts, 2)
	assert.Equal(t, "Paris is the capital.", facts[0].Content)
	assert.InDelta(t, 0.21, facts[0].Newsworthiness, 1e-9)
	assert.Equal(t, "Berlin is the capital of Germany.", facts[1].Content)
	assert.InDelta(t, 0.33, facts[1].Newsworthiness, 1e-9)
}

func TestSplit_KeepsRawSegments(t *testing.T) {
	// Segments are stored untrimmed; only fully blank lines are dropped.
	facts := Split("  padded statement  \n\t\n")
	require.Len(t, facts, 1)
	assert.Equal(t, "  padded statement  ", facts[0].Content)
}

func TestScore_CountsRunesNotBytes(t *testing.T) {
	assert.InDelta(t, 0.05, Score("héllo"), 1e-9)
}

func TestProject_NaiveMode(t *testing.T) {
	repo := &fakeEventRepo{}
	p := NewProjector(newTestLogger(t), repo, nil)

	article := &entity.Article{
		URL:         "https://example.com/a",
		Title:       "Quake Strikes",
		ArticleText: "First paragraph.\nSecond paragraph.",
	}
	require.NoError(t, p.Project(context.Background(), article))

	require.Equal(t, 1, repo.calls)
	assert.Equal(t, "Quake Strikes", repo.title)
	assert.Equal(t, DefaultContributionWeight, repo.weight)
	require.Len(t, repo.facts, 2)
	assert.Equal(t, "First paragraph.", repo.facts[0].Content)
}

func TestProject_EmptyTextPersistsNothing(t *testing.T) {
	repo := &fakeEventRepo{}
	p := NewProjector(newTestLogger(t), repo, nil)

	article := &entity.Article{URL: "https://example.com/a", ArticleText: "\n\n"}
	require.NoError(t, p.Project(context.Background(), article))
	assert.Equal(t, 0, repo.calls)
}

func TestProject_AIMode(t *testing.T) {
	repo := &fakeEventRepo{}
	ai := &fakeAIRepo{statements: []string{"A quake struck.", "", "No casualties."}}
	p := NewProjector(newTestLogger(t), repo, ai)

	article := &entity.Article{URL: "https://example.com/a", Title: "T", ArticleText: "irrelevant"}
	require.NoError(t, p.Project(context.Background(), article))

	require.Len(t, repo.facts, 2)
	assert.Equal(t, "A quake struck.", repo.facts[0].Content)
	assert.Equal(t, "No casualties.", repo.facts[1].Content)
}

func TestProject_AIErrorAborts(t *testing.T) {
	repo := &fakeEventRepo{}
	ai := &fakeAIRepo{err: errors.New("model unavailable")}
	p := NewProjector(newTestLogger(t), repo, ai)

	article := &entity.Article{URL: "https://example.com/a", ArticleText: "text"}
	err := p.Project(context.Background(), article)
	require.Error(t, err)
	assert.Equal(t, 0, repo.calls)
}

func TestProject_StorageErrorPropagates(t *testing.T) {
	repo := &fakeEventRepo{err: errors.New("db down")}
	p := NewProjector(newTestLogger(t), repo, nil)

	article := &entity.Article{URL: "https://example.com/a", ArticleText: "text"}
	assert.Error(t, p.Project(context.Background(), article))
}
