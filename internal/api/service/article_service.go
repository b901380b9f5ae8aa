package service

import (
	"context"

	"golang-news-aggregator/internal/api/dto"
	"golang-news-aggregator/internal/api/repository"
	"golang-news-aggregator/internal/entity"
	"golang-news-aggregator/pkg/logger"
)

// ArticleService defines the interface for managing articles and their
// facts.
type ArticleService interface {
	Create(ctx context.Context, req *dto.ArticleRequest) (*entity.Article, error)
	GetAll(ctx context.Context) ([]entity.Article, error)
	GetByID(ctx context.Context, id uint) (*entity.Article, error)
	Update(ctx context.Context, id uint, req *dto.ArticleRequest) (*entity.Article, error)
	Delete(ctx context.Context, id uint) error

	CreateFact(ctx context.Context, req *dto.ArticleFactRequest) (*entity.ArticleFact, error)
	GetAllFacts(ctx context.Context) ([]entity.ArticleFact, error)
	GetFactByID(ctx context.Context, id uint) (*entity.ArticleFact, error)
	UpdateFact(ctx context.Context, id uint, req *dto.ArticleFactRequest) (*entity.ArticleFact, error)
	DeleteFact(ctx context.Context, id uint) error
}

// NewArticleService creates a new article service.
func NewArticleService(repo repository.ArticleRepository, logger *logger.Logger) ArticleService {
	return &articleService{repo: repo, logger: logger}
}

type articleService struct {
	repo   repository.ArticleRepository
	logger *logger.Logger
}

func (s *articleService) Create(ctx context.Context, req *dto.ArticleRequest) (*entity.Article, error) {
	article := &entity.Article{
		Site:          req.Site,
		Category:      req.Category,
		URL:           req.URL,
		Title:         req.Title,
		PublishedTime: req.PublishedTime,
		ModifiedTime:  req.ModifiedTime,
		AuthorID:      req.AuthorID,
		ArticleText:   req.ArticleText,
	}
	if err := s.repo.Create(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *articleService) GetAll(ctx context.Context) ([]entity.Article, error) {
	return s.repo.FindAll(ctx)
}

func (s *articleService) GetByID(ctx context.Context, id uint) (*entity.Article, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *articleService) Update(ctx context.Context, id uint, req *dto.ArticleRequest) (*entity.Article, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	article.Site = req.Site
	article.Category = req.Category
	article.URL = req.URL
	article.Title = req.Title
	article.PublishedTime = req.PublishedTime
	article.ModifiedTime = req.ModifiedTime
	article.AuthorID = req.AuthorID
	article.ArticleText = req.ArticleText
	if err := s.repo.Update(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *articleService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *articleService) CreateFact(ctx context.Context, req *dto.ArticleFactRequest) (*entity.ArticleFact, error) {
	fact := &entity.ArticleFact{
		ArticleID:      req.ArticleID,
		Content:        req.Content,
		Newsworthiness: req.Newsworthiness,
	}
	if err := s.repo.CreateFact(ctx, fact); err != nil {
		return nil, err
	}
	return fact, nil
}

func (s *articleService) GetAllFacts(ctx context.Context) ([]entity.ArticleFact, error) {
	return s.repo.FindAllFacts(ctx)
}

func (s *articleService) GetFactByID(ctx context.Context, id uint) (*entity.ArticleFact, error) {
	return s.repo.FindFactByID(ctx, id)
}

func (s *articleService) UpdateFact(ctx context.Context, id uint, req *dto.ArticleFactRequest) (*entity.ArticleFact, error) {
	fact, err := s.repo.FindFactByID(ctx, id)
	if err != nil {
		return nil, err
	}
	fact.ArticleID = req.ArticleID
	fact.Content = req.Content
	fact.Newsworthiness = req.Newsworthiness
	if err := s.repo.UpdateFact(ctx, fact); err != nil {
		return nil, err
	}
	return fact, nil
}

func (s *articleService) DeleteFact(ctx context.Context, id uint) error {
	return s.repo.DeleteFact(ctx, id)
}
