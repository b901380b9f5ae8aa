package repository

import (
	"context"

	"golang-news-aggregator/internal/entity"

	"gorm.io/gorm"
)

// ArticleRepository defines CRUD operations for articles and their facts.
type ArticleRepository interface {
	Create(ctx context.Context, article *entity.Article) error
	FindAll(ctx context.Context) ([]entity.Article, error)
	FindByID(ctx context.Context, id uint) (*entity.Article, error)
	Update(ctx context.Context, article *entity.Article) error
	Delete(ctx context.Context, id uint) error

	CreateFact(ctx context.Context, fact *entity.ArticleFact) error
	FindAllFacts(ctx context.Context) ([]entity.ArticleFact, error)
	FindFactByID(ctx context.Context, id uint) (*entity.ArticleFact, error)
	UpdateFact(ctx context.Context, fact *entity.ArticleFact) error
	DeleteFact(ctx context.Context, id uint) error
}

// NewArticleRepository creates a new GORM-based article repository.
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

type articleRepository struct {
	db *gorm.DB
}

func (r *articleRepository) Create(ctx context.Context, article *entity.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *articleRepository) FindAll(ctx context.Context) ([]entity.Article, error) {
	var articles []entity.Article
	if err := r.db.WithContext(ctx).Preload("Author").Order("published_time DESC").Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *articleRepository) FindByID(ctx context.Context, id uint) (*entity.Article, error) {
	var article entity.Article
	if err := r.db.WithContext(ctx).Preload("Author").Preload("Facts").First(&article, id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) Update(ctx context.Context, article *entity.Article) error {
	return r.db.WithContext(ctx).Save(article).Error
}

// Delete removes an article together with its facts and the evidence
// links those facts back, mirroring the schema's cascade rules.
func (r *articleRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_fact_id IN (?)",
			tx.Model(&entity.ArticleFact{}).Select("id").Where("article_id = ?", id),
		).Delete(&entity.EventFactSource{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", id).Delete(&entity.ArticleFact{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Article{}, id).Error
	})
}

func (r *articleRepository) CreateFact(ctx context.Context, fact *entity.ArticleFact) error {
	return r.db.WithContext(ctx).Create(fact).Error
}

func (r *articleRepository) FindAllFacts(ctx context.Context) ([]entity.ArticleFact, error) {
	var facts []entity.ArticleFact
	if err := r.db.WithContext(ctx).Order("id").Find(&facts).Error; err != nil {
		return nil, err
	}
	return facts, nil
}

func (r *articleRepository) FindFactByID(ctx context.Context, id uint) (*entity.ArticleFact, error) {
	var fact entity.ArticleFact
	if err := r.db.WithContext(ctx).First(&fact, id).Error; err != nil {
		return nil, err
	}
	return &fact, nil
}

func (r *articleRepository) UpdateFact(ctx context.Context, fact *entity.ArticleFact) error {
	return r.db.WithContext(ctx).Save(fact).Error
}

func (r *articleRepository) DeleteFact(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_fact_id = ?", id).Delete(&entity.EventFactSource{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.ArticleFact{}, id).Error
	})
}
