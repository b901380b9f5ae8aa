package repository

import (
	"context"
	"errors"

	"golang-news-aggregator/internal/entity"

	"gorm.io/gorm"
)

// ArticleRepository defines the article operations the pipeline needs.
type ArticleRepository interface {
	// Upsert creates the article or, when its URL already exists,
	// overwrites the stored fields with the freshly scraped ones.
	// Returns whether a new row was created.
	Upsert(ctx context.Context, article *entity.Article) (bool, error)
	ExistsByURL(ctx context.Context, url string) (bool, error)
}

// NewArticleRepository creates a new GORM-based article repository.
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

type articleRepository struct {
	db *gorm.DB
}

// Upsert applies update-or-create semantics keyed by URL: a re-scrape
// always refreshes title, timestamps, author and text of an existing row.
func (r *articleRepository) Upsert(ctx context.Context, article *entity.Article) (bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing entity.Article
		err := tx.Where("url = ?", article.URL).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			created = true
			return tx.Create(article).Error
		}
		if err != nil {
			return err
		}

		article.ID = existing.ID
		article.CreatedAt = existing.CreatedAt
		return tx.Model(&existing).Updates(map[string]interface{}{
			"site":           article.Site,
			"category":       article.Category,
			"title":          article.Title,
			"published_time": article.PublishedTime,
			"modified_time":  article.ModifiedTime,
			"author_id":      article.AuthorID,
			"article_text":   article.ArticleText,
		}).Error
	})
	return created, err
}

// ExistsByURL reports whether an article with the given URL is already stored.
func (r *articleRepository) ExistsByURL(ctx context.Context, url string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Article{}).Where("url = ?", url).Count(&count).Error
	return count > 0, err
}
