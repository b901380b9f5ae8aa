package repository

import (
	"context"

	"golang-news-aggregator/internal/entity"

	"gorm.io/gorm"
)

// AuthorRepository defines the author operations the pipeline needs.
type AuthorRepository interface {
	GetOrCreate(ctx context.Context, name string) (*entity.Author, error)
}

// NewAuthorRepository creates a new GORM-based author repository.
func NewAuthorRepository(db *gorm.DB) AuthorRepository {
	return &authorRepository{db: db}
}

type authorRepository struct {
	db *gorm.DB
}

// GetOrCreate returns the author with the given display name, creating it
// if absent. Name is the only key the byline gives us, so distinct people
// sharing a name collide here; stronger identity comes in through the
// curated external_id, never through this path.
func (r *authorRepository) GetOrCreate(ctx context.Context, name string) (*entity.Author, error) {
	var author entity.Author
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		FirstOrCreate(&author, entity.Author{Name: name}).Error
	if err != nil {
		return nil, err
	}
	return &author, nil
}
