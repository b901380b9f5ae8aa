package repository

import (
	"context"

	"golang-news-aggregator/internal/entity"

	"gorm.io/gorm"
)

// AuthorRepository defines CRUD operations for authors and their outlet
// associations.
type AuthorRepository interface {
	Create(ctx context.Context, author *entity.Author) error
	FindAll(ctx context.Context) ([]entity.Author, error)
	FindByID(ctx context.Context, id uint) (*entity.Author, error)
	Update(ctx context.Context, author *entity.Author) error
	Delete(ctx context.Context, id uint) error

	CreateAssociation(ctx context.Context, assoc *entity.AuthorOutletAssociation) error
	FindAllAssociations(ctx context.Context) ([]entity.AuthorOutletAssociation, error)
	FindAssociationByID(ctx context.Context, id uint) (*entity.AuthorOutletAssociation, error)
	UpdateAssociation(ctx context.Context, assoc *entity.AuthorOutletAssociation) error
	DeleteAssociation(ctx context.Context, id uint) error
}

// NewAuthorRepository creates a new GORM-based author repository.
func NewAuthorRepository(db *gorm.DB) AuthorRepository {
	return &authorRepository{db: db}
}

type authorRepository struct {
	db *gorm.DB
}

func (r *authorRepository) Create(ctx context.Context, author *entity.Author) error {
	return r.db.WithContext(ctx).Create(author).Error
}

func (r *authorRepository) FindAll(ctx context.Context) ([]entity.Author, error) {
	var authors []entity.Author
	if err := r.db.WithContext(ctx).Order("id").Find(&authors).Error; err != nil {
		return nil, err
	}
	return authors, nil
}

func (r *authorRepository) FindByID(ctx context.Context, id uint) (*entity.Author, error) {
	var author entity.Author
	if err := r.db.WithContext(ctx).Preload("OutletAssociations").First(&author, id).Error; err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *authorRepository) Update(ctx context.Context, author *entity.Author) error {
	return r.db.WithContext(ctx).Save(author).Error
}

func (r *authorRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("author_id = ?", id).Delete(&entity.AuthorOutletAssociation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Author{}, id).Error
	})
}

func (r *authorRepository) CreateAssociation(ctx context.Context, assoc *entity.AuthorOutletAssociation) error {
	return r.db.WithContext(ctx).Create(assoc).Error
}

func (r *authorRepository) FindAllAssociations(ctx context.Context) ([]entity.AuthorOutletAssociation, error) {
	var assocs []entity.AuthorOutletAssociation
	if err := r.db.WithContext(ctx).Preload("Author").Preload("Outlet").Order("id").Find(&assocs).Error; err != nil {
		return nil, err
	}
	return assocs, nil
}

func (r *authorRepository) FindAssociationByID(ctx context.Context, id uint) (*entity.AuthorOutletAssociation, error) {
	var assoc entity.AuthorOutletAssociation
	if err := r.db.WithContext(ctx).Preload("Author").Preload("Outlet").First(&assoc, id).Error; err != nil {
		return nil, err
	}
	return &assoc, nil
}

func (r *authorRepository) UpdateAssociation(ctx context.Context, assoc *entity.AuthorOutletAssociation) error {
	return r.db.WithContext(ctx).Save(assoc).Error
}

func (r *authorRepository) DeleteAssociation(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.AuthorOutletAssociation{}, id).Error
}
