package service

import (
	"context"

	"golang-news-aggregator/internal/api/dto"
	"golang-news-aggregator/internal/api/repository"
	"golang-news-aggregator/internal/entity"
	"golang-news-aggregator/pkg/logger"
)

// AuthorService defines the interface for managing authors and their
// outlet associations.
type AuthorService interface {
	Create(ctx context.Context, req *dto.AuthorRequest) (*entity.Author, error)
	GetAll(ctx context.Context) ([]entity.Author, error)
	GetByID(ctx context.Context, id uint) (*entity.Author, error)
	Update(ctx context.Context, id uint, req *dto.AuthorRequest) (*entity.Author, error)
	Delete(ctx context.Context, id uint) error

	CreateAssociation(ctx context.Context, req *dto.AssociationRequest) (*entity.AuthorOutletAssociation, error)
	GetAllAssociations(ctx context.Context) ([]entity.AuthorOutletAssociation, error)
	GetAssociationByID(ctx context.Context, id uint) (*entity.AuthorOutletAssociation, error)
	UpdateAssociation(ctx context.Context, id uint, req *dto.AssociationRequest) (*entity.AuthorOutletAssociation, error)
	DeleteAssociation(ctx context.Context, id uint) error
}

// NewAuthorService creates a new author service.
func NewAuthorService(repo repository.AuthorRepository, logger *logger.Logger) AuthorService {
	return &authorService{repo: repo, logger: logger}
}

type authorService struct {
	repo   repository.AuthorRepository
	logger *logger.Logger
}

func (s *authorService) Create(ctx context.Context, req *dto.AuthorRequest) (*entity.Author, error) {
	author := &entity.Author{
		Name:           req.Name,
		Bio:            req.Bio,
		ProfilePicture: req.ProfilePicture,
		ExternalID:     req.ExternalID,
	}
	if err := s.repo.Create(ctx, author); err != nil {
		return nil, err
	}
	return author, nil
}

func (s *authorService) GetAll(ctx context.Context) ([]entity.Author, error) {
	return s.repo.FindAll(ctx)
}

func (s *authorService) GetByID(ctx context.Context, id uint) (*entity.Author, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *authorService) Update(ctx context.Context, id uint, req *dto.AuthorRequest) (*entity.Author, error) {
	author, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	author.Name = req.Name
	author.Bio = req.Bio
	author.ProfilePicture = req.ProfilePicture
	author.ExternalID = req.ExternalID
	if err := s.repo.Update(ctx, author); err != nil {
		return nil, err
	}
	return author, nil
}

func (s *authorService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *authorService) CreateAssociation(ctx context.Context, req *dto.AssociationRequest) (*entity.AuthorOutletAssociation, error) {
	assoc := &entity.AuthorOutletAssociation{
		AuthorID:  req.AuthorID,
		OutletID:  req.OutletID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Role:      req.Role,
	}
	if err := s.repo.CreateAssociation(ctx, assoc); err != nil {
		return nil, err
	}
	return assoc, nil
}

func (s *authorService) GetAllAssociations(ctx context.Context) ([]entity.AuthorOutletAssociation, error) {
	return s.repo.FindAllAssociations(ctx)
}

func (s *authorService) GetAssociationByID(ctx context.Context, id uint) (*entity.AuthorOutletAssociation, error) {
	return s.repo.FindAssociationByID(ctx, id)
}

func (s *authorService) UpdateAssociation(ctx context.Context, id uint, req *dto.AssociationRequest) (*entity.AuthorOutletAssociation, error) {
	assoc, err := s.repo.FindAssociationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	assoc.AuthorID = req.AuthorID
	assoc.OutletID = req.OutletID
	assoc.StartDate = req.StartDate
	assoc.EndDate = req.EndDate
	assoc.Role = req.Role
	if err := s.repo.UpdateAssociation(ctx, assoc); err != nil {
		return nil, err
	}
	return assoc, nil
}

func (s *authorService) DeleteAssociation(ctx context.Context, id uint) error {
	return s.repo.DeleteAssociation(ctx, id)
}
