package service

import (
	"context"

	"golang-news-aggregator/internal/api/dto"
	"golang-news-aggregator/internal/api/repository"
	"golang-news-aggregator/internal/entity"
	"golang-news-aggregator/pkg/logger"
)

// OutletService defines the interface for managing news outlets.
type OutletService interface {
	Create(ctx context.Context, req *dto.OutletRequest) (*entity.NewsOutlet, error)
	GetAll(ctx context.Context) ([]entity.NewsOutlet, error)
	GetByID(ctx context.Context, id uint) (*entity.NewsOutlet, error)
	Update(ctx context.Context, id uint, req *dto.OutletRequest) (*entity.NewsOutlet, error)
	Delete(ctx context.Context, id uint) error
}

// NewOutletService creates a new outlet service.
func NewOutletService(repo repository.NewsOutletRepository, logger *logger.Logger) OutletService {
	return &outletService{repo: repo, logger: logger}
}

type outletService struct {
	repo   repository.NewsOutletRepository
	logger *logger.Logger
}

func (s *outletService) Create(ctx context.Context, req *dto.OutletRequest) (*entity.NewsOutlet, error) {
	outlet := &entity.NewsOutlet{
		Name: req.Name,
		URL:  req.URL,
		Icon: req.Icon,
	}
	if err := s.repo.Create(ctx, outlet); err != nil {
		return nil, err
	}
	return outlet, nil
}

func (s *outletService) GetAll(ctx context.Context) ([]entity.NewsOutlet, error) {
	return s.repo.FindAll(ctx)
}

func (s *outletService) GetByID(ctx context.Context, id uint) (*entity.NewsOutlet, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *outletService) Update(ctx context.Context, id uint, req *dto.OutletRequest) (*entity.NewsOutlet, error) {
	outlet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	outlet.Name = req.Name
	outlet.URL = req.URL
	outlet.Icon = req.Icon
	if err := s.repo.Update(ctx, outlet); err != nil {
		return nil, err
	}
	return outlet, nil
}

func (s *outletService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
