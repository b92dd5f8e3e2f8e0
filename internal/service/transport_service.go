package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/velotours/invoice-service/internal/domain"
	"github.com/velotours/invoice-service/internal/repository"
	"github.com/velotours/invoice-service/pkg/logger"
)

// TransportService интерфейс сервиса для работы с каталогом транспорта
type TransportService interface {
	GetAll(ctx context.Context) ([]domain.Transport, error)
	GetByID(ctx context.Context, id string) (domain.Transport, error)
	Create(ctx context.Context, req domain.TransportRequest) (domain.Transport, error)
	Update(ctx context.Context, id string, req domain.TransportRequest) (domain.Transport, error)
	Delete(ctx context.Context, id string) error
}

type transportService struct {
	repo repository.TransportRepository
	log  *logger.Logger
}

// NewTransportService создает новый сервис для работы с транспортом
func NewTransportService(repo repository.TransportRepository, log *logger.Logger) TransportService {
	return &transportService{
		repo: repo,
		log:  log,
	}
}

func (s *transportService) GetAll(ctx context.Context) ([]domain.Transport, error) {
	s.log.Debugw("Getting all transport options")
	return s.repo.GetAll(ctx)
}

func (s *transportService) GetByID(ctx context.Context, id string) (domain.Transport, error) {
	s.log.Debugw("Getting transport option by ID", "id", id)

	uuidID, err := uuid.Parse(id)
	if err != nil {
		s.log.Warnw("Invalid UUID format", "id", id)
		return domain.Transport{}, domain.ErrInvalidData
	}

	return s.repo.GetByID(ctx, uuidID)
}

func (s *transportService) Create(ctx context.Context, req domain.TransportRequest) (domain.Transport, error) {
	s.log.Debugw("Creating transport option", "name", req.Name)

	transport := domain.Transport{
		ID:          uuid.New(),
		Name:        req.Name,
		Type:        req.Type,
		Capacity:    req.Capacity,
		RatePerDay:  req.RatePerDay,
		Description: req.Description,
	}

	if err := transport.Validate(); err != nil {
		return domain.Transport{}, err
	}

	return s.repo.Create(ctx, transport)
}

func (s *transportService) Update(ctx context.Context, id string, req domain.TransportRequest) (domain.Transport, error) {
	s.log.Debugw("Updating transport option", "id", id)

	uuidID, err := uuid.Parse(id)
	if err != nil {
		s.log.Warnw("Invalid UUID format", "id", id)
		return domain.Transport{}, domain.ErrInvalidData
	}

	existing, err := s.repo.GetByID(ctx, uuidID)
	if err != nil {
		return domain.Transport{}, err
	}

	existing.Name = req.Name
	existing.Type = req.Type
	existing.Capacity = req.Capacity
	existing.RatePerDay = req.RatePerDay
	existing.Description = req.Description

	if err := existing.Validate(); err != nil {
		return domain.Transport{}, err
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return domain.Transport{}, err
	}

	return existing, nil
}

func (s *transportService) Delete(ctx context.Context, id string) error {
	s.log.Debugw("Deleting transport option", "id", id)

	uuidID, err := uuid.Parse(id)
	if err != nil {
		s.log.Warnw("Invalid UUID format", "id", id)
		return domain.ErrInvalidData
	}

	return s.repo.Delete(ctx, uuidID)
}
