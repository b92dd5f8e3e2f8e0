package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/velotours/invoice-service/internal/domain"
	"github.com/velotours/invoice-service/internal/repository"
	"github.com/velotours/invoice-service/pkg/logger"
)

// CustomerService интерфейс сервиса для работы с клиентами
type CustomerService interface {
	GetAll(ctx context.Context) ([]domain.Customer, error)
	GetByID(ctx context.Context, id string) (domain.Customer, error)
	Create(ctx context.Context, req domain.CustomerRequest) (domain.Customer, error)
	Update(ctx context.Context, id string, req domain.CustomerRequest) (domain.Customer, error)
	Delete(ctx context.Context, id string) error
}

type customerService struct {
	repo repository.CustomerRepository
	log  *logger.Logger
}

// NewCustomerService создает новый сервис для работы с клиентами
func NewCustomerService(repo repository.CustomerRepository, log *logger.Logger) CustomerService {
	return &customerService{
		repo: repo,
		log:  log,
	}
}

func (s *customerService) GetAll(ctx context.Context) ([]domain.Customer, error) {
	s.log.Debugw("Getting all customers")
	return s.repo.GetAll(ctx)
}

func (s *customerService) GetByID(ctx context.Context, id string) (domain.Customer, error) {
	s.log.Debugw("Getting customer by ID", "id", id)

	uuidID, err := uuid.Parse(id)
	if err != nil {
		s.log.Warnw("Invalid UUID format", "id", id)
		return domain.Customer{}, domain.ErrInvalidData
	}

	return s.repo.GetByID(ctx, uuidID)
}

func (s *customerService) Create(ctx context.Context, req domain.CustomerRequest) (domain.Customer, error) {
	s.log.Debugw("Creating customer", "email", req.Email)

	customer := domain.Customer{
		ID:      uuid.New(),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}

	return s.repo.Create(ctx, customer)
}

func (s *customerService) Update(ctx context.Context, id string, req domain.CustomerRequest) (domain.Customer, error) {
	s.log.Debugw("Updating customer", "id", id)

	uuidID, err := uuid.Parse(id)
	if err != nil {
		s.log.Warnw("Invalid UUID format", "id", id)
		return domain.Customer{}, domain.ErrInvalidData
	}

	existing, err := s.repo.GetByID(ctx, uuidID)
	if err != nil {
		return domain.Customer{}, err
	}

	existing.Name = req.Name
	existing.Email = req.Email
	existing.Phone = req.Phone
	existing.Address = req.Address

	if err := s.repo.Update(ctx, existing); err != nil {
		return domain.Customer{}, err
	}

	return existing, nil
}

func (s *customerService) Delete(ctx context.Context, id string) error {
	s.log.Debugw("Deleting customer", "id", id)

	uuidID, err := uuid.Parse(id)
	if err != nil {
		s.log.Warnw("Invalid UUID format", "id", id)
		return domain.ErrInvalidData
	}

	return s.repo.Delete(ctx, uuidID)
}
