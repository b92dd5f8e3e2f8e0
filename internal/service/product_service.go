package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/velotours/invoice-service/internal/domain"
	"github.com/velotours/invoice-service/internal/repository"
	"github.com/velotours/invoice-service/pkg/logger"
)

// ProductService интерфейс сервиса для работы с каталогом велосипедов
type ProductService interface {
	GetAll(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (domain.Product, error)
	Create(ctx context.Context, req domain.ProductRequest) (domain.Product, error)
	Update(ctx context.Context, id string, req domain.ProductRequest) (domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type productService struct {
	repo repository.ProductRepository
	log  *logger.Logger
}

// NewProductService создает новый сервис для работы с велосипедами
func NewProductService(repo repository.ProductRepository, log *logger.Logger) ProductService {
	return &productService{
		repo: repo,
		log:  log,
	}
}

func (s *productService) GetAll(ctx context.Context) ([]domain.Product, error) {
	s.log.Debugw("Getting all products")
	return s.repo.GetAll(ctx)
}

func (s *productService) GetByID(ctx context.Context, id string) (domain.Product, error) {
	s.log.Debugw("Getting product by ID", "id", id)

	uuidID, err := uuid.Parse(id)
	if err != nil {
		s.log.Warnw("Invalid UUID format", "id", id)
		return domain.Product{}, domain.ErrInvalidData
	}

	return s.repo.GetByID(ctx, uuidID)
}

func (s *productService) Create(ctx context.Context, req domain.ProductRequest) (domain.Product, error) {
	s.log.Debugw("Creating product", "name", req.Name)

	product := domain.Product{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Model:       req.Model,
		Price:       req.Price,
		Stock:       req.Stock,
	}

	if err := product.Validate(); err != nil {
		return domain.Product{}, err
	}

	return s.repo.Create(ctx, product)
}

func (s *productService) Update(ctx context.Context, id string, req domain.ProductRequest) (domain.Product, error) {
	s.log.Debugw("Updating product", "id", id)

	uuidID, err := uuid.Parse(id)
	if err != nil {
		s.log.Warnw("Invalid UUID format", "id", id)
		return domain.Product{}, domain.ErrInvalidData
	}

	existing, err := s.repo.GetByID(ctx, uuidID)
	if err != nil {
		return domain.Product{}, err
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.Model = req.Model
	existing.Price = req.Price
	existing.Stock = req.Stock

	if err := existing.Validate(); err != nil {
		return domain.Product{}, err
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return domain.Product{}, err
	}

	return existing, nil
}

func (s *productService) Delete(ctx context.Context, id string) error {
	s.log.Debugw("Deleting product", "id", id)

	uuidID, err := uuid.Parse(id)
	if err != nil {
		s.log.Warnw("Invalid UUID format", "id", id)
		return domain.ErrInvalidData
	}

	return s.repo.Delete(ctx, uuidID)
}
