package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/velotours/invoice-service/internal/domain"
	"github.com/velotours/invoice-service/pkg/logger"
)

// ProductRepository интерфейс для работы с каталогом велосипедов
type ProductRepository interface {
	GetAll(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Product, error)
	Create(ctx context.Context, product domain.Product) (domain.Product, error)
	Update(ctx context.Context, product domain.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// InMemoryProductRepository реализация репозитория велосипедов в памяти
type InMemoryProductRepository struct {
	products map[uuid.UUID]domain.Product
	mutex    sync.RWMutex
	log      *logger.Logger
}

// NewInMemoryProductRepository создает новый репозиторий велосипедов в памяти
func NewInMemoryProductRepository(log *logger.Logger) *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: make(map[uuid.UUID]domain.Product),
		log:      log,
	}
}

// GetAll возвращает все модели, упорядоченные по названию
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]domain.Product, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	products := make([]domain.Product, 0, len(r.products))
	for _, product := range r.products {
		products = append(products, product)
	}

	sort.Slice(products, func(i, j int) bool {
		return products[i].Name < products[j].Name
	})

	return products, nil
}

// GetByID возвращает модель по ID
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	product, exists := r.products[id]
	if !exists {
		return domain.Product{}, domain.ErrNotFound
	}

	return product, nil
}

// Create создает новую модель
func (r *InMemoryProductRepository) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt

	r.products[product.ID] = product

	return product, nil
}

// Update обновляет существующую модель
func (r *InMemoryProductRepository) Update(ctx context.Context, product domain.Product) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	existing, exists := r.products[product.ID]
	if !exists {
		return domain.ErrNotFound
	}

	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = time.Now()

	r.products[product.ID] = product

	return nil
}

// Delete удаляет модель
func (r *InMemoryProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.products[id]; !exists {
		return domain.ErrNotFound
	}

	delete(r.products, id)

	return nil
}
