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

// TransportRepository интерфейс для работы с каталогом транспорта
type TransportRepository interface {
	GetAll(ctx context.Context) ([]domain.Transport, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Transport, error)
	Create(ctx context.Context, transport domain.Transport) (domain.Transport, error)
	Update(ctx context.Context, transport domain.Transport) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// InMemoryTransportRepository реализация репозитория транспорта в памяти
type InMemoryTransportRepository struct {
	options map[uuid.UUID]domain.Transport
	mutex   sync.RWMutex
	log     *logger.Logger
}

// NewInMemoryTransportRepository создает новый репозиторий транспорта в памяти
func NewInMemoryTransportRepository(log *logger.Logger) *InMemoryTransportRepository {
	return &InMemoryTransportRepository{
		options: make(map[uuid.UUID]domain.Transport),
		log:     log,
	}
}

// GetAll возвращает все варианты транспорта, упорядоченные по названию
func (r *InMemoryTransportRepository) GetAll(ctx context.Context) ([]domain.Transport, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	options := make([]domain.Transport, 0, len(r.options))
	for _, option := range r.options {
		options = append(options, option)
	}

	sort.Slice(options, func(i, j int) bool {
		return options[i].Name < options[j].Name
	})

	return options, nil
}

// GetByID возвращает вариант транспорта по ID
func (r *InMemoryTransportRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Transport, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	option, exists := r.options[id]
	if !exists {
		return domain.Transport{}, domain.ErrNotFound
	}

	return option, nil
}

// Create создает новый вариант транспорта
func (r *InMemoryTransportRepository) Create(ctx context.Context, transport domain.Transport) (domain.Transport, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	transport.CreatedAt = time.Now()
	transport.UpdatedAt = transport.CreatedAt

	r.options[transport.ID] = transport

	return transport, nil
}

// Update обновляет существующий вариант транспорта
func (r *InMemoryTransportRepository) Update(ctx context.Context, transport domain.Transport) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	existing, exists := r.options[transport.ID]
	if !exists {
		return domain.ErrNotFound
	}

	transport.CreatedAt = existing.CreatedAt
	transport.UpdatedAt = time.Now()

	r.options[transport.ID] = transport

	return nil
}

// Delete удаляет вариант транспорта
func (r *InMemoryTransportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.options[id]; !exists {
		return domain.ErrNotFound
	}

	delete(r.options, id)

	return nil
}
