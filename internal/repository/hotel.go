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

// HotelRepository интерфейс для работы с каталогом отелей
type HotelRepository interface {
	GetAll(ctx context.Context) ([]domain.Hotel, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Hotel, error)
	Create(ctx context.Context, hotel domain.Hotel) (domain.Hotel, error)
	Update(ctx context.Context, hotel domain.Hotel) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// InMemoryHotelRepository реализация репозитория отелей в памяти
type InMemoryHotelRepository struct {
	hotels map[uuid.UUID]domain.Hotel
	mutex  sync.RWMutex
	log    *logger.Logger
}

// NewInMemoryHotelRepository создает новый репозиторий отелей в памяти
func NewInMemoryHotelRepository(log *logger.Logger) *InMemoryHotelRepository {
	return &InMemoryHotelRepository{
		hotels: make(map[uuid.UUID]domain.Hotel),
		log:    log,
	}
}

// GetAll возвращает все отели, упорядоченные по названию
func (r *InMemoryHotelRepository) GetAll(ctx context.Context) ([]domain.Hotel, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	hotels := make([]domain.Hotel, 0, len(r.hotels))
	for _, hotel := range r.hotels {
		hotels = append(hotels, hotel)
	}

	sort.Slice(hotels, func(i, j int) bool {
		return hotels[i].Name < hotels[j].Name
	})

	return hotels, nil
}

// GetByID возвращает отель по ID
func (r *InMemoryHotelRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Hotel, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	hotel, exists := r.hotels[id]
	if !exists {
		return domain.Hotel{}, domain.ErrNotFound
	}

	return hotel, nil
}

// Create создает новый отель
func (r *InMemoryHotelRepository) Create(ctx context.Context, hotel domain.Hotel) (domain.Hotel, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	hotel.CreatedAt = time.Now()
	hotel.UpdatedAt = hotel.CreatedAt

	r.hotels[hotel.ID] = hotel

	return hotel, nil
}

// Update обновляет существующий отель
func (r *InMemoryHotelRepository) Update(ctx context.Context, hotel domain.Hotel) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	existing, exists := r.hotels[hotel.ID]
	if !exists {
		return domain.ErrNotFound
	}

	hotel.CreatedAt = existing.CreatedAt
	hotel.UpdatedAt = time.Now()

	r.hotels[hotel.ID] = hotel

	return nil
}

// Delete удаляет отель
func (r *InMemoryHotelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.hotels[id]; !exists {
		return domain.ErrNotFound
	}

	delete(r.hotels, id)

	return nil
}
