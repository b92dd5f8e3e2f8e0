package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/velotours/invoice-service/internal/domain"
	"github.com/velotours/invoice-service/pkg/logger"
)

// CachedHotelRepository реализует HotelRepository с кешированием.
// Справочник отелей читается при каждом расчете тура, поэтому кешируется
// агрессивнее остальных справочников.
type CachedHotelRepository struct {
	repo  HotelRepository
	cache *RedisCacheRepository
	log   *logger.Logger
}

// NewCachedHotelRepository создает новый репозиторий отелей с кешированием
func NewCachedHotelRepository(
	repo HotelRepository,
	cache *RedisCacheRepository,
	log *logger.Logger,
) HotelRepository {
	return &CachedHotelRepository{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// GetAll возвращает все отели (сначала из кеша, потом из БД)
func (r *CachedHotelRepository) GetAll(ctx context.Context) ([]domain.Hotel, error) {
	// Пытаемся получить из кеша
	cached, err := r.cache.GetCachedHotelList(ctx)
	if err != nil {
		r.log.Warnw("Error getting hotel list from cache", "error", err)
		// Продолжаем выполнение при ошибке кеша
	}

	if cached != nil {
		r.log.Debugw("Hotel list found in cache", "count", len(cached))
		return cached, nil
	}

	hotels, err := r.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(hotels) > 0 {
		if err := r.cache.CacheHotelList(ctx, hotels); err != nil {
			r.log.Warnw("Failed to cache hotel list", "error", err)
		}
	}

	return hotels, nil
}

// GetByID возвращает отель по ID (сначала из кеша, потом из БД)
func (r *CachedHotelRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Hotel, error) {
	cached, err := r.cache.GetCachedHotel(ctx, id)
	if err != nil {
		r.log.Warnw("Error getting hotel from cache", "error", err, "hotelID", id)
	}

	if cached != nil {
		r.log.Debugw("Hotel found in cache", "hotelID", id)
		return *cached, nil
	}

	hotel, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Hotel{}, err
	}

	if err := r.cache.CacheHotel(ctx, &hotel); err != nil {
		r.log.Warnw("Failed to cache hotel after fetching", "error", err, "hotelID", id)
	}

	return hotel, nil
}

// Create сохраняет отель в БД и кеширует его
func (r *CachedHotelRepository) Create(ctx context.Context, hotel domain.Hotel) (domain.Hotel, error) {
	created, err := r.repo.Create(ctx, hotel)
	if err != nil {
		return domain.Hotel{}, err
	}

	if err := r.cache.CacheHotel(ctx, &created); err != nil {
		r.log.Warnw("Failed to cache hotel after creation", "error", err, "hotelID", created.ID)
		// Продолжаем выполнение, несмотря на ошибку кеширования
	}

	if err := r.cache.InvalidateHotelListCache(ctx); err != nil {
		r.log.Warnw("Failed to invalidate hotel list cache", "error", err)
	}

	return created, nil
}

// Update обновляет отель в БД и кеше
func (r *CachedHotelRepository) Update(ctx context.Context, hotel domain.Hotel) error {
	if err := r.repo.Update(ctx, hotel); err != nil {
		return err
	}

	if err := r.cache.CacheHotel(ctx, &hotel); err != nil {
		r.log.Warnw("Failed to update hotel in cache", "error", err, "hotelID", hotel.ID)
	}

	if err := r.cache.InvalidateHotelListCache(ctx); err != nil {
		r.log.Warnw("Failed to invalidate hotel list cache after update", "error", err)
	}

	return nil
}

// Delete удаляет отель из БД и кеша
func (r *CachedHotelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := r.cache.DeleteCachedHotel(ctx, id); err != nil {
		r.log.Warnw("Failed to delete hotel from cache", "error", err, "hotelID", id)
	}

	if err := r.cache.InvalidateHotelListCache(ctx); err != nil {
		r.log.Warnw("Failed to invalidate hotel list cache after delete", "error", err)
	}

	return nil
}
