package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/velotours/invoice-service/internal/domain"
	"github.com/velotours/invoice-service/pkg/logger"
)

const (
	// Префиксы ключей для различных типов данных
	hotelKeyPrefix = "hotel:"
	hotelListKey   = "hotels:all"

	// TTL для кэша: справочник меняется редко
	defaultCacheTTL = 15 * time.Minute
)

// RedisCacheRepository реализует кеширование справочных данных в Redis
type RedisCacheRepository struct {
	client *redis.Client
	log    *logger.Logger
}

// NewRedisCacheRepository создает новый экземпляр Redis репозитория
func NewRedisCacheRepository(redisAddr, redisPassword string, redisDB int, log *logger.Logger) (*RedisCacheRepository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	})

	// Проверяем соединение с Redis
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Errorw("Failed to connect to Redis", "error", err)
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Infow("Connected to Redis successfully", "addr", redisAddr)
	return &RedisCacheRepository{
		client: client,
		log:    log,
	}, nil
}

// Close закрывает соединение с Redis
func (r *RedisCacheRepository) Close() error {
	return r.client.Close()
}

// CacheHotel кеширует отель в Redis
func (r *RedisCacheRepository) CacheHotel(ctx context.Context, hotel *domain.Hotel) error {
	key := fmt.Sprintf("%s%s", hotelKeyPrefix, hotel.ID)

	data, err := json.Marshal(hotel)
	if err != nil {
		r.log.Errorw("Failed to marshal hotel for caching", "error", err, "hotelID", hotel.ID)
		return fmt.Errorf("failed to marshal hotel: %w", err)
	}

	if err := r.client.Set(ctx, key, data, defaultCacheTTL).Err(); err != nil {
		r.log.Errorw("Failed to cache hotel in Redis", "error", err, "hotelID", hotel.ID)
		return fmt.Errorf("failed to cache hotel: %w", err)
	}

	r.log.Debugw("Hotel cached successfully", "hotelID", hotel.ID)
	return nil
}

// GetCachedHotel получает отель из кеша
func (r *RedisCacheRepository) GetCachedHotel(ctx context.Context, hotelID uuid.UUID) (*domain.Hotel, error) {
	key := fmt.Sprintf("%s%s", hotelKeyPrefix, hotelID)

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			// Ключ не найден в кеше
			r.log.Debugw("Hotel not found in cache", "hotelID", hotelID)
			return nil, nil // Возвращаем nil вместо ошибки
		}
		r.log.Errorw("Error getting hotel from Redis", "error", err, "hotelID", hotelID)
		return nil, fmt.Errorf("failed to get hotel from cache: %w", err)
	}

	var hotel domain.Hotel
	if err := json.Unmarshal(data, &hotel); err != nil {
		r.log.Errorw("Failed to unmarshal cached hotel", "error", err, "hotelID", hotelID)
		return nil, fmt.Errorf("failed to unmarshal cached hotel: %w", err)
	}

	r.log.Debugw("Hotel retrieved from cache", "hotelID", hotelID)
	return &hotel, nil
}

// DeleteCachedHotel удаляет отель из кеша
func (r *RedisCacheRepository) DeleteCachedHotel(ctx context.Context, hotelID uuid.UUID) error {
	key := fmt.Sprintf("%s%s", hotelKeyPrefix, hotelID)

	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.log.Errorw("Failed to delete hotel from cache", "error", err, "hotelID", hotelID)
		return fmt.Errorf("failed to delete hotel from cache: %w", err)
	}

	r.log.Debugw("Hotel deleted from cache", "hotelID", hotelID)
	return nil
}

// CacheHotelList кеширует полный список отелей
func (r *RedisCacheRepository) CacheHotelList(ctx context.Context, hotels []domain.Hotel) error {
	data, err := json.Marshal(hotels)
	if err != nil {
		r.log.Errorw("Failed to marshal hotel list for caching", "error", err)
		return fmt.Errorf("failed to marshal hotel list: %w", err)
	}

	if err := r.client.Set(ctx, hotelListKey, data, defaultCacheTTL).Err(); err != nil {
		r.log.Errorw("Failed to cache hotel list in Redis", "error", err)
		return fmt.Errorf("failed to cache hotel list: %w", err)
	}

	r.log.Debugw("Hotel list cached successfully", "count", len(hotels))
	return nil
}

// GetCachedHotelList получает список отелей из кеша
func (r *RedisCacheRepository) GetCachedHotelList(ctx context.Context) ([]domain.Hotel, error) {
	data, err := r.client.Get(ctx, hotelListKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			// Ключ не найден в кеше
			r.log.Debugw("Hotel list not found in cache")
			return nil, nil // Возвращаем nil вместо ошибки
		}
		r.log.Errorw("Error getting hotel list from Redis", "error", err)
		return nil, fmt.Errorf("failed to get hotel list from cache: %w", err)
	}

	var hotels []domain.Hotel
	if err := json.Unmarshal(data, &hotels); err != nil {
		r.log.Errorw("Failed to unmarshal cached hotel list", "error", err)
		return nil, fmt.Errorf("failed to unmarshal cached hotel list: %w", err)
	}

	r.log.Debugw("Hotel list retrieved from cache", "count", len(hotels))
	return hotels, nil
}

// InvalidateHotelListCache удаляет кеш списка отелей
func (r *RedisCacheRepository) InvalidateHotelListCache(ctx context.Context) error {
	if err := r.client.Del(ctx, hotelListKey).Err(); err != nil {
		r.log.Errorw("Failed to invalidate hotel list cache", "error", err)
		return fmt.Errorf("failed to invalidate hotel list cache: %w", err)
	}

	r.log.Debugw("Hotel list cache invalidated")
	return nil
}
