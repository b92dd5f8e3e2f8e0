package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/velotours/invoice-service/internal/domain"
	"github.com/velotours/invoice-service/pkg/logger"
)

// PostgresHotelRepository реализация репозитория отелей через PostgreSQL
type PostgresHotelRepository struct {
	db  *pgxpool.Pool
	log *logger.Logger
}

// NewPostgresHotelRepository создает новый репозиторий отелей через PostgreSQL
func NewPostgresHotelRepository(db *pgxpool.Pool, log *logger.Logger) *PostgresHotelRepository {
	return &PostgresHotelRepository{
		db:  db,
		log: log,
	}
}

// GetAll возвращает все отели
func (r *PostgresHotelRepository) GetAll(ctx context.Context) ([]domain.Hotel, error) {
	query := `
		SELECT id, name, location, stars, single_room_rate, double_room_rate,
		       contact_email, contact_phone, created_at, updated_at
		FROM hotels
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query hotels: %w", err)
	}
	defer rows.Close()

	var hotels []domain.Hotel
	for rows.Next() {
		var hotel domain.Hotel
		err := rows.Scan(
			&hotel.ID,
			&hotel.Name,
			&hotel.Location,
			&hotel.Stars,
			&hotel.SingleRoomRate,
			&hotel.DoubleRoomRate,
			&hotel.ContactEmail,
			&hotel.ContactPhone,
			&hotel.CreatedAt,
			&hotel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hotel: %w", err)
		}
		hotels = append(hotels, hotel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating hotels: %w", err)
	}

	return hotels, nil
}

// GetByID возвращает отель по ID
func (r *PostgresHotelRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Hotel, error) {
	query := `
		SELECT id, name, location, stars, single_room_rate, double_room_rate,
		       contact_email, contact_phone, created_at, updated_at
		FROM hotels
		WHERE id = $1
	`

	var hotel domain.Hotel
	err := r.db.QueryRow(ctx, query, id).Scan(
		&hotel.ID,
		&hotel.Name,
		&hotel.Location,
		&hotel.Stars,
		&hotel.SingleRoomRate,
		&hotel.DoubleRoomRate,
		&hotel.ContactEmail,
		&hotel.ContactPhone,
		&hotel.CreatedAt,
		&hotel.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Hotel{}, domain.ErrNotFound
		}
		return domain.Hotel{}, fmt.Errorf("failed to get hotel: %w", err)
	}

	return hotel, nil
}

// Create создает новый отель
func (r *PostgresHotelRepository) Create(ctx context.Context, hotel domain.Hotel) (domain.Hotel, error) {
	query := `
		INSERT INTO hotels (id, name, location, stars, single_room_rate, double_room_rate,
		                    contact_email, contact_phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(
		ctx,
		query,
		hotel.ID,
		hotel.Name,
		hotel.Location,
		hotel.Stars,
		hotel.SingleRoomRate,
		hotel.DoubleRoomRate,
		hotel.ContactEmail,
		hotel.ContactPhone,
	).Scan(&hotel.CreatedAt, &hotel.UpdatedAt)

	if err != nil {
		return domain.Hotel{}, fmt.Errorf("failed to create hotel: %w", err)
	}

	return hotel, nil
}

// Update обновляет существующий отель
func (r *PostgresHotelRepository) Update(ctx context.Context, hotel domain.Hotel) error {
	query := `
		UPDATE hotels
		SET name = $1, location = $2, stars = $3, single_room_rate = $4,
		    double_room_rate = $5, contact_email = $6, contact_phone = $7, updated_at = now()
		WHERE id = $8
	`

	result, err := r.db.Exec(
		ctx,
		query,
		hotel.Name,
		hotel.Location,
		hotel.Stars,
		hotel.SingleRoomRate,
		hotel.DoubleRoomRate,
		hotel.ContactEmail,
		hotel.ContactPhone,
		hotel.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update hotel: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Delete удаляет отель
func (r *PostgresHotelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM hotels WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete hotel: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}
