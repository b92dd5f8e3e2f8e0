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

// PostgresTransportRepository реализация репозитория транспорта через PostgreSQL
type PostgresTransportRepository struct {
	db  *pgxpool.Pool
	log *logger.Logger
}

// NewPostgresTransportRepository создает новый репозиторий транспорта через PostgreSQL
func NewPostgresTransportRepository(db *pgxpool.Pool, log *logger.Logger) *PostgresTransportRepository {
	return &PostgresTransportRepository{
		db:  db,
		log: log,
	}
}

// GetAll возвращает все варианты транспорта
func (r *PostgresTransportRepository) GetAll(ctx context.Context) ([]domain.Transport, error) {
	query := `
		SELECT id, name, type, capacity, rate_per_day, description, created_at, updated_at
		FROM transport_options
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transport options: %w", err)
	}
	defer rows.Close()

	var options []domain.Transport
	for rows.Next() {
		var option domain.Transport
		err := rows.Scan(
			&option.ID,
			&option.Name,
			&option.Type,
			&option.Capacity,
			&option.RatePerDay,
			&option.Description,
			&option.CreatedAt,
			&option.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transport option: %w", err)
		}
		options = append(options, option)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transport options: %w", err)
	}

	return options, nil
}

// GetByID возвращает вариант транспорта по ID
func (r *PostgresTransportRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Transport, error) {
	query := `
		SELECT id, name, type, capacity, rate_per_day, description, created_at, updated_at
		FROM transport_options
		WHERE id = $1
	`

	var option domain.Transport
	err := r.db.QueryRow(ctx, query, id).Scan(
		&option.ID,
		&option.Name,
		&option.Type,
		&option.Capacity,
		&option.RatePerDay,
		&option.Description,
		&option.CreatedAt,
		&option.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Transport{}, domain.ErrNotFound
		}
		return domain.Transport{}, fmt.Errorf("failed to get transport option: %w", err)
	}

	return option, nil
}

// Create создает новый вариант транспорта
func (r *PostgresTransportRepository) Create(ctx context.Context, transport domain.Transport) (domain.Transport, error) {
	query := `
		INSERT INTO transport_options (id, name, type, capacity, rate_per_day, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(
		ctx,
		query,
		transport.ID,
		transport.Name,
		transport.Type,
		transport.Capacity,
		transport.RatePerDay,
		transport.Description,
	).Scan(&transport.CreatedAt, &transport.UpdatedAt)

	if err != nil {
		return domain.Transport{}, fmt.Errorf("failed to create transport option: %w", err)
	}

	return transport, nil
}

// Update обновляет существующий вариант транспорта
func (r *PostgresTransportRepository) Update(ctx context.Context, transport domain.Transport) error {
	query := `
		UPDATE transport_options
		SET name = $1, type = $2, capacity = $3, rate_per_day = $4, description = $5, updated_at = now()
		WHERE id = $6
	`

	result, err := r.db.Exec(
		ctx,
		query,
		transport.Name,
		transport.Type,
		transport.Capacity,
		transport.RatePerDay,
		transport.Description,
		transport.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update transport option: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Delete удаляет вариант транспорта
func (r *PostgresTransportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM transport_options WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete transport option: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}
