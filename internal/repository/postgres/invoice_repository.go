package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/velotours/invoice-service/internal/domain"
	"github.com/velotours/invoice-service/pkg/logger"
)

// invoiceNumberLockKey ключ advisory-блокировки, сериализующей выдачу номеров.
// Подсчет и вставка выполняются под блокировкой в одной транзакции, поэтому
// два конкурирующих создания не могут получить одинаковый номер.
const invoiceNumberLockKey = 874231

// PostgresInvoiceRepository реализация репозитория счетов через PostgreSQL
type PostgresInvoiceRepository struct {
	db  *pgxpool.Pool
	log *logger.Logger
}

// NewPostgresInvoiceRepository создает новый репозиторий счетов через PostgreSQL
func NewPostgresInvoiceRepository(db *pgxpool.Pool, log *logger.Logger) *PostgresInvoiceRepository {
	return &PostgresInvoiceRepository{
		db:  db,
		log: log,
	}
}

const invoiceColumns = `
	id, invoice_number, customer_id, status, total_amount,
	tour_name, tour_start_date, tour_end_date, group_size,
	single_rooms, double_rooms, discount_percentage,
	additional_requests, currency, created_at, updated_at
`

func scanInvoice(row pgx.Row) (domain.Invoice, error) {
	var invoice domain.Invoice
	err := row.Scan(
		&invoice.ID,
		&invoice.InvoiceNumber,
		&invoice.CustomerID,
		&invoice.Status,
		&invoice.TotalAmount,
		&invoice.TourName,
		&invoice.TourStartDate,
		&invoice.TourEndDate,
		&invoice.GroupSize,
		&invoice.SingleRooms,
		&invoice.DoubleRooms,
		&invoice.DiscountPercentage,
		&invoice.AdditionalRequests,
		&invoice.Currency,
		&invoice.CreatedAt,
		&invoice.UpdatedAt,
	)
	return invoice, err
}

// GetAll возвращает все счета с данными клиента, новые первыми
func (r *PostgresInvoiceRepository) GetAll(ctx context.Context) ([]domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, invoice)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoices: %w", err)
	}

	for i := range invoices {
		if err := r.attachCustomer(ctx, &invoices[i]); err != nil {
			return nil, err
		}
	}

	return invoices, nil
}

// GetByID возвращает счет со строками и данными клиента
func (r *PostgresInvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE id = $1
	`

	invoice, err := scanInvoice(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Invoice{}, domain.ErrNotFound
		}
		return domain.Invoice{}, fmt.Errorf("failed to get invoice: %w", err)
	}

	items, err := r.getItems(ctx, id)
	if err != nil {
		return domain.Invoice{}, err
	}
	invoice.Items = items

	if err := r.attachCustomer(ctx, &invoice); err != nil {
		return domain.Invoice{}, err
	}

	return invoice, nil
}

// CountByYear возвращает количество счетов, созданных в указанном году
func (r *PostgresInvoiceRepository) CountByYear(ctx context.Context, year int) (int, error) {
	query := `
		SELECT count(*)
		FROM invoices
		WHERE created_at >= $1 AND created_at < $2
	`

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	var count int
	if err := r.db.QueryRow(ctx, query, start, end).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	return count, nil
}

// CreateWithItems сохраняет счет и его строки в одной транзакции.
// Номер выдается под advisory-блокировкой: подсчет счетов за год и вставка
// образуют критическую секцию, конкурирующие транзакции выстраиваются в очередь.
func (r *PostgresInvoiceRepository) CreateWithItems(ctx context.Context, invoice domain.Invoice, items []domain.InvoiceItem) (domain.Invoice, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, invoiceNumberLockKey); err != nil {
		return domain.Invoice{}, fmt.Errorf("failed to acquire invoice number lock: %w", err)
	}

	now := time.Now()
	year := now.Year()
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)

	var count int
	err = tx.QueryRow(ctx,
		`SELECT count(*) FROM invoices WHERE created_at >= $1 AND created_at < $2`,
		start, start.AddDate(1, 0, 0),
	).Scan(&count)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("failed to count invoices for numbering: %w", err)
	}

	invoice.InvoiceNumber = domain.FormatInvoiceNumber(year, count+1)

	insertHeader := `
		INSERT INTO invoices (
			id, invoice_number, customer_id, status, total_amount,
			tour_name, tour_start_date, tour_end_date, group_size,
			single_rooms, double_rooms, discount_percentage,
			additional_requests, currency
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at
	`

	err = tx.QueryRow(
		ctx,
		insertHeader,
		invoice.ID,
		invoice.InvoiceNumber,
		invoice.CustomerID,
		invoice.Status,
		invoice.TotalAmount,
		invoice.TourName,
		invoice.TourStartDate,
		invoice.TourEndDate,
		invoice.GroupSize,
		invoice.SingleRooms,
		invoice.DoubleRooms,
		invoice.DiscountPercentage,
		invoice.AdditionalRequests,
		invoice.Currency,
	).Scan(&invoice.CreatedAt, &invoice.UpdatedAt)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("failed to insert invoice: %w", err)
	}

	// Позиция фиксирует порядок показа строк: дни размещения, прокат,
	// транспорт, услуги, страховки, дополнительные услуги
	insertItem := `
		INSERT INTO invoice_items (id, invoice_id, position, category, description, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	invoice.Items = make([]domain.InvoiceItem, len(items))
	for i, item := range items {
		item.ID = uuid.New()
		item.InvoiceID = invoice.ID
		item.CreatedAt = invoice.CreatedAt
		item.UpdatedAt = invoice.CreatedAt

		_, err := tx.Exec(
			ctx,
			insertItem,
			item.ID,
			item.InvoiceID,
			i+1,
			item.Category,
			item.Description,
			item.Quantity,
			item.UnitPrice,
			item.TotalPrice,
		)
		if err != nil {
			return domain.Invoice{}, fmt.Errorf("failed to insert invoice item: %w", err)
		}

		invoice.Items[i] = item
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Invoice{}, fmt.Errorf("failed to commit invoice: %w", err)
	}

	return invoice, nil
}

// UpdateStatus меняет статус счета и возвращает обновленный заголовок
func (r *PostgresInvoiceRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus) (domain.Invoice, error) {
	query := `
		UPDATE invoices
		SET status = $1, updated_at = now()
		WHERE id = $2
		RETURNING ` + invoiceColumns + `
	`

	invoice, err := scanInvoice(r.db.QueryRow(ctx, query, status, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Invoice{}, domain.ErrNotFound
		}
		return domain.Invoice{}, fmt.Errorf("failed to update invoice status: %w", err)
	}

	return invoice, nil
}

// Delete удаляет счет; строки удаляются каскадно на уровне схемы
func (r *PostgresInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM invoices WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *PostgresInvoiceRepository) getItems(ctx context.Context, invoiceID uuid.UUID) ([]domain.InvoiceItem, error) {
	query := `
		SELECT id, invoice_id, category, description, quantity, unit_price, total_price, created_at, updated_at
		FROM invoice_items
		WHERE invoice_id = $1
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoice items: %w", err)
	}
	defer rows.Close()

	var items []domain.InvoiceItem
	for rows.Next() {
		var item domain.InvoiceItem
		err := rows.Scan(
			&item.ID,
			&item.InvoiceID,
			&item.Category,
			&item.Description,
			&item.Quantity,
			&item.UnitPrice,
			&item.TotalPrice,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice items: %w", err)
	}

	return items, nil
}

func (r *PostgresInvoiceRepository) attachCustomer(ctx context.Context, invoice *domain.Invoice) error {
	query := `
		SELECT id, name, email, phone, address, created_at, updated_at
		FROM customers
		WHERE id = $1
	`

	var customer domain.Customer
	err := r.db.QueryRow(ctx, query, invoice.CustomerID).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.Phone,
		&customer.Address,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Счет без клиента показываем как есть
			return nil
		}
		return fmt.Errorf("failed to load invoice customer: %w", err)
	}

	invoice.Customer = &customer
	return nil
}
