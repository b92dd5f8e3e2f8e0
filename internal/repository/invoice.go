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

// InvoiceRepository интерфейс для работы со счетами.
// CreateWithItems присваивает счету очередной номер за год и сохраняет
// заголовок вместе со строками атомарно: либо все, либо ничего.
type InvoiceRepository interface {
	GetAll(ctx context.Context) ([]domain.Invoice, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Invoice, error)
	CountByYear(ctx context.Context, year int) (int, error)
	CreateWithItems(ctx context.Context, invoice domain.Invoice, items []domain.InvoiceItem) (domain.Invoice, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus) (domain.Invoice, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// InMemoryInvoiceRepository реализация репозитория счетов в памяти.
// Мьютекс сериализует подсчет номера и вставку, поэтому номера за год
// образуют непрерывную последовательность без дубликатов.
type InMemoryInvoiceRepository struct {
	invoices  map[uuid.UUID]domain.Invoice
	items     map[uuid.UUID][]domain.InvoiceItem
	customers CustomerRepository
	mutex     sync.RWMutex
	log       *logger.Logger
}

// NewInMemoryInvoiceRepository создает новый репозиторий счетов в памяти.
// Репозиторий клиентов нужен для подгрузки связанных данных при чтении.
func NewInMemoryInvoiceRepository(customers CustomerRepository, log *logger.Logger) *InMemoryInvoiceRepository {
	return &InMemoryInvoiceRepository{
		invoices:  make(map[uuid.UUID]domain.Invoice),
		items:     make(map[uuid.UUID][]domain.InvoiceItem),
		customers: customers,
		log:       log,
	}
}

// GetAll возвращает все счета с данными клиента, новые первыми
func (r *InMemoryInvoiceRepository) GetAll(ctx context.Context) ([]domain.Invoice, error) {
	r.mutex.RLock()
	invoices := make([]domain.Invoice, 0, len(r.invoices))
	for _, invoice := range r.invoices {
		invoices = append(invoices, invoice)
	}
	r.mutex.RUnlock()

	sort.Slice(invoices, func(i, j int) bool {
		return invoices[i].CreatedAt.After(invoices[j].CreatedAt)
	})

	for i := range invoices {
		r.attachCustomer(ctx, &invoices[i])
	}

	return invoices, nil
}

// GetByID возвращает счет со строками и данными клиента
func (r *InMemoryInvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Invoice, error) {
	r.mutex.RLock()
	invoice, exists := r.invoices[id]
	if exists {
		stored := r.items[id]
		invoice.Items = make([]domain.InvoiceItem, len(stored))
		copy(invoice.Items, stored)
	}
	r.mutex.RUnlock()

	if !exists {
		return domain.Invoice{}, domain.ErrNotFound
	}

	r.attachCustomer(ctx, &invoice)

	return invoice, nil
}

// CountByYear возвращает количество счетов, созданных в указанном году
func (r *InMemoryInvoiceRepository) CountByYear(ctx context.Context, year int) (int, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.countByYearLocked(year), nil
}

func (r *InMemoryInvoiceRepository) countByYearLocked(year int) int {
	count := 0
	for _, invoice := range r.invoices {
		if invoice.CreatedAt.Year() == year {
			count++
		}
	}
	return count
}

// CreateWithItems сохраняет счет и его строки как единое целое,
// присваивая номер внутри критической секции
func (r *InMemoryInvoiceRepository) CreateWithItems(ctx context.Context, invoice domain.Invoice, items []domain.InvoiceItem) (domain.Invoice, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	now := time.Now()
	invoice.CreatedAt = now
	invoice.UpdatedAt = now
	invoice.InvoiceNumber = domain.FormatInvoiceNumber(now.Year(), r.countByYearLocked(now.Year())+1)

	stored := make([]domain.InvoiceItem, len(items))
	for i, item := range items {
		item.ID = uuid.New()
		item.InvoiceID = invoice.ID
		item.CreatedAt = now
		item.UpdatedAt = now
		stored[i] = item
	}

	r.invoices[invoice.ID] = invoice
	r.items[invoice.ID] = stored

	invoice.Items = make([]domain.InvoiceItem, len(stored))
	copy(invoice.Items, stored)

	return invoice, nil
}

// UpdateStatus меняет статус счета и возвращает обновленный заголовок
func (r *InMemoryInvoiceRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus) (domain.Invoice, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	invoice, exists := r.invoices[id]
	if !exists {
		return domain.Invoice{}, domain.ErrNotFound
	}

	invoice.Status = status
	invoice.UpdatedAt = time.Now()
	r.invoices[id] = invoice

	return invoice, nil
}

// Delete удаляет счет вместе со всеми его строками
func (r *InMemoryInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.invoices[id]; !exists {
		return domain.ErrNotFound
	}

	delete(r.invoices, id)
	delete(r.items, id)

	return nil
}

func (r *InMemoryInvoiceRepository) attachCustomer(ctx context.Context, invoice *domain.Invoice) {
	if r.customers == nil {
		return
	}
	customer, err := r.customers.GetByID(ctx, invoice.CustomerID)
	if err != nil {
		return
	}
	invoice.Customer = &customer
}
