package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velotours/invoice-service/internal/domain"
	"github.com/velotours/invoice-service/pkg/logger"
)

func testInvoice(customerID uuid.UUID) domain.Invoice {
	return domain.Invoice{
		ID:          uuid.New(),
		CustomerID:  customerID,
		Status:      domain.InvoiceStatusPending,
		TotalAmount: decimal.NewFromInt(810),
		Currency:    "USD",
	}
}

func testItems() []domain.InvoiceItem {
	return []domain.InvoiceItem{
		{
			Category:    domain.CategoryAccommodation,
			Description: "Grand Hotel - July 15, 2025",
			Quantity:    1,
			UnitPrice:   decimal.NewFromInt(250),
			TotalPrice:  decimal.NewFromInt(250),
		},
		{
			Category:    domain.CategoryBikes,
			Description: "E-Bike Rental (2 bikes for 2 days)",
			Quantity:    2,
			UnitPrice:   decimal.NewFromInt(100),
			TotalPrice:  decimal.NewFromInt(200),
		},
	}
}

func TestInvoiceRepositoryCreateWithItems(t *testing.T) {
	log := logger.NewNop()
	ctx := context.Background()

	customers := NewInMemoryCustomerRepository(log)
	customer, err := customers.Create(ctx, domain.Customer{
		ID: uuid.New(), Name: "John Doe", Email: "john@example.com",
	})
	require.NoError(t, err)

	repo := NewInMemoryInvoiceRepository(customers, log)

	created, err := repo.CreateWithItems(ctx, testInvoice(customer.ID), testItems())
	require.NoError(t, err)

	year := time.Now().Year()
	assert.Equal(t, domain.FormatInvoiceNumber(year, 1), created.InvoiceNumber)
	require.Len(t, created.Items, 2)
	for _, item := range created.Items {
		assert.NotEqual(t, uuid.Nil, item.ID)
		assert.Equal(t, created.ID, item.InvoiceID)
	}

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.InvoiceNumber, got.InvoiceNumber)
	require.Len(t, got.Items, 2)
	// item order is preserved as written
	assert.Equal(t, domain.CategoryAccommodation, got.Items[0].Category)
	assert.Equal(t, domain.CategoryBikes, got.Items[1].Category)
	require.NotNil(t, got.Customer)
	assert.Equal(t, "John Doe", got.Customer.Name)
}

func TestInvoiceRepositoryConcurrentNumbering(t *testing.T) {
	log := logger.NewNop()
	ctx := context.Background()

	customers := NewInMemoryCustomerRepository(log)
	customer, err := customers.Create(ctx, domain.Customer{
		ID: uuid.New(), Name: "Jane Smith", Email: "jane@example.com",
	})
	require.NoError(t, err)

	repo := NewInMemoryInvoiceRepository(customers, log)

	const n = 20
	var wg sync.WaitGroup
	numbers := make(chan string, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created, err := repo.CreateWithItems(ctx, testInvoice(customer.ID), testItems())
			assert.NoError(t, err)
			numbers <- created.InvoiceNumber
		}()
	}
	wg.Wait()
	close(numbers)

	seen := make(map[string]bool)
	for number := range numbers {
		assert.False(t, seen[number], "duplicate invoice number %s", number)
		seen[number] = true
	}
	assert.Len(t, seen, n)
}

func TestInvoiceRepositoryCascadeDelete(t *testing.T) {
	log := logger.NewNop()
	ctx := context.Background()

	customers := NewInMemoryCustomerRepository(log)
	customer, err := customers.Create(ctx, domain.Customer{
		ID: uuid.New(), Name: "John Doe", Email: "john@example.com",
	})
	require.NoError(t, err)

	repo := NewInMemoryInvoiceRepository(customers, log)

	created, err := repo.CreateWithItems(ctx, testInvoice(customer.ID), testItems())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	count, err := repo.CountByYear(ctx, time.Now().Year())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestInvoiceRepositoryUpdateStatus(t *testing.T) {
	log := logger.NewNop()
	ctx := context.Background()

	customers := NewInMemoryCustomerRepository(log)
	repo := NewInMemoryInvoiceRepository(customers, log)

	created, err := repo.CreateWithItems(ctx, testInvoice(uuid.New()), testItems())
	require.NoError(t, err)

	updated, err := repo.UpdateStatus(ctx, created.ID, domain.InvoiceStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusPaid, updated.Status)

	_, err = repo.UpdateStatus(ctx, uuid.New(), domain.InvoiceStatusPaid)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerRepositoryEmailUniqueness(t *testing.T) {
	log := logger.NewNop()
	ctx := context.Background()

	repo := NewInMemoryCustomerRepository(log)

	_, err := repo.Create(ctx, domain.Customer{
		ID: uuid.New(), Name: "John Doe", Email: "john@example.com",
	})
	require.NoError(t, err)

	// duplicate check is case-insensitive
	_, err = repo.Create(ctx, domain.Customer{
		ID: uuid.New(), Name: "Johnny", Email: "John@Example.com",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	found, err := repo.GetByEmail(ctx, "JOHN@EXAMPLE.COM")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", found.Name)
}
