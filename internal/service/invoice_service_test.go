package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velotours/invoice-service/internal/domain"
	"github.com/velotours/invoice-service/internal/kafka/producer"
	"github.com/velotours/invoice-service/internal/metrics"
	"github.com/velotours/invoice-service/internal/repository"
	"github.com/velotours/invoice-service/pkg/logger"
)

type invoiceFixture struct {
	svc       InvoiceService
	invoices  repository.InvoiceRepository
	customers repository.CustomerRepository
	hotel     domain.Hotel
	transport domain.Transport
}

func newInvoiceFixture(t *testing.T) *invoiceFixture {
	t.Helper()

	log := logger.NewNop()
	ctx := context.Background()

	customers := repository.NewInMemoryCustomerRepository(log)
	hotels := repository.NewInMemoryHotelRepository(log)
	transports := repository.NewInMemoryTransportRepository(log)
	invoices := repository.NewInMemoryInvoiceRepository(customers, log)

	hotel, err := hotels.Create(ctx, domain.Hotel{
		ID:             uuid.New(),
		Name:           "Mountain View Hotel",
		Location:       "Kandy",
		Stars:          4,
		SingleRoomRate: decimal.NewFromInt(100),
		DoubleRoomRate: decimal.NewFromInt(150),
	})
	require.NoError(t, err)

	transport, err := transports.Create(ctx, domain.Transport{
		ID:         uuid.New(),
		Name:       "Toyota Hiace",
		Type:       "Van",
		Capacity:   12,
		RatePerDay: decimal.NewFromInt(120),
	})
	require.NoError(t, err)

	svc := NewInvoiceService(
		invoices, customers, hotels, transports,
		producer.NoopInvoiceProducer{}, metrics.NoopInvoiceMetrics{}, log,
	)

	return &invoiceFixture{
		svc:       svc,
		invoices:  invoices,
		customers: customers,
		hotel:     hotel,
		transport: transport,
	}
}

func (f *invoiceFixture) createRequest() domain.CreateInvoiceRequest {
	return domain.CreateInvoiceRequest{
		Customer: domain.CustomerRequest{
			Name:  "Jane Cooper",
			Email: "jane@example.com",
			Phone: "+44 20 7946 0958",
		},
		Tour: domain.TourContext{
			TourName:      "Hill Country Loop",
			TourStartDate: "2025-07-15",
			TourEndDate:   "2025-07-17",
		},
		Quote: domain.TourQuote{
			Accommodation: []domain.AccommodationDay{
				{Date: "2025-07-15", HotelID: f.hotel.ID},
				{Date: "2025-07-16", HotelID: f.hotel.ID},
			},
			NumberOfRiders:     2,
			SingleRooms:        1,
			DoubleRooms:        1,
			BikeRentalDaily:    decimal.NewFromInt(50),
			NumberOfBikes:      2,
			NumberOfDays:       2,
			TourGuideRate:      decimal.NewFromInt(200),
			DiscountPercentage: decimal.NewFromInt(10),
			Currency:           "USD",
		},
	}
}

func TestInvoiceCreateAssignsSequentialNumbers(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()
	year := time.Now().Year()

	for i := 1; i <= 3; i++ {
		created, err := f.svc.Create(ctx, f.createRequest())
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("INV-%d-%03d", year, i), created.InvoiceNumber)
	}
}

func TestInvoiceCreateTotals(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.createRequest())
	require.NoError(t, err)

	// 500 accommodation + 200 bikes + 200 guide = 900, minus 10% = 810
	assert.True(t, created.TotalAmount.Equal(decimal.NewFromInt(810)),
		"total = %s", created.TotalAmount)
	assert.Equal(t, domain.InvoiceStatusPending, created.Status)
	require.Len(t, created.Items, 4)

	sum := decimal.Zero
	for _, item := range created.Items {
		sum = sum.Add(item.TotalPrice)
	}
	discount := sum.Mul(created.DiscountPercentage).Div(decimal.NewFromInt(100)).Round(2)
	assert.True(t, created.TotalAmount.Equal(sum.Sub(discount)),
		"header total %s does not match items", created.TotalAmount)
}

func TestInvoiceCreateReusesCustomerByEmail(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()

	first, err := f.svc.Create(ctx, f.createRequest())
	require.NoError(t, err)

	second, err := f.svc.Create(ctx, f.createRequest())
	require.NoError(t, err)

	assert.Equal(t, first.CustomerID, second.CustomerID)

	all, err := f.customers.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestInvoiceCreatePreservesCustomerName(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()

	first, err := f.svc.Create(ctx, f.createRequest())
	require.NoError(t, err)

	// a repeat submission may update contact fields but never the name
	req := f.createRequest()
	req.Customer.Name = "J. Cooper-Smith"
	req.Customer.Phone = "+44 20 7946 0000"

	second, err := f.svc.Create(ctx, req)
	require.NoError(t, err)
	require.Equal(t, first.CustomerID, second.CustomerID)

	customer, err := f.customers.GetByID(ctx, second.CustomerID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Cooper", customer.Name)
	assert.Equal(t, "+44 20 7946 0000", customer.Phone)
}

func TestInvoiceCreateRejectsUnsupportedCurrency(t *testing.T) {
	f := newInvoiceFixture(t)

	req := f.createRequest()
	req.Quote.Currency = "JPY"

	_, err := f.svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrUnsupportedCurrency)
}

func TestInvoiceStatusLifecycle(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.createRequest())
	require.NoError(t, err)

	updated, err := f.svc.UpdateStatus(ctx, created.ID.String(),
		domain.UpdateStatusRequest{Status: domain.InvoiceStatusPaid})
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusPaid, updated.Status)

	// terminal statuses must not transition anywhere
	_, err = f.svc.UpdateStatus(ctx, created.ID.String(),
		domain.UpdateStatusRequest{Status: domain.InvoiceStatusCancelled})
	assert.ErrorIs(t, err, domain.ErrInvoiceFinalized)

	_, err = f.svc.UpdateStatus(ctx, created.ID.String(),
		domain.UpdateStatusRequest{Status: domain.InvoiceStatusPending})
	assert.ErrorIs(t, err, domain.ErrInvoiceFinalized)
}

func TestInvoiceStatusResponseCarriesRelations(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.createRequest())
	require.NoError(t, err)

	// the status response matches the creation response shape
	updated, err := f.svc.UpdateStatus(ctx, created.ID.String(),
		domain.UpdateStatusRequest{Status: domain.InvoiceStatusPaid})
	require.NoError(t, err)

	assert.Equal(t, domain.InvoiceStatusPaid, updated.Status)
	require.NotEmpty(t, updated.Items)
	assert.Len(t, updated.Items, len(created.Items))
	require.NotNil(t, updated.Customer)
	assert.Equal(t, created.CustomerID, updated.Customer.ID)
}

func TestInvoiceStatusRejectsUnknownValue(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.createRequest())
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(ctx, created.ID.String(),
		domain.UpdateStatusRequest{Status: "REFUNDED"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestInvoiceDeleteCascades(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.createRequest())
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, created.ID.String()))

	_, err = f.svc.GetByID(ctx, created.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvoiceNumberingContinuesAfterDelete(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()
	year := time.Now().Year()

	first, err := f.svc.Create(ctx, f.createRequest())
	require.NoError(t, err)

	second, err := f.svc.Create(ctx, f.createRequest())
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("INV-%d-002", year), second.InvoiceNumber)

	// numbering is count-based, so a deleted invoice frees its number
	require.NoError(t, f.svc.Delete(ctx, first.ID.String()))

	third, err := f.svc.Create(ctx, f.createRequest())
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("INV-%d-002", year), third.InvoiceNumber)
}

func TestInvoiceGetByIDInvalidUUID(t *testing.T) {
	f := newInvoiceFixture(t)

	_, err := f.svc.GetByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrInvalidData)
}
