package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velotours/invoice-service/internal/domain"
	"github.com/velotours/invoice-service/internal/metrics"
	"github.com/velotours/invoice-service/internal/repository"
	"github.com/velotours/invoice-service/pkg/logger"
)

func newQuoteFixture(t *testing.T) (QuoteService, domain.Hotel, domain.Transport) {
	t.Helper()

	log := logger.NewNop()
	ctx := context.Background()

	hotels := repository.NewInMemoryHotelRepository(log)
	transports := repository.NewInMemoryTransportRepository(log)

	hotel, err := hotels.Create(ctx, domain.Hotel{
		ID:             uuid.New(),
		Name:           "Ocean Breeze Resort",
		Location:       "Galle",
		Stars:          5,
		SingleRoomRate: decimal.NewFromInt(100),
		DoubleRoomRate: decimal.NewFromInt(150),
	})
	require.NoError(t, err)

	transport, err := transports.Create(ctx, domain.Transport{
		ID:         uuid.New(),
		Name:       "Minibus",
		Type:       "Bus",
		Capacity:   20,
		RatePerDay: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	svc := NewQuoteService(hotels, transports, metrics.NoopInvoiceMetrics{}, log)
	return svc, hotel, transport
}

func TestQuoteCalculate(t *testing.T) {
	svc, hotel, _ := newQuoteFixture(t)

	result, err := svc.Calculate(context.Background(), domain.TourQuote{
		Accommodation: []domain.AccommodationDay{
			{Date: "2025-07-15", HotelID: hotel.ID},
			{Date: "2025-07-16", HotelID: hotel.ID},
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
	})
	require.NoError(t, err)

	assert.True(t, result.Breakdown.Total.Equal(decimal.NewFromInt(810)))
	assert.Equal(t, "USD", result.Currency)
	assert.Equal(t, "$810.00", result.FormattedTotal)
	assert.Len(t, result.Items, 4)
}

func TestQuoteCalculateFormatsDisplayCurrency(t *testing.T) {
	svc, hotel, _ := newQuoteFixture(t)

	result, err := svc.Calculate(context.Background(), domain.TourQuote{
		Accommodation: []domain.AccommodationDay{
			{Date: "2025-07-15", HotelID: hotel.ID},
		},
		SingleRooms: 1,
		Currency:    "EUR",
	})
	require.NoError(t, err)

	// 100 USD * 0.92
	assert.Equal(t, "€92.00", result.FormattedTotal)
	// the breakdown stays in the base currency
	assert.True(t, result.Breakdown.Total.Equal(decimal.NewFromInt(100)))
}

func TestQuoteCalculateDefaultsToBaseCurrency(t *testing.T) {
	svc, hotel, _ := newQuoteFixture(t)

	result, err := svc.Calculate(context.Background(), domain.TourQuote{
		Accommodation: []domain.AccommodationDay{
			{Date: "2025-07-15", HotelID: hotel.ID},
		},
		SingleRooms: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, "USD", result.Currency)
}

func TestQuoteCalculateUnknownHotel(t *testing.T) {
	svc, _, _ := newQuoteFixture(t)

	_, err := svc.Calculate(context.Background(), domain.TourQuote{
		Accommodation: []domain.AccommodationDay{
			{Date: "2025-07-15", HotelID: uuid.New()},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestQuoteCalculateRejectsBadDiscount(t *testing.T) {
	svc, hotel, _ := newQuoteFixture(t)

	_, err := svc.Calculate(context.Background(), domain.TourQuote{
		Accommodation: []domain.AccommodationDay{
			{Date: "2025-07-15", HotelID: hotel.ID},
		},
		DiscountPercentage: decimal.NewFromInt(150),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidData)
}

func TestQuoteCalculateWithTransport(t *testing.T) {
	svc, hotel, transport := newQuoteFixture(t)

	result, err := svc.Calculate(context.Background(), domain.TourQuote{
		Accommodation: []domain.AccommodationDay{
			{Date: "2025-07-15", HotelID: hotel.ID},
		},
		SingleRooms:   1,
		TransportID:   transport.ID,
		TransportDays: 3,
	})
	require.NoError(t, err)

	assert.True(t, result.Breakdown.Transport.Equal(decimal.NewFromInt(300)))
}
