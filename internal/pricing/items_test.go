package pricing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velotours/invoice-service/internal/domain"
)

func TestBuildLineItemsOrder(t *testing.T) {
	hotel := testHotel(100, 150)
	hotels := map[uuid.UUID]domain.Hotel{hotel.ID: hotel}

	transport := &domain.Transport{
		ID:         uuid.New(),
		Name:       "Toyota Hiace",
		Type:       "Van",
		Capacity:   12,
		RatePerDay: decimal.NewFromInt(180),
	}

	quote := &domain.TourQuote{
		// days intentionally out of order: builder must sort chronologically
		Accommodation: []domain.AccommodationDay{
			{Date: "2025-07-16", HotelID: hotel.ID},
			{Date: "2025-07-15", HotelID: hotel.ID},
		},
		SingleRooms:     1,
		DoubleRooms:     1,
		BikeRentalDaily: decimal.NewFromInt(50),
		NumberOfBikes:   2,
		NumberOfDays:    2,
		TransportID:     transport.ID,
		TransportDays:   2,
		ExtraServices: []domain.ExtraService{
			{Name: "Airport Transfer", Rate: decimal.NewFromInt(50), Selected: true},
			{Name: "GPS Rental", Rate: decimal.NewFromInt(10), Selected: false},
		},
	}

	items, err := BuildLineItems(quote, hotels, transport)
	require.NoError(t, err)

	require.Len(t, items, 5)
	assert.Equal(t, "Safari Lodge - July 15, 2025", items[0].Description)
	assert.Equal(t, "Safari Lodge - July 16, 2025", items[1].Description)
	assert.Equal(t, "E-Bike Rental (2 bikes for 2 days)", items[2].Description)
	assert.Equal(t, "Transport: Toyota Hiace (2 days)", items[3].Description)
	assert.Equal(t, "Airport Transfer", items[4].Description)

	// the unselected extra must not appear at all
	for _, item := range items {
		assert.NotEqual(t, "GPS Rental", item.Description)
	}
}

func TestBuildLineItemsQuantitiesAndPrices(t *testing.T) {
	hotel := testHotel(100, 150)
	hotels := map[uuid.UUID]domain.Hotel{hotel.ID: hotel}

	quote := &domain.TourQuote{
		Accommodation: []domain.AccommodationDay{
			{Date: "2025-07-15", HotelID: hotel.ID},
		},
		NumberOfRiders:     4,
		SingleRooms:        2,
		DoubleRooms:        1,
		BikeRentalDaily:    decimal.NewFromInt(50),
		NumberOfBikes:      4,
		NumberOfDays:       6,
		TourGuideRate:      decimal.NewFromInt(200),
		SupportVehicle:     decimal.NewFromInt(150),
		EquipmentRental:    decimal.NewFromInt(30),
		TravelInsurance:    decimal.NewFromInt(25),
		EquipmentInsurance: decimal.NewFromInt(15),
	}

	items, err := BuildLineItems(quote, hotels, nil)
	require.NoError(t, err)

	require.Len(t, items, 7)

	// accommodation day: 2*100 + 1*150
	assert.Equal(t, domain.CategoryAccommodation, items[0].Category)
	assert.Equal(t, 1, items[0].Quantity)
	assert.True(t, items[0].UnitPrice.Equal(decimal.NewFromInt(350)))

	// bike rental: quantity = bikes, unit price = daily rate * days
	assert.Equal(t, domain.CategoryBikes, items[1].Category)
	assert.Equal(t, 4, items[1].Quantity)
	assert.True(t, items[1].UnitPrice.Equal(decimal.NewFromInt(300)))

	assert.Equal(t, "Tour Guide Service", items[2].Description)
	assert.Equal(t, "Support Vehicle", items[3].Description)
	assert.Equal(t, "Equipment Rental", items[4].Description)

	assert.Equal(t, "Travel Insurance", items[5].Description)
	assert.Equal(t, 4, items[5].Quantity)
	assert.Equal(t, "Equipment Insurance", items[6].Description)
	assert.Equal(t, 4, items[6].Quantity)
}

func TestBuildLineItemsOmitsZeroRateServices(t *testing.T) {
	hotel := testHotel(100, 150)
	hotels := map[uuid.UUID]domain.Hotel{hotel.ID: hotel}

	quote := &domain.TourQuote{
		Accommodation: []domain.AccommodationDay{
			{Date: "2025-07-15", HotelID: hotel.ID},
		},
		SingleRooms:     1,
		BikeRentalDaily: decimal.NewFromInt(50),
		NumberOfBikes:   1,
		NumberOfDays:    1,
	}

	items, err := BuildLineItems(quote, hotels, nil)
	require.NoError(t, err)

	// accommodation day + bike rental only: no transport, zero-rate services,
	// zero insurance, no extras
	require.Len(t, items, 2)
	assert.Equal(t, domain.CategoryAccommodation, items[0].Category)
	assert.Equal(t, domain.CategoryBikes, items[1].Category)
}

func TestLineItemTotalInvariant(t *testing.T) {
	hotel := testHotel(99.99, 149.99)
	hotels := map[uuid.UUID]domain.Hotel{hotel.ID: hotel}

	quote := &domain.TourQuote{
		Accommodation: []domain.AccommodationDay{
			{Date: "2025-07-15", HotelID: hotel.ID},
		},
		NumberOfRiders:  3,
		SingleRooms:     1,
		DoubleRooms:     2,
		BikeRentalDaily: decimal.NewFromFloat(49.95),
		NumberOfBikes:   3,
		NumberOfDays:    5,
		TravelInsurance: decimal.NewFromFloat(24.99),
	}

	items, err := BuildLineItems(quote, hotels, nil)
	require.NoError(t, err)

	for _, item := range items {
		expected := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
		assert.True(t, item.Total().Equal(expected),
			"item %q: total %s != %s", item.Description, item.Total(), expected)
	}
}

func TestItemsTotalMatchesCalculatorSubtotal(t *testing.T) {
	hotel := testHotel(100, 150)
	hotels := map[uuid.UUID]domain.Hotel{hotel.ID: hotel}

	quote := &domain.TourQuote{
		Accommodation: []domain.AccommodationDay{
			{Date: "2025-07-15", HotelID: hotel.ID},
			{Date: "2025-07-16", HotelID: hotel.ID},
		},
		NumberOfRiders:  2,
		SingleRooms:     1,
		DoubleRooms:     1,
		BikeRentalDaily: decimal.NewFromInt(50),
		NumberOfBikes:   2,
		NumberOfDays:    2,
		TourGuideRate:   decimal.NewFromInt(200),
	}

	breakdown, err := Calculate(quote, hotels, nil)
	require.NoError(t, err)

	items, err := BuildLineItems(quote, hotels, nil)
	require.NoError(t, err)

	assert.True(t, ItemsTotal(items).Equal(breakdown.Subtotal),
		"items total %s != subtotal %s", ItemsTotal(items), breakdown.Subtotal)
}
