package pricing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velotours/invoice-service/internal/domain"
)

func testHotel(single, double float64) domain.Hotel {
	return domain.Hotel{
		ID:             uuid.New(),
		Name:           "Safari Lodge",
		Location:       "Nairobi",
		Stars:          4,
		SingleRoomRate: decimal.NewFromFloat(single),
		DoubleRoomRate: decimal.NewFromFloat(double),
	}
}

func TestCalculateFullScenario(t *testing.T) {
	hotel := testHotel(100, 150)
	hotels := map[uuid.UUID]domain.Hotel{hotel.ID: hotel}

	quote := &domain.TourQuote{
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
	}

	got, err := Calculate(quote, hotels, nil)
	require.NoError(t, err)

	assert.True(t, got.Accommodation.Equal(decimal.NewFromInt(500)), "accommodation = %s", got.Accommodation)
	assert.True(t, got.BikeRental.Equal(decimal.NewFromInt(200)), "bike rental = %s", got.BikeRental)
	assert.True(t, got.Transport.IsZero(), "transport = %s", got.Transport)
	assert.True(t, got.Services.Equal(decimal.NewFromInt(200)), "services = %s", got.Services)
	assert.True(t, got.Insurance.IsZero(), "insurance = %s", got.Insurance)
	assert.True(t, got.Extras.IsZero(), "extras = %s", got.Extras)
	assert.True(t, got.Subtotal.Equal(decimal.NewFromInt(900)), "subtotal = %s", got.Subtotal)
	assert.True(t, got.DiscountAmount.Equal(decimal.NewFromInt(90)), "discount = %s", got.DiscountAmount)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(810)), "total = %s", got.Total)
}

func TestCalculateWithTransportInsuranceAndExtras(t *testing.T) {
	hotel := testHotel(120, 180)
	hotels := map[uuid.UUID]domain.Hotel{hotel.ID: hotel}

	transport := &domain.Transport{
		ID:         uuid.New(),
		Name:       "Luxury Van",
		Type:       "Van",
		Capacity:   8,
		RatePerDay: decimal.NewFromInt(120),
	}

	quote := &domain.TourQuote{
		Accommodation: []domain.AccommodationDay{
			{Date: "2025-08-01", HotelID: hotel.ID},
		},
		NumberOfRiders:     4,
		SingleRooms:        2,
		DoubleRooms:        1,
		BikeRentalDaily:    decimal.NewFromInt(50),
		NumberOfBikes:      4,
		NumberOfDays:       1,
		TransportID:        transport.ID,
		TransportDays:      3,
		TravelInsurance:    decimal.NewFromInt(25),
		EquipmentInsurance: decimal.NewFromInt(15),
		ExtraServices: []domain.ExtraService{
			{Name: "Airport Transfer", Rate: decimal.NewFromInt(50), Selected: true},
			{Name: "GPS Rental", Rate: decimal.NewFromInt(10), Selected: false},
		},
	}

	got, err := Calculate(quote, hotels, transport)
	require.NoError(t, err)

	// 2*120 + 1*180 = 420
	assert.True(t, got.Accommodation.Equal(decimal.NewFromInt(420)))
	// 50 * 4 * 1
	assert.True(t, got.BikeRental.Equal(decimal.NewFromInt(200)))
	// 120 * 3
	assert.True(t, got.Transport.Equal(decimal.NewFromInt(360)))
	// 25*4 + 15*4 = 160
	assert.True(t, got.Insurance.Equal(decimal.NewFromInt(160)))
	// only the selected extra counts
	assert.True(t, got.Extras.Equal(decimal.NewFromInt(50)))
	assert.True(t, got.Subtotal.Equal(decimal.NewFromInt(1190)))
	assert.True(t, got.Total.Equal(decimal.NewFromInt(1190)))
}

func TestCalculateRejectsUnresolvedAccommodationDay(t *testing.T) {
	hotel := testHotel(100, 150)
	hotels := map[uuid.UUID]domain.Hotel{hotel.ID: hotel}

	quote := &domain.TourQuote{
		Accommodation: []domain.AccommodationDay{
			{Date: "2025-07-15", HotelID: hotel.ID},
			{Date: "2025-07-16", HotelID: uuid.Nil},
		},
		SingleRooms: 1,
	}

	_, err := Calculate(quote, hotels, nil)
	assert.ErrorIs(t, err, domain.ErrIncompleteQuote)
}

func TestCalculateRejectsUnknownHotel(t *testing.T) {
	quote := &domain.TourQuote{
		Accommodation: []domain.AccommodationDay{
			{Date: "2025-07-15", HotelID: uuid.New()},
		},
	}

	_, err := Calculate(quote, map[uuid.UUID]domain.Hotel{}, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCalculateRejectsNegativeRates(t *testing.T) {
	hotel := testHotel(100, 150)
	hotels := map[uuid.UUID]domain.Hotel{hotel.ID: hotel}

	quote := &domain.TourQuote{
		Accommodation: []domain.AccommodationDay{
			{Date: "2025-07-15", HotelID: hotel.ID},
		},
		BikeRentalDaily: decimal.NewFromInt(-1),
	}

	_, err := Calculate(quote, hotels, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidRate)
}

func TestCalculateNoRoundingMidCalculation(t *testing.T) {
	hotel := testHotel(33.335, 0)
	hotels := map[uuid.UUID]domain.Hotel{hotel.ID: hotel}

	quote := &domain.TourQuote{
		Accommodation: []domain.AccommodationDay{
			{Date: "2025-07-15", HotelID: hotel.ID},
			{Date: "2025-07-16", HotelID: hotel.ID},
			{Date: "2025-07-17", HotelID: hotel.ID},
		},
		SingleRooms: 1,
	}

	got, err := Calculate(quote, hotels, nil)
	require.NoError(t, err)

	// 3 * 33.335 = 100.005 exactly; binary floats would drift here
	assert.True(t, got.Subtotal.Equal(decimal.NewFromFloat(100.005)), "subtotal = %s", got.Subtotal)
}
