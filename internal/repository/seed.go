package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/velotours/invoice-service/internal/domain"
	"github.com/velotours/invoice-service/pkg/logger"
)

// SeedDemoData наполняет репозитории в памяти демонстрационными справочниками.
// Используется только в режиме работы без базы данных.
func SeedDemoData(
	ctx context.Context,
	customers CustomerRepository,
	hotels HotelRepository,
	transport TransportRepository,
	products ProductRepository,
	log *logger.Logger,
) error {
	demoCustomers := []domain.Customer{
		{
			ID:      uuid.New(),
			Name:    "John Doe",
			Email:   "john@example.com",
			Phone:   "+1 123-456-7890",
			Address: "123 Main St",
		},
		{
			ID:    uuid.New(),
			Name:  "Jane Smith",
			Email: "jane@example.com",
			Phone: "+1 987-654-3210",
		},
	}
	for _, c := range demoCustomers {
		if _, err := customers.Create(ctx, c); err != nil {
			return fmt.Errorf("failed to seed customer %q: %w", c.Name, err)
		}
	}

	demoHotels := []domain.Hotel{
		{
			ID:             uuid.New(),
			Name:           "Grand Hotel",
			Location:       "Barcelona, Spain",
			Stars:          5,
			SingleRoomRate: decimal.NewFromInt(150),
			DoubleRoomRate: decimal.NewFromInt(220),
			ContactEmail:   "bookings@grandhotel.com",
			ContactPhone:   "+34 123 456 789",
		},
		{
			ID:             uuid.New(),
			Name:           "Seaside Resort",
			Location:       "Mallorca, Spain",
			Stars:          4,
			SingleRoomRate: decimal.NewFromInt(120),
			DoubleRoomRate: decimal.NewFromInt(180),
			ContactEmail:   "reservations@seasideresort.com",
			ContactPhone:   "+34 987 654 321",
		},
		{
			ID:             uuid.New(),
			Name:           "Mountain Lodge",
			Location:       "Pyrenees, Spain",
			Stars:          3,
			SingleRoomRate: decimal.NewFromInt(90),
			DoubleRoomRate: decimal.NewFromInt(130),
		},
	}
	for _, h := range demoHotels {
		if _, err := hotels.Create(ctx, h); err != nil {
			return fmt.Errorf("failed to seed hotel %q: %w", h.Name, err)
		}
	}

	demoTransport := []domain.Transport{
		{
			ID:          uuid.New(),
			Name:        "Luxury Coach",
			Type:        "Bus",
			Capacity:    45,
			RatePerDay:  decimal.NewFromInt(450),
			Description: "Air-conditioned coach with WiFi and amenities",
		},
		{
			ID:          uuid.New(),
			Name:        "Toyota Hiace",
			Type:        "Van",
			Capacity:    12,
			RatePerDay:  decimal.NewFromInt(180),
			Description: "Comfortable 12-seater van for smaller groups",
		},
	}
	for _, t := range demoTransport {
		if _, err := transport.Create(ctx, t); err != nil {
			return fmt.Errorf("failed to seed transport %q: %w", t.Name, err)
		}
	}

	demoProducts := []domain.Product{
		{
			ID:          uuid.New(),
			Name:        "Giant E-Bike Model X",
			Description: "Top of the line electric bike",
			Model:       "GNT-X-2023",
			Price:       decimal.NewFromFloat(1899.99),
			Stock:       10,
		},
		{
			ID:          uuid.New(),
			Name:        "Specialized Turbo",
			Description: "Performance electric mountain bike",
			Model:       "SPZ-TB-2023",
			Price:       decimal.NewFromFloat(2499.99),
			Stock:       5,
		},
	}
	for _, p := range demoProducts {
		if _, err := products.Create(ctx, p); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", p.Name, err)
		}
	}

	log.Infow("Seeded demo data",
		"customers", len(demoCustomers),
		"hotels", len(demoHotels),
		"transport", len(demoTransport),
		"products", len(demoProducts))

	return nil
}
