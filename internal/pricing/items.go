package pricing

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/velotours/invoice-service/internal/domain"
)

// LineItem строка счета до присвоения идентификаторов при сохранении
type LineItem struct {
	Category    domain.ItemCategory
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// Total возвращает сумму строки; цены уже округлены до двух знаков,
// поэтому произведение на целое количество остается точным
func (li LineItem) Total() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// BuildLineItems разворачивает расчет тура в упорядоченный список строк счета.
// Порядок фиксирован: дни размещения (хронологически) → прокат велосипедов →
// транспорт → услуги → страховки → выбранные дополнительные услуги.
func BuildLineItems(q *domain.TourQuote, hotels map[uuid.UUID]domain.Hotel, transport *domain.Transport) ([]LineItem, error) {
	if _, err := Calculate(q, hotels, transport); err != nil {
		return nil, err
	}

	items := make([]LineItem, 0, len(q.Accommodation)+8)

	days := make([]domain.AccommodationDay, len(q.Accommodation))
	copy(days, q.Accommodation)
	sort.SliceStable(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	singleRooms := decimal.NewFromInt(int64(q.SingleRooms))
	doubleRooms := decimal.NewFromInt(int64(q.DoubleRooms))
	for _, day := range days {
		hotel := hotels[day.HotelID]
		dailyTotal := hotel.SingleRoomRate.Mul(singleRooms).
			Add(hotel.DoubleRoomRate.Mul(doubleRooms))
		items = append(items, LineItem{
			Category:    domain.CategoryAccommodation,
			Description: fmt.Sprintf("%s - %s", hotel.Name, formatDate(day.Date)),
			Quantity:    1,
			UnitPrice:   dailyTotal.Round(2),
		})
	}

	items = append(items, LineItem{
		Category: domain.CategoryBikes,
		Description: fmt.Sprintf("E-Bike Rental (%d bikes for %d days)",
			q.NumberOfBikes, q.NumberOfDays),
		Quantity:  q.NumberOfBikes,
		UnitPrice: q.BikeRentalDaily.Mul(decimal.NewFromInt(int64(q.NumberOfDays))).Round(2),
	})

	if q.HasTransport() && transport != nil {
		items = append(items, LineItem{
			Category: domain.CategoryTransport,
			Description: fmt.Sprintf("Transport: %s (%d days)",
				transport.Name, q.TransportDays),
			Quantity:  1,
			UnitPrice: transport.RatePerDay.Mul(decimal.NewFromInt(int64(q.TransportDays))).Round(2),
		})
	}

	flatServices := []struct {
		description string
		rate        decimal.Decimal
	}{
		{"Tour Guide Service", q.TourGuideRate},
		{"Support Vehicle", q.SupportVehicle},
		{"Equipment Rental", q.EquipmentRental},
	}
	for _, svc := range flatServices {
		if svc.rate.IsPositive() {
			items = append(items, LineItem{
				Category:    domain.CategoryServices,
				Description: svc.description,
				Quantity:    1,
				UnitPrice:   svc.rate.Round(2),
			})
		}
	}

	if q.TravelInsurance.IsPositive() {
		items = append(items, LineItem{
			Category:    domain.CategoryInsurance,
			Description: "Travel Insurance",
			Quantity:    q.NumberOfRiders,
			UnitPrice:   q.TravelInsurance.Round(2),
		})
	}
	if q.EquipmentInsurance.IsPositive() {
		items = append(items, LineItem{
			Category:    domain.CategoryInsurance,
			Description: "Equipment Insurance",
			Quantity:    q.NumberOfBikes,
			UnitPrice:   q.EquipmentInsurance.Round(2),
		})
	}

	for _, svc := range q.ExtraServices {
		if svc.Selected {
			items = append(items, LineItem{
				Category:    domain.CategoryExtras,
				Description: svc.Name,
				Quantity:    1,
				UnitPrice:   svc.Rate.Round(2),
			})
		}
	}

	return items, nil
}

// ItemsTotal суммирует строки счета
func ItemsTotal(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Total())
	}
	return total
}

// formatDate переводит дату плана размещения в длинный формат для описания
// строки; нераспознанное значение остается как есть
func formatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("January 2, 2006")
}
