// Package pricing содержит чистый расчет стоимости тура и сборку строк счета.
// Все денежные вычисления выполняются на decimal.Decimal; округление до двух
// знаков происходит только на границе персистентности и форматирования.
package pricing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/velotours/invoice-service/internal/domain"
)

var oneHundred = decimal.NewFromInt(100)

// Breakdown результат расчета: промежуточные суммы по категориям затрат
type Breakdown struct {
	Accommodation  decimal.Decimal `json:"accommodation"`
	BikeRental     decimal.Decimal `json:"bike_rental"`
	Transport      decimal.Decimal `json:"transport"`
	Services       decimal.Decimal `json:"services"`
	Insurance      decimal.Decimal `json:"insurance"`
	Extras         decimal.Decimal `json:"extras"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Total          decimal.Decimal `json:"total"`
}

// Calculate вычисляет стоимость тура по расчету q.
// hotels — каталожные записи, разрешенные по плану размещения;
// transport — выбранная транспортная опция, nil если транспорт не нужен.
// День без разрешенного отеля приводит к ErrIncompleteQuote: пропуск дня
// молча занизил бы итог.
func Calculate(q *domain.TourQuote, hotels map[uuid.UUID]domain.Hotel, transport *domain.Transport) (*Breakdown, error) {
	if err := validateRates(q, hotels, transport); err != nil {
		return nil, err
	}

	accommodation := decimal.Zero
	singleRooms := decimal.NewFromInt(int64(q.SingleRooms))
	doubleRooms := decimal.NewFromInt(int64(q.DoubleRooms))
	for _, day := range q.Accommodation {
		if day.HotelID == uuid.Nil {
			return nil, domain.ErrIncompleteQuote
		}
		hotel, ok := hotels[day.HotelID]
		if !ok {
			return nil, domain.NewNotFoundError("hotel", day.HotelID.String())
		}
		accommodation = accommodation.
			Add(hotel.SingleRoomRate.Mul(singleRooms)).
			Add(hotel.DoubleRoomRate.Mul(doubleRooms))
	}

	bikeRental := q.BikeRentalDaily.
		Mul(decimal.NewFromInt(int64(q.NumberOfBikes))).
		Mul(decimal.NewFromInt(int64(q.NumberOfDays)))

	transportTotal := decimal.Zero
	if q.HasTransport() && transport != nil {
		transportTotal = transport.RatePerDay.Mul(decimal.NewFromInt(int64(q.TransportDays)))
	}

	services := q.TourGuideRate.Add(q.SupportVehicle).Add(q.EquipmentRental)

	insurance := q.TravelInsurance.Mul(decimal.NewFromInt(int64(q.NumberOfRiders))).
		Add(q.EquipmentInsurance.Mul(decimal.NewFromInt(int64(q.NumberOfBikes))))

	extras := decimal.Zero
	for _, svc := range q.ExtraServices {
		if svc.Selected {
			extras = extras.Add(svc.Rate)
		}
	}

	subtotal := accommodation.
		Add(bikeRental).
		Add(transportTotal).
		Add(services).
		Add(insurance).
		Add(extras)

	discount := subtotal.Mul(q.DiscountPercentage).Div(oneHundred)
	total := subtotal.Sub(discount)

	return &Breakdown{
		Accommodation:  accommodation,
		BikeRental:     bikeRental,
		Transport:      transportTotal,
		Services:       services,
		Insurance:      insurance,
		Extras:         extras,
		Subtotal:       subtotal,
		DiscountAmount: discount,
		Total:          total,
	}, nil
}

// validateRates отклоняет отрицательные ставки до начала расчета
func validateRates(q *domain.TourQuote, hotels map[uuid.UUID]domain.Hotel, transport *domain.Transport) error {
	negatives := []decimal.Decimal{
		q.BikeRentalDaily,
		q.TourGuideRate,
		q.SupportVehicle,
		q.EquipmentRental,
		q.TravelInsurance,
		q.EquipmentInsurance,
	}
	for _, rate := range negatives {
		if rate.IsNegative() {
			return domain.ErrInvalidRate
		}
	}

	for _, svc := range q.ExtraServices {
		if svc.Rate.IsNegative() {
			return domain.ErrInvalidRate
		}
	}

	for _, hotel := range hotels {
		if hotel.SingleRoomRate.IsNegative() || hotel.DoubleRoomRate.IsNegative() {
			return domain.ErrInvalidRate
		}
	}

	if transport != nil && transport.RatePerDay.IsNegative() {
		return domain.ErrInvalidRate
	}

	return nil
}
