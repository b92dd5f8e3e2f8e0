package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccommodationDay один день плана размещения: дата и выбранный отель
type AccommodationDay struct {
	Date    string    `json:"date"`
	HotelID uuid.UUID `json:"hotel_id"`
}

// ExtraService опциональная дополнительная услуга с флагом выбора
type ExtraService struct {
	Name     string          `json:"name"`
	Rate     decimal.Decimal `json:"rate"`
	Selected bool            `json:"selected"`
}

// TourQuote эфемерный агрегат расчета стоимости тура.
// Не персистится: после финализации превращается в счет со строками.
type TourQuote struct {
	// План размещения, по одной записи на день тура
	Accommodation []AccommodationDay `json:"accommodation"`

	// Параметры группы
	NumberOfRiders int `json:"number_of_riders"`
	SingleRooms    int `json:"single_rooms"`
	DoubleRooms    int `json:"double_rooms"`

	// Прокат велосипедов
	BikeRentalDaily decimal.Decimal `json:"bike_rental_daily"`
	NumberOfBikes   int             `json:"number_of_bikes"`
	NumberOfDays    int             `json:"number_of_days"`

	// Транспорт: нулевой TransportID означает "транспорт не нужен"
	TransportID   uuid.UUID `json:"transport_id,omitempty"`
	TransportDays int       `json:"transport_days"`

	// Фиксированные ставки услуг
	TourGuideRate   decimal.Decimal `json:"tour_guide_rate"`
	SupportVehicle  decimal.Decimal `json:"support_vehicle"`
	EquipmentRental decimal.Decimal `json:"equipment_rental"`

	// Страховки: обе независимо опциональны
	TravelInsurance    decimal.Decimal `json:"travel_insurance"`
	EquipmentInsurance decimal.Decimal `json:"equipment_insurance"`

	ExtraServices []ExtraService `json:"extra_services"`

	// Скидка в процентах [0,100]
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`

	// Валюта показа; хранение всегда в базовой валюте
	Currency string `json:"currency"`
}

// HasTransport сообщает, выбран ли транспорт
func (q *TourQuote) HasTransport() bool {
	return q.TransportID != uuid.Nil
}

// Validate проверяет инварианты расчета до обращения к хранилищу
func (q *TourQuote) Validate() error {
	var errs ValidationErrors

	if len(q.Accommodation) == 0 {
		errs.Add("accommodation", "at least one accommodation day is required")
	}
	if q.DiscountPercentage.IsNegative() || q.DiscountPercentage.GreaterThan(decimal.NewFromInt(100)) {
		errs.Add("discount_percentage", "discount must be between 0 and 100")
	}
	if q.NumberOfRiders < 0 {
		errs.Add("number_of_riders", "rider count must not be negative")
	}
	if q.NumberOfBikes < 0 {
		errs.Add("number_of_bikes", "bike count must not be negative")
	}
	if q.NumberOfDays < 0 {
		errs.Add("number_of_days", "day count must not be negative")
	}
	if q.TransportDays < 0 {
		errs.Add("transport_days", "transport day count must not be negative")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
