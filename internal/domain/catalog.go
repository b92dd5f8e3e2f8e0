package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Hotel представляет собой запись каталога отелей с посуточными ставками
type Hotel struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Location       string          `json:"location"`
	Stars          int             `json:"stars"`
	SingleRoomRate decimal.Decimal `json:"single_room_rate"`
	DoubleRoomRate decimal.Decimal `json:"double_room_rate"`
	ContactEmail   string          `json:"contact_email,omitempty"`
	ContactPhone   string          `json:"contact_phone,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Validate проверяет инварианты записи каталога
func (h *Hotel) Validate() error {
	var errs ValidationErrors

	if h.Name == "" {
		errs.Add("name", "name is required")
	}
	if h.Location == "" {
		errs.Add("location", "location is required")
	}
	if h.SingleRoomRate.IsNegative() {
		errs.Add("single_room_rate", "rate must not be negative")
	}
	if h.DoubleRoomRate.IsNegative() {
		errs.Add("double_room_rate", "rate must not be negative")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// HotelRequest представляет запрос на создание/обновление отеля
type HotelRequest struct {
	Name           string          `json:"name" binding:"required"`
	Location       string          `json:"location" binding:"required"`
	Stars          int             `json:"stars" binding:"omitempty,min=1,max=5"`
	SingleRoomRate decimal.Decimal `json:"single_room_rate"`
	DoubleRoomRate decimal.Decimal `json:"double_room_rate"`
	ContactEmail   string          `json:"contact_email"`
	ContactPhone   string          `json:"contact_phone"`
}

// Transport представляет собой транспортную опцию тура
type Transport struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Capacity    int             `json:"capacity"`
	RatePerDay  decimal.Decimal `json:"rate_per_day"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Validate проверяет инварианты транспортной опции
func (t *Transport) Validate() error {
	var errs ValidationErrors

	if t.Name == "" {
		errs.Add("name", "name is required")
	}
	if t.RatePerDay.IsNegative() {
		errs.Add("rate_per_day", "rate must not be negative")
	}
	if t.Capacity < 0 {
		errs.Add("capacity", "capacity must not be negative")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// TransportRequest представляет запрос на создание/обновление транспорта
type TransportRequest struct {
	Name        string          `json:"name" binding:"required"`
	Type        string          `json:"type" binding:"required"`
	Capacity    int             `json:"capacity" binding:"omitempty,min=0"`
	RatePerDay  decimal.Decimal `json:"rate_per_day"`
	Description string          `json:"description"`
}

// Product представляет собой товар/услугу оператора (велосипеды и прочее)
type Product struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Model       string          `json:"model"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Validate проверяет инварианты товара
func (p *Product) Validate() error {
	var errs ValidationErrors

	if p.Name == "" {
		errs.Add("name", "name is required")
	}
	if p.Price.IsNegative() {
		errs.Add("price", "price must not be negative")
	}
	if p.Stock < 0 {
		errs.Add("stock", "stock must not be negative")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// ProductRequest представляет запрос на создание/обновление товара
type ProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Model       string          `json:"model"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" binding:"omitempty,min=0"`
}
