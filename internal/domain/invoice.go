package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus статус счета
type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "PENDING"
	InvoiceStatusPaid      InvoiceStatus = "PAID"
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"
)

// Validate проверяет, что статус входит в допустимый набор
func (s InvoiceStatus) Validate() error {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusCancelled:
		return nil
	default:
		return ErrInvalidStatus
	}
}

// IsTerminal сообщает, является ли статус терминальным.
// Переходы из PAID и CANCELLED запрещены.
func (s InvoiceStatus) IsTerminal() bool {
	return s == InvoiceStatusPaid || s == InvoiceStatusCancelled
}

// ItemCategory категория строки счета, используется для группировки при отображении
type ItemCategory string

const (
	CategoryAccommodation ItemCategory = "accommodation"
	CategoryBikes         ItemCategory = "bikes"
	CategoryTransport     ItemCategory = "transport"
	CategoryServices      ItemCategory = "services"
	CategoryInsurance     ItemCategory = "insurance"
	CategoryExtras        ItemCategory = "extras"
)

// InvoiceItem представляет одну строку счета.
// Цены хранятся в базовой валюте оператора (USD) независимо от валюты показа.
type InvoiceItem struct {
	ID          uuid.UUID       `json:"id"`
	InvoiceID   uuid.UUID       `json:"invoice_id"`
	Category    ItemCategory    `json:"category"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Invoice представляет собой счет с денормализованным контекстом тура
type Invoice struct {
	ID            uuid.UUID       `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	CustomerID    uuid.UUID       `json:"customer_id"`
	Status        InvoiceStatus   `json:"status"`
	TotalAmount   decimal.Decimal `json:"total_amount"`

	// Контекст тура, хранится только для отображения
	TourName           string          `json:"tour_name,omitempty"`
	TourStartDate      string          `json:"tour_start_date,omitempty"`
	TourEndDate        string          `json:"tour_end_date,omitempty"`
	GroupSize          int             `json:"group_size,omitempty"`
	SingleRooms        int             `json:"single_rooms,omitempty"`
	DoubleRooms        int             `json:"double_rooms,omitempty"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	AdditionalRequests string          `json:"additional_requests,omitempty"`
	Currency           string          `json:"currency,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Customer *Customer     `json:"customer,omitempty"`
	Items    []InvoiceItem `json:"invoice_items,omitempty"`
}

// TourContext денормализованные поля тура, переносимые в заголовок счета
type TourContext struct {
	TourName           string          `json:"tour_name"`
	TourStartDate      string          `json:"tour_start_date"`
	TourEndDate        string          `json:"tour_end_date"`
	GroupSize          int             `json:"group_size"`
	SingleRooms        int             `json:"single_rooms"`
	DoubleRooms        int             `json:"double_rooms"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	AdditionalRequests string          `json:"additional_requests"`
	Currency           string          `json:"currency"`
}

// CreateInvoiceRequest представляет запрос на создание счета из расчета тура
type CreateInvoiceRequest struct {
	Customer CustomerRequest `json:"customer" binding:"required"`
	Tour     TourContext     `json:"tour"`
	Quote    TourQuote       `json:"quote" binding:"required"`
}

// UpdateStatusRequest представляет запрос на смену статуса счета
type UpdateStatusRequest struct {
	Status InvoiceStatus `json:"status" binding:"required"`
}

// FormatInvoiceNumber собирает номер счета вида INV-2025-001.
// Порядковый номер дополняется нулями до трех знаков, но не обрезается.
func FormatInvoiceNumber(year, seq int) string {
	return fmt.Sprintf("INV-%d-%03d", year, seq)
}
