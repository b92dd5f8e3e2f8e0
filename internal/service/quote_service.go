package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/velotours/invoice-service/internal/currency"
	"github.com/velotours/invoice-service/internal/domain"
	"github.com/velotours/invoice-service/internal/metrics"
	"github.com/velotours/invoice-service/internal/pricing"
	"github.com/velotours/invoice-service/internal/repository"
	"github.com/velotours/invoice-service/pkg/logger"
)

// QuoteResult результат расчета стоимости тура: разбивка по категориям,
// строки будущего счета и итог, отформатированный в валюте показа
type QuoteResult struct {
	Breakdown      pricing.Breakdown `json:"breakdown"`
	Items          []QuoteItem       `json:"items"`
	Currency       string            `json:"currency"`
	FormattedTotal string            `json:"formatted_total"`
}

// QuoteItem строка предварительного расчета
type QuoteItem struct {
	Category    domain.ItemCategory `json:"category"`
	Description string              `json:"description"`
	Quantity    int                 `json:"quantity"`
	UnitPrice   string              `json:"unit_price"`
	TotalPrice  string              `json:"total_price"`
}

// QuoteService интерфейс сервиса расчета стоимости тура
type QuoteService interface {
	Calculate(ctx context.Context, quote domain.TourQuote) (QuoteResult, error)
}

type quoteService struct {
	hotels    repository.HotelRepository
	transport repository.TransportRepository
	metrics   metrics.InvoiceMetrics
	log       *logger.Logger
}

// NewQuoteService создает новый сервис расчета стоимости тура
func NewQuoteService(
	hotels repository.HotelRepository,
	transport repository.TransportRepository,
	m metrics.InvoiceMetrics,
	log *logger.Logger,
) QuoteService {
	return &quoteService{
		hotels:    hotels,
		transport: transport,
		metrics:   m,
		log:       log,
	}
}

// Calculate выполняет предварительный расчет без создания счета
func (s *quoteService) Calculate(ctx context.Context, quote domain.TourQuote) (QuoteResult, error) {
	s.log.Debugw("Calculating tour quote",
		"days", len(quote.Accommodation), "currency", quote.Currency)

	if err := quote.Validate(); err != nil {
		return QuoteResult{}, err
	}

	code := quote.Currency
	if code == "" {
		code = currency.BaseCurrency
	}
	if !currency.IsSupported(code) {
		return QuoteResult{}, domain.ErrUnsupportedCurrency
	}

	hotels, transport, err := resolveQuoteRefs(ctx, &quote, s.hotels, s.transport)
	if err != nil {
		return QuoteResult{}, err
	}

	breakdown, err := pricing.Calculate(&quote, hotels, transport)
	if err != nil {
		return QuoteResult{}, err
	}

	lineItems, err := pricing.BuildLineItems(&quote, hotels, transport)
	if err != nil {
		return QuoteResult{}, err
	}

	items := make([]QuoteItem, len(lineItems))
	for i, li := range lineItems {
		items[i] = QuoteItem{
			Category:    li.Category,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   currency.FormatOrDefault(li.UnitPrice, code),
			TotalPrice:  currency.FormatOrDefault(li.Total(), code),
		}
	}

	formattedTotal, err := currency.Format(breakdown.Total, code)
	if err != nil {
		return QuoteResult{}, err
	}

	s.metrics.ObserveQuoteCalculation()

	return QuoteResult{
		Breakdown:      *breakdown,
		Items:          items,
		Currency:       code,
		FormattedTotal: formattedTotal,
	}, nil
}

// resolveQuoteRefs загружает отели плана размещения и выбранный транспорт.
// Нулевой HotelID оставляем калькулятору: он вернет ErrIncompleteQuote.
func resolveQuoteRefs(
	ctx context.Context,
	quote *domain.TourQuote,
	hotelRepo repository.HotelRepository,
	transportRepo repository.TransportRepository,
) (map[uuid.UUID]domain.Hotel, *domain.Transport, error) {
	hotels := make(map[uuid.UUID]domain.Hotel)
	for _, day := range quote.Accommodation {
		if day.HotelID == uuid.Nil {
			continue
		}
		if _, ok := hotels[day.HotelID]; ok {
			continue
		}
		hotel, err := hotelRepo.GetByID(ctx, day.HotelID)
		if err != nil {
			return nil, nil, err
		}
		hotels[day.HotelID] = hotel
	}

	var transport *domain.Transport
	if quote.HasTransport() {
		option, err := transportRepo.GetByID(ctx, quote.TransportID)
		if err != nil {
			return nil, nil, err
		}
		transport = &option
	}

	return hotels, transport, nil
}
