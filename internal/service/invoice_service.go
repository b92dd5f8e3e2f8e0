package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/velotours/invoice-service/internal/currency"
	"github.com/velotours/invoice-service/internal/domain"
	"github.com/velotours/invoice-service/internal/kafka/producer"
	"github.com/velotours/invoice-service/internal/metrics"
	"github.com/velotours/invoice-service/internal/pricing"
	"github.com/velotours/invoice-service/internal/repository"
	"github.com/velotours/invoice-service/pkg/logger"
)

// InvoiceService интерфейс сервиса для работы со счетами
type InvoiceService interface {
	GetAll(ctx context.Context) ([]domain.Invoice, error)
	GetByID(ctx context.Context, id string) (domain.Invoice, error)
	Create(ctx context.Context, req domain.CreateInvoiceRequest) (domain.Invoice, error)
	UpdateStatus(ctx context.Context, id string, req domain.UpdateStatusRequest) (domain.Invoice, error)
	Delete(ctx context.Context, id string) error
}

type invoiceService struct {
	invoices  repository.InvoiceRepository
	customers repository.CustomerRepository
	hotels    repository.HotelRepository
	transport repository.TransportRepository
	events    producer.InvoiceProducer
	metrics   metrics.InvoiceMetrics
	log       *logger.Logger
}

// NewInvoiceService создает новый сервис для работы со счетами
func NewInvoiceService(
	invoices repository.InvoiceRepository,
	customers repository.CustomerRepository,
	hotels repository.HotelRepository,
	transport repository.TransportRepository,
	events producer.InvoiceProducer,
	m metrics.InvoiceMetrics,
	log *logger.Logger,
) InvoiceService {
	return &invoiceService{
		invoices:  invoices,
		customers: customers,
		hotels:    hotels,
		transport: transport,
		events:    events,
		metrics:   m,
		log:       log,
	}
}

func (s *invoiceService) GetAll(ctx context.Context) ([]domain.Invoice, error) {
	s.log.Debugw("Getting all invoices")
	return s.invoices.GetAll(ctx)
}

func (s *invoiceService) GetByID(ctx context.Context, id string) (domain.Invoice, error) {
	s.log.Debugw("Getting invoice by ID", "id", id)

	uuidID, err := uuid.Parse(id)
	if err != nil {
		s.log.Warnw("Invalid UUID format", "id", id)
		return domain.Invoice{}, domain.ErrInvalidData
	}

	return s.invoices.GetByID(ctx, uuidID)
}

// Create финализирует расчет тура в счет: находит или создает клиента,
// разворачивает расчет в строки и сохраняет заголовок вместе со строками.
// Итог заголовка считается как сумма строк минус скидка, поэтому он всегда
// согласован с тем, что увидит клиент в детализации.
func (s *invoiceService) Create(ctx context.Context, req domain.CreateInvoiceRequest) (domain.Invoice, error) {
	s.log.Debugw("Creating invoice", "customerEmail", req.Customer.Email)

	quote := req.Quote
	if err := quote.Validate(); err != nil {
		return domain.Invoice{}, err
	}

	code := quote.Currency
	if code == "" {
		code = currency.BaseCurrency
	}
	if !currency.IsSupported(code) {
		return domain.Invoice{}, domain.ErrUnsupportedCurrency
	}

	hotels, transport, err := resolveQuoteRefs(ctx, &quote, s.hotels, s.transport)
	if err != nil {
		return domain.Invoice{}, err
	}

	lineItems, err := pricing.BuildLineItems(&quote, hotels, transport)
	if err != nil {
		return domain.Invoice{}, err
	}

	customer, err := s.findOrCreateCustomer(ctx, req.Customer)
	if err != nil {
		return domain.Invoice{}, err
	}

	itemsTotal := pricing.ItemsTotal(lineItems)
	discount := itemsTotal.Mul(quote.DiscountPercentage).Div(decimal.NewFromInt(100)).Round(2)
	total := itemsTotal.Sub(discount)

	items := make([]domain.InvoiceItem, len(lineItems))
	for i, li := range lineItems {
		items[i] = domain.InvoiceItem{
			Category:    li.Category,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			TotalPrice:  li.Total(),
		}
	}

	invoice := domain.Invoice{
		ID:                 uuid.New(),
		CustomerID:         customer.ID,
		Status:             domain.InvoiceStatusPending,
		TotalAmount:        total,
		TourName:           req.Tour.TourName,
		TourStartDate:      req.Tour.TourStartDate,
		TourEndDate:        req.Tour.TourEndDate,
		GroupSize:          quote.NumberOfRiders,
		SingleRooms:        quote.SingleRooms,
		DoubleRooms:        quote.DoubleRooms,
		DiscountPercentage: quote.DiscountPercentage,
		AdditionalRequests: req.Tour.AdditionalRequests,
		Currency:           code,
	}

	created, err := s.invoices.CreateWithItems(ctx, invoice, items)
	if err != nil {
		return domain.Invoice{}, err
	}
	created.Customer = &customer

	s.log.Infow("Invoice created",
		"invoiceNumber", created.InvoiceNumber,
		"total", created.TotalAmount.StringFixed(2),
		"currency", created.Currency)

	if err := s.events.PublishInvoiceCreated(ctx, created); err != nil {
		s.log.Warnw("Failed to publish invoice created event", "error", err, "invoiceID", created.ID)
	}

	amount, _ := created.TotalAmount.Float64()
	s.metrics.IncInvoiceCreated(created.Currency)
	s.metrics.ObserveInvoiceAmount(amount, created.Currency)

	return created, nil
}

// UpdateStatus переводит счет в новый статус.
// Из терминальных статусов (PAID, CANCELLED) переходы запрещены.
func (s *invoiceService) UpdateStatus(ctx context.Context, id string, req domain.UpdateStatusRequest) (domain.Invoice, error) {
	s.log.Debugw("Updating invoice status", "id", id, "status", req.Status)

	uuidID, err := uuid.Parse(id)
	if err != nil {
		s.log.Warnw("Invalid UUID format", "id", id)
		return domain.Invoice{}, domain.ErrInvalidData
	}

	if err := req.Status.Validate(); err != nil {
		return domain.Invoice{}, err
	}

	existing, err := s.invoices.GetByID(ctx, uuidID)
	if err != nil {
		return domain.Invoice{}, err
	}

	if existing.Status.IsTerminal() {
		s.log.Warnw("Rejected status transition from terminal status",
			"invoiceNumber", existing.InvoiceNumber,
			"from", existing.Status, "to", req.Status)
		return domain.Invoice{}, domain.ErrInvoiceFinalized
	}

	if _, err := s.invoices.UpdateStatus(ctx, uuidID, req.Status); err != nil {
		return domain.Invoice{}, err
	}

	// Перечитываем счет целиком: ответ содержит клиента и строки,
	// как и ответ на создание
	updated, err := s.invoices.GetByID(ctx, uuidID)
	if err != nil {
		return domain.Invoice{}, err
	}

	s.log.Infow("Invoice status updated",
		"invoiceNumber", updated.InvoiceNumber, "status", updated.Status)

	if err := s.events.PublishInvoiceStatusUpdated(ctx, updated); err != nil {
		s.log.Warnw("Failed to publish invoice status event", "error", err, "invoiceID", updated.ID)
	}

	s.metrics.IncInvoiceStatus(string(updated.Status), updated.Currency)

	return updated, nil
}

// Delete удаляет счет вместе со строками
func (s *invoiceService) Delete(ctx context.Context, id string) error {
	s.log.Debugw("Deleting invoice", "id", id)

	uuidID, err := uuid.Parse(id)
	if err != nil {
		s.log.Warnw("Invalid UUID format", "id", id)
		return domain.ErrInvalidData
	}

	existing, err := s.invoices.GetByID(ctx, uuidID)
	if err != nil {
		return err
	}

	if err := s.invoices.Delete(ctx, uuidID); err != nil {
		return err
	}

	s.log.Infow("Invoice deleted", "invoiceNumber", existing.InvoiceNumber)

	if err := s.events.PublishInvoiceDeleted(ctx, existing); err != nil {
		s.log.Warnw("Failed to publish invoice deleted event", "error", err, "invoiceID", existing.ID)
	}

	s.metrics.IncInvoiceDeleted()

	return nil
}

// findOrCreateCustomer ищет клиента по email и создает его при отсутствии.
// У существующего клиента обновляются только контактные поля (телефон, адрес);
// имя меняется через PUT /customers/:id, а не попутно при выставлении счета.
func (s *invoiceService) findOrCreateCustomer(ctx context.Context, req domain.CustomerRequest) (domain.Customer, error) {
	existing, err := s.customers.GetByEmail(ctx, req.Email)
	if err == nil {
		changed := existing.Phone != req.Phone ||
			existing.Address != req.Address
		if changed {
			existing.Phone = req.Phone
			existing.Address = req.Address
			if err := s.customers.Update(ctx, existing); err != nil {
				return domain.Customer{}, err
			}
		}
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Customer{}, err
	}

	customer := domain.Customer{
		ID:      uuid.New(),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}

	return s.customers.Create(ctx, customer)
}
