package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/velotours/invoice-service/pkg/logger"
)

// InvoiceMetrics интерфейс для метрик счетов
type InvoiceMetrics interface {
	IncInvoiceCreated(currency string)
	IncInvoiceStatus(status string, currency string)
	IncInvoiceDeleted()
	ObserveInvoiceAmount(amount float64, currency string)
	ObserveQuoteCalculation()
}

type invoiceMetrics struct {
	log               *logger.Logger
	invoicesCreated   *prometheus.CounterVec
	invoicesStatus    *prometheus.CounterVec
	invoicesDeleted   prometheus.Counter
	invoicesAmount    *prometheus.HistogramVec
	quoteCalculations prometheus.Counter
}

// NewInvoiceMetrics создает новые метрики счетов
func NewInvoiceMetrics(registry *prometheus.Registry, log *logger.Logger) InvoiceMetrics {
	invoicesCreated := promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "invoices_created_total",
			Help: "The total number of created invoices",
		},
		[]string{"currency"},
	)

	invoicesStatus := promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "invoices_status_total",
			Help: "The total number of invoice status transitions",
		},
		[]string{"status", "currency"},
	)

	invoicesDeleted := promauto.With(registry).NewCounter(
		prometheus.CounterOpts{
			Name: "invoices_deleted_total",
			Help: "The total number of deleted invoices",
		},
	)

	invoicesAmount := promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "invoices_amount",
			Help:    "Invoice total amounts distribution",
			Buckets: prometheus.ExponentialBuckets(10, 10, 5), // 10, 100, 1000, 10000, 100000
		},
		[]string{"currency"},
	)

	quoteCalculations := promauto.With(registry).NewCounter(
		prometheus.CounterOpts{
			Name: "quote_calculations_total",
			Help: "The total number of tour quote calculations",
		},
	)

	return &invoiceMetrics{
		log:               log,
		invoicesCreated:   invoicesCreated,
		invoicesStatus:    invoicesStatus,
		invoicesDeleted:   invoicesDeleted,
		invoicesAmount:    invoicesAmount,
		quoteCalculations: quoteCalculations,
	}
}

// IncInvoiceCreated увеличивает счетчик созданных счетов
func (m *invoiceMetrics) IncInvoiceCreated(currency string) {
	m.invoicesCreated.WithLabelValues(currency).Inc()
}

// IncInvoiceStatus увеличивает счетчик переходов статуса
func (m *invoiceMetrics) IncInvoiceStatus(status string, currency string) {
	m.invoicesStatus.WithLabelValues(status, currency).Inc()
}

// IncInvoiceDeleted увеличивает счетчик удаленных счетов
func (m *invoiceMetrics) IncInvoiceDeleted() {
	m.invoicesDeleted.Inc()
}

// ObserveInvoiceAmount записывает итоговую сумму счета
func (m *invoiceMetrics) ObserveInvoiceAmount(amount float64, currency string) {
	m.invoicesAmount.WithLabelValues(currency).Observe(amount)
}

// ObserveQuoteCalculation увеличивает счетчик расчетов стоимости тура
func (m *invoiceMetrics) ObserveQuoteCalculation() {
	m.quoteCalculations.Inc()
}

// NoopInvoiceMetrics метрики-заглушка для тестов
type NoopInvoiceMetrics struct{}

func (NoopInvoiceMetrics) IncInvoiceCreated(string)             {}
func (NoopInvoiceMetrics) IncInvoiceStatus(string, string)      {}
func (NoopInvoiceMetrics) IncInvoiceDeleted()                   {}
func (NoopInvoiceMetrics) ObserveInvoiceAmount(float64, string) {}
func (NoopInvoiceMetrics) ObserveQuoteCalculation()             {}
