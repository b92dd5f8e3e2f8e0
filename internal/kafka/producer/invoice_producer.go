package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"github.com/velotours/invoice-service/internal/domain"
	"github.com/velotours/invoice-service/pkg/logger"
)

const (
	TopicInvoiceCreated       = "invoice.created"
	TopicInvoiceStatusUpdated = "invoice.status_updated"
	TopicInvoiceDeleted       = "invoice.deleted"
)

// InvoiceEvent представляет событие счета для Kafka
type InvoiceEvent struct {
	ID            string               `json:"id"`
	InvoiceNumber string               `json:"invoice_number"`
	CustomerID    string               `json:"customer_id"`
	Status        domain.InvoiceStatus `json:"status"`
	TotalAmount   string               `json:"total_amount"`
	Currency      string               `json:"currency"`
	Timestamp     time.Time            `json:"timestamp"`
}

// InvoiceProducer интерфейс для отправки событий счетов
type InvoiceProducer interface {
	PublishInvoiceCreated(ctx context.Context, invoice domain.Invoice) error
	PublishInvoiceStatusUpdated(ctx context.Context, invoice domain.Invoice) error
	PublishInvoiceDeleted(ctx context.Context, invoice domain.Invoice) error
	Close() error
}

type kafkaInvoiceProducer struct {
	producer sarama.SyncProducer
	log      *logger.Logger
}

// NewKafkaInvoiceProducer создает новый продюсер событий счетов
func NewKafkaInvoiceProducer(producer sarama.SyncProducer, log *logger.Logger) InvoiceProducer {
	return &kafkaInvoiceProducer{
		producer: producer,
		log:      log,
	}
}

// PublishInvoiceCreated публикует событие о создании счета
func (p *kafkaInvoiceProducer) PublishInvoiceCreated(ctx context.Context, invoice domain.Invoice) error {
	return p.publishEvent(ctx, TopicInvoiceCreated, invoice)
}

// PublishInvoiceStatusUpdated публикует событие о смене статуса счета
func (p *kafkaInvoiceProducer) PublishInvoiceStatusUpdated(ctx context.Context, invoice domain.Invoice) error {
	return p.publishEvent(ctx, TopicInvoiceStatusUpdated, invoice)
}

// PublishInvoiceDeleted публикует событие об удалении счета
func (p *kafkaInvoiceProducer) PublishInvoiceDeleted(ctx context.Context, invoice domain.Invoice) error {
	return p.publishEvent(ctx, TopicInvoiceDeleted, invoice)
}

// publishEvent публикует событие счета в Kafka
func (p *kafkaInvoiceProducer) publishEvent(ctx context.Context, topic string, invoice domain.Invoice) error {
	event := InvoiceEvent{
		ID:            invoice.ID.String(),
		InvoiceNumber: invoice.InvoiceNumber,
		CustomerID:    invoice.CustomerID.String(),
		Status:        invoice.Status,
		TotalAmount:   invoice.TotalAmount.StringFixed(2),
		Currency:      invoice.Currency,
		Timestamp:     time.Now(),
	}

	messageValue, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal invoice event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(invoice.ID.String()),
		Value: sarama.ByteEncoder(messageValue),
		Headers: []sarama.RecordHeader{
			{
				Key:   []byte("event_type"),
				Value: []byte(topic),
			},
		},
		Timestamp: time.Now(),
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to publish invoice event: %w", err)
	}

	p.log.Infow("Published invoice event",
		"topic", topic, "partition", partition, "offset", offset,
		"invoiceNumber", invoice.InvoiceNumber)

	return nil
}

// Close закрывает продюсер
func (p *kafkaInvoiceProducer) Close() error {
	return p.producer.Close()
}

// NoopInvoiceProducer продюсер-заглушка, используется когда Kafka отключена
type NoopInvoiceProducer struct{}

func (NoopInvoiceProducer) PublishInvoiceCreated(context.Context, domain.Invoice) error {
	return nil
}

func (NoopInvoiceProducer) PublishInvoiceStatusUpdated(context.Context, domain.Invoice) error {
	return nil
}

func (NoopInvoiceProducer) PublishInvoiceDeleted(context.Context, domain.Invoice) error {
	return nil
}

func (NoopInvoiceProducer) Close() error { return nil }
