package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velotours/invoice-service/internal/domain"
	"github.com/velotours/invoice-service/internal/service"
	"github.com/velotours/invoice-service/pkg/logger"
)

// InvoiceHandler обработчик для счетов
type InvoiceHandler struct {
	service service.InvoiceService
	log     *logger.Logger
}

// NewInvoiceHandler создает новый обработчик счетов
func NewInvoiceHandler(svc service.InvoiceService, log *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		service: svc,
		log:     log,
	}
}

// GetInvoices возвращает список всех счетов
func (h *InvoiceHandler) GetInvoices(c *gin.Context) {
	invoices, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.log.Errorw("Failed to get invoices", "error", err)
		respondError(c, err, "invoices")
		return
	}

	c.JSON(http.StatusOK, invoices)
}

// GetInvoice возвращает счет со строками по ID
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id := c.Param("id")

	invoice, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.log.Warnw("Failed to get invoice", "error", err, "id", id)
		respondError(c, err, "Invoice")
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// CreateInvoice финализирует расчет тура в счет
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req domain.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnw("Invalid request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invoice, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.log.Warnw("Failed to create invoice", "error", err)
		respondError(c, err, "Invoice")
		return
	}

	h.log.Infow("Created invoice", "invoiceNumber", invoice.InvoiceNumber)
	c.JSON(http.StatusCreated, invoice)
}

// UpdateInvoiceStatus переводит счет в новый статус
func (h *InvoiceHandler) UpdateInvoiceStatus(c *gin.Context) {
	id := c.Param("id")

	var req domain.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnw("Invalid request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invoice, err := h.service.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		h.log.Warnw("Failed to update invoice status", "error", err, "id", id)
		respondError(c, err, "Invoice")
		return
	}

	h.log.Infow("Updated invoice status",
		"invoiceNumber", invoice.InvoiceNumber, "status", invoice.Status)
	c.JSON(http.StatusOK, invoice)
}

// DeleteInvoice удаляет счет вместе со строками
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.log.Warnw("Failed to delete invoice", "error", err, "id", id)
		respondError(c, err, "Invoice")
		return
	}

	h.log.Infow("Deleted invoice", "id", id)
	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted successfully"})
}
