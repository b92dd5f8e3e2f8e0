package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velotours/invoice-service/internal/domain"
	"github.com/velotours/invoice-service/internal/service"
	"github.com/velotours/invoice-service/pkg/logger"
)

// TransportHandler обработчик для каталога транспорта
type TransportHandler struct {
	service service.TransportService
	log     *logger.Logger
}

// NewTransportHandler создает новый обработчик транспорта
func NewTransportHandler(svc service.TransportService, log *logger.Logger) *TransportHandler {
	return &TransportHandler{
		service: svc,
		log:     log,
	}
}

// GetTransportOptions возвращает список всех вариантов транспорта
func (h *TransportHandler) GetTransportOptions(c *gin.Context) {
	options, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.log.Errorw("Failed to get transport options", "error", err)
		respondError(c, err, "transport options")
		return
	}

	c.JSON(http.StatusOK, options)
}

// GetTransportOption возвращает вариант транспорта по ID
func (h *TransportHandler) GetTransportOption(c *gin.Context) {
	id := c.Param("id")

	option, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.log.Warnw("Failed to get transport option", "error", err, "id", id)
		respondError(c, err, "Transport option")
		return
	}

	c.JSON(http.StatusOK, option)
}

// CreateTransportOption создает новый вариант транспорта
func (h *TransportHandler) CreateTransportOption(c *gin.Context) {
	var req domain.TransportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnw("Invalid request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	option, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.log.Warnw("Failed to create transport option", "error", err)
		respondError(c, err, "Transport option")
		return
	}

	h.log.Infow("Created transport option", "id", option.ID, "name", option.Name)
	c.JSON(http.StatusCreated, option)
}

// UpdateTransportOption обновляет существующий вариант транспорта
func (h *TransportHandler) UpdateTransportOption(c *gin.Context) {
	id := c.Param("id")

	var req domain.TransportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnw("Invalid request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	option, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.log.Warnw("Failed to update transport option", "error", err, "id", id)
		respondError(c, err, "Transport option")
		return
	}

	h.log.Infow("Updated transport option", "id", option.ID)
	c.JSON(http.StatusOK, option)
}

// DeleteTransportOption удаляет вариант транспорта
func (h *TransportHandler) DeleteTransportOption(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.log.Warnw("Failed to delete transport option", "error", err, "id", id)
		respondError(c, err, "Transport option")
		return
	}

	h.log.Infow("Deleted transport option", "id", id)
	c.JSON(http.StatusOK, gin.H{"message": "Transport option deleted successfully"})
}
