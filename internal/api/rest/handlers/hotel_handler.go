package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velotours/invoice-service/internal/domain"
	"github.com/velotours/invoice-service/internal/service"
	"github.com/velotours/invoice-service/pkg/logger"
)

// HotelHandler обработчик для каталога отелей
type HotelHandler struct {
	service service.HotelService
	log     *logger.Logger
}

// NewHotelHandler создает новый обработчик отелей
func NewHotelHandler(svc service.HotelService, log *logger.Logger) *HotelHandler {
	return &HotelHandler{
		service: svc,
		log:     log,
	}
}

// GetHotels возвращает список всех отелей
func (h *HotelHandler) GetHotels(c *gin.Context) {
	hotels, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.log.Errorw("Failed to get hotels", "error", err)
		respondError(c, err, "hotels")
		return
	}

	c.JSON(http.StatusOK, hotels)
}

// GetHotel возвращает отель по ID
func (h *HotelHandler) GetHotel(c *gin.Context) {
	id := c.Param("id")

	hotel, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.log.Warnw("Failed to get hotel", "error", err, "id", id)
		respondError(c, err, "Hotel")
		return
	}

	c.JSON(http.StatusOK, hotel)
}

// CreateHotel создает новый отель
func (h *HotelHandler) CreateHotel(c *gin.Context) {
	var req domain.HotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnw("Invalid request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hotel, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.log.Warnw("Failed to create hotel", "error", err)
		respondError(c, err, "Hotel")
		return
	}

	h.log.Infow("Created hotel", "id", hotel.ID, "name", hotel.Name)
	c.JSON(http.StatusCreated, hotel)
}

// UpdateHotel обновляет существующий отель
func (h *HotelHandler) UpdateHotel(c *gin.Context) {
	id := c.Param("id")

	var req domain.HotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnw("Invalid request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hotel, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.log.Warnw("Failed to update hotel", "error", err, "id", id)
		respondError(c, err, "Hotel")
		return
	}

	h.log.Infow("Updated hotel", "id", hotel.ID)
	c.JSON(http.StatusOK, hotel)
}

// DeleteHotel удаляет отель
func (h *HotelHandler) DeleteHotel(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.log.Warnw("Failed to delete hotel", "error", err, "id", id)
		respondError(c, err, "Hotel")
		return
	}

	h.log.Infow("Deleted hotel", "id", id)
	c.JSON(http.StatusOK, gin.H{"message": "Hotel deleted successfully"})
}
