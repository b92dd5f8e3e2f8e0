package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velotours/invoice-service/internal/domain"
	"github.com/velotours/invoice-service/internal/service"
	"github.com/velotours/invoice-service/pkg/logger"
)

// QuoteHandler обработчик расчета стоимости тура
type QuoteHandler struct {
	service service.QuoteService
	log     *logger.Logger
}

// NewQuoteHandler создает новый обработчик расчетов
func NewQuoteHandler(svc service.QuoteService, log *logger.Logger) *QuoteHandler {
	return &QuoteHandler{
		service: svc,
		log:     log,
	}
}

// CalculateQuote выполняет предварительный расчет стоимости тура без
// создания счета
func (h *QuoteHandler) CalculateQuote(c *gin.Context) {
	var quote domain.TourQuote
	if err := c.ShouldBindJSON(&quote); err != nil {
		h.log.Warnw("Invalid request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Calculate(c.Request.Context(), quote)
	if err != nil {
		h.log.Warnw("Failed to calculate quote", "error", err)
		respondError(c, err, "quote")
		return
	}

	c.JSON(http.StatusOK, result)
}
