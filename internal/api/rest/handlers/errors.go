package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velotours/invoice-service/internal/domain"
)

// respondError транслирует ошибку доменного уровня в HTTP статус.
// Неизвестные ошибки не раскрываются клиенту.
func respondError(c *gin.Context, err error, fallback string) {
	var validationErrs domain.ValidationErrors
	if errors.As(err, &validationErrs) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"fields": validationErrs.Fields(),
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": fallback + " not found"})
	case errors.Is(err, domain.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": fallback + " already exists"})
	case errors.Is(err, domain.ErrInvoiceFinalized):
		c.JSON(http.StatusConflict, gin.H{"error": "Invoice is in a terminal status"})
	case errors.Is(err, domain.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invoice status"})
	case errors.Is(err, domain.ErrUnsupportedCurrency):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported currency"})
	case errors.Is(err, domain.ErrIncompleteQuote):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quote has an accommodation day without a hotel"})
	case errors.Is(err, domain.ErrInvalidRate):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rates must not be negative"})
	case errors.Is(err, domain.ErrInvalidData):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + fallback + " ID format"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process " + fallback})
	}
}
