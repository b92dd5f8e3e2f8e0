package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velotours/invoice-service/internal/domain"
	"github.com/velotours/invoice-service/internal/service"
	"github.com/velotours/invoice-service/pkg/logger"
)

// CustomerHandler обработчик для клиентов
type CustomerHandler struct {
	service service.CustomerService
	log     *logger.Logger
}

// NewCustomerHandler создает новый обработчик клиентов
func NewCustomerHandler(svc service.CustomerService, log *logger.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: svc,
		log:     log,
	}
}

// GetCustomers возвращает список всех клиентов
func (h *CustomerHandler) GetCustomers(c *gin.Context) {
	customers, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.log.Errorw("Failed to get customers", "error", err)
		respondError(c, err, "customers")
		return
	}

	c.JSON(http.StatusOK, customers)
}

// GetCustomer возвращает клиента по ID
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id := c.Param("id")

	customer, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.log.Warnw("Failed to get customer", "error", err, "id", id)
		respondError(c, err, "Customer")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// CreateCustomer создает нового клиента
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req domain.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnw("Invalid request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.log.Warnw("Failed to create customer", "error", err)
		respondError(c, err, "Customer")
		return
	}

	h.log.Infow("Created customer", "id", customer.ID)
	c.JSON(http.StatusCreated, customer)
}

// UpdateCustomer обновляет существующего клиента
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id := c.Param("id")

	var req domain.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnw("Invalid request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.log.Warnw("Failed to update customer", "error", err, "id", id)
		respondError(c, err, "Customer")
		return
	}

	h.log.Infow("Updated customer", "id", customer.ID)
	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer удаляет клиента
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.log.Warnw("Failed to delete customer", "error", err, "id", id)
		respondError(c, err, "Customer")
		return
	}

	h.log.Infow("Deleted customer", "id", id)
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
