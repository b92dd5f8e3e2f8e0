package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velotours/invoice-service/internal/domain"
	"github.com/velotours/invoice-service/internal/service"
	"github.com/velotours/invoice-service/pkg/logger"
)

// ProductHandler обработчик для каталога велосипедов
type ProductHandler struct {
	service service.ProductService
	log     *logger.Logger
}

// NewProductHandler создает новый обработчик велосипедов
func NewProductHandler(svc service.ProductService, log *logger.Logger) *ProductHandler {
	return &ProductHandler{
		service: svc,
		log:     log,
	}
}

// GetProducts возвращает список всех моделей
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.log.Errorw("Failed to get products", "error", err)
		respondError(c, err, "products")
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct возвращает модель по ID
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")

	product, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.log.Warnw("Failed to get product", "error", err, "id", id)
		respondError(c, err, "Product")
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProduct создает новую модель
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req domain.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnw("Invalid request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.log.Warnw("Failed to create product", "error", err)
		respondError(c, err, "Product")
		return
	}

	h.log.Infow("Created product", "id", product.ID, "name", product.Name)
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct обновляет существующую модель
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	var req domain.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnw("Invalid request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.log.Warnw("Failed to update product", "error", err, "id", id)
		respondError(c, err, "Product")
		return
	}

	h.log.Infow("Updated product", "id", product.ID)
	c.JSON(http.StatusOK, product)
}

// DeleteProduct удаляет модель
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.log.Warnw("Failed to delete product", "error", err, "id", id)
		respondError(c, err, "Product")
		return
	}

	h.log.Infow("Deleted product", "id", id)
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
