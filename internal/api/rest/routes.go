package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/velotours/invoice-service/internal/api/rest/handlers"
	"github.com/velotours/invoice-service/internal/api/rest/middleware"
	"github.com/velotours/invoice-service/internal/service"
	"github.com/velotours/invoice-service/pkg/logger"
)

// Services сервисы, публикуемые через HTTP API
type Services struct {
	Customers service.CustomerService
	Hotels    service.HotelService
	Transport service.TransportService
	Products  service.ProductService
	Quotes    service.QuoteService
	Invoices  service.InvoiceService
}

// SetupRouter настраивает маршрутизатор Gin с маршрутами и middleware
func SetupRouter(log *logger.Logger, registry *prometheus.Registry, services Services) *gin.Engine {
	r := gin.New()

	// Подключение middleware
	r.Use(middleware.LoggerMiddleware(log))
	r.Use(gin.Recovery())

	// Endpoint для проверки работоспособности сервиса
	r.GET("/health", handlers.HealthCheck)

	// Prometheus метрики
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Инициализация обработчиков
	customerHandler := handlers.NewCustomerHandler(services.Customers, log)
	hotelHandler := handlers.NewHotelHandler(services.Hotels, log)
	transportHandler := handlers.NewTransportHandler(services.Transport, log)
	productHandler := handlers.NewProductHandler(services.Products, log)
	quoteHandler := handlers.NewQuoteHandler(services.Quotes, log)
	invoiceHandler := handlers.NewInvoiceHandler(services.Invoices, log)

	v1 := r.Group("/api/v1")
	{
		// Клиенты
		customers := v1.Group("/customers")
		{
			customers.GET("", customerHandler.GetCustomers)
			customers.GET("/:id", customerHandler.GetCustomer)
			customers.POST("", customerHandler.CreateCustomer)
			customers.PUT("/:id", customerHandler.UpdateCustomer)
			customers.DELETE("/:id", customerHandler.DeleteCustomer)
		}

		// Каталог отелей
		hotels := v1.Group("/hotels")
		{
			hotels.GET("", hotelHandler.GetHotels)
			hotels.GET("/:id", hotelHandler.GetHotel)
			hotels.POST("", hotelHandler.CreateHotel)
			hotels.PUT("/:id", hotelHandler.UpdateHotel)
			hotels.DELETE("/:id", hotelHandler.DeleteHotel)
		}

		// Каталог транспорта
		transport := v1.Group("/transport")
		{
			transport.GET("", transportHandler.GetTransportOptions)
			transport.GET("/:id", transportHandler.GetTransportOption)
			transport.POST("", transportHandler.CreateTransportOption)
			transport.PUT("/:id", transportHandler.UpdateTransportOption)
			transport.DELETE("/:id", transportHandler.DeleteTransportOption)
		}

		// Каталог велосипедов
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.POST("", productHandler.CreateProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
		}

		// Предварительный расчет стоимости тура
		quotes := v1.Group("/quotes")
		{
			quotes.POST("/calculate", quoteHandler.CalculateQuote)
		}

		// Счета
		invoices := v1.Group("/invoices")
		{
			invoices.GET("", invoiceHandler.GetInvoices)
			invoices.GET("/:id", invoiceHandler.GetInvoice)
			invoices.POST("", invoiceHandler.CreateInvoice)
			invoices.PATCH("/:id/status", invoiceHandler.UpdateInvoiceStatus)
			invoices.DELETE("/:id", invoiceHandler.DeleteInvoice)
		}
	}

	return r
}
