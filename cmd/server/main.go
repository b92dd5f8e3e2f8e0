package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/velotours/invoice-service/config"
	"github.com/velotours/invoice-service/internal/api/rest"
	"github.com/velotours/invoice-service/internal/kafka"
	"github.com/velotours/invoice-service/internal/kafka/producer"
	"github.com/velotours/invoice-service/internal/metrics"
	"github.com/velotours/invoice-service/internal/repository"
	"github.com/velotours/invoice-service/internal/repository/postgres"
	"github.com/velotours/invoice-service/internal/service"
	"github.com/velotours/invoice-service/pkg/logger"
)

func main() {
	log := logger.New(os.Getenv("LOG_LEVEL"))
	defer log.Sync()

	log.Infow("Invoice service starting up")

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("Failed to load configuration", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация Prometheus
	promRegistry := prometheus.NewRegistry()
	invoiceMetrics := metrics.NewInvoiceMetrics(promRegistry, log)
	systemMetrics := metrics.NewSystemMetrics(promRegistry, log)

	systemMetrics.StartRecording(15 * time.Second)
	defer systemMetrics.Stop()

	// Выбор хранилища: база данных или репозитории в памяти с демо-данными
	var (
		customerRepo  repository.CustomerRepository
		hotelRepo     repository.HotelRepository
		transportRepo repository.TransportRepository
		productRepo   repository.ProductRepository
		invoiceRepo   repository.InvoiceRepository
	)

	if cfg.Database.UseMockData {
		log.Infow("Using in-memory repositories with demo data")

		inMemCustomers := repository.NewInMemoryCustomerRepository(log)
		inMemHotels := repository.NewInMemoryHotelRepository(log)
		inMemTransport := repository.NewInMemoryTransportRepository(log)
		inMemProducts := repository.NewInMemoryProductRepository(log)

		if err := repository.SeedDemoData(ctx, inMemCustomers, inMemHotels, inMemTransport, inMemProducts, log); err != nil {
			log.Fatalw("Failed to seed demo data", "error", err)
		}

		customerRepo = inMemCustomers
		hotelRepo = inMemHotels
		transportRepo = inMemTransport
		productRepo = inMemProducts
		invoiceRepo = repository.NewInMemoryInvoiceRepository(inMemCustomers, log)
	} else {
		dbPool, err := postgres.NewConnection(ctx, cfg.Database.GetDSN(), log)
		if err != nil {
			log.Fatalw("Failed to connect to database", "error", err)
		}
		defer dbPool.Close()

		customerRepo = postgres.NewPostgresCustomerRepository(dbPool, log)
		hotelRepo = postgres.NewPostgresHotelRepository(dbPool, log)
		transportRepo = postgres.NewPostgresTransportRepository(dbPool, log)
		productRepo = postgres.NewPostgresProductRepository(dbPool, log)
		invoiceRepo = postgres.NewPostgresInvoiceRepository(dbPool, log)
	}

	// Кеширование каталога отелей в Redis
	if cfg.Redis.Enabled {
		redisCache, err := repository.NewRedisCacheRepository(
			cfg.Redis.Addr,
			cfg.Redis.Password,
			cfg.Redis.DB,
			log,
		)
		if err != nil {
			log.Warnw("Failed to initialize Redis cache, continuing without caching", "error", err)
		} else {
			defer redisCache.Close()
			hotelRepo = repository.NewCachedHotelRepository(hotelRepo, redisCache, log)
			log.Infow("Using cached hotel repository")
		}
	}

	// Продюсер событий счетов
	var invoiceProducer producer.InvoiceProducer = producer.NoopInvoiceProducer{}
	if cfg.Kafka.Enabled {
		kafkaProducer, err := kafka.NewSyncProducer(kafka.NewConfig(cfg.Kafka.Brokers), log)
		if err != nil {
			log.Warnw("Failed to initialize Kafka producer, continuing without event publishing", "error", err)
		} else {
			invoiceProducer = producer.NewKafkaInvoiceProducer(kafkaProducer, log)
			defer invoiceProducer.Close()
		}
	}

	// Сервисный слой
	services := rest.Services{
		Customers: service.NewCustomerService(customerRepo, log),
		Hotels:    service.NewHotelService(hotelRepo, log),
		Transport: service.NewTransportService(transportRepo, log),
		Products:  service.NewProductService(productRepo, log),
		Quotes:    service.NewQuoteService(hotelRepo, transportRepo, invoiceMetrics, log),
		Invoices: service.NewInvoiceService(
			invoiceRepo, customerRepo, hotelRepo, transportRepo,
			invoiceProducer, invoiceMetrics, log,
		),
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := rest.SetupRouter(log, promRegistry, services)
	server := rest.NewServer(router, cfg, log)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatalw("Server error", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Infow("Shutdown signal received")

	shutdownTimeout := time.Duration(cfg.Server.ShutdownTimeout) * time.Second
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalw("Server forced to shutdown", "error", err)
	}

	log.Infow("Server stopped gracefully")
}
