package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	checkAvailabilityHandler "github.com/nkmlv/photobooth-booking/internal/api/handlers/check_availability"
	createBookingHandler "github.com/nkmlv/photobooth-booking/internal/api/handlers/create_booking"
	getBookingHandler "github.com/nkmlv/photobooth-booking/internal/api/handlers/get_booking"
	listBookingsHandler "github.com/nkmlv/photobooth-booking/internal/api/handlers/list_bookings"
	quotePriceHandler "github.com/nkmlv/photobooth-booking/internal/api/handlers/quote_price"
	updateStatusHandler "github.com/nkmlv/photobooth-booking/internal/api/handlers/update_status"
	"github.com/nkmlv/photobooth-booking/internal/api/middleware"
	"github.com/nkmlv/photobooth-booking/internal/config"
	"github.com/nkmlv/photobooth-booking/internal/infra/events"
	bookingRepo "github.com/nkmlv/photobooth-booking/internal/infra/storage/booking"
	"github.com/nkmlv/photobooth-booking/internal/infra/storage/records"
	bookingsService "github.com/nkmlv/photobooth-booking/internal/service/bookings"
	checkAvailabilityUC "github.com/nkmlv/photobooth-booking/internal/usecase/check_availability"
	createBookingUC "github.com/nkmlv/photobooth-booking/internal/usecase/create_booking"
	quotePriceUC "github.com/nkmlv/photobooth-booking/internal/usecase/quote_price"
	"github.com/nkmlv/photobooth-booking/pkg/logger"
	"github.com/nkmlv/photobooth-booking/pkg/metrics"
	"github.com/nkmlv/photobooth-booking/pkg/storemetrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting photobooth-booking service...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище записей
	var store bookingRepo.RecordStore

	switch cfg.Storage.Backend {
	case config.StorageMemory:
		store = records.NewMemoryStore()
		log.Info("Using in-memory record store")

	case config.StorageRedis:
		redisStore := records.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisStore.Ping(pingCtx); err != nil {
			cancel()
			log.Fatal("Failed to ping redis: %v", err)
		}
		cancel()
		defer redisStore.Close()
		store = redisStore
		log.Info("Using redis record store (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	case config.StoragePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		store = records.NewPostgresStore(db)
		log.Info("Using postgres record store (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	}

	// Оборачиваем хранилище метриками
	if cfg.Metrics.Enabled {
		store = storemetrics.Wrap(store, metricsCollector)
	}

	// Инициализируем продюсер событий (если включен)
	var producer *events.Producer
	if cfg.Kafka.Enabled {
		producer = events.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer producer.Close()
		log.Info("Kafka event producer enabled (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}

	// Инициализируем репозиторий
	repository := bookingRepo.NewRepository(store, cfg.Storage.RecordsKey, log)

	// Инициализируем сервисы
	var serviceProducer bookingsService.EventProducer
	if producer != nil {
		serviceProducer = producer
	}
	bookingSvc := bookingsService.NewService(repository, serviceProducer, log)

	// Инициализируем use cases
	var usecaseProducer createBookingUC.EventProducer
	if producer != nil {
		usecaseProducer = producer
	}
	createBookingUseCase := createBookingUC.NewUseCase(repository, usecaseProducer, log)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(repository, log)
	quotePriceUseCase := quotePriceUC.NewUseCase(log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	quotePrice := quotePriceHandler.NewHandler(quotePriceUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateStatus := updateStatusHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.LoggingMiddleware(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Проверка доступности слота
	api.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Расчёт стоимости пакета
	api.HandleFunc("/quote", quotePrice.Handle).Methods(http.MethodPost)

	// Бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/status", updateStatus.Handle).Methods(http.MethodPatch)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
