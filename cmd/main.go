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
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/JamesSerenio/metyme-booking-service/internal/api/handlers/cancel_booking"
	clearSeatOverrideHandler "github.com/JamesSerenio/metyme-booking-service/internal/api/handlers/clear_seat_override"
	closeBookingHandler "github.com/JamesSerenio/metyme-booking-service/internal/api/handlers/close_booking"
	createBookingHandler "github.com/JamesSerenio/metyme-booking-service/internal/api/handlers/create_booking"
	createSeatOverrideHandler "github.com/JamesSerenio/metyme-booking-service/internal/api/handlers/create_seat_override"
	getBookingHandler "github.com/JamesSerenio/metyme-booking-service/internal/api/handlers/get_booking"
	getRateConfigHandler "github.com/JamesSerenio/metyme-booking-service/internal/api/handlers/get_rate_config"
	getSeatBookingsHandler "github.com/JamesSerenio/metyme-booking-service/internal/api/handlers/get_seat_bookings"
	getSeatStatusesHandler "github.com/JamesSerenio/metyme-booking-service/internal/api/handlers/get_seat_statuses"
	quoteBookingHandler "github.com/JamesSerenio/metyme-booking-service/internal/api/handlers/quote_booking"
	updateRateConfigHandler "github.com/JamesSerenio/metyme-booking-service/internal/api/handlers/update_rate_config"
	"github.com/JamesSerenio/metyme-booking-service/internal/api/middleware"
	"github.com/JamesSerenio/metyme-booking-service/internal/config"
	"github.com/JamesSerenio/metyme-booking-service/internal/domain"
	"github.com/JamesSerenio/metyme-booking-service/internal/infra/notify"
	bookingRepo "github.com/JamesSerenio/metyme-booking-service/internal/infra/storage/booking"
	rateConfigRepo "github.com/JamesSerenio/metyme-booking-service/internal/infra/storage/rateconfig"
	seatMapClient "github.com/JamesSerenio/metyme-booking-service/internal/integrations/seatmap"
	bookingsService "github.com/JamesSerenio/metyme-booking-service/internal/service/bookings"
	rateConfigService "github.com/JamesSerenio/metyme-booking-service/internal/service/rateconfig"
	"github.com/JamesSerenio/metyme-booking-service/internal/service/statusfeed"
	createBookingUC "github.com/JamesSerenio/metyme-booking-service/internal/usecase/create_booking"
	getSeatStatusesUC "github.com/JamesSerenio/metyme-booking-service/internal/usecase/get_seat_statuses"
	"github.com/JamesSerenio/metyme-booking-service/pkg/dbmetrics"
	"github.com/JamesSerenio/metyme-booking-service/pkg/logger"
	"github.com/JamesSerenio/metyme-booking-service/pkg/metrics"
	"github.com/JamesSerenio/metyme-booking-service/pkg/simpletxmanager"
	"github.com/JamesSerenio/metyme-booking-service/pkg/txmanager"
)

// seatNotifier объединяет публикации, нужные сервисам и фоновой рассылке
type seatNotifier interface {
	PublishSeatChange(ctx context.Context, seatIDs []domain.SeatID)
	PublishStatusSnapshot(ctx context.Context, payload []byte) error
}

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

	log.Info("Starting metyme-booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Часовой пояс лаунжа: в нём резолвятся времена броней и границы дня
	loc, err := time.LoadLocation(cfg.Booking.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Booking.Timezone, err)
	}

	// Инициализируем клиент карты мест
	seatMap := seatMapClient.NewClient(
		cfg.SeatMapService.URL,
		time.Duration(cfg.SeatMapService.Timeout)*time.Second,
		log,
	)
	log.Info("Seat map client initialized (url=%s, timeout=%ds)",
		cfg.SeatMapService.URL, cfg.SeatMapService.Timeout)

	// Инициализируем Redis и publisher (если включен)
	var redisClient *redis.Client
	var publisher seatNotifier = notify.NewNopPublisher()

	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		defer redisClient.Close()

		publisher = notify.NewPublisher(redisClient, log)
		log.Info("Connected to redis at %s", cfg.Redis.Addr)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository    *bookingRepo.Repository
		rateConfigRepository *rateConfigRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		rateConfigRepository = rateConfigRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		rateConfigRepository = rateConfigRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		rateConfigRepository,
		seatMap,
		publisher,
		loc,
		log,
	)
	rateConfigSvc := rateConfigService.NewService(rateConfigRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		rateConfigRepository,
		seatMap,
		publisher,
		txMgr,
		loc,
		log,
	)
	getSeatStatusesUseCase := getSeatStatusesUC.NewUseCase(
		bookingRepository,
		seatMap,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	quoteBooking := quoteBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	closeBooking := closeBookingHandler.NewHandler(bookingSvc, log)
	getSeatStatuses := getSeatStatusesHandler.NewHandler(getSeatStatusesUseCase, log)
	getSeatBookings := getSeatBookingsHandler.NewHandler(bookingSvc, log)
	getRateConfig := getRateConfigHandler.NewHandler(rateConfigSvc, log)
	updateRateConfig := updateRateConfigHandler.NewHandler(rateConfigSvc, log)
	createSeatOverride := createSeatOverrideHandler.NewHandler(bookingSvc, log)
	clearSeatOverride := clearSeatOverrideHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Карта мест со статусами
	api.HandleFunc("/seats/statuses", getSeatStatuses.Handle).Methods(http.MethodGet)

	// Бронирования одного места за день
	api.HandleFunc("/seats/{seatId}/bookings", getSeatBookings.Handle).Methods(http.MethodGet)

	// Действующий тариф
	api.HandleFunc("/rate-config", getRateConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Staff-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/quote", quoteBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{groupId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{groupId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{groupId}/close", closeBooking.Handle).Methods(http.MethodPatch)

	// --- Тариф ---
	protected.HandleFunc("/rate-config", updateRateConfig.Handle).Methods(http.MethodPut)

	// --- Админка карты мест ---
	protected.HandleFunc("/admin/seat-overrides", createSeatOverride.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/admin/seats/{seatId}/overrides", clearSeatOverride.Handle).Methods(http.MethodDelete)

	// Фоновая рассылка снапшотов статусов (только с Redis)
	feedCtx, stopFeed := context.WithCancel(context.Background())
	defer stopFeed()
	if cfg.Redis.Enabled {
		feed := statusfeed.NewFeed(
			getSeatStatusesUseCase,
			publisher,
			redisClient,
			time.Duration(cfg.Booking.StatusPollSeconds)*time.Second,
			log,
		)
		go feed.Run(feedCtx)
	}

	// Создаем HTTP сервер
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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	stopFeed()

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
