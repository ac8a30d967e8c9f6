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

	bulkCreateHandler "github.com/m04kA/LodgeBookingService/internal/api/handlers/bulk_create_reservations"
	cancelReservationHandler "github.com/m04kA/LodgeBookingService/internal/api/handlers/cancel_reservation"
	checkAvailabilityHandler "github.com/m04kA/LodgeBookingService/internal/api/handlers/check_availability"
	createReservationHandler "github.com/m04kA/LodgeBookingService/internal/api/handlers/create_reservation"
	getCalendarHandler "github.com/m04kA/LodgeBookingService/internal/api/handlers/get_calendar"
	getReservationHandler "github.com/m04kA/LodgeBookingService/internal/api/handlers/get_reservation"
	getRoomHandler "github.com/m04kA/LodgeBookingService/internal/api/handlers/get_room"
	listReservationsHandler "github.com/m04kA/LodgeBookingService/internal/api/handlers/list_reservations"
	listRoomsHandler "github.com/m04kA/LodgeBookingService/internal/api/handlers/list_rooms"
	previewSelectionHandler "github.com/m04kA/LodgeBookingService/internal/api/handlers/preview_selection"
	updateDatesHandler "github.com/m04kA/LodgeBookingService/internal/api/handlers/update_reservation_dates"
	updateStatusHandler "github.com/m04kA/LodgeBookingService/internal/api/handlers/update_reservation_status"
	"github.com/m04kA/LodgeBookingService/internal/api/middleware"
	"github.com/m04kA/LodgeBookingService/internal/config"
	reservationRepo "github.com/m04kA/LodgeBookingService/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/LodgeBookingService/internal/infra/storage/room"
	reservationsService "github.com/m04kA/LodgeBookingService/internal/service/reservations"
	roomsService "github.com/m04kA/LodgeBookingService/internal/service/rooms"
	bulkCreateUC "github.com/m04kA/LodgeBookingService/internal/usecase/bulk_create_reservations"
	checkAvailabilityUC "github.com/m04kA/LodgeBookingService/internal/usecase/check_availability"
	createReservationUC "github.com/m04kA/LodgeBookingService/internal/usecase/create_reservation"
	getCalendarUC "github.com/m04kA/LodgeBookingService/internal/usecase/get_calendar"
	previewSelectionUC "github.com/m04kA/LodgeBookingService/internal/usecase/preview_selection"
	updateDatesUC "github.com/m04kA/LodgeBookingService/internal/usecase/update_reservation_dates"
	"github.com/m04kA/LodgeBookingService/pkg/dbmetrics"
	"github.com/m04kA/LodgeBookingService/pkg/logger"
	"github.com/m04kA/LodgeBookingService/pkg/metrics"
	"github.com/m04kA/LodgeBookingService/pkg/txmanager"
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

	log.Info("Starting LodgeBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Метрики (nil-коллектор безопасен, если метрики выключены)
	var metricsCollector *metrics.Metrics
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

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Репозитории и менеджер транзакций
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	roomRepository := roomRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(reservationRepository, txMgr, log)
	roomSvc := roomsService.NewService(roomRepository, log)

	// Инициализируем use cases
	previewSelectionUseCase := previewSelectionUC.NewUseCase(
		reservationRepository,
		txMgr,
		cfg.Booking.MaxSelectionSlots,
		log,
	)
	bulkCreateUseCase := bulkCreateUC.NewUseCase(
		reservationRepository,
		roomRepository,
		txMgr,
		metricsCollector,
		bulkCreateUC.Limits{
			MaxSelectionSlots: cfg.Booking.MaxSelectionSlots,
			MaxStayNights:     cfg.Booking.MaxStayNights,
		},
		log,
	)
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		roomRepository,
		txMgr,
		metricsCollector,
		cfg.Booking.MaxStayNights,
		log,
	)
	updateDatesUseCase := updateDatesUC.NewUseCase(
		reservationRepository,
		roomRepository,
		txMgr,
		cfg.Booking.MaxStayNights,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(reservationRepository, log)
	getCalendarUseCase := getCalendarUC.NewUseCase(
		reservationRepository,
		roomRepository,
		txMgr,
		cfg.Booking.MaxCalendarDays,
		log,
	)

	// Инициализируем handlers
	previewSelection := previewSelectionHandler.NewHandler(previewSelectionUseCase, log)
	bulkCreate := bulkCreateHandler.NewHandler(bulkCreateUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	updateDates := updateDatesHandler.NewHandler(updateDatesUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	updateStatus := updateStatusHandler.NewHandler(reservationSvc, log)
	listRooms := listRoomsHandler.NewHandler(roomSvc, log)
	getRoom := getRoomHandler.NewHandler(roomSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Выделение в календаре ---
	api.HandleFunc("/selections/preview", previewSelection.Handle).Methods(http.MethodPost)
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/check", checkAvailability.Handle).Methods(http.MethodPost)

	// --- Брони ---
	api.HandleFunc("/reservations/bulk", bulkCreate.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}/dates", updateDates.Handle).Methods(http.MethodPut)
	api.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/reservations/{reservationId}/status", updateStatus.Handle).Methods(http.MethodPatch)

	// --- Номера ---
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}", getRoom.Handle).Methods(http.MethodGet)

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

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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
