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

	applyDraftStepHandler "github.com/easerve/Grooming-BookingService/internal/api/handlers/apply_draft_step"
	cancelReservationHandler "github.com/easerve/Grooming-BookingService/internal/api/handlers/cancel_reservation"
	createDraftHandler "github.com/easerve/Grooming-BookingService/internal/api/handlers/create_draft"
	createPetHandler "github.com/easerve/Grooming-BookingService/internal/api/handlers/create_pet"
	createReservationHandler "github.com/easerve/Grooming-BookingService/internal/api/handlers/create_reservation"
	createTimeSlotHandler "github.com/easerve/Grooming-BookingService/internal/api/handlers/create_time_slot"
	deleteTimeSlotHandler "github.com/easerve/Grooming-BookingService/internal/api/handlers/delete_time_slot"
	exportReservationsHandler "github.com/easerve/Grooming-BookingService/internal/api/handlers/export_reservations"
	getBookedDatesHandler "github.com/easerve/Grooming-BookingService/internal/api/handlers/get_booked_dates"
	getBreedsHandler "github.com/easerve/Grooming-BookingService/internal/api/handlers/get_breeds"
	getDaySlotsHandler "github.com/easerve/Grooming-BookingService/internal/api/handlers/get_day_slots"
	getDraftHandler "github.com/easerve/Grooming-BookingService/internal/api/handlers/get_draft"
	getOwnerPetsHandler "github.com/easerve/Grooming-BookingService/internal/api/handlers/get_owner_pets"
	getReservationHandler "github.com/easerve/Grooming-BookingService/internal/api/handlers/get_reservation"
	getServiceOptionsHandler "github.com/easerve/Grooming-BookingService/internal/api/handlers/get_service_options"
	getServicesHandler "github.com/easerve/Grooming-BookingService/internal/api/handlers/get_services"
	listReservationsHandler "github.com/easerve/Grooming-BookingService/internal/api/handlers/list_reservations"
	navigateDraftHandler "github.com/easerve/Grooming-BookingService/internal/api/handlers/navigate_draft"
	quotePriceHandler "github.com/easerve/Grooming-BookingService/internal/api/handlers/quote_price"
	submitDraftHandler "github.com/easerve/Grooming-BookingService/internal/api/handlers/submit_draft"
	updateReservationStatusHandler "github.com/easerve/Grooming-BookingService/internal/api/handlers/update_reservation_status"
	"github.com/easerve/Grooming-BookingService/internal/api/middleware"
	"github.com/easerve/Grooming-BookingService/internal/config"
	"github.com/easerve/Grooming-BookingService/internal/infra/cache"
	"github.com/easerve/Grooming-BookingService/internal/infra/draftstore"
	"github.com/easerve/Grooming-BookingService/internal/infra/events"
	catalogRepo "github.com/easerve/Grooming-BookingService/internal/infra/storage/catalog"
	petRepo "github.com/easerve/Grooming-BookingService/internal/infra/storage/pet"
	reservationRepo "github.com/easerve/Grooming-BookingService/internal/infra/storage/reservation"
	timeslotRepo "github.com/easerve/Grooming-BookingService/internal/infra/storage/timeslot"
	catalogService "github.com/easerve/Grooming-BookingService/internal/service/catalog"
	draftsService "github.com/easerve/Grooming-BookingService/internal/service/drafts"
	petsService "github.com/easerve/Grooming-BookingService/internal/service/pets"
	reservationsService "github.com/easerve/Grooming-BookingService/internal/service/reservations"
	timeslotsService "github.com/easerve/Grooming-BookingService/internal/service/timeslots"
	createReservationUC "github.com/easerve/Grooming-BookingService/internal/usecase/create_reservation"
	getBookedDatesUC "github.com/easerve/Grooming-BookingService/internal/usecase/get_booked_dates"
	getDaySlotsUC "github.com/easerve/Grooming-BookingService/internal/usecase/get_day_slots"
	quotePriceUC "github.com/easerve/Grooming-BookingService/internal/usecase/quote_price"
	submitDraftUC "github.com/easerve/Grooming-BookingService/internal/usecase/submit_draft"
	"github.com/easerve/Grooming-BookingService/pkg/dbmetrics"
	"github.com/easerve/Grooming-BookingService/pkg/logger"
	"github.com/easerve/Grooming-BookingService/pkg/metrics"
	"github.com/easerve/Grooming-BookingService/pkg/simpletxmanager"
	"github.com/easerve/Grooming-BookingService/pkg/txmanager"
)

// systemClock источник реального времени для сервисов
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

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

	log.Info("Starting Grooming-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Таймзона салона: по ней отсекаются прошедшие слоты сегодняшнего дня
	location, err := time.LoadLocation(cfg.Booking.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Booking.Timezone, err)
	}

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

	// Подключаемся к Redis (кэш доступности и хранилище черновиков)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	defer redisClient.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		pingCancel()
		log.Fatal("Failed to ping redis: %v", err)
	}
	pingCancel()
	log.Info("Successfully connected to redis (address=%s, db=%d)", cfg.Redis.Address, cfg.Redis.DB)

	draftStore := draftstore.NewStore(redisClient, time.Duration(cfg.Redis.DraftTTLMinutes)*time.Minute)
	availabilityCache := cache.NewAvailabilityCache(redisClient, time.Duration(cfg.Redis.CacheTTLSeconds)*time.Second)

	// Публикация событий бронирования (fire-and-forget)
	type EventPublisher interface {
		Publish(ctx context.Context, routingKey string, payload any) error
		Close()
	}
	var publisher EventPublisher

	if cfg.RabbitMQ.Enabled {
		rabbitPublisher, err := events.NewPublisher(cfg.RabbitMQ.URL)
		if err != nil {
			log.Fatal("Failed to connect to rabbitmq: %v", err)
		}
		publisher = rabbitPublisher
		log.Info("Event publisher connected to rabbitmq")
	} else {
		publisher = events.NewNoopPublisher()
		log.Info("Event publishing disabled, using noop publisher")
	}
	defer publisher.Close()

	// Инициализируем репозитории (с метриками или без)
	var (
		catalogRepository     *catalogRepo.Repository
		petRepository         *petRepo.Repository
		reservationRepository *reservationRepo.Repository
		timeslotRepository    *timeslotRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		petRepository = petRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		timeslotRepository = timeslotRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		catalogRepository = catalogRepo.NewRepository(db)
		petRepository = petRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		timeslotRepository = timeslotRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	clock := systemClock{}

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(catalogRepository, log)
	petsSvc := petsService.New(petRepository, catalogRepository, log)
	draftsSvc := draftsService.New(draftStore, catalogRepository, petRepository, log, clock)
	timeslotsSvc := timeslotsService.New(timeslotRepository, availabilityCache, log)
	reservationsSvc := reservationsService.New(
		reservationRepository,
		petRepository,
		txMgr,
		publisher,
		availabilityCache,
		log,
		clock,
	)

	// Инициализируем use cases
	getBookedDatesUseCase := getBookedDatesUC.NewUseCase(
		reservationRepository,
		timeslotRepository,
		availabilityCache,
		metricsCollector,
		location,
		log,
	)
	getDaySlotsUseCase := getDaySlotsUC.NewUseCase(
		reservationRepository,
		timeslotRepository,
		location,
		log,
	)
	quotePriceUseCase := quotePriceUC.NewUseCase(catalogRepository, log)
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		timeslotRepository,
		catalogRepository,
		petRepository,
		availabilityCache,
		publisher,
		txMgr,
		metricsCollector,
		location,
		log,
	)
	submitDraftUseCase := submitDraftUC.NewUseCase(
		draftStore,
		petRepository,
		createReservationUseCase,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	getBreeds := getBreedsHandler.NewHandler(catalogSvc, log)
	getServices := getServicesHandler.NewHandler(catalogSvc, log)
	getServiceOptions := getServiceOptionsHandler.NewHandler(catalogSvc, log)
	quotePrice := quotePriceHandler.NewHandler(quotePriceUseCase, log)
	getBookedDates := getBookedDatesHandler.NewHandler(getBookedDatesUseCase, cfg.Booking.DefaultScopeMonths, log)
	getDaySlots := getDaySlotsHandler.NewHandler(getDaySlotsUseCase, log)
	getOwnerPets := getOwnerPetsHandler.NewHandler(petsSvc, log)
	createPet := createPetHandler.NewHandler(petsSvc, log)
	createDraft := createDraftHandler.NewHandler(draftsSvc, log)
	getDraft := getDraftHandler.NewHandler(draftsSvc, log)
	applyDraftStep := applyDraftStepHandler.NewHandler(draftsSvc, log)
	navigateDraft := navigateDraftHandler.NewHandler(draftsSvc, log)
	submitDraft := submitDraftHandler.NewHandler(submitDraftUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	exportReservations := exportReservationsHandler.NewHandler(reservationsSvc, cfg.Booking.ExportDir, log)
	createTimeSlot := createTimeSlotHandler.NewHandler(timeslotsSvc, log)
	deleteTimeSlot := deleteTimeSlotHandler.NewHandler(timeslotsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// --- Справочники ---
	api.HandleFunc("/breeds", getBreeds.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}/options", getServiceOptions.Handle).Methods(http.MethodGet)
	api.HandleFunc("/price/quote", quotePrice.Handle).Methods(http.MethodPost)

	// --- Расписание ---
	api.HandleFunc("/schedule/booked-dates", getBookedDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/days/{date}/slots", getDaySlots.Handle).Methods(http.MethodGet)

	// --- Питомцы ---
	api.HandleFunc("/owners/{phone}/pets", getOwnerPets.Handle).Methods(http.MethodGet)
	api.HandleFunc("/pets", createPet.Handle).Methods(http.MethodPost)

	// --- Черновики бронирования (мастер записи) ---
	api.HandleFunc("/drafts", createDraft.Handle).Methods(http.MethodPost)
	api.HandleFunc("/drafts/{draftId}", getDraft.Handle).Methods(http.MethodGet)
	api.HandleFunc("/drafts/{draftId}/phone", applyDraftStep.HandlePhone).Methods(http.MethodPut)
	api.HandleFunc("/drafts/{draftId}/pet", applyDraftStep.HandlePet).Methods(http.MethodPut)
	api.HandleFunc("/drafts/{draftId}/datetime", applyDraftStep.HandleDateTime).Methods(http.MethodPut)
	api.HandleFunc("/drafts/{draftId}/services", applyDraftStep.HandleServices).Methods(http.MethodPut)
	api.HandleFunc("/drafts/{draftId}/options/{optionId}/toggle", applyDraftStep.HandleToggleOption).Methods(http.MethodPost)
	api.HandleFunc("/drafts/{draftId}/back", navigateDraft.HandleBack).Methods(http.MethodPost)
	api.HandleFunc("/drafts/{draftId}", navigateDraft.HandleDelete).Methods(http.MethodDelete)
	api.HandleFunc("/drafts/{draftId}/submit", submitDraft.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))

	// --- Управление бронированиями ---
	admin.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/export", exportReservations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// --- Управление дополнительными слотами ---
	admin.HandleFunc("/time-slots", createTimeSlot.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/time-slots/{slotId}", deleteTimeSlot.Handle).Methods(http.MethodDelete)

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
