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
	"github.com/robfig/cron/v3"

	advanceStepHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/advance_step"
	autoCalculateHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/auto_calculate"
	createDraftHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_draft"
	deleteDraftHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/delete_draft"
	deleteRentalHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/delete_rental"
	getDraftHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_draft"
	getRentalHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_rental"
	listRentalsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_rentals"
	listVehiclesHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_vehicles"
	retreatStepHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/retreat_step"
	submitDraftHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/submit_draft"
	updateDraftHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/update_draft"
	updateRentalHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/update_rental"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/config"
	draftStore "github.com/m04kA/SMC-RentalService/internal/infra/storage/draft"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	vehicleRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/vehicle"
	draftsService "github.com/m04kA/SMC-RentalService/internal/service/drafts"
	rentalsService "github.com/m04kA/SMC-RentalService/internal/service/rentals"
	vehiclesService "github.com/m04kA/SMC-RentalService/internal/service/vehicles"
	submitAgreementUC "github.com/m04kA/SMC-RentalService/internal/usecase/submit_agreement"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
	"github.com/m04kA/SMC-RentalService/pkg/metrics"
	"github.com/m04kA/SMC-RentalService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-RentalService/pkg/txmanager"
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

	log.Info("Starting SMC-RentalService...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		rentalRepository  *rentalRepo.Repository
		vehicleRepository *vehicleRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		rentalRepository = rentalRepo.NewRepository(wrappedDB)
		vehicleRepository = vehicleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		rentalRepository = rentalRepo.NewRepository(db)
		vehicleRepository = vehicleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// In-memory хранилище черновиков мастера
	drafts := draftStore.NewStore()

	// Инициализируем сервисы
	draftSvc := draftsService.NewService(drafts, vehicleRepository, log)
	rentalSvc := rentalsService.NewService(rentalRepository, log)
	vehicleSvc := vehiclesService.NewService(vehicleRepository, log)

	// Инициализируем use cases
	submitAgreementUseCase := submitAgreementUC.NewUseCase(
		drafts,
		rentalRepository,
		vehicleRepository,
		txMgr,
		log,
	)

	// Фоновая зачистка брошенных черновиков по TTL
	draftTTL := time.Duration(cfg.Drafts.TTLMinutes) * time.Minute
	sweeper := cron.New()
	if _, err := sweeper.AddFunc(cfg.Drafts.SweepSpec, func() {
		draftSvc.SweepExpired(draftTTL)
	}); err != nil {
		log.Fatal("Failed to schedule draft sweep: %v", err)
	}
	sweeper.Start()
	log.Info("Draft sweep scheduled (%s, ttl=%s)", cfg.Drafts.SweepSpec, draftTTL)

	// Инициализируем handlers
	createDraft := createDraftHandler.NewHandler(draftSvc, log)
	getDraft := getDraftHandler.NewHandler(draftSvc, log)
	updateDraft := updateDraftHandler.NewHandler(draftSvc, log)
	deleteDraft := deleteDraftHandler.NewHandler(draftSvc, log)
	autoCalculate := autoCalculateHandler.NewHandler(draftSvc, log)
	advanceStep := advanceStepHandler.NewHandler(draftSvc, log)
	retreatStep := retreatStepHandler.NewHandler(draftSvc, log)
	submitDraft := submitDraftHandler.NewHandler(submitAgreementUseCase, log)
	listRentals := listRentalsHandler.NewHandler(rentalSvc, log)
	getRental := getRentalHandler.NewHandler(rentalSvc, log)
	updateRental := updateRentalHandler.NewHandler(rentalSvc, log)
	deleteRental := deleteRentalHandler.NewHandler(rentalSvc, log)
	listVehicles := listVehiclesHandler.NewHandler(vehicleSvc, log)

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

	// Каталог автомобилей
	api.HandleFunc("/vehicles", listVehicles.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Черновики мастера ---
	protected.HandleFunc("/drafts", createDraft.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/drafts/{draftId}", getDraft.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/drafts/{draftId}", updateDraft.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/drafts/{draftId}", deleteDraft.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/drafts/{draftId}/auto-calculate", autoCalculate.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/drafts/{draftId}/advance", advanceStep.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/drafts/{draftId}/retreat", retreatStep.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/drafts/{draftId}/submit", submitDraft.Handle).Methods(http.MethodPost)

	// --- Договоры аренды ---
	protected.HandleFunc("/rentals", listRentals.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/rentals/{rentalId}", getRental.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/rentals/{rentalId}", updateRental.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/rentals/{rentalId}", deleteRental.Handle).Methods(http.MethodDelete)

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

	// Останавливаем зачистку черновиков
	sweeperCtx := sweeper.Stop()
	<-sweeperCtx.Done()
	log.Info("Draft sweep stopped")

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
