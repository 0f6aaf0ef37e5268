package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addSlotHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/add_slot"
	deleteAllImagesHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/delete_all_images"
	deleteImageHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/delete_image"
	depositHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/deposit"
	getPricingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_pricing"
	getProfileHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_profile"
	healthHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/health"
	listAvailableSlotsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/list_available_slots"
	listImagesHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/list_images"
	listSlotsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/list_slots"
	quoteSlotHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/quote_slot"
	registerVehicleHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/register_vehicle"
	resetSlotsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/reset_slots"
	settleSlotHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/settle_slot"
	updatePricingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/update_pricing"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/app"
	"github.com/m04kA/SMC-ParkingService/internal/config"
	"github.com/m04kA/SMC-ParkingService/internal/integrations/imagestore"
	imagesService "github.com/m04kA/SMC-ParkingService/internal/service/images"
	registerVehicleUC "github.com/m04kA/SMC-ParkingService/internal/usecase/register_vehicle"
	settleSlotUC "github.com/m04kA/SMC-ParkingService/internal/usecase/settle_slot"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/metrics"
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

	log.Info("Starting SMC-ParkingService...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	ctx := context.Background()
	db, err := app.OpenDatabase(ctx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Репозитории, сервисы мест, тарифа и профилей
	container, err := app.New(cfg, db, metricsCollector, stopMetricsCh, log)
	if err != nil {
		log.Fatal("Failed to initialize services: %v", err)
	}

	seeded, err := container.Bootstrap(ctx, cfg.Parking.InitialSlots)
	if err != nil {
		log.Fatal("Failed to bootstrap database: %v", err)
	}
	log.Info("Database ready (seeded_slots=%d)", seeded)

	// Хранилище фотографий номеров
	storageCfg := imagestore.Config{
		Endpoint:      cfg.Storage.Endpoint,
		Region:        cfg.Storage.Region,
		Bucket:        cfg.Storage.Bucket,
		Prefix:        cfg.Storage.Prefix,
		AccessKey:     cfg.Storage.AccessKey,
		SecretKey:     cfg.Storage.SecretKey,
		UsePathStyle:  cfg.Storage.UsePathStyle,
		PublicBaseURL: cfg.Storage.PublicBaseURL,
		Timeout:       time.Duration(cfg.Storage.Timeout) * time.Second,
	}
	s3Client, err := imagestore.NewS3Client(ctx, storageCfg)
	if err != nil {
		log.Fatal("Failed to initialize S3 client: %v", err)
	}
	imageStore := imagestore.NewClient(s3Client, s3.NewPresignClient(s3Client), storageCfg, log)
	log.Info("Image store initialized (bucket=%s, prefix=%s)", cfg.Storage.Bucket, cfg.Storage.Prefix)

	// Инициализируем сервисы
	imagesSvc := imagesService.NewService(imageStore, container.Accounts, log)

	// Инициализируем use cases
	registerVehicleUseCase := registerVehicleUC.NewUseCase(
		container.Slots,
		imageStore,
		metricsCollector,
		container.Clock,
		log,
	)

	settleSlotUseCase := settleSlotUC.NewUseCase(
		container.Slots,
		container.Accounts,
		container.PricingService,
		container.TxManager,
		metricsCollector,
		container.Clock,
		log,
	)

	// Инициализируем handlers
	health := healthHandler.NewHandler(db, log)
	listSlots := listSlotsHandler.NewHandler(container.SlotsService, log)
	listAvailableSlots := listAvailableSlotsHandler.NewHandler(container.SlotsService, log)
	addSlot := addSlotHandler.NewHandler(container.SlotsService, log)
	resetSlots := resetSlotsHandler.NewHandler(container.SlotsService, log)
	registerVehicle := registerVehicleHandler.NewHandler(registerVehicleUseCase, log)
	quoteSlot := quoteSlotHandler.NewHandler(container.PricingService, log)
	settleSlot := settleSlotHandler.NewHandler(settleSlotUseCase, log)
	getPricing := getPricingHandler.NewHandler(container.PricingService, log)
	updatePricing := updatePricingHandler.NewHandler(container.PricingService, log)
	getProfile := getProfileHandler.NewHandler(container.AccountsService, log)
	deposit := depositHandler.NewHandler(container.AccountsService, log)
	listImages := listImagesHandler.NewHandler(imagesSvc, log)
	deleteImage := deleteImageHandler.NewHandler(imagesSvc, log)
	deleteAllImages := deleteAllImagesHandler.NewHandler(imagesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check (публичный, без аутентификации)
	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// ============================================================
	// API (требует X-User-ID header)
	// ============================================================

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// --- Места ---
	api.HandleFunc("/slots", listSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots/available", listAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots", addSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/slots/reset", resetSlots.Handle).Methods(http.MethodPost)

	// --- Парковочная сессия ---
	api.HandleFunc("/slots/{slotNumber:[0-9]+}/vehicle", registerVehicle.Handle).Methods(http.MethodPost)
	api.HandleFunc("/slots/{slotId}/quote", quoteSlot.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots/{slotId}/settle", settleSlot.Handle).Methods(http.MethodPost)

	// --- Тариф ---
	api.HandleFunc("/pricing", getPricing.Handle).Methods(http.MethodGet)
	api.HandleFunc("/pricing", updatePricing.Handle).Methods(http.MethodPut)

	// --- Профиль и баланс ---
	api.HandleFunc("/users/me", getProfile.Handle).Methods(http.MethodGet)
	api.HandleFunc("/users/me/deposit", deposit.Handle).Methods(http.MethodPost)

	// --- Журнал фотографий (администратор) ---
	api.HandleFunc("/images", listImages.Handle).Methods(http.MethodGet)
	api.HandleFunc("/images", deleteAllImages.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/images/{name}", deleteImage.Handle).Methods(http.MethodDelete)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
