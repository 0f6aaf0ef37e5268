// Package app собирает общие зависимости сервиса и утилиты администрирования
package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-ParkingService/internal/config"
	accountRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/account"
	"github.com/m04kA/SMC-ParkingService/internal/infra/storage/migrations"
	pricingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/pricing"
	slotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/slot"
	accountsService "github.com/m04kA/SMC-ParkingService/internal/service/accounts"
	pricingService "github.com/m04kA/SMC-ParkingService/internal/service/pricing"
	slotsService "github.com/m04kA/SMC-ParkingService/internal/service/slots"
	registerVehicleUC "github.com/m04kA/SMC-ParkingService/internal/usecase/register_vehicle"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/metrics"
	"github.com/m04kA/SMC-ParkingService/pkg/txmanager"
)

// Container репозитории и сервисы поверх одного подключения к БД
type Container struct {
	DB        *sql.DB
	Wrapped   *dbmetrics.DB
	TxManager *txmanager.TransactionManager
	Clock     *registerVehicleUC.RealTimeProvider

	Slots    *slotRepo.Repository
	Pricing  *pricingRepo.Repository
	Accounts *accountRepo.Repository

	SlotsService    *slotsService.Service
	PricingService  *pricingService.Service
	AccountsService *accountsService.Service
}

// OpenDatabase открывает пул соединений и проверяет доступность БД
func OpenDatabase(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	pingCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.QueryTimeout)*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

// New собирает контейнер. При m == nil запросы к БД выполняются без метрик,
// stopCh останавливает сбор статистики пула (может быть nil).
func New(cfg *config.Config, db *sql.DB, m *metrics.Metrics, stopCh <-chan struct{}, log *logger.Logger) (*Container, error) {
	loc, err := cfg.Parking.Location()
	if err != nil {
		return nil, fmt.Errorf("parking timezone: %w", err)
	}

	var wrapped *dbmetrics.DB
	if m != nil && stopCh != nil {
		wrapped = dbmetrics.WrapWithDefault(db, m, stopCh)
	} else {
		wrapped = dbmetrics.Wrap(db, m)
	}

	c := &Container{
		DB:        db,
		Wrapped:   wrapped,
		TxManager: txmanager.NewTransactionManager(wrapped),
		Clock:     &registerVehicleUC.RealTimeProvider{Location: loc},
		Slots:     slotRepo.NewRepository(wrapped),
		Pricing:   pricingRepo.NewRepository(wrapped),
		Accounts:  accountRepo.NewRepository(wrapped),
	}

	c.SlotsService = slotsService.NewService(c.Slots, c.Accounts, c.TxManager, log)
	c.PricingService = pricingService.NewService(
		c.Pricing,
		c.Accounts,
		c.Slots,
		cfg.Parking.PricingDefaults(),
		c.Clock,
		log,
	)
	c.AccountsService = accountsService.NewService(
		c.Accounts,
		c.PricingService,
		cfg.Parking.MaxDepositAmount(),
		log,
	)

	return c, nil
}

// Bootstrap применяет схему, заводит начальные места и тариф по умолчанию
func (c *Container) Bootstrap(ctx context.Context, initialSlots int) (int, error) {
	if err := migrations.Apply(ctx, c.Wrapped); err != nil {
		return 0, err
	}

	seeded, err := c.SlotsService.Seed(ctx, initialSlots)
	if err != nil {
		return 0, fmt.Errorf("seed slots: %w", err)
	}

	if _, err := c.PricingService.Current(ctx); err != nil {
		return seeded, fmt.Errorf("init pricing: %w", err)
	}

	return seeded, nil
}
