package pricing

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

const tableName = "pricing"

var columns = []string{"id", "hourly_rate", "minimum_charge", "currency", "updated_at", "updated_by"}

// Repository репозиторий тарифа
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория тарифа
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает тариф по ID
func (r *Repository) Get(ctx context.Context, id string) (*domain.PricingConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.PricingConfig
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID,
		&cfg.HourlyRate,
		&cfg.MinimumCharge,
		&cfg.Currency,
		&cfg.UpdatedAt,
		&cfg.UpdatedBy,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPricingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan pricing: %v", ErrScanRow, err)
	}

	return &cfg, nil
}

// CreateIfAbsent сохраняет тариф, если записи с таким ID еще нет
func (r *Repository) CreateIfAbsent(ctx context.Context, cfg domain.PricingConfig) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildCreateIfAbsentQuery(cfg)
	if err != nil {
		return fmt.Errorf("%w: CreateIfAbsent - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateIfAbsent - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// Update обновляет тариф
func (r *Repository) Update(ctx context.Context, cfg domain.PricingConfig) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildUpdateQuery(cfg)
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPricingNotFound
	}

	return nil
}

func buildCreateIfAbsentQuery(cfg domain.PricingConfig) (string, []interface{}, error) {
	return psqlbuilder.Insert(tableName).
		Columns(columns...).
		Values(cfg.ID, cfg.HourlyRate, cfg.MinimumCharge, cfg.Currency, cfg.UpdatedAt, cfg.UpdatedBy).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
}

func buildUpdateQuery(cfg domain.PricingConfig) (string, []interface{}, error) {
	return psqlbuilder.Update(tableName).
		Set("hourly_rate", cfg.HourlyRate).
		Set("minimum_charge", cfg.MinimumCharge).
		Set("currency", cfg.Currency).
		Set("updated_at", cfg.UpdatedAt).
		Set("updated_by", cfg.UpdatedBy).
		Where(squirrel.Eq{"id": cfg.ID}).
		ToSql()
}
