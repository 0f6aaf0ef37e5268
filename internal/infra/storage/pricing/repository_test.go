package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

func testConfig() domain.PricingConfig {
	return domain.PricingConfig{
		ID:            "default",
		HourlyRate:    decimal.RequireFromString("2.50"),
		MinimumCharge: decimal.NewFromInt(1),
		Currency:      "USD",
		UpdatedAt:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedBy:     "admin-1",
	}
}

func TestBuildCreateIfAbsentQuery_KeepsExistingRow(t *testing.T) {
	cfg := testConfig()

	query, args, err := buildCreateIfAbsentQuery(cfg)
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO pricing (id,hourly_rate,minimum_charge,currency,updated_at,updated_by) "+
			"VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT (id) DO NOTHING",
		query,
	)
	assert.Equal(t, []interface{}{
		cfg.ID, cfg.HourlyRate, cfg.MinimumCharge, cfg.Currency, cfg.UpdatedAt, cfg.UpdatedBy,
	}, args)
}

func TestBuildUpdateQuery(t *testing.T) {
	cfg := testConfig()

	query, args, err := buildUpdateQuery(cfg)
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE pricing SET hourly_rate = $1, minimum_charge = $2, currency = $3, "+
			"updated_at = $4, updated_by = $5 WHERE id = $6",
		query,
	)
	require.Len(t, args, 6)
	assert.Equal(t, cfg.ID, args[5])
}
