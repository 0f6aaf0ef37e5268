package fee

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

func pricing() domain.PricingConfig {
	return domain.PricingConfig{
		ID:            domain.DefaultPricingID,
		HourlyRate:    decimal.RequireFromString("5.00"),
		MinimumCharge: decimal.RequireFromString("2.00"),
		Currency:      "USD",
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 10, 15, hour, minute, 0, 0, time.UTC)
}

func assertMoney(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(actual), "expected %s, got %s", expected, actual)
}

func TestComputeFeeUsesNowAsExit(t *testing.T) {
	assertMoney(t, "12.50", ComputeFee("9:00 AM", nil, pricing(), at(11, 30)))
}

func TestComputeFeeWithExit(t *testing.T) {
	assertMoney(t, "7.50", ComputeFee("1:00 PM", ptr.Ptr("2:30 PM"), pricing(), at(8, 0)))
}

func TestComputeFeeZeroDurationChargesMinimum(t *testing.T) {
	now := at(10, 15)
	entry := "10:15 AM"
	assertMoney(t, "2.00", ComputeFee(entry, &entry, pricing(), now))
	assertMoney(t, "2.00", ComputeFeeBetween(now, now, pricing()))
}

func TestComputeFeeBelowMinimum(t *testing.T) {
	// 12 минут = 1.00 при ставке 5.00
	assertMoney(t, "2.00", ComputeFee("10:00 AM", nil, pricing(), at(10, 12)))
}

func TestComputeFeeNegativeDurationChargesMinimum(t *testing.T) {
	assertMoney(t, "2.00", ComputeFee("11:00 PM", nil, pricing(), at(1, 0)))
}

func TestComputeFeeParseFailureFallsBackToMinimum(t *testing.T) {
	assertMoney(t, "2.00", ComputeFee("nine o'clock", nil, pricing(), at(11, 0)))
	assertMoney(t, "2.00", ComputeFee("9:00 AM", ptr.Ptr("later"), pricing(), at(11, 0)))
}

func TestComputeFeeKeepsFullPrecision(t *testing.T) {
	// 20 минут при ставке 7.00 = 2.3333...
	cfg := pricing()
	cfg.HourlyRate = decimal.RequireFromString("7.00")

	got := ComputeFeeBetween(at(9, 0), at(9, 20), cfg)
	assert.True(t, got.GreaterThan(decimal.RequireFromString("2.333")))
	assert.True(t, got.LessThan(decimal.RequireFromString("2.334")))
	assertMoney(t, "2.33", Round(got, "USD"))
}

func TestComputeFeeMonotonic(t *testing.T) {
	cfg := pricing()
	entry := at(6, 0)

	prev := decimal.Zero
	for minutes := 0; minutes <= 16*60; minutes += 7 {
		got := ComputeFeeBetween(entry, entry.Add(time.Duration(minutes)*time.Minute), cfg)
		assert.True(t, got.GreaterThanOrEqual(prev), "fee decreased at %d minutes", minutes)
		assert.True(t, got.GreaterThanOrEqual(cfg.MinimumCharge))
		prev = got
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "2h 35m", FormatDuration("9:00 AM", nil, at(11, 35)))
	assert.Equal(t, "45m", FormatDuration("9:00 AM", ptr.Ptr("9:45 AM"), at(23, 0)))
	assert.Equal(t, "0m", FormatDuration("9:00 AM", ptr.Ptr("9:00 AM"), at(23, 0)))
	assert.Equal(t, "1h 0m", FormatDuration("12:00 PM", ptr.Ptr("1:00 PM"), at(23, 0)))
	assert.Equal(t, "0m", FormatDuration("garbage", nil, at(11, 35)))
	assert.Equal(t, "0m", FormatDuration("11:00 PM", nil, at(1, 0)))
}

func TestFormatElapsedTruncates(t *testing.T) {
	assert.Equal(t, "2h 35m", FormatElapsed(2*time.Hour+35*time.Minute+59*time.Second))
	assert.Equal(t, "59m", FormatElapsed(59*time.Minute+59*time.Second))
	assert.Equal(t, "26h 5m", FormatElapsed(26*time.Hour+5*time.Minute))
}

func TestSession(t *testing.T) {
	t.Run("absolute entry instant wins over clock string", func(t *testing.T) {
		occ := &domain.Occupancy{EntryTime: "11:00 PM", EnteredAt: at(9, 0)}

		amount, duration, err := Session(occ, pricing(), at(11, 30))

		assert.NoError(t, err)
		assertMoney(t, "12.50", amount)
		assert.Equal(t, "2h 30m", duration)
	})

	t.Run("falls back to clock string on the current day", func(t *testing.T) {
		occ := &domain.Occupancy{EntryTime: "9:00 AM"}

		amount, duration, err := Session(occ, pricing(), at(11, 30))

		assert.NoError(t, err)
		assertMoney(t, "12.50", amount)
		assert.Equal(t, "2h 30m", duration)
	})

	t.Run("unparseable clock string charges the minimum", func(t *testing.T) {
		occ := &domain.Occupancy{EntryTime: "garbage"}

		amount, duration, err := Session(occ, pricing(), at(11, 30))

		assert.Error(t, err)
		assertMoney(t, "2.00", amount)
		assert.Equal(t, "0m", duration)
	})
}
