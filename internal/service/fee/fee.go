// Package fee считает стоимость парковки по времени въезда и тарифу.
// Функции пакета чистые: текущее время и тариф передаются явно.
package fee

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

var nanosPerHour = decimal.NewFromInt(int64(time.Hour))

// ComputeFee считает плату за сессию по строкам времени въезда и выезда.
// Обе строки разбираются относительно календарного дня now; exit == nil означает "сейчас".
// При ошибке разбора возвращается минимальная плата.
func ComputeFee(entry string, exit *string, cfg domain.PricingConfig, now time.Time) decimal.Decimal {
	entryAt, exitAt, err := resolve(entry, exit, now)
	if err != nil {
		return cfg.MinimumCharge
	}
	return ComputeFeeBetween(entryAt, exitAt, cfg)
}

// ComputeFeeBetween считает плату между двумя абсолютными моментами:
// max(часы * ставка, минимальная плата), без округления
func ComputeFeeBetween(entryAt, exitAt time.Time, cfg domain.PricingConfig) decimal.Decimal {
	fee := Hours(exitAt.Sub(entryAt)).Mul(cfg.HourlyRate)
	if fee.LessThan(cfg.MinimumCharge) {
		return cfg.MinimumCharge
	}
	return fee
}

// Hours переводит длительность в дробное количество часов
func Hours(d time.Duration) decimal.Decimal {
	return decimal.NewFromInt(d.Nanoseconds()).Div(nanosPerHour)
}

// FormatDuration возвращает "{h}h {m}m" или "{m}m" для сессии.
// Часы и минуты округляются вниз; ошибка разбора и отрицательная длительность дают "0m".
func FormatDuration(entry string, exit *string, now time.Time) string {
	entryAt, exitAt, err := resolve(entry, exit, now)
	if err != nil {
		return "0m"
	}
	return FormatElapsed(exitAt.Sub(entryAt))
}

// FormatElapsed форматирует длительность в виде "{h}h {m}m" / "{m}m"
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	hours := int64(d / time.Hour)
	minutes := int64((d % time.Hour) / time.Minute)

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

func resolve(entry string, exit *string, now time.Time) (time.Time, time.Time, error) {
	entryAt, err := types.ParseClockTime(entry, now)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	exitAt := now
	if exit != nil {
		exitAt, err = types.ParseClockTime(*exit, now)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	return entryAt, exitAt, nil
}

// Session считает плату и длительность стоянки для занятого места.
// Используется абсолютный момент въезда, а если его нет, строка времени въезда относительно now.
// Ошибка разбора строки возвращается вместе с минимальной платой и длительностью "0m".
func Session(occ *domain.Occupancy, cfg domain.PricingConfig, now time.Time) (decimal.Decimal, string, error) {
	if !occ.EnteredAt.IsZero() {
		return ComputeFeeBetween(occ.EnteredAt, now, cfg), FormatElapsed(now.Sub(occ.EnteredAt)), nil
	}

	entryAt, err := occ.EntryTime.On(now)
	if err != nil {
		return cfg.MinimumCharge, "0m", err
	}
	return ComputeFeeBetween(entryAt, now, cfg), FormatElapsed(now.Sub(entryAt)), nil
}
