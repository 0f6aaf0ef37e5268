package quote_slot

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/pricing/models"
)

type PricingService interface {
	Quote(ctx context.Context, slotID string) (*models.QuoteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
