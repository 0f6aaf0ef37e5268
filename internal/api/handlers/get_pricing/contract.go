package get_pricing

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/pricing/models"
)

type PricingService interface {
	Get(ctx context.Context) (*models.PricingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
