package settle_slot

import (
	"context"

	settleSlot "github.com/m04kA/SMC-ParkingService/internal/usecase/settle_slot"
)

type SettleSlotUseCase interface {
	Execute(ctx context.Context, req *settleSlot.Request) (*settleSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
