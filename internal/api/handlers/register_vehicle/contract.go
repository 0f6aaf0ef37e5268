package register_vehicle

import (
	"context"

	registerVehicle "github.com/m04kA/SMC-ParkingService/internal/usecase/register_vehicle"
)

type RegisterVehicleUseCase interface {
	Execute(ctx context.Context, req *registerVehicle.Request) (*registerVehicle.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
