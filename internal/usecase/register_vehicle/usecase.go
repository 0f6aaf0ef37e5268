package register_vehicle

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	slotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/slot"
)

// UseCase use case для регистрации автомобиля на свободном месте
type UseCase struct {
	slotRepo     SlotRepository
	imageStore   ImageStore
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	imageStore ImageStore,
	metrics MetricsRecorder,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		imageStore:   imageStore,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет use case регистрации автомобиля.
// Место занимается одним условным UPDATE, поэтому два оператора не могут занять одно место.
// Ошибка загрузки фотографии не прерывает регистрацию.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	normalizeRequest(req)

	uc.logger.Info("RegisterVehicle: user=%s, slot=%d, plate=%s, type=%s, entry=%q, image=%d bytes",
		req.UserID, req.SlotNumber, req.VehiclePlate, req.VehicleType, req.EntryTime, len(req.Image))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RegisterVehicle: validation failed: %v", err)
		uc.metrics.RecordRegistration(resultInvalid)
		return nil, err
	}

	// 2. Фиксируем момент въезда
	now := uc.timeProvider.Now()
	entryTime, enteredAt, err := resolveEntry(req.EntryTime, now)
	if err != nil {
		uc.logger.Warn("RegisterVehicle: invalid entry time %q: %v", req.EntryTime, err)
		uc.metrics.RecordRegistration(resultInvalid)
		return nil, fmt.Errorf("%w: invalid entryTime: %v", ErrInvalidInput, err)
	}

	// 3. Загружаем фотографию (если есть)
	var uploadedKey string
	var imageURL *string
	if len(req.Image) > 0 && uc.imageStore != nil {
		uploaded, err := uc.imageStore.UploadWithGracefulDegradation(ctx, req.Image, domain.ImageMetadata{
			LicensePlate: req.VehiclePlate,
			VehicleType:  req.VehicleType,
			SlotNumber:   req.SlotNumber,
		})
		if err != nil {
			uc.logger.Warn("RegisterVehicle: continuing without image for slot=%d: %v", req.SlotNumber, err)
		} else {
			uploadedKey = uploaded.Key
			imageURL = &uploaded.URL
		}
	}

	// 4. Занимаем место, только если оно свободно
	slot, err := uc.slotRepo.Occupy(ctx, req.SlotNumber, domain.Occupancy{
		VehiclePlate: req.VehiclePlate,
		VehicleType:  req.VehicleType,
		EntryTime:    entryTime,
		EnteredAt:    enteredAt,
		ImageURL:     imageURL,
		OwnerID:      req.UserID,
	})
	if err != nil {
		uc.discardImage(ctx, uploadedKey)
		return nil, uc.mapOccupyError(req.SlotNumber, err)
	}

	uc.metrics.RecordRegistration(resultSuccess)
	uc.logger.Info("RegisterVehicle: slot id=%s number=%d occupied by plate=%s", slot.ID, slot.SlotNumber, req.VehiclePlate)

	return toResponse(slot), nil
}

func (uc *UseCase) mapOccupyError(slotNumber int, err error) error {
	switch {
	case errors.Is(err, slotRepo.ErrSlotNotFound):
		uc.logger.Warn("RegisterVehicle: slot number=%d not found", slotNumber)
		uc.metrics.RecordRegistration(resultNotFound)
		return ErrSlotNotFound
	case errors.Is(err, slotRepo.ErrSlotOccupied):
		uc.logger.Warn("RegisterVehicle: slot number=%d already occupied", slotNumber)
		uc.metrics.RecordRegistration(resultOccupied)
		return ErrSlotAlreadyOccupied
	default:
		uc.logger.Error("RegisterVehicle: failed to occupy slot number=%d: %v", slotNumber, err)
		uc.metrics.RecordRegistration(resultBackend)
		return fmt.Errorf("%w: failed to occupy slot: %v", ErrBackendUnavailable, err)
	}
}

// discardImage удаляет загруженную фотографию, если место занять не удалось
func (uc *UseCase) discardImage(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := uc.imageStore.DeleteKey(ctx, key); err != nil {
		uc.logger.Warn("RegisterVehicle: failed to delete orphaned image key=%s: %v", key, err)
	}
}

func toResponse(slot *domain.ParkingSlot) *Response {
	occ := slot.Occupancy
	return &Response{
		SlotID:       slot.ID,
		SlotNumber:   slot.SlotNumber,
		VehiclePlate: occ.VehiclePlate,
		VehicleType:  occ.VehicleType,
		EntryTime:    occ.EntryTime,
		EnteredAt:    occ.EnteredAt,
		ImageURL:     occ.ImageURL,
		OwnerID:      occ.OwnerID,
		UpdatedAt:    slot.UpdatedAt,
	}
}
