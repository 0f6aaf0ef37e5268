package slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	accountRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/account"
	slotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-ParkingService/internal/service/slots/models"
)

// Service сервис парковочных мест: списки и административные операции
type Service struct {
	slotRepo    SlotRepository
	accountRepo AccountRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса мест
func NewService(
	slotRepo SlotRepository,
	accountRepo AccountRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		slotRepo:    slotRepo,
		accountRepo: accountRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// List возвращает все места по возрастанию номера
func (s *Service) List(ctx context.Context) (*models.SlotListResponse, error) {
	slots, err := s.slotRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrBackendUnavailable, err)
	}

	return models.FromDomainSlots(slots), nil
}

// ListAvailable возвращает свободные места по возрастанию номера
func (s *Service) ListAvailable(ctx context.Context) (*models.SlotListResponse, error) {
	slots, err := s.slotRepo.ListAvailable(ctx)
	if err != nil {
		s.logger.Error("ListAvailable: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAvailable - repository error: %v", ErrBackendUnavailable, err)
	}

	return models.FromDomainSlots(slots), nil
}

// Add добавляет свободное место с указанным номером
// Доступно только администратору
func (s *Service) Add(ctx context.Context, req *models.AddSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("Add: adding slot number=%d by user=%s", req.SlotNumber, req.UserID)

	if err := s.requireAdmin(ctx, req.UserID); err != nil {
		return nil, err
	}

	if req.SlotNumber <= 0 {
		s.logger.Warn("Add: invalid slot number=%d", req.SlotNumber)
		return nil, fmt.Errorf("%w: slotNumber must be positive", ErrInvalidInput)
	}

	created, err := s.slotRepo.Create(ctx, &domain.ParkingSlot{ID: uuid.NewString(), SlotNumber: req.SlotNumber})
	if err != nil {
		if errors.Is(err, slotRepo.ErrDuplicateSlotNumber) {
			s.logger.Warn("Add: slot number=%d already exists", req.SlotNumber)
			return nil, ErrSlotNumberTaken
		}
		s.logger.Error("Add: repository error: %v", err)
		return nil, fmt.Errorf("%w: Add - repository error: %v", ErrBackendUnavailable, err)
	}

	s.logger.Info("Add: successfully added slot id=%s number=%d", created.ID, created.SlotNumber)
	return models.FromDomainSlot(created), nil
}

// Reset освобождает все занятые места без списаний
// Доступно только администратору
func (s *Service) Reset(ctx context.Context, userID string) (*models.ResetResponse, error) {
	s.logger.Info("Reset: releasing all slots by user=%s", userID)

	if err := s.requireAdmin(ctx, userID); err != nil {
		return nil, err
	}

	released, err := s.slotRepo.ReleaseAll(ctx)
	if err != nil {
		s.logger.Error("Reset: repository error: %v", err)
		return nil, fmt.Errorf("%w: Reset - repository error: %v", ErrBackendUnavailable, err)
	}

	s.logger.Info("Reset: released %d slots", released)
	return &models.ResetResponse{Released: released}, nil
}

// Seed создает свободные места 1..count, если мест еще нет.
// Возвращает количество созданных мест.
func (s *Service) Seed(ctx context.Context, count int) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("%w: count must not be negative", ErrInvalidInput)
	}

	created := 0
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		existing, err := s.slotRepo.Count(txCtx)
		if err != nil {
			return fmt.Errorf("%w: Seed - count slots: %v", ErrBackendUnavailable, err)
		}
		if existing > 0 {
			s.logger.Info("Seed: %d slots already exist, skipping", existing)
			return nil
		}

		for number := 1; number <= count; number++ {
			if _, err := s.slotRepo.Create(txCtx, &domain.ParkingSlot{ID: uuid.NewString(), SlotNumber: number}); err != nil {
				return fmt.Errorf("%w: Seed - create slot %d: %v", ErrBackendUnavailable, number, err)
			}
			created++
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Seed: failed to seed slots: %v", err)
		return 0, err
	}

	if created > 0 {
		s.logger.Info("Seed: created %d slots", created)
	}
	return created, nil
}

func (s *Service) requireAdmin(ctx context.Context, userID string) error {
	profile, err := s.accountRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, accountRepo.ErrAccountNotFound) {
			s.logger.Warn("requireAdmin: account id=%s not found", userID)
			return ErrAccountNotFound
		}
		s.logger.Error("requireAdmin: repository error for account id=%s: %v", userID, err)
		return fmt.Errorf("%w: requireAdmin - repository error: %v", ErrBackendUnavailable, err)
	}

	if !profile.IsAdmin() {
		s.logger.Warn("requireAdmin: user=%s is not an admin", userID)
		return ErrAccessDenied
	}

	return nil
}
