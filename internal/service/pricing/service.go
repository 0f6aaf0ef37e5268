package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	accountRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/account"
	pricingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/pricing"
	slotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-ParkingService/internal/service/fee"
	"github.com/m04kA/SMC-ParkingService/internal/service/pricing/models"
)

// Service сервис тарифа парковки
type Service struct {
	pricingRepo  PricingRepository
	accountRepo  AccountRepository
	slotRepo     SlotRepository
	defaults     domain.PricingConfig
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса тарифа.
// defaults сохраняются при первом обращении, если тарифа еще нет.
func NewService(
	pricingRepo PricingRepository,
	accountRepo AccountRepository,
	slotRepo SlotRepository,
	defaults domain.PricingConfig,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		pricingRepo:  pricingRepo,
		accountRepo:  accountRepo,
		slotRepo:     slotRepo,
		defaults:     defaults,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Current возвращает действующий тариф, создавая тариф по умолчанию при первом обращении
func (s *Service) Current(ctx context.Context) (*domain.PricingConfig, error) {
	cfg, err := s.pricingRepo.Get(ctx, domain.DefaultPricingID)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, pricingRepo.ErrPricingNotFound) {
		s.logger.Error("Current: repository error: %v", err)
		return nil, fmt.Errorf("%w: Current - repository error: %v", ErrBackendUnavailable, err)
	}

	defaults := s.defaults
	defaults.ID = domain.DefaultPricingID
	defaults.UpdatedBy = domain.SystemActor
	defaults.UpdatedAt = s.timeProvider.Now()

	s.logger.Info("Current: pricing not found, creating defaults rate=%s minimum=%s currency=%s",
		defaults.HourlyRate, defaults.MinimumCharge, defaults.Currency)

	if err := s.pricingRepo.CreateIfAbsent(ctx, defaults); err != nil {
		s.logger.Error("Current: failed to create default pricing: %v", err)
		return nil, fmt.Errorf("%w: Current - create defaults: %v", ErrBackendUnavailable, err)
	}

	// Перечитываем: при одновременном создании побеждает первая запись
	cfg, err = s.pricingRepo.Get(ctx, domain.DefaultPricingID)
	if err != nil {
		s.logger.Error("Current: failed to read pricing after create: %v", err)
		return nil, fmt.Errorf("%w: Current - repository error: %v", ErrBackendUnavailable, err)
	}

	return cfg, nil
}

// Get возвращает тариф для API
func (s *Service) Get(ctx context.Context) (*models.PricingResponse, error) {
	cfg, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomainPricing(cfg), nil
}

// Update изменяет тариф
// Доступно только администратору
func (s *Service) Update(ctx context.Context, req *models.UpdatePricingRequest) (*models.PricingResponse, error) {
	s.logger.Info("Update: updating pricing rate=%s minimum=%s by user=%s", req.HourlyRate, req.MinimumCharge, req.UserID)

	if err := s.requireAdmin(ctx, req.UserID); err != nil {
		return nil, err
	}

	if !req.HourlyRate.IsPositive() {
		s.logger.Warn("Update: invalid hourly rate=%s", req.HourlyRate)
		return nil, fmt.Errorf("%w: hourlyRate must be positive", ErrInvalidInput)
	}
	if !req.MinimumCharge.IsPositive() {
		s.logger.Warn("Update: invalid minimum charge=%s", req.MinimumCharge)
		return nil, fmt.Errorf("%w: minimumCharge must be positive", ErrInvalidInput)
	}

	current, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}

	updated := *current
	updated.HourlyRate = req.HourlyRate
	updated.MinimumCharge = req.MinimumCharge
	updated.UpdatedAt = s.timeProvider.Now()
	updated.UpdatedBy = req.UserID

	if req.Currency != nil {
		code, err := fee.NormalizeCurrency(*req.Currency)
		if err != nil {
			s.logger.Warn("Update: unknown currency=%s", *req.Currency)
			return nil, fmt.Errorf("%w: unknown currency %q", ErrInvalidInput, *req.Currency)
		}
		updated.Currency = code
	}

	if err := s.pricingRepo.Update(ctx, updated); err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrBackendUnavailable, err)
	}

	s.logger.Info("Update: successfully updated pricing by user=%s", req.UserID)
	return models.FromDomainPricing(&updated), nil
}

// Quote считает текущую плату за занятое место, ничего не изменяя
func (s *Service) Quote(ctx context.Context, slotID string) (*models.QuoteResponse, error) {
	s.logger.Info("Quote: computing fee for slot id=%s", slotID)

	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Quote: slot id=%s not found", slotID)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("Quote: repository error for slot id=%s: %v", slotID, err)
		return nil, fmt.Errorf("%w: Quote - repository error: %v", ErrBackendUnavailable, err)
	}

	if !slot.Occupied() {
		s.logger.Warn("Quote: slot id=%s is not occupied", slotID)
		return nil, ErrSlotNotOccupied
	}

	cfg, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	amount, elapsed, err := fee.Session(slot.Occupancy, *cfg, now)
	if err != nil {
		s.logger.Warn("Quote: unparseable entry time for slot id=%s, charging minimum: %v", slotID, err)
	}

	return &models.QuoteResponse{
		SlotID:       slot.ID,
		SlotNumber:   slot.SlotNumber,
		VehiclePlate: slot.Occupancy.VehiclePlate,
		EntryTime:    slot.Occupancy.EntryTime.String(),
		Duration:     elapsed,
		Fee:          fee.Round(amount, cfg.Currency).StringFixed(fee.Scale(cfg.Currency)),
		FeeDisplay:   fee.FormatCurrency(amount, cfg.Currency),
		Currency:     cfg.Currency,
		QuotedAt:     now,
	}, nil
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
