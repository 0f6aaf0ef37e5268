package settle_slot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	accountRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/account"
	slotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-ParkingService/internal/service/fee"
)

// UseCase use case для оплаты стоянки и освобождения места
type UseCase struct {
	slotRepo     SlotRepository
	accountRepo  AccountRepository
	pricing      PricingProvider
	txManager    TransactionManager
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	accountRepo AccountRepository,
	pricing PricingProvider,
	txManager TransactionManager,
	metrics MetricsRecorder,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		accountRepo:  accountRepo,
		pricing:      pricing,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет use case оплаты и освобождения места.
// Списание и освобождение выполняются в одной сериализуемой транзакции:
// либо происходят оба, либо ни одно.
// Администратор освобождает место без списания.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	req.SlotID = strings.TrimSpace(req.SlotID)
	req.PayerID = strings.TrimSpace(req.PayerID)

	uc.logger.Info("SettleSlot: slot id=%s, payer=%s", req.SlotID, req.PayerID)

	if req.SlotID == "" || req.PayerID == "" {
		uc.logger.Warn("SettleSlot: slotID and payerID are required")
		return nil, fmt.Errorf("%w: slotID and payerID are required", ErrInvalidInput)
	}

	// 1. Получаем действующий тариф
	pricing, err := uc.pricing.Current(ctx)
	if err != nil {
		uc.logger.Error("SettleSlot: failed to get pricing: %v", err)
		uc.metrics.RecordSettlement(resultFailed, 0, "")
		return nil, fmt.Errorf("%w: failed to get pricing: %v", ErrBackendUnavailable, err)
	}

	now := uc.timeProvider.Now()

	var result *Response

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Блокируем место (FOR UPDATE)
		slot, err := uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("SettleSlot: slot id=%s not found", req.SlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("SettleSlot: failed to get slot id=%s: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrBackendUnavailable, err)
		}

		if !slot.Occupied() {
			uc.logger.Warn("SettleSlot: slot id=%s is not occupied", req.SlotID)
			return ErrSlotNotOccupied
		}

		// 2.2. Блокируем профиль плательщика (FOR UPDATE)
		payer, err := uc.accountRepo.GetByID(txCtx, req.PayerID)
		if err != nil {
			if errors.Is(err, accountRepo.ErrAccountNotFound) {
				uc.logger.Warn("SettleSlot: payer id=%s not found", req.PayerID)
				return ErrAccountNotFound
			}
			uc.logger.Error("SettleSlot: failed to get payer id=%s: %v", req.PayerID, err)
			return fmt.Errorf("%w: failed to get payer: %v", ErrBackendUnavailable, err)
		}

		// 2.3. Считаем плату; сумма к списанию округляется до минимальной единицы валюты
		amount, duration, err := fee.Session(slot.Occupancy, *pricing, now)
		if err != nil {
			uc.logger.Warn("SettleSlot: unparseable entry time for slot id=%s, charging minimum: %v", req.SlotID, err)
		}
		amount = fee.Round(amount, pricing.Currency)

		result = &Response{
			SlotID:       slot.ID,
			SlotNumber:   slot.SlotNumber,
			VehiclePlate: slot.Occupancy.VehiclePlate,
			Fee:          amount,
			FeeDisplay:   fee.FormatCurrency(amount, pricing.Currency),
			Duration:     duration,
			Currency:     pricing.Currency,
			NewBalance:   payer.Balance,
		}

		// 2.4. Администратор освобождает место без оплаты
		if payer.IsAdmin() {
			uc.logger.Info("SettleSlot: admin=%s releases slot id=%s without charge", payer.ID, slot.ID)
			return uc.release(txCtx, slot.ID)
		}

		if !slot.IsOwnedBy(payer.ID) {
			uc.logger.Warn("SettleSlot: payer=%s is not the owner of slot id=%s", payer.ID, slot.ID)
			return ErrAccessDenied
		}

		if !payer.CanAfford(amount) {
			uc.logger.Warn("SettleSlot: insufficient balance for payer=%s: balance=%s, fee=%s", payer.ID, payer.Balance, amount)
			return ErrInsufficientBalance
		}

		// 2.5. Списываем плату и освобождаем место
		newBalance, err := uc.accountRepo.Debit(txCtx, payer.ID, amount)
		if err != nil {
			if errors.Is(err, accountRepo.ErrInsufficientBalance) {
				uc.logger.Warn("SettleSlot: debit rejected for payer=%s: insufficient balance", payer.ID)
				return ErrInsufficientBalance
			}
			uc.logger.Error("SettleSlot: failed to debit payer=%s: %v", payer.ID, err)
			return fmt.Errorf("%w: failed to debit payer: %v", ErrBackendUnavailable, err)
		}

		if err := uc.release(txCtx, slot.ID); err != nil {
			return err
		}

		result.NewBalance = newBalance
		result.Charged = true
		return nil
	})

	if err != nil {
		uc.metrics.RecordSettlement(settlementResult(err), 0, pricing.Currency)
		return nil, err
	}

	if result.Charged {
		uc.metrics.RecordSettlement(resultPaid, result.Fee.InexactFloat64(), result.Currency)
		uc.logger.Info("SettleSlot: payer=%s paid %s for slot id=%s, new balance=%s",
			req.PayerID, result.FeeDisplay, result.SlotID, result.NewBalance)
	} else {
		uc.metrics.RecordSettlement(resultOverride, 0, result.Currency)
	}

	return result, nil
}

func (uc *UseCase) release(ctx context.Context, slotID string) error {
	if err := uc.slotRepo.Release(ctx, slotID); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotOccupied) {
			uc.logger.Warn("SettleSlot: slot id=%s was released concurrently", slotID)
			return ErrSlotNotOccupied
		}
		uc.logger.Error("SettleSlot: failed to release slot id=%s: %v", slotID, err)
		return fmt.Errorf("%w: failed to release slot: %v", ErrBackendUnavailable, err)
	}
	return nil
}

func settlementResult(err error) string {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return resultInsufficient
	case errors.Is(err, ErrAccessDenied):
		return resultDenied
	default:
		return resultFailed
	}
}
