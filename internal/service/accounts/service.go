package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	accountRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/account"
	"github.com/m04kA/SMC-ParkingService/internal/service/accounts/models"
)

// Service сервис профилей и баланса
type Service struct {
	accountRepo AccountRepository
	pricing     PricingProvider
	maxDeposit  decimal.Decimal
	logger      Logger
}

// NewService создает новый экземпляр сервиса профилей
func NewService(
	accountRepo AccountRepository,
	pricing PricingProvider,
	maxDeposit decimal.Decimal,
	logger Logger,
) *Service {
	return &Service{
		accountRepo: accountRepo,
		pricing:     pricing,
		maxDeposit:  maxDeposit,
		logger:      logger,
	}
}

// Profile возвращает профиль пользователя
func (s *Service) Profile(ctx context.Context, userID string) (*models.ProfileResponse, error) {
	profile, err := s.accountRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, s.wrapRepoError("Profile", userID, err)
	}

	return models.FromDomainProfile(profile, s.currency(ctx)), nil
}

// FindByEmail ищет профиль по email (без учета регистра и пробелов)
func (s *Service) FindByEmail(ctx context.Context, email string) (*models.ProfileResponse, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	profile, err := s.accountRepo.GetByEmail(ctx, normalized)
	if err != nil {
		return nil, s.wrapRepoError("FindByEmail", normalized, err)
	}

	return models.FromDomainProfile(profile, s.currency(ctx)), nil
}

// Deposit пополняет баланс на сумму 0 < amount <= maxDeposit
func (s *Service) Deposit(ctx context.Context, req *models.DepositRequest) (*models.DepositResponse, error) {
	s.logger.Info("Deposit: user=%s amount=%s", req.UserID, req.Amount)

	if !req.Amount.IsPositive() || req.Amount.GreaterThan(s.maxDeposit) {
		s.logger.Warn("Deposit: invalid amount=%s for user=%s", req.Amount, req.UserID)
		return nil, fmt.Errorf("%w: amount must be in (0, %s]", ErrInvalidAmount, s.maxDeposit)
	}

	balance, err := s.accountRepo.Credit(ctx, req.UserID, req.Amount)
	if err != nil {
		return nil, s.wrapRepoError("Deposit", req.UserID, err)
	}

	s.logger.Info("Deposit: successfully credited user=%s new balance=%s", req.UserID, balance)
	return models.NewDepositResponse(req.Amount, balance, s.currency(ctx)), nil
}

// SetBalance устанавливает баланс пользователя с указанным email; доступно только администратору
func (s *Service) SetBalance(ctx context.Context, req *models.SetBalanceRequest) (*models.ProfileResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	s.logger.Info("SetBalance: user=%s target=%s balance=%s", req.UserID, email, req.Balance)

	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if req.Balance.IsNegative() {
		s.logger.Warn("SetBalance: negative balance=%s for %s", req.Balance, email)
		return nil, fmt.Errorf("%w: balance must not be negative", ErrInvalidAmount)
	}

	actor, err := s.accountRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, s.wrapRepoError("SetBalance", req.UserID, err)
	}
	if !actor.IsAdmin() {
		s.logger.Warn("SetBalance: user=%s is not an admin", req.UserID)
		return nil, ErrAccessDenied
	}

	target, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, s.wrapRepoError("SetBalance", email, err)
	}

	if err := s.accountRepo.SetBalance(ctx, target.ID, req.Balance); err != nil {
		return nil, s.wrapRepoError("SetBalance", target.ID, err)
	}
	target.Balance = req.Balance

	s.logger.Info("SetBalance: successfully set balance=%s for user=%s by admin=%s", req.Balance, target.ID, req.UserID)
	return models.FromDomainProfile(target, s.currency(ctx)), nil
}

// currency валюта для отображения баланса; при недоступности тарифа используется валюта по умолчанию
func (s *Service) currency(ctx context.Context) string {
	cfg, err := s.pricing.Current(ctx)
	if err != nil {
		s.logger.Warn("currency: pricing unavailable, using %s: %v", domain.DefaultCurrency, err)
		return domain.DefaultCurrency
	}
	return cfg.Currency
}

func (s *Service) wrapRepoError(op, key string, err error) error {
	if errors.Is(err, accountRepo.ErrAccountNotFound) {
		s.logger.Warn("%s: account %s not found", op, key)
		return ErrAccountNotFound
	}
	s.logger.Error("%s: repository error for account %s: %v", op, key, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrBackendUnavailable, op, err)
}
