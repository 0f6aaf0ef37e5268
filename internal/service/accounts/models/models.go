package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/fee"
)

// Request модели

// DepositRequest запрос на пополнение баланса
type DepositRequest struct {
	UserID string          `json:"userId"`
	Amount decimal.Decimal `json:"amount"`
}

// SetBalanceRequest запрос администратора на установку баланса
type SetBalanceRequest struct {
	UserID  string          `json:"userId"` // администратор
	Email   string          `json:"email"`  // чей баланс меняется
	Balance decimal.Decimal `json:"balance"`
}

// Response модели

// ProfileResponse ответ с профилем пользователя
type ProfileResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	DisplayName    string    `json:"displayName"`
	Role           string    `json:"role"`
	IsAdmin        bool      `json:"isAdmin"`
	Balance        string    `json:"balance"`
	BalanceDisplay string    `json:"balanceDisplay"`
	Currency       string    `json:"currency"`
	CreatedAt      time.Time `json:"createdAt"`
}

// DepositResponse результат пополнения
type DepositResponse struct {
	Deposited      string `json:"deposited"`
	Balance        string `json:"balance"`
	BalanceDisplay string `json:"balanceDisplay"`
	Currency       string `json:"currency"`
}

// Методы конвертации

// FromDomainProfile конвертирует domain модель в DTO
func FromDomainProfile(p *domain.Profile, currency string) *ProfileResponse {
	if p == nil {
		return nil
	}

	return &ProfileResponse{
		ID:             p.ID,
		Email:          p.Email,
		DisplayName:    p.DisplayName,
		Role:           string(p.Role),
		IsAdmin:        p.IsAdmin(),
		Balance:        p.Balance.StringFixed(fee.Scale(currency)),
		BalanceDisplay: fee.FormatCurrency(p.Balance, currency),
		Currency:       currency,
		CreatedAt:      p.CreatedAt,
	}
}

// NewDepositResponse формирует ответ на пополнение
func NewDepositResponse(deposited, balance decimal.Decimal, currency string) *DepositResponse {
	scale := fee.Scale(currency)

	return &DepositResponse{
		Deposited:      deposited.StringFixed(scale),
		Balance:        balance.StringFixed(scale),
		BalanceDisplay: fee.FormatCurrency(balance, currency),
		Currency:       currency,
	}
}
