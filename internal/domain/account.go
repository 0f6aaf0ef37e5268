package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role роль пользователя
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Profile профиль пользователя с балансом
type Profile struct {
	ID          string
	Email       string
	DisplayName string
	Role        Role
	Balance     decimal.Decimal
	CreatedAt   time.Time
}

// IsAdmin возвращает true для администратора
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// CanAfford возвращает true, если баланса хватает на оплату
func (p *Profile) CanAfford(amount decimal.Decimal) bool {
	return p.Balance.GreaterThanOrEqual(amount)
}
