package deposit

import "github.com/shopspring/decimal"

// DepositRequest HTTP модель запроса на пополнение баланса
type DepositRequest struct {
	Amount decimal.Decimal `json:"amount"`
}
