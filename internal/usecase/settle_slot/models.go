package settle_slot

import "github.com/shopspring/decimal"

// Результаты оплаты для метрик
const (
	resultPaid         = "paid"
	resultOverride     = "override"
	resultInsufficient = "insufficient_balance"
	resultDenied       = "denied"
	resultFailed       = "failed"
)

// Request модель запроса на оплату и освобождение места
type Request struct {
	SlotID  string // ID места
	PayerID string // ID плательщика
}

// Response модель ответа
type Response struct {
	SlotID       string
	SlotNumber   int
	VehiclePlate string
	Fee          decimal.Decimal // списанная (или рассчитанная при освобождении администратором) сумма
	FeeDisplay   string          // "$12.50"
	Duration     string          // "2h 30m"
	Currency     string
	NewBalance   decimal.Decimal
	Charged      bool // false при освобождении администратором
}
