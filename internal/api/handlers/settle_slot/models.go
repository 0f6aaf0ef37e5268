package settle_slot

import (
	"github.com/m04kA/SMC-ParkingService/internal/service/fee"
	settleSlot "github.com/m04kA/SMC-ParkingService/internal/usecase/settle_slot"
)

// SettleSlotResponse HTTP модель ответа на оплату и освобождение места
type SettleSlotResponse struct {
	SlotID       string `json:"slotId"`
	SlotNumber   int    `json:"slotNumber"`
	VehiclePlate string `json:"vehiclePlate"`
	Duration     string `json:"duration"`
	Fee          string `json:"fee"`
	FeeDisplay   string `json:"feeDisplay"`
	Currency     string `json:"currency"`
	Charged      bool   `json:"charged"`
	NewBalance   string `json:"newBalance,omitempty"` // только при списании
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *settleSlot.Response) *SettleSlotResponse {
	scale := fee.Scale(resp.Currency)
	out := &SettleSlotResponse{
		SlotID:       resp.SlotID,
		SlotNumber:   resp.SlotNumber,
		VehiclePlate: resp.VehiclePlate,
		Duration:     resp.Duration,
		Fee:          resp.Fee.StringFixed(scale),
		FeeDisplay:   resp.FeeDisplay,
		Currency:     resp.Currency,
		Charged:      resp.Charged,
	}
	if resp.Charged {
		out.NewBalance = resp.NewBalance.StringFixed(scale)
	}
	return out
}
